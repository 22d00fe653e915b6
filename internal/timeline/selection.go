package timeline

// Selection holds the currently selected section filter. It starts at
// "All" and accepts any value; unknown sections simply filter to nothing.
// Selection is not safe for concurrent use.
type Selection struct {
	domain  []SectionName
	current SectionName
}

// NewSelection creates a selection over the sections of steps.
func NewSelection(steps []Step) *Selection {
	return &Selection{
		domain:  ListSections(steps),
		current: AllSections,
	}
}

// Current returns the selected section.
func (s *Selection) Current() SectionName {
	return s.current
}

// Sections returns the selectable values, "All" first.
func (s *Selection) Sections() []SectionName {
	return append([]SectionName{}, s.domain...)
}

// Select sets the current section.
func (s *Selection) Select(name SectionName) {
	s.current = name
}

// Known reports whether name is one of the selectable values.
func (s *Selection) Known(name SectionName) bool {
	return s.indexOf(name) >= 0
}

// Next advances to the following section, wrapping around.
func (s *Selection) Next() SectionName {
	return s.step(1)
}

// Prev moves to the preceding section, wrapping around.
func (s *Selection) Prev() SectionName {
	return s.step(-1)
}

// Reset returns the selection to "All".
func (s *Selection) Reset() {
	s.current = AllSections
}

func (s *Selection) step(delta int) SectionName {
	n := len(s.domain)
	i := s.indexOf(s.current)
	if i < 0 {
		// an unknown value restarts from "All"
		i = 0
		delta = 0
	}
	s.current = s.domain[((i+delta)%n+n)%n]
	return s.current
}

func (s *Selection) indexOf(name SectionName) int {
	for i, section := range s.domain {
		if section == name {
			return i
		}
	}
	return -1
}
