package timeline

import (
	"fmt"
	"strings"
)

// ValidationError lists every problem found in a dataset.
type ValidationError struct {
	Problems []string
}

// Error implements error.
func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid dataset: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid dataset (%d problems):\n  - %s",
		len(e.Problems), strings.Join(e.Problems, "\n  - "))
}

// validate checks dataset shape and normalizes status values in place.
func validate(steps []Step) error {
	var problems []string
	seen := make(map[int]int)

	for i := range steps {
		s := &steps[i]
		pos := i + 1

		if prev, ok := seen[s.ID]; ok {
			problems = append(problems, fmt.Sprintf("step %d: duplicate id %d (first used by step %d)", pos, s.ID, prev))
		} else {
			seen[s.ID] = pos
		}

		status, err := ParseStatus(string(s.Status))
		if err != nil {
			problems = append(problems, fmt.Sprintf("step %d (id %d): %v", pos, s.ID, err))
		} else {
			s.Status = status
		}

		if strings.TrimSpace(string(s.Section)) == "" {
			problems = append(problems, fmt.Sprintf("step %d (id %d): section is required", pos, s.ID))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
