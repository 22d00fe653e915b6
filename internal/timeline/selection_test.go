package timeline

import "testing"

func TestSelection(t *testing.T) {
	sel := NewSelection(fiveSteps())

	if sel.Current() != AllSections {
		t.Fatalf("initial selection = %q, want All", sel.Current())
	}

	if got := sel.Next(); got != "A" {
		t.Errorf("Next() = %q, want A", got)
	}
	if got := sel.Next(); got != "B" {
		t.Errorf("Next() = %q, want B", got)
	}
	if got := sel.Next(); got != AllSections {
		t.Errorf("Next() should wrap to All, got %q", got)
	}
	if got := sel.Prev(); got != "B" {
		t.Errorf("Prev() should wrap to B, got %q", got)
	}

	sel.Select("Z")
	if sel.Current() != "Z" {
		t.Errorf("Select should accept unknown sections, got %q", sel.Current())
	}
	if sel.Known("Z") {
		t.Error("Z should not be known")
	}
	if got := sel.Next(); got != AllSections {
		t.Errorf("Next() from unknown = %q, want All", got)
	}

	sel.Select("B")
	sel.Reset()
	if sel.Current() != AllSections {
		t.Errorf("Reset() left %q", sel.Current())
	}
}

func TestSelectionEmptyDataset(t *testing.T) {
	sel := NewSelection(nil)
	if got := sel.Next(); got != AllSections {
		t.Errorf("Next() on empty dataset = %q, want All", got)
	}
	if len(sel.Sections()) != 1 {
		t.Errorf("Sections() = %v, want [All]", sel.Sections())
	}
}
