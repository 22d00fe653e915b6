package output

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestStepTableLayout(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	table := NewStepTable(0, "ID", "Step", "Status")
	table.AddStep("completed", "1", "Design API", "Completed")
	table.AddStep("pending", "12", "Load testing", "Pending")

	want := "" +
		"+----+--------------+-----------+\n" +
		"| ID | Step         | Status    |\n" +
		"+====+==============+===========+\n" +
		"| 1  | Design API   | Completed |\n" +
		"| 12 | Load testing | Pending   |\n" +
		"+----+--------------+-----------+\n"

	if got := table.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
}

func TestStepTableFitsWidth(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	table := NewStepTable(40, "ID", "Step", "Status")
	table.AddStep("in-progress", "4", "Build checkout with saved payment methods", "In Progress")

	out := table.String()
	for _, l := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if w := runewidth.StringWidth(l); w > 40 {
			t.Errorf("line %q is %d wide, want <= 40", l, w)
		}
	}
	if !strings.Contains(out, "Build checkout...") {
		t.Errorf("expected truncated title, got:\n%s", out)
	}
	if !strings.Contains(out, "In Progress") {
		t.Errorf("short columns must not be truncated, got:\n%s", out)
	}
}

func TestStepTableMissingAndExtraCells(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	table := NewStepTable(0, "A", "B")
	table.AddStep("pending", "only")
	table.AddStep("pending", "x", "y", "dropped")

	out := table.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("extra cell rendered:\n%s", out)
	}
	if !strings.Contains(out, "| only |   |") {
		t.Errorf("missing cell not blank:\n%s", out)
	}
}

func TestStepTableNoHeaders(t *testing.T) {
	if got := NewStepTable(80).String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}
