package output

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestStatusColors(t *testing.T) {
	tests := []struct {
		status   string
		expected string
	}{
		{"completed", Green},
		{"in-progress", Blue},
		{"pending", Gray},
		{"something", White},
	}

	for _, tt := range tests {
		got := StatusColor(tt.status)
		if got != tt.expected {
			t.Errorf("StatusColor(%q) = %q, want %q", tt.status, got, tt.expected)
		}
	}
}

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		status       string
		containsIcon string
	}{
		{"completed", "✓"},
		{"in-progress", "◷"},
		{"pending", "○"},
		{"bogus", "?"},
	}

	SetColor(false)
	defer SetColor(true)
	for _, tt := range tests {
		got := StatusIcon(tt.status)
		if got != tt.containsIcon {
			t.Errorf("StatusIcon(%q) without color = %q, want %q", tt.status, got, tt.containsIcon)
		}
	}
}

func TestProgressBar(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	tests := []struct {
		percent int
		filled  int
	}{
		{0, 0},
		{50, 10},
		{60, 12},
		{100, 20},
		{150, 20},
		{-5, 0},
	}

	for _, tt := range tests {
		got := ProgressBar(tt.percent, 20)
		if n := strings.Count(got, "█"); n != tt.filled {
			t.Errorf("ProgressBar(%d) filled = %d, want %d (%q)", tt.percent, n, tt.filled, got)
		}
		if n := strings.Count(got, "█") + strings.Count(got, "░"); n != 20 {
			t.Errorf("ProgressBar(%d) width = %d, want 20", tt.percent, n)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	if got := FormatPercent(60); got != "60%" {
		t.Errorf("FormatPercent(60) = %q", got)
	}
	if got := FormatPercent(0); got != "0%" {
		t.Errorf("FormatPercent(0) = %q", got)
	}
}

func TestHeaderWidth(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	for _, text := range []string{"Timeline", "Odd", "Café & Crème"} {
		got := Header(text, 40)
		if w := runewidth.StringWidth(got); w != 40 {
			t.Errorf("Header(%q) width = %d, want 40: %q", text, w, got)
		}
		if !strings.Contains(got, " "+text+" ") {
			t.Errorf("Header(%q) = %q", text, got)
		}
	}
}

func TestPadding(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("ab", 4); got != "  ab" {
		t.Errorf("PadLeft = %q", got)
	}
}
