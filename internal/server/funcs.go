package server

import (
	"fmt"
	"html/template"

	"github.com/cokomi/timeline/internal/timeline"
	"github.com/cokomi/timeline/internal/view"
)

// ringCircumference is 2πr for the r=46 progress ring.
const ringCircumference = 289.03

func templateFuncs(theme *view.Theme) template.FuncMap {
	return template.FuncMap{
		"badge":       view.StatusBadge,
		"glyph":       view.Glyph,
		"completedOn": view.FormatCompletedOn,
		"sectionStyle": func(name timeline.SectionName) view.SectionStyle {
			return theme.Section(name)
		},
		"ringDash": func(percent int) string {
			return fmt.Sprintf("%.2f %.2f", float64(percent)/100*ringCircumference, ringCircumference)
		},
	}
}
