// Package view holds the presentation lookups shared by the terminal, TUI
// and HTML renderers: status badges, section icons and colors.
package view

import (
	"github.com/cokomi/timeline/internal/timeline"
)

// Badge describes how a status is presented.
type Badge struct {
	Label string
	Icon  string
	// Color is a hex color used by the TUI and the HTML dashboard.
	Color string
	// Class is the CSS modifier used by the HTML dashboard.
	Class string
}

var badges = map[timeline.Status]Badge{
	timeline.StatusCompleted:  {Label: "Completed", Icon: "✓", Color: "#22C55E", Class: "completed"},
	timeline.StatusInProgress: {Label: "In Progress", Icon: "◷", Color: "#3B82F6", Class: "in-progress"},
	timeline.StatusPending:    {Label: "Pending", Icon: "○", Color: "#9CA3AF", Class: "pending"},
}

// StatusBadge returns the badge for a status. Unknown statuses are shown as pending.
func StatusBadge(s timeline.Status) Badge {
	if b, ok := badges[s]; ok {
		return b
	}
	return badges[timeline.StatusPending]
}

// SectionStyle is the icon and color of a section header.
type SectionStyle struct {
	Icon  string `yaml:"icon" toml:"icon" json:"icon"`
	Color string `yaml:"color" toml:"color" json:"color"`
}

// DefaultSectionStyle is used for sections without an entry.
var DefaultSectionStyle = SectionStyle{Icon: "server", Color: "#6B7280"}

var sectionStyles = map[timeline.SectionName]SectionStyle{
	"Backend API & Architecture": {Icon: "server", Color: "#8B5CF6"},
	"Database & Product Schema":  {Icon: "database", Color: "#3B82F6"},
	"Admin Panels":               {Icon: "shield", Color: "#EF4444"},
	"Admin Data Filtering":       {Icon: "filter", Color: "#F43F5E"},
	"Frontend Logic":             {Icon: "layout", Color: "#14B8A6"},
	"Country Selection":          {Icon: "globe", Color: "#6366F1"},
	"Pricing & Checkout":         {Icon: "credit-card", Color: "#F59E0B"},
	"Promotions":                 {Icon: "tag", Color: "#EAB308"},
	"Payments":                   {Icon: "credit-card", Color: "#F97316"},
	"Address & Contact":          {Icon: "map-pin", Color: "#06B6D4"},
	"Content & Marketing":        {Icon: "layout", Color: "#EC4899"},
	"Testing & QA":               {Icon: "test-tube", Color: "#D946EF"},
	"Scalability":                {Icon: "zap", Color: "#10B981"},
}

// iconGlyphs maps icon names to terminal glyphs.
var iconGlyphs = map[string]string{
	"server":      "▣",
	"database":    "◫",
	"shield":      "◈",
	"filter":      "⧩",
	"layout":      "▤",
	"globe":       "◍",
	"credit-card": "▭",
	"tag":         "◆",
	"map-pin":     "◉",
	"test-tube":   "⚗",
	"zap":         "ϟ",
}

// Theme resolves section styles, letting configured overrides win over
// the built-in table.
type Theme struct {
	overrides map[timeline.SectionName]SectionStyle
}

// NewTheme creates a theme with optional per-section overrides keyed by
// section name. Empty fields in an override fall back to the built-in style.
func NewTheme(overrides map[string]SectionStyle) *Theme {
	t := &Theme{overrides: make(map[timeline.SectionName]SectionStyle, len(overrides))}
	for name, style := range overrides {
		t.overrides[timeline.SectionName(name)] = style
	}
	return t
}

// Section returns the style for a section.
func (t *Theme) Section(name timeline.SectionName) SectionStyle {
	style, ok := sectionStyles[name]
	if !ok {
		style = DefaultSectionStyle
	}
	if t == nil {
		return style
	}
	if o, ok := t.overrides[name]; ok {
		if o.Icon != "" {
			style.Icon = o.Icon
		}
		if o.Color != "" {
			style.Color = o.Color
		}
	}
	return style
}

// Glyph returns the terminal glyph for an icon name.
func Glyph(icon string) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return iconGlyphs[DefaultSectionStyle.Icon]
}
