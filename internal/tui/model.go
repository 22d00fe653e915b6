// Package tui is the interactive terminal dashboard. Section filters are
// toggled with the arrow keys; the progress summary always covers the
// whole dataset.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cokomi/timeline/internal/view"
	"github.com/cokomi/timeline/pkg/timeline"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	barWidth      = 30
)

// Options configures the dashboard model.
type Options struct {
	Title          string
	Theme          *view.Theme
	DefaultSection timeline.SectionName
}

// Model is the bubbletea model. The Selection is owned here and only
// mutated from Update, which bubbletea runs on a single goroutine.
type Model struct {
	dash     *timeline.Dashboard
	sel      *timeline.Selection
	theme    *view.Theme
	title    string
	help     help.Model
	viewport viewport.Model
	width    int
	height   int
}

// New creates a model over dash.
func New(dash *timeline.Dashboard, opts Options) Model {
	if opts.Title == "" {
		opts.Title = "Project Timeline"
	}

	sel := dash.NewSelection()
	if opts.DefaultSection != "" {
		sel.Select(opts.DefaultSection)
	}

	m := Model{
		dash:     dash,
		sel:      sel,
		theme:    opts.Theme,
		title:    opts.Title,
		help:     help.New(),
		viewport: viewport.New(defaultWidth, defaultHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Run starts the program on the alternate screen and blocks until the
// user quits or ctx is cancelled.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

// Selected returns the current section filter.
func (m Model) Selected() timeline.SectionName {
	return m.sel.Current()
}

// Snapshot returns the derived view for the current filter.
func (m Model) Snapshot() timeline.Snapshot {
	return m.dash.Snapshot(m.sel.Current())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.sel.Next()
			m.refresh()
			return m, nil
		case key.Matches(msg, keys.Prev):
			m.sel.Prev()
			m.refresh()
			return m, nil
		case key.Matches(msg, keys.Reset):
			m.sel.Reset()
			m.refresh()
			return m, nil
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize(m.width, m.height)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderTabs(),
		m.viewport.View(),
		m.help.View(keys),
	)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	chrome := lipgloss.Height(m.renderHeader()) +
		lipgloss.Height(m.renderTabs()) +
		lipgloss.Height(m.help.View(keys))
	m.viewport.Width = width
	m.viewport.Height = max(1, height-chrome)
	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderSteps(m.Snapshot()))
	m.viewport.GotoTop()
}

func (m Model) renderHeader() string {
	p := m.dash.Progress()
	lines := []string{
		titleStyle.Render(m.title),
		progressBar(p.Percentage, barWidth) + " " + fmt.Sprintf("%d%%", p.Percentage),
		mutedStyle.Render(progressLine(p)),
	}
	return headerBox.Render(strings.Join(lines, "\n"))
}

func progressLine(p timeline.Progress) string {
	return fmt.Sprintf("%d of %d tasks completed", p.CompletedCount, p.TotalCount)
}

func progressBar(percent, width int) string {
	filled := min(max(percent*width/100, 0), width)
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		barTrackStyle.Render(strings.Repeat("░", width-filled))
}

func (m Model) renderTabs() string {
	current := m.sel.Current()
	tabs := make([]string, 0, len(m.sel.Sections()))
	for _, s := range m.sel.Sections() {
		if s == current {
			tabs = append(tabs, activeTabStyle.Render(string(s)))
		} else {
			tabs = append(tabs, tabStyle.Render(string(s)))
		}
	}
	return lipgloss.NewStyle().Width(m.width).Render(strings.Join(tabs, " "))
}

func (m Model) renderSteps(snap timeline.Snapshot) string {
	if snap.Empty() {
		return mutedStyle.Render("No steps in this section.")
	}

	var b strings.Builder
	for gi, g := range snap.Groups {
		if snap.ShowSectionHeaders {
			style := m.theme.Section(g.Section)
			if gi > 0 {
				b.WriteString("\n")
			}
			b.WriteString(colored(style.Color).Bold(true).Render(view.Glyph(style.Icon) + " " + string(g.Section)))
			b.WriteString("\n")
		}
		for i, s := range g.Steps {
			badge := view.StatusBadge(s.Status)
			connector := "│"
			if snap.IsLast(gi, i) {
				connector = " "
			}

			b.WriteString(colored(badge.Color).Render(badge.Icon) + " " + stepTitleStyle.Render(s.Title) +
				"  " + colored(badge.Color).Render(badge.Label) + "\n")
			b.WriteString(mutedStyle.Render(fmt.Sprintf("%s Step %d", connector, s.ID)) + "\n")
			if s.Description != "" {
				b.WriteString(mutedStyle.Render(connector+" "+s.Description) + "\n")
			}
			if date := view.FormatCompletedOn(s); date != "" {
				b.WriteString(mutedStyle.Render(connector+" Completed "+date) + "\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
