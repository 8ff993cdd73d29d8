package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/genpozi/poziverse/internal/workspace"
)

// renderNavBar renders the vertical list of navigation targets.
func (m Model) renderNavBar(height int) string {
	bgColor := m.theme.SurfaceAlt
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)
	inner := navBarWidth - 2

	var lines []string
	for i, t := range workspace.Targets() {
		label := fmt.Sprintf("%d %s", i+1, t.Label())
		if t == m.ws.Target {
			line := lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Foreground(lipgloss.Color(m.theme.SelectionText)).
				Bold(true).
				Width(inner).
				Render(truncate(label, inner))
			lines = append(lines, line)
			continue
		}
		lines = append(lines, bg.Render(truncate(label, inner), styles.MutedText))
	}
	return m.renderTitledBox("Poziverse", strings.Join(lines, "\n"), navBarWidth, height, false)
}

// renderTabBar renders the navigation targets as one line for the compact
// layout.
func (m Model) renderTabBar() string {
	bgColor := m.theme.Surface
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)

	segments := make([]string, 0, len(workspace.Targets()))
	for i, t := range workspace.Targets() {
		label := fmt.Sprintf("%d:%s", i+1, t.Label())
		if t == m.ws.Target {
			segments = append(segments, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Foreground(lipgloss.Color(m.theme.SelectionText)).
				Bold(true).
				Render(" "+label+" "))
			continue
		}
		segments = append(segments, bg.Render(" "+label+" ", styles.MutedText))
	}
	return bg.FillLine(strings.Join(segments, ""), m.width)
}

// renderMenu renders the contextual menu for the current target. Views with
// a category register list its options; the others list their entries.
func (m Model) renderMenu(width, height int) string {
	bgColor := m.theme.SurfaceAlt
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)
	inner := width - 2
	view := m.currentView()

	registerLines := func(reg *categoryRegister, hint string) []string {
		options := reg.options(m)
		if len(options) == 0 {
			return nil
		}
		current := m.ws.Category(reg.domain)
		var out []string
		for _, opt := range options {
			if opt.ID == current {
				out = append(out, bg.Render(truncate("▸ "+opt.Label, inner), styles.AccentText.Bold(true)))
				continue
			}
			out = append(out, bg.Render(truncate("  "+opt.Label, inner), styles.Text))
		}
		return append(out, bg.Render(hint, styles.FaintText))
	}

	var lines []string
	if view.category != nil {
		lines = registerLines(view.category, "c/C to switch")
		if view.filter != nil {
			if more := registerLines(view.filter, "f/F to filter"); more != nil {
				lines = append(append(lines, ""), more...)
			}
		}
	} else {
		for _, row := range m.rows() {
			lines = append(lines, bg.Render(truncate("  "+row.Title, inner), styles.Text))
		}
	}
	if hint := m.newEntryHint(); hint != "" {
		lines = append(lines, "", bg.Render("n "+hint, styles.FaintText))
	}
	return m.renderTitledBox(view.title, strings.Join(lines, "\n"), width, height, false)
}
