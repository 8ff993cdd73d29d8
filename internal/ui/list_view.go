package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/genpozi/poziverse/internal/workspace"
)

// renderContent renders the current view inside the main pane.
func (m Model) renderContent(width, height int) string {
	view := m.currentView()
	title := view.title
	if label := m.categoryLabel(view); label != "" {
		title += " · " + label
	}
	if label := m.registerLabel(view.filter); label != "" && m.ws.Category(view.filter.domain) != workspace.CategoryAll {
		title += " · " + label
	}
	var body string
	if view.render != nil {
		body = view.render(m, width-2, height-2)
	} else {
		body = m.renderList(width-2, height-2)
	}
	return m.renderTitledBox(title, body, width, height, true)
}

// renderList renders the current view's rows with the cursor and selection
// marked. The first line summarizes the active search.
func (m Model) renderList(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	bgColor := m.theme.FocusBg
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)

	rows := m.rows()
	total := len(rows)

	summary := fmt.Sprintf("%d items", total)
	if q := m.query(m.ws.Target); q != "" {
		summary = fmt.Sprintf("/%s  %d matches", q, total)
	}
	lines := []string{bg.Render(summary, styles.FaintText)}

	if total == 0 {
		lines = append(lines, "", bg.Render("No matches", styles.MutedText))
		return strings.Join(lines, "\n")
	}

	visible := maxInt(height-1, 1)
	cursor := m.cursorIndex(total)
	offset := 0
	if cursor >= visible {
		offset = cursor - visible + 1
	}
	end := minInt(offset+visible, total)
	for i := offset; i < end; i++ {
		lines = append(lines, m.formatRow(rows[i], width, i == cursor))
	}
	return strings.Join(lines, "\n")
}

// formatRow renders one list row to exactly width cells.
func (m Model) formatRow(row listRow, width int, atCursor bool) string {
	bgColor := m.theme.FocusBg
	if atCursor {
		bgColor = m.theme.SelectionBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)

	selected := row.Domain == m.ws.Selection.Domain && row.ID == m.ws.Selection.ID && !m.ws.Selection.Empty()
	marker := "  "
	if selected {
		marker = "● "
	}

	statusWidth := 14
	titleWidth := minInt(28, maxInt(width/3, 10))
	detailWidth := maxInt(width-4-titleWidth-statusWidth-2, 0)
	if width >= LayoutWideWidth {
		titleWidth = 36
		detailWidth = maxInt(width-4-titleWidth-statusWidth-2, 0)
	}

	titleStyle := styles.Text
	if atCursor {
		titleStyle = titleStyle.Foreground(lipgloss.Color(m.theme.SelectionText)).Bold(true)
	}

	swatch := bg.Spaces(1)
	if row.Tinted {
		swatch = bg.Render("■", m.theme.Styles().AccentStyle(row.Accent))
	}

	parts := []string{
		bg.Render(marker, styles.AccentText),
		swatch,
		bg.Spaces(1),
		bg.Render(fit(row.Title, titleWidth), titleStyle),
	}
	if detailWidth > 0 {
		parts = append(parts, bg.Spaces(1), bg.Render(fit(row.Detail, detailWidth), styles.MutedText))
	}
	if row.Status != "" {
		parts = append(parts, bg.Spaces(1),
			bg.Render(truncate(titleCase(row.Status), statusWidth), m.theme.Styles().StatusStyle(row.Status)))
	}
	return bg.FillLine(strings.Join(parts, ""), width)
}
