package ui

import (
	"fmt"
	"strings"

	"github.com/genpozi/poziverse/internal/catalog"
	"github.com/genpozi/poziverse/internal/workspace"
)

// renderPanel renders the bottom-docked panel with a tab strip title.
func (m Model) renderPanel(width, height int) string {
	active := m.ws.ActivePanel()
	tabs := make([]string, 0, len(workspace.Panels()))
	for _, p := range workspace.Panels() {
		label := titleCase(p.String())
		if p == workspace.PanelProblems {
			if n := len(m.cat().Problems()); n > 0 {
				label = fmt.Sprintf("%s (%d)", label, n)
			}
		}
		if p == active {
			label = "[" + label + "]"
		}
		tabs = append(tabs, label)
	}
	title := strings.Join(tabs, "  ")

	inner := width - 2
	var body string
	switch active {
	case workspace.PanelTerminal:
		body = m.renderTerminal(inner)
	case workspace.PanelOutput:
		body = m.renderOutput(inner)
	case workspace.PanelProblems:
		body = m.renderProblems(inner, height-2)
	}
	return m.renderTitledBox(title, body, width, height, false)
}

// renderTerminal renders the static terminal panel.
func (m Model) renderTerminal(width int) string {
	bgColor := m.theme.SurfaceAlt
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)
	prompt := bg.Render("poziverse:~$", styles.SuccessText)

	cat := m.cat()
	lines := []string{
		prompt + bg.Spaces(1) + bg.Render("workspace status", styles.Text),
		bg.Render(fmt.Sprintf("view      %s", m.ws.Target.Label()), styles.MutedText),
		bg.Render(fmt.Sprintf("selection %s", m.selectionSummary()), styles.MutedText),
		bg.Render(fmt.Sprintf("catalog   %d projects, %d apps, %d resources",
			len(cat.Projects), len(cat.Launchpad), len(cat.Resources)), styles.MutedText),
		prompt + bg.Spaces(1) + bg.Render("█", styles.Text),
	}
	for i, line := range lines {
		lines[i] = bg.FillLine(line, width)
	}
	return strings.Join(lines, "\n")
}

// renderOutput renders the workspace event log.
func (m Model) renderOutput(width int) string {
	if len(m.output) == 0 {
		bg := NewBgStyle(m.theme.SurfaceAlt)
		return bg.Render("No output yet", m.theme.Styles().WithBackground(m.theme.SurfaceAlt).FaintText)
	}
	vp := m.outputView
	vp.Width = width
	return vp.View()
}

// renderProblems lists the derived catalog problems, errors first.
func (m Model) renderProblems(width, height int) string {
	bgColor := m.theme.SurfaceAlt
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)

	problems := m.cat().Problems()
	if len(problems) == 0 {
		return bg.Render("No problems detected", styles.SuccessText)
	}

	var lines []string
	for i, p := range problems {
		if i >= height {
			break
		}
		icon := bg.Render("⚠", styles.WarningText)
		if p.Severity == catalog.SeverityError {
			icon = bg.Render("✖", styles.DangerText)
		}
		lines = append(lines, icon+bg.Spaces(1)+
			bg.Render(padRight(p.Domain, 10), styles.FaintText)+
			bg.Render(truncate(p.Message, maxInt(width-13, 8)), styles.Text))
	}
	return strings.Join(lines, "\n")
}

// selectionSummary describes the current selection in a few words.
func (m Model) selectionSummary() string {
	sel := m.ws.Selection
	if sel.Empty() {
		return "none"
	}
	cat := m.cat()
	name := sel.ID
	switch sel.Domain {
	case workspace.DomainProject:
		if p, ok := cat.Project(sel.ID); ok {
			name = p.Title
		}
	case workspace.DomainLaunchpad:
		if item, ok := cat.LaunchpadItem(sel.ID); ok {
			name = item.Name
		}
	case workspace.DomainUser:
		if u, ok := cat.User(sel.ID); ok {
			name = u.Name
		}
	case workspace.DomainResource:
		if r, ok := cat.Resource(sel.ID); ok {
			name = r.Title
		}
	}
	return sel.Domain.String() + " " + name
}
