package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/genpozi/poziverse/internal/workspace"
)

// renderMain renders the full UI for the current layout.
func (m Model) renderMain() string {
	f := m.computeFrame()
	parts := []string{m.renderHeader()}

	if !f.desktop {
		parts = append(parts,
			m.renderTabBar(),
			m.renderContent(f.contentWidth, f.bodyHeight),
		)
	} else {
		cols := []string{m.renderNavBar(f.bodyHeight)}
		if f.menu {
			cols = append(cols, m.renderMenu(menuWidth, f.bodyHeight))
		}
		cols = append(cols, m.renderContent(f.contentWidth, f.bodyHeight))
		if f.sidebar {
			cols = append(cols, m.renderSidebar(sidebarWidth, f.bodyHeight))
		}
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
		if f.panel {
			parts = append(parts, m.renderPanel(m.width, panelHeight))
		}
	}

	parts = append(parts, m.renderCommandBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderHeader renders the top bar: logo, view, selection, catalog state.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{
		bg.Render(logoText, styles.Logo),
		bg.Render(m.ws.Target.Label(), styles.Text.Bold(true)),
	}
	if !m.ws.Selection.Empty() {
		parts = append(parts, bg.Render("● "+truncate(m.selectionSummary(), 40), styles.AccentText))
	}

	switch {
	case !m.snapshot.HasCatalog():
		parts = append(parts, bg.Render("Loading catalog...", styles.WarningText.Bold(true)))
	case m.snapshot.IsStale():
		parts = append(parts, bg.Render(
			fmt.Sprintf("STALE: %d failed reloads", m.snapshot.ConsecutiveFailures), styles.DangerText))
	case m.snapshot.LastError != nil:
		parts = append(parts, bg.Render("Reload failed", styles.WarningText))
	default:
		parts = append(parts, bg.Render(fmt.Sprintf("v%d", m.snapshot.Version), styles.FaintText))
	}

	if unread := m.cat().UnreadNotifications(); unread > 0 && m.width >= LayoutDesktopWidth {
		parts = append(parts, bg.Render(fmt.Sprintf("%d unread", unread), styles.InfoText))
	}
	if !m.ws.Desktop {
		parts = append(parts, bg.Render("compact", styles.FaintText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// renderCommandBar renders the bottom bar. Prompts replace the key hints
// while they are active.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	switch m.mode {
	case modeSearch:
		return styles.Header.Width(m.width).Render(m.search.View())
	case modeNewProject:
		return styles.Header.Width(m.width).Render(m.prompt.View())
	case modeConfirmDelete:
		return styles.Header.Width(m.width).Render(
			bg.Render(fmt.Sprintf("Delete %q?", m.pending.title), styles.DangerText) +
				bg.Spaces(2) + bg.Render("y", styles.AccentText) + bg.Sep(":") + bg.Render("yes", styles.MutedText) +
				bg.Spaces(2) + bg.Render("any", styles.AccentText) + bg.Sep(":") + bg.Render("cancel", styles.MutedText))
	}

	type cmd struct{ key, desc string }
	commands := []cmd{{"1-7", "Views"}}

	view := m.currentView()
	if view.rows != nil {
		commands = append(commands,
			cmd{"j/k", "Navigate"},
			cmd{"/", "Search"},
		)
		if m.ws.Target != workspace.TargetFiles && m.ws.Target != workspace.TargetFolders {
			commands = append(commands, cmd{"enter", "Select"})
		}
	}
	if view.category != nil {
		commands = append(commands, cmd{"c", m.categoryLabel(view)})
	}
	if label := m.registerLabel(view.filter); label != "" {
		commands = append(commands, cmd{"f", label})
	}
	if m.newEntryHint() != "" {
		commands = append(commands, cmd{"n", "New"})
	}
	if m.ws.Target == workspace.TargetFiles {
		commands = append(commands, cmd{"e", "Edit"})
	}
	if view.deletable {
		commands = append(commands, cmd{"d", "Delete"})
	}
	if m.ws.Target == workspace.TargetResources {
		commands = append(commands, cmd{"r", "Reveal"})
	}
	if m.ws.Desktop {
		commands = append(commands,
			cmd{"m", ternary(m.ws.MenuExpanded, "Hide menu", "Menu")},
			cmd{"s", "Sidebar"},
			cmd{"t/o/p", "Panels"},
		)
	}
	commands = append(commands, cmd{"?", "More"})

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}
