package ui

import (
	"fmt"
	"strings"

	"github.com/genpozi/poziverse/internal/catalog"
	"github.com/genpozi/poziverse/internal/workspace"
)

// detailWriter accumulates sidebar lines on one background.
type detailWriter struct {
	bg     BgStyle
	styles Styles
	width  int
	lines  []string
}

func (w *detailWriter) title(s string) {
	w.lines = append(w.lines, w.bg.Render(truncate(s, w.width), w.styles.Text.Bold(true)))
}

func (w *detailWriter) muted(s string) {
	if s == "" {
		return
	}
	w.lines = append(w.lines, w.bg.Render(truncate(s, w.width), w.styles.MutedText))
}

func (w *detailWriter) section(s string) {
	w.lines = append(w.lines, "", w.bg.Render(s, w.styles.AccentText.Bold(true)))
}

func (w *detailWriter) field(label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	w.lines = append(w.lines,
		w.bg.Render(padRight(label, 11), w.styles.FaintText)+
			w.bg.Render(truncate(value, maxInt(w.width-11, 4)), w.styles.Text))
}

func (w *detailWriter) styled(label, value string, style Styles, status string) {
	w.lines = append(w.lines,
		w.bg.Render(padRight(label, 11), w.styles.FaintText)+
			w.bg.Render(titleCase(value), style.StatusStyle(status)))
}

// wrap adds text wrapped to the sidebar width.
func (w *detailWriter) wrap(text string) {
	var line string
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len([]rune(line))+1+len([]rune(word)) > w.width:
			w.lines = append(w.lines, w.bg.Render(line, w.styles.Text))
			line = word
		default:
			line += " " + word
		}
	}
	if line != "" {
		w.lines = append(w.lines, w.bg.Render(line, w.styles.Text))
	}
}

func (w *detailWriter) list(label string, items []string) {
	if len(items) == 0 {
		return
	}
	w.field(label, strings.Join(items, ", "))
}

// renderSidebar renders the metadata sidebar for the selected entity. The
// files view has no selection slot, so it describes the source under the
// cursor instead.
func (m Model) renderSidebar(width, height int) string {
	bgColor := m.theme.SurfaceAlt
	w := &detailWriter{
		bg:     NewBgStyle(bgColor),
		styles: m.theme.Styles().WithBackground(bgColor),
		width:  width - 2,
	}

	sel := m.ws.Selection
	cat := m.cat()
	title := "Details"
	switch sel.Domain {
	case workspace.DomainProject:
		if p, ok := cat.Project(sel.ID); ok {
			m.describeProject(w, p)
		}
	case workspace.DomainLaunchpad:
		if item, ok := cat.LaunchpadItem(sel.ID); ok {
			m.describeLaunchpadItem(w, item)
		}
	case workspace.DomainUser:
		if u, ok := cat.User(sel.ID); ok {
			m.describeUser(w, u)
		}
	case workspace.DomainResource:
		if r, ok := cat.Resource(sel.ID); ok {
			m.describeResource(w, r)
		}
	default:
		if row, ok := m.cursorRow(); ok && m.ws.Target == workspace.TargetFiles {
			if fs, found := cat.FileSource(row.ID); found {
				m.describeFileSource(w, fs)
				break
			}
		}
		w.muted("Nothing selected")
		w.lines = append(w.lines, "")
		w.muted("enter  select")
		w.muted("x      deselect")
	}
	if !sel.Empty() {
		title = titleCase(sel.Domain.String())
	}
	return m.renderTitledBox(title, strings.Join(w.lines, "\n"), width, height, false)
}

func (m Model) describeProject(w *detailWriter, p catalog.Project) {
	styles := w.styles
	w.title(p.Title)
	w.muted(p.Subtitle)
	w.lines = append(w.lines, "")
	w.styled("Status", p.Status, styles, p.Status)
	w.field("Progress", progressBar(float64(p.Progress), 12)+fmt.Sprintf(" %d%%", p.Progress))
	w.field("Updated", p.LastUpdated)
	w.field("Live", p.LiveURL)
	w.field("Repo", p.RepoURL)
	w.list("Stack", p.TechStack)
	if p.Description != "" {
		w.section("About")
		w.wrap(p.Description)
	}
	if len(p.Collaborators) > 0 {
		w.section("Team")
		for _, c := range p.Collaborators {
			w.field(c.Initials, c.Name+" ("+c.Status+")")
		}
	}
	if len(p.Activity) > 0 {
		w.section("Activity")
		for _, a := range p.Activity {
			w.field(a.Time, a.Action)
		}
	}
	w.section("Stats")
	w.field("Views", fmt.Sprintf("%d", p.Stats.Views))
	w.field("Stars", fmt.Sprintf("%d", p.Stats.Stars))
	w.field("Forks", fmt.Sprintf("%d", p.Stats.Forks))
}

func (m Model) describeLaunchpadItem(w *detailWriter, item catalog.LaunchpadItem) {
	w.title(item.Name)
	w.muted(item.Description)
	w.lines = append(w.lines, "")
	w.styled("Status", item.Status, w.styles, item.Status)
	w.field("Category", item.Category)
	w.field("URL", item.URL)
	w.field("Repo", item.RepoURL)
	w.list("Tags", item.Tags)
	if item.Stats != (catalog.LaunchpadStats{}) {
		w.section("Stats")
		w.field("Uptime", item.Stats.Uptime)
		if item.Stats.Users > 0 {
			w.field("Users", fmt.Sprintf("%d", item.Stats.Users))
		}
		w.field("Version", item.Stats.Version)
	}
}

func (m Model) describeUser(w *detailWriter, u catalog.User) {
	w.title(u.Name)
	w.muted(u.Email)
	w.lines = append(w.lines, "")
	w.styled("Status", u.Status, w.styles, u.Status)
	w.field("Role", titleCase(u.Role))
	w.field("Department", u.Department)
	w.field("Location", u.Location)
	w.field("Joined", u.JoinDate)
	w.field("Active", u.LastActive)
	w.field("Projects", fmt.Sprintf("%d", u.Projects))
	w.list("Skills", u.Skills)
	if u.Bio != "" {
		w.section("Bio")
		w.wrap(u.Bio)
	}
}

func (m Model) describeResource(w *detailWriter, r catalog.Resource) {
	w.title(r.Title)
	w.muted(r.Subtitle)
	w.lines = append(w.lines, "")
	w.field("Type", titleCase(r.Type))
	w.field("Created", r.CreatedAt)
	w.field("Updated", r.UpdatedAt)
	w.field("URL", r.URL)
	w.field("Host", r.Host)
	w.field("Env", r.Environment)
	w.field("Language", r.Language)
	w.list("Tags", r.Tags)
	if r.Value != "" {
		value := r.Value
		if r.Sensitive() && !m.revealed[r.ID] {
			value = maskValue(value) + "  (r to reveal)"
		}
		w.field("Value", value)
	}
	if r.Sensitive() {
		w.field("Rotated", r.LastRotated)
		w.field("Next", r.NextRotation)
		if r.RotationDue {
			w.lines = append(w.lines, w.bg.Render("Rotation due", w.styles.WarningText))
		}
		w.list("Services", r.Services)
	}
	if r.Description != "" {
		w.section("About")
		w.wrap(r.Description)
	}
	if r.Content != "" {
		w.section("Content")
		for _, line := range strings.Split(r.Content, "\n") {
			w.lines = append(w.lines, w.bg.Render(truncate(line, w.width), w.styles.InfoText))
		}
	}
}

func (m Model) describeFileSource(w *detailWriter, fs catalog.FileSource) {
	w.title(fs.Name)
	w.muted(fs.Path)
	w.lines = append(w.lines, "")
	w.styled("Status", fs.Status, w.styles, fs.Status)
	w.field("Type", titleCase(fs.Type))
	w.field("Provider", fs.Provider)
	w.field("Synced", fs.LastSync)
	w.field("Usage", progressBar(fs.Capacity.Percent(), 12)+fmt.Sprintf(" %.0f%%", fs.Capacity.Percent()))
	w.field("Capacity", fmt.Sprintf("%.1f / %.0f GB", fs.Capacity.Used, fs.Capacity.Total))
	w.field("Creds", fs.CredentialsID)
	if fs.Notes != "" {
		w.section("Notes")
		w.wrap(fs.Notes)
	}
}
