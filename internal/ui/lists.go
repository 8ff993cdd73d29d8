package ui

import (
	"fmt"
	"strings"

	"github.com/genpozi/poziverse/internal/catalog"
	"github.com/genpozi/poziverse/internal/filter"
	"github.com/genpozi/poziverse/internal/workspace"
)

// listRow is one line of a list view. Domain is DomainNone for rows that
// cannot be selected. Accent is drawn only when Tinted is set.
type listRow struct {
	ID     string
	Domain workspace.Domain
	Title  string
	Detail string
	Status string
	Accent catalog.Accent
	Tinted bool
	Tags   []string
}

func (m Model) query(t workspace.Target) string {
	return m.queries[t]
}

func (m Model) projectRows() []listRow {
	items := filter.Apply(m.cat().Projects,
		filter.Query{Text: m.query(workspace.TargetProjects)},
		nil,
		func(p catalog.Project) string { return p.Title },
		func(p catalog.Project) string { return p.Subtitle },
		func(p catalog.Project) string { return p.Description },
		filter.AnyOf(func(p catalog.Project) []string { return p.TechStack }),
	)
	rows := make([]listRow, 0, len(items))
	for _, p := range items {
		rows = append(rows, listRow{
			ID:     p.ID,
			Domain: workspace.DomainProject,
			Title:  p.Title,
			Detail: p.Subtitle,
			Status: p.Status,
			Accent: p.Color,
			Tinted: true,
			Tags:   p.TechStack,
		})
	}
	return rows
}

func (m Model) launchpadRows() []listRow {
	items := filter.Apply(m.cat().Launchpad,
		filter.Query{
			Category: m.ws.Category(workspace.CategoryLaunchpad),
			Text:     m.query(workspace.TargetLaunchpad),
		},
		func(i catalog.LaunchpadItem) string { return i.Category },
		func(i catalog.LaunchpadItem) string { return i.Name },
		func(i catalog.LaunchpadItem) string { return i.Description },
		filter.AnyOf(func(i catalog.LaunchpadItem) []string { return i.Tags }),
	)
	rows := make([]listRow, 0, len(items))
	for _, i := range items {
		rows = append(rows, listRow{
			ID:     i.ID,
			Domain: workspace.DomainLaunchpad,
			Title:  i.Name,
			Detail: i.Description,
			Status: i.Status,
			Accent: i.Color,
			Tinted: true,
			Tags:   i.Tags,
		})
	}
	return rows
}

func (m Model) resourceRows() []listRow {
	items := filter.Apply(m.cat().Resources,
		filter.Query{
			Category: m.ws.Category(workspace.CategoryResource),
			Text:     m.query(workspace.TargetResources),
		},
		func(r catalog.Resource) string { return r.Type },
		func(r catalog.Resource) string { return r.Title },
		func(r catalog.Resource) string { return r.Subtitle },
		func(r catalog.Resource) string { return r.Description },
		filter.AnyOf(func(r catalog.Resource) []string { return r.Tags }),
	)
	rows := make([]listRow, 0, len(items))
	for _, r := range items {
		status := r.Type
		if r.RotationDue {
			status = "rotation due"
		}
		title := r.Title
		if r.Favorite {
			title = "★ " + title
		}
		rows = append(rows, listRow{
			ID:     r.ID,
			Domain: workspace.DomainResource,
			Title:  title,
			Detail: r.Subtitle,
			Status: status,
			Tags:   r.Tags,
		})
	}
	return rows
}

func (m Model) fileRows() []listRow {
	items := filter.Apply(m.cat().FileSources,
		filter.Query{Text: m.query(workspace.TargetFiles)},
		nil,
		func(f catalog.FileSource) string { return f.Name },
		func(f catalog.FileSource) string { return f.Provider },
		func(f catalog.FileSource) string { return f.Path },
	)
	rows := make([]listRow, 0, len(items))
	for _, f := range items {
		rows = append(rows, listRow{
			ID:     f.ID,
			Title:  f.Name,
			Detail: fmt.Sprintf("%s  %.0f%%", f.Path, f.Capacity.Percent()),
			Status: f.Status,
			Accent: f.Color,
			Tinted: true,
		})
	}
	return rows
}

func (m Model) folderRows() []listRow {
	items := filter.Apply(m.cat().Folders,
		filter.Query{Text: m.query(workspace.TargetFolders)},
		nil,
		func(w catalog.WorkspaceItem) string { return w.Title },
		func(w catalog.WorkspaceItem) string { return w.Type },
	)
	rows := make([]listRow, 0, len(items))
	for _, w := range items {
		rows = append(rows, listRow{
			ID:     w.ID,
			Title:  w.Title,
			Detail: titleCase(w.Type),
			Accent: w.Color,
			Tinted: true,
		})
	}
	return rows
}

// userControlRows dispatches on the user control view register.
func (m Model) userControlRows() []listRow {
	q := m.query(workspace.TargetUserControl)
	switch m.ws.Category(workspace.CategoryUserControl) {
	case viewActivityFeed:
		items := filter.Text(m.cat().Activity, q,
			func(a catalog.Activity) string { return a.User },
			func(a catalog.Activity) string { return a.Action },
			func(a catalog.Activity) string { return a.Target },
		)
		rows := make([]listRow, 0, len(items))
		for _, a := range items {
			rows = append(rows, listRow{
				ID:     a.ID,
				Title:  a.User,
				Detail: a.Action + " " + a.Target,
				Status: a.Time,
			})
		}
		return rows

	case viewNotifications:
		items := filter.Text(m.cat().Notifications, q,
			func(n catalog.Notification) string { return n.Message },
			func(n catalog.Notification) string { return n.Type },
		)
		rows := make([]listRow, 0, len(items))
		for _, n := range items {
			status := n.Time
			if n.Unread {
				status = "unread"
			}
			rows = append(rows, listRow{
				ID:     n.ID,
				Title:  n.Message,
				Detail: titleCase(n.Type),
				Status: status,
			})
		}
		return rows

	case viewUserAdmin:
		rows := m.userRows(q)
		for i, row := range rows {
			u, _ := m.cat().User(row.ID)
			rows[i].Detail = fmt.Sprintf("%s  %s  %d projects", titleCase(u.Role), u.Email, u.Projects)
		}
		return rows

	default:
		return m.userRows(q)
	}
}

// userRows lists users narrowed by the role register, then the query.
func (m Model) userRows(q string) []listRow {
	items := filter.Apply(m.cat().Users,
		filter.Query{Category: m.ws.Category(workspace.CategoryUserRole), Text: q},
		func(u catalog.User) string { return u.Role },
		func(u catalog.User) string { return u.Name },
		func(u catalog.User) string { return u.Email },
		func(u catalog.User) string { return u.Role },
		func(u catalog.User) string { return u.Department },
		filter.AnyOf(func(u catalog.User) []string { return u.Skills }),
	)
	rows := make([]listRow, 0, len(items))
	for _, u := range items {
		rows = append(rows, listRow{
			ID:     u.ID,
			Domain: workspace.DomainUser,
			Title:  u.Name,
			Detail: strings.TrimSpace(u.Department + "  " + u.Location),
			Status: u.Status,
			Tags:   u.Skills,
		})
	}
	return rows
}
