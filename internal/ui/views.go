package ui

import (
	"github.com/genpozi/poziverse/internal/catalog"
	"github.com/genpozi/poziverse/internal/workspace"
)

// User control views. The register holds the label itself.
const (
	viewUserDirectory = workspace.DefaultUserControlView
	viewUserAdmin     = "User Admin"
	viewActivityFeed  = "Activity Feed"
	viewNotifications = "Notifications"
)

var userControlViews = []catalog.Category{
	{ID: viewUserDirectory, Label: viewUserDirectory},
	{ID: viewUserAdmin, Label: viewUserAdmin},
	{ID: viewActivityFeed, Label: viewActivityFeed},
	{ID: viewNotifications, Label: viewNotifications},
}

// categoryRegister binds a view to one category register and its menu.
type categoryRegister struct {
	domain  workspace.CategoryDomain
	options func(Model) []catalog.Category
}

// contentView is one entry of the navigation dispatch table. filter is a
// second register applied before the text query; its options are empty while
// it does not apply.
type contentView struct {
	title     string
	category  *categoryRegister
	filter    *categoryRegister
	rows      func(Model) []listRow
	render    func(m Model, width, height int) string // nil renders rows
	deletable bool
}

// newViewTable builds the dispatch table. Every navigation target has an
// entry.
func newViewTable() map[workspace.Target]contentView {
	return map[workspace.Target]contentView{
		workspace.TargetHome: {
			title:  "Home",
			render: Model.renderHome,
		},
		workspace.TargetProjects: {
			title:     "Projects",
			rows:      Model.projectRows,
			deletable: true,
		},
		workspace.TargetFiles: {
			title:     "Files",
			rows:      Model.fileRows,
			deletable: true,
		},
		workspace.TargetLaunchpad: {
			title: "Launchpad",
			category: &categoryRegister{
				domain:  workspace.CategoryLaunchpad,
				options: func(m Model) []catalog.Category { return m.cat().LaunchpadCategories },
			},
			rows: Model.launchpadRows,
		},
		workspace.TargetFolders: {
			title: "Folders",
			rows:  Model.folderRows,
		},
		workspace.TargetUserControl: {
			title: "User Control",
			category: &categoryRegister{
				domain:  workspace.CategoryUserControl,
				options: func(Model) []catalog.Category { return userControlViews },
			},
			filter: &categoryRegister{
				domain:  workspace.CategoryUserRole,
				options: Model.roleOptions,
			},
			rows: Model.userControlRows,
		},
		workspace.TargetResources: {
			title: "Resources",
			category: &categoryRegister{
				domain:  workspace.CategoryResource,
				options: func(m Model) []catalog.Category { return m.cat().ResourceCategories },
			},
			rows:      Model.resourceRows,
			deletable: true,
		},
	}
}

// viewFor returns the dispatch entry for a target, falling back to home.
func (m Model) viewFor(t workspace.Target) contentView {
	if v, ok := m.views[t]; ok {
		return v
	}
	return m.views[workspace.TargetHome]
}

func (m Model) currentView() contentView {
	return m.viewFor(m.ws.Target)
}

// rows returns the filtered rows of the current view.
func (m Model) rows() []listRow {
	view := m.currentView()
	if view.rows == nil {
		return nil
	}
	return view.rows(m)
}

// userListView reports whether the user control register shows users.
func (m Model) userListView() bool {
	switch m.ws.Category(workspace.CategoryUserControl) {
	case viewUserDirectory, viewUserAdmin:
		return true
	}
	return false
}

// roleOptions lists the role filter values while a user list is shown.
func (m Model) roleOptions() []catalog.Category {
	if !m.userListView() {
		return nil
	}
	options := []catalog.Category{{ID: workspace.CategoryAll, Label: "All Roles"}}
	for _, role := range catalog.Roles() {
		options = append(options, catalog.Category{ID: role, Label: titleCase(role) + "s"})
	}
	return options
}

// categoryLabel returns the display label of the current category value.
func (m Model) categoryLabel(view contentView) string {
	return m.registerLabel(view.category)
}

// registerLabel returns the display label of a register's current value, or
// "" when the register does not apply.
func (m Model) registerLabel(reg *categoryRegister) string {
	if reg == nil {
		return ""
	}
	options := reg.options(m)
	if len(options) == 0 {
		return ""
	}
	value := m.ws.Category(reg.domain)
	for _, opt := range options {
		if opt.ID == value {
			return opt.Label
		}
	}
	return value
}
