package workspace

import "strings"

// Target identifies the primary navigation destination.
type Target int

const (
	TargetHome Target = iota
	TargetProjects
	TargetFiles
	TargetLaunchpad
	TargetFolders
	TargetUserControl
	TargetResources
)

var targetNames = [...]string{
	TargetHome:        "home",
	TargetProjects:    "projects",
	TargetFiles:       "files",
	TargetLaunchpad:   "launchpad",
	TargetFolders:     "folders",
	TargetUserControl: "usercontrol",
	TargetResources:   "resources",
}

var targetLabels = [...]string{
	TargetHome:        "Home",
	TargetProjects:    "Projects",
	TargetFiles:       "Files",
	TargetLaunchpad:   "Launchpad",
	TargetFolders:     "Folders",
	TargetUserControl: "User Control",
	TargetResources:   "Resources",
}

// Targets returns every navigation target in nav bar order.
func Targets() []Target {
	return []Target{
		TargetHome,
		TargetProjects,
		TargetFiles,
		TargetLaunchpad,
		TargetFolders,
		TargetUserControl,
		TargetResources,
	}
}

func (t Target) valid() bool {
	return t >= TargetHome && t <= TargetResources
}

func (t Target) String() string {
	if !t.valid() {
		return targetNames[TargetHome]
	}
	return targetNames[t]
}

// Label returns the human readable name shown in the nav bar.
func (t Target) Label() string {
	if !t.valid() {
		return targetLabels[TargetHome]
	}
	return targetLabels[t]
}

// ParseTarget resolves a target name. "workspace" is accepted as an alias
// for projects.
func ParseTarget(name string) (Target, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "workspace" {
		return TargetProjects, true
	}
	for i, n := range targetNames {
		if n == name {
			return Target(i), true
		}
	}
	return TargetHome, false
}

// Domain names the selection slot an entity belongs to.
type Domain int

const (
	DomainNone Domain = iota
	DomainProject
	DomainLaunchpad
	DomainUser
	DomainResource
)

func (d Domain) String() string {
	switch d {
	case DomainProject:
		return "project"
	case DomainLaunchpad:
		return "launchpad"
	case DomainUser:
		return "user"
	case DomainResource:
		return "resource"
	default:
		return "none"
	}
}

// Selection is the single active selection across all domains. Holding one
// tagged slot instead of four nullable ones makes "at most one selection"
// hold by construction.
type Selection struct {
	Domain Domain
	ID     string
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return s.Domain == DomainNone
}

func (s Selection) slot(d Domain) (string, bool) {
	if s.Domain != d {
		return "", false
	}
	return s.ID, true
}

// Project returns the selected project ID, if a project is selected.
func (s Selection) Project() (string, bool) { return s.slot(DomainProject) }

// LaunchpadItem returns the selected launchpad item ID.
func (s Selection) LaunchpadItem() (string, bool) { return s.slot(DomainLaunchpad) }

// User returns the selected user ID.
func (s Selection) User() (string, bool) { return s.slot(DomainUser) }

// Resource returns the selected resource ID.
func (s Selection) Resource() (string, bool) { return s.slot(DomainResource) }

// CategoryDomain names a per-domain category register.
type CategoryDomain int

const (
	CategoryLaunchpad CategoryDomain = iota
	CategoryResource
	CategoryUserControl
	CategoryUserRole
)

// Categories holds the independent per-domain category/view registers.
// UserRole narrows the user lists of the user control target.
type Categories struct {
	Launchpad   string
	Resource    string
	UserControl string
	UserRole    string
}

// Get returns the value of one register.
func (c Categories) Get(d CategoryDomain) string {
	switch d {
	case CategoryLaunchpad:
		return c.Launchpad
	case CategoryResource:
		return c.Resource
	case CategoryUserControl:
		return c.UserControl
	case CategoryUserRole:
		return c.UserRole
	}
	return ""
}

func (c Categories) with(d CategoryDomain, value string) Categories {
	switch d {
	case CategoryLaunchpad:
		c.Launchpad = value
	case CategoryResource:
		c.Resource = value
	case CategoryUserControl:
		c.UserControl = value
	case CategoryUserRole:
		c.UserRole = value
	}
	return c
}

// Panel is the bottom-docked auxiliary view. At most one is visible.
type Panel int

const (
	PanelNone Panel = iota
	PanelTerminal
	PanelOutput
	PanelProblems
)

func (p Panel) String() string {
	switch p {
	case PanelTerminal:
		return "terminal"
	case PanelOutput:
		return "output"
	case PanelProblems:
		return "problems"
	default:
		return "none"
	}
}

// Panels lists the toggleable panels in tab order.
func Panels() []Panel {
	return []Panel{PanelTerminal, PanelOutput, PanelProblems}
}
