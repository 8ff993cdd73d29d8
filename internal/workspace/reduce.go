package workspace

// Action is a single user-driven transition of the workspace registers.
type Action interface {
	apply(State) State
}

// Reduce returns the state that follows s after applying a. It is total:
// unknown or nil actions leave the state unchanged.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

// ReduceAll folds a sequence of actions over s.
func ReduceAll(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

func selectIn(s State, d Domain, id string) State {
	if id == "" {
		s.Selection = Selection{}
		return s
	}
	s.Selection = Selection{Domain: d, ID: id}
	return s
}

// SelectProject selects a project and clears every other domain.
type SelectProject struct{ ID string }

func (a SelectProject) apply(s State) State { return selectIn(s, DomainProject, a.ID) }

// SelectLaunchpadItem selects a launchpad item and clears every other domain.
type SelectLaunchpadItem struct{ ID string }

func (a SelectLaunchpadItem) apply(s State) State { return selectIn(s, DomainLaunchpad, a.ID) }

// SelectUser selects a user and clears every other domain.
type SelectUser struct{ ID string }

func (a SelectUser) apply(s State) State { return selectIn(s, DomainUser, a.ID) }

// SelectResource selects a resource and clears every other domain.
type SelectResource struct{ ID string }

func (a SelectResource) apply(s State) State { return selectIn(s, DomainResource, a.ID) }

// Select builds the select action for a domain. DomainNone yields Deselect.
func Select(d Domain, id string) Action {
	switch d {
	case DomainProject:
		return SelectProject{ID: id}
	case DomainLaunchpad:
		return SelectLaunchpadItem{ID: id}
	case DomainUser:
		return SelectUser{ID: id}
	case DomainResource:
		return SelectResource{ID: id}
	}
	return Deselect{}
}

// Deselect clears whichever slot is set.
type Deselect struct{}

func (Deselect) apply(s State) State {
	s.Selection = Selection{}
	return s
}

// Forget clears the selection only when it points at the given entity. Delete
// operations and catalog reloads issue it so a selection always refers to an
// existing entity.
type Forget struct {
	Domain Domain
	ID     string
}

func (a Forget) apply(s State) State {
	if s.Selection.Domain == a.Domain && s.Selection.ID == a.ID {
		s.Selection = Selection{}
	}
	return s
}

// NavigateTo switches the primary view. On the desktop layout the contextual
// menu opens for every target except home. Selections are left alone.
type NavigateTo struct{ Target Target }

func (a NavigateTo) apply(s State) State {
	t := a.Target
	if !t.valid() {
		t = TargetHome
	}
	s.Target = t
	if s.Desktop {
		s.MenuExpanded = t != TargetHome
	}
	return s
}

// CollapseMenu hides the contextual menu.
type CollapseMenu struct{}

func (CollapseMenu) apply(s State) State {
	s.MenuExpanded = false
	return s
}

// ExpandMenu reopens the contextual menu after a collapse. Home has no
// contextual menu, so it stays closed there.
type ExpandMenu struct{}

func (ExpandMenu) apply(s State) State {
	s.MenuExpanded = s.Target != TargetHome
	return s
}

// SetCategory writes one category register.
type SetCategory struct {
	Domain CategoryDomain
	Value  string
}

func (a SetCategory) apply(s State) State {
	s.Categories = s.Categories.with(a.Domain, a.Value)
	return s
}

// TogglePanel closes the panel when it is open and otherwise opens it,
// implicitly closing whichever panel was visible.
type TogglePanel struct{ Panel Panel }

func (a TogglePanel) apply(s State) State {
	switch {
	case a.Panel == PanelNone:
	case s.Panel == a.Panel:
		s.Panel = PanelNone
	default:
		s.Panel = a.Panel
	}
	return s
}

// ClosePanel closes the given panel if it is the visible one.
type ClosePanel struct{ Panel Panel }

func (a ClosePanel) apply(s State) State {
	if s.Panel == a.Panel {
		s.Panel = PanelNone
	}
	return s
}

// ToggleSidebar flips the metadata sidebar.
type ToggleSidebar struct{}

func (ToggleSidebar) apply(s State) State {
	s.SidebarOpen = !s.SidebarOpen
	return s
}

// SetLayout switches between the desktop and compact layouts. Entering the
// desktop layout re-derives the menu from the target; later resizes within
// the same layout keep a collapsed menu collapsed.
type SetLayout struct{ Desktop bool }

func (a SetLayout) apply(s State) State {
	if a.Desktop && !s.Desktop {
		s.MenuExpanded = s.Target != TargetHome
	}
	s.Desktop = a.Desktop
	return s
}
