package workspace

// Default values for the category registers.
const (
	CategoryAll            = "all"
	DefaultUserControlView = "User Directory"
)

// State is the complete register set of the workspace. Values are replaced
// wholesale by Reduce; nothing mutates a State in place.
type State struct {
	Target       Target
	MenuExpanded bool
	Selection    Selection
	Categories   Categories
	Panel        Panel
	SidebarOpen  bool
	Desktop      bool
}

// New returns the initial workspace state.
func New(desktop bool) State {
	return State{
		Target: TargetHome,
		Categories: Categories{
			Launchpad:   CategoryAll,
			Resource:    CategoryAll,
			UserControl: DefaultUserControlView,
			UserRole:    CategoryAll,
		},
		Panel:       PanelNone,
		SidebarOpen: true,
		Desktop:     desktop,
	}
}

// ActivePanel returns the visible panel using Terminal > Output > Problems
// priority. With a single-valued register this is just the stored panel.
func (s State) ActivePanel() Panel {
	for _, p := range Panels() {
		if s.Panel == p {
			return p
		}
	}
	return PanelNone
}

// PanelOpen reports whether p is the visible panel.
func (s State) PanelOpen(p Panel) bool {
	return p != PanelNone && s.Panel == p
}

// Category returns the current value of a category register.
func (s State) Category(d CategoryDomain) string {
	return s.Categories.Get(d)
}
