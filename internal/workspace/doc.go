// Package workspace holds the register set behind the Poziverse workspace and
// the pure transition function that coordinates it.
//
// # Registers
//
//   - Target: the primary navigation destination (home, projects, files, ...)
//   - MenuExpanded: whether the contextual menu is shown
//   - Selection: the one selected entity across projects, launchpad items,
//     users, and resources
//   - Categories: per-domain category/view registers, independent of each other
//   - Panel: the visible bottom panel (terminal, output, problems, or none)
//   - SidebarOpen: the metadata sidebar, orthogonal to everything else
//
// # Transitions
//
// Every change goes through Reduce, which takes the full snapshot and an
// Action and returns the next snapshot:
//
//	s := workspace.New(true)
//	s = workspace.Reduce(s, workspace.SelectProject{ID: "p1"})
//	s = workspace.Reduce(s, workspace.SelectUser{ID: "1"})
//	// s.Selection.Project() -> "", false
//	// s.Selection.User()    -> "1", true
//
// Selecting in one domain replaces the selection of every other domain in the
// same step. Toggling a panel opens it and closes the others, or closes it when
// it was already open.
//
// The package has no I/O and no goroutines. Callers serialise access, which the
// Bubble Tea update loop already does.
package workspace
