// Package ui renders the Poziverse workspace as a Bubble Tea program.
//
// # Layout
//
// The desktop layout places a navigation bar, the contextual menu, the main
// view, and the metadata sidebar side by side, with an optional panel
// (terminal, output, or problems) docked below. The compact layout shows a
// tab bar and the main view only. The auto layout picks desktop at
// LayoutDesktopWidth columns and above.
//
// # State
//
// Every navigation, selection, category, panel, and sidebar change is a
// workspace.Action applied through workspace.Reduce; the Model never edits
// the registers directly. The main view is looked up in a dispatch table with
// one entry per workspace.Target.
//
// Catalog data comes from a state.Store. The Model polls it on every tick and
// drops a selection whose entity disappeared. Deletes and new projects go
// through Store.Apply so edits and file reloads share one source of truth.
//
// # Key Bindings
//
//   - 1-7, tab, shift+tab: Switch view
//   - j/k, g/G: Move the cursor
//   - enter, x, esc: Select, deselect, clear search
//   - /: Live search in the current list
//   - c/C: Cycle the category or user control view
//   - m: Expand or collapse the contextual menu
//   - s: Toggle the sidebar
//   - t/o/p: Toggle the terminal, output, or problems panel
//   - n, d, r: New project, delete, reveal secret
//   - T: Cycle theme (saved to prefs)
//   - ?: Help
//   - q or ctrl+c: Quit
package ui
