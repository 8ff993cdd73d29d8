package ui

import (
	"time"

	"github.com/genpozi/poziverse/internal/workspace"
)

// Terminal width thresholds for responsive layouts.
const (
	// LayoutDesktopWidth is the width at which the auto layout switches from
	// compact to desktop.
	LayoutDesktopWidth = 100

	// LayoutWideWidth is the width at which list rows show an extra column.
	LayoutWideWidth = 150
)

// Desktop column and panel sizes.
const (
	navBarWidth  = 18
	menuWidth    = 26
	sidebarWidth = 38
	panelHeight  = 10
)

// Buffer limits.
const (
	// OutputBufferLimit is the number of output panel lines kept in memory.
	OutputBufferLimit = 500
)

// Timing constants.
const (
	// DefaultUIInterval is the default store refresh interval.
	DefaultUIInterval = time.Second
)

// frame holds the computed sizes of the main regions for one render.
type frame struct {
	desktop      bool
	menu         bool
	sidebar      bool
	panel        bool
	bodyHeight   int
	contentWidth int
}

// computeFrame sizes the regions for the current state and terminal size.
func (m Model) computeFrame() frame {
	f := frame{desktop: m.ws.Desktop}
	// header + status bar
	chrome := 2
	if !f.desktop {
		// compact adds the tab bar
		f.bodyHeight = maxInt(m.height-chrome-1, 3)
		f.contentWidth = m.width
		return f
	}

	f.menu = m.ws.MenuExpanded
	f.sidebar = m.ws.SidebarOpen
	f.panel = m.ws.ActivePanel() != workspace.PanelNone

	f.bodyHeight = m.height - chrome
	if f.panel {
		f.bodyHeight -= panelHeight
	}
	f.bodyHeight = maxInt(f.bodyHeight, 3)

	f.contentWidth = m.width - navBarWidth
	if f.menu {
		f.contentWidth -= menuWidth
	}
	if f.sidebar {
		f.contentWidth -= sidebarWidth
	}
	f.contentWidth = maxInt(f.contentWidth, 20)
	return f
}
