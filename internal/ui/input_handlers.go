package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/genpozi/poziverse/internal/catalog"
	"github.com/genpozi/poziverse/internal/prefs"
	"github.com/genpozi/poziverse/internal/workspace"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	case modeNewProject:
		return m.handleNewProjectKey(msg)
	case modeForm:
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.Target):
		idx := int(msg.String()[0] - '1')
		if targets := workspace.Targets(); idx >= 0 && idx < len(targets) {
			m.dispatch(workspace.NavigateTo{Target: targets[idx]})
		}

	case key.Matches(msg, m.keys.NextTarget):
		m.dispatch(workspace.NavigateTo{Target: m.stepTarget(1)})

	case key.Matches(msg, m.keys.PrevTarget):
		m.dispatch(workspace.NavigateTo{Target: m.stepTarget(-1)})

	case key.Matches(msg, m.keys.ToggleMenu):
		if m.ws.MenuExpanded {
			m.dispatch(workspace.CollapseMenu{})
		} else {
			m.dispatch(workspace.ExpandMenu{})
		}

	case key.Matches(msg, m.keys.ToggleSidebar):
		m.dispatch(workspace.ToggleSidebar{})

	case key.Matches(msg, m.keys.NextCategory):
		m.cycleRegister(m.currentView().category, 1)

	case key.Matches(msg, m.keys.PrevCategory):
		m.cycleRegister(m.currentView().category, -1)

	case key.Matches(msg, m.keys.NextRole):
		m.cycleRegister(m.currentView().filter, 1)

	case key.Matches(msg, m.keys.PrevRole):
		m.cycleRegister(m.currentView().filter, -1)

	case key.Matches(msg, m.keys.ToggleTerminal):
		m.dispatch(workspace.TogglePanel{Panel: workspace.PanelTerminal})

	case key.Matches(msg, m.keys.ToggleOutput):
		m.dispatch(workspace.TogglePanel{Panel: workspace.PanelOutput})
		m.syncOutputView()

	case key.Matches(msg, m.keys.ToggleProblems):
		m.dispatch(workspace.TogglePanel{Panel: workspace.PanelProblems})

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Top):
		m.cursor[m.ws.Target] = 0

	case key.Matches(msg, m.keys.Bottom):
		m.cursor[m.ws.Target] = maxInt(len(m.rows())-1, 0)

	case key.Matches(msg, m.keys.Select):
		m.selectCursor()

	case key.Matches(msg, m.keys.Deselect):
		m.dispatch(workspace.Deselect{})

	case key.Matches(msg, m.keys.Escape):
		if m.queries[m.ws.Target] != "" {
			m.setQuery("")
		} else {
			m.dispatch(workspace.Deselect{})
		}

	case key.Matches(msg, m.keys.Search):
		if m.currentView().rows == nil {
			return m, nil
		}
		m.mode = modeSearch
		m.search.SetValue(m.queries[m.ws.Target])
		m.search.CursorEnd()
		return m, tea.Batch(m.search.Focus(), textinput.Blink)

	case key.Matches(msg, m.keys.Delete):
		m.beginDelete()

	case key.Matches(msg, m.keys.New):
		return m.beginNew()

	case key.Matches(msg, m.keys.Edit):
		return m.beginEdit()

	case key.Matches(msg, m.keys.Reveal):
		m.toggleReveal()
	}

	return m, nil
}

// handleSearchKey edits the live search query of the current view.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		m.search.Blur()
		m.setQuery("")
		return m, nil
	case tea.KeyEnter:
		m.mode = modeNormal
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.setQuery(m.search.Value())
	return m, cmd
}

// handleConfirmKey resolves the delete confirmation prompt. Anything but yes
// cancels.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeNormal
	if key.Matches(msg, m.keys.Yes) {
		m.confirmDelete()
	}
	m.pending = pendingDelete{}
	return m, nil
}

// handleNewProjectKey edits the new project title prompt.
func (m Model) handleNewProjectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		m.prompt.Blur()
		return m, nil
	case tea.KeyEnter:
		m.mode = modeNormal
		m.prompt.Blur()
		m.createProject(m.prompt.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// handleFormKey edits the open entity form. enter moves to the next field
// and saves from the last one; a failed save keeps the form open.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeForm()
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		return m, m.form.focusField(m.form.focus + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.form.focusField(m.form.focus - 1)
	case tea.KeyEnter:
		if !m.form.lastField() {
			return m, m.form.focusField(m.form.focus + 1)
		}
		if err := m.submitForm(); err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		m.closeForm()
		return m, nil
	}
	m.form.err = ""
	return m, m.form.update(msg)
}

// stepTarget returns the target delta steps away in nav bar order.
func (m Model) stepTarget(delta int) workspace.Target {
	targets := workspace.Targets()
	n := len(targets)
	i := int(m.ws.Target)
	return targets[((i+delta)%n+n)%n]
}

// cycleRegister moves a category register of the current view. Registers
// without options are left alone.
func (m *Model) cycleRegister(reg *categoryRegister, delta int) {
	if reg == nil {
		return
	}
	options := reg.options(*m)
	if len(options) == 0 {
		return
	}
	current := m.ws.Category(reg.domain)
	idx := -1
	for i, opt := range options {
		if opt.ID == current {
			idx = i
			break
		}
	}
	var next int
	switch {
	case idx >= 0:
		next = ((idx+delta)%len(options) + len(options)) % len(options)
	case delta < 0:
		next = len(options) - 1
	}
	m.dispatch(workspace.SetCategory{Domain: reg.domain, Value: options[next].ID})
	m.cursor[m.ws.Target] = 0
}

// setQuery stores the search text for the current view.
func (m *Model) setQuery(q string) {
	if q == "" {
		delete(m.queries, m.ws.Target)
	} else {
		m.queries[m.ws.Target] = q
	}
	m.cursor[m.ws.Target] = 0
}

// moveCursor moves the list cursor by delta, clamped to the row count.
func (m *Model) moveCursor(delta int) {
	n := len(m.rows())
	if n == 0 {
		return
	}
	c := m.cursorIndex(n) + delta
	if c < 0 {
		c = 0
	}
	if c > n-1 {
		c = n - 1
	}
	m.cursor[m.ws.Target] = c
}

// cursorIndex returns the current view's cursor clamped to n rows.
func (m Model) cursorIndex(n int) int {
	c := m.cursor[m.ws.Target]
	if c >= n {
		c = n - 1
	}
	if c < 0 {
		c = 0
	}
	return c
}

// cursorRow returns the row under the cursor.
func (m Model) cursorRow() (listRow, bool) {
	rows := m.rows()
	if len(rows) == 0 {
		return listRow{}, false
	}
	return rows[m.cursorIndex(len(rows))], true
}

// selectCursor selects the entity under the cursor.
func (m *Model) selectCursor() {
	row, ok := m.cursorRow()
	if !ok || row.Domain == workspace.DomainNone {
		return
	}
	m.dispatch(workspace.Select(row.Domain, row.ID))
	m.logf("selected %s %q", row.Domain, row.Title)
}

// beginDelete asks for confirmation before removing the row under the cursor.
func (m *Model) beginDelete() {
	if !m.currentView().deletable {
		return
	}
	row, ok := m.cursorRow()
	if !ok {
		return
	}
	m.pending = pendingDelete{
		target: m.ws.Target,
		domain: row.Domain,
		id:     row.ID,
		title:  row.Title,
	}
	m.mode = modeConfirmDelete
}

// confirmDelete removes the pending entity and clears a selection pointing
// at it.
func (m *Model) confirmDelete() {
	p := m.pending
	if m.store == nil || p.id == "" {
		return
	}
	err := m.store.Apply(func(c *catalog.Catalog) error {
		var removed bool
		switch p.target {
		case workspace.TargetProjects:
			removed = c.RemoveProject(p.id)
		case workspace.TargetFiles:
			removed = c.RemoveFileSource(p.id)
		case workspace.TargetResources:
			removed = c.RemoveResource(p.id)
		}
		if !removed {
			return fmt.Errorf("%s %q not found", p.target, p.id)
		}
		return nil
	})
	if err != nil {
		m.logger.Warn("delete failed", zap.String("target", p.target.String()), zap.String("id", p.id), zap.Error(err))
		m.logf("delete failed: %v", err)
		return
	}
	m.dispatch(workspace.Forget{Domain: p.domain, ID: p.id})
	delete(m.revealed, p.id)
	m.logf("deleted %q", p.title)
	m.applySnapshot(m.store.Snapshot())
}

// createProject adds a project and selects it.
func (m *Model) createProject(title string) {
	title = strings.TrimSpace(title)
	if m.store == nil || title == "" {
		return
	}
	var created catalog.Project
	err := m.store.Apply(func(c *catalog.Catalog) error {
		p, err := c.AddProject(catalog.NewProject{Title: title})
		created = p
		return err
	})
	if err != nil {
		m.logger.Warn("create project failed", zap.Error(err))
		m.logf("create project failed: %v", err)
		return
	}
	m.applySnapshot(m.store.Snapshot())
	m.dispatch(workspace.SelectProject{ID: created.ID})
	m.logf("created project %q", created.Title)
	m.focusRow(created.ID)
}

// focusRow moves the current view's cursor to the row with id, if shown.
func (m *Model) focusRow(id string) {
	for i, row := range m.rows() {
		if row.ID == id {
			m.cursor[m.ws.Target] = i
			return
		}
	}
}

// toggleReveal shows or masks the value of the selected sensitive resource,
// or the one under the cursor.
func (m *Model) toggleReveal() {
	id, ok := m.ws.Selection.Resource()
	if !ok {
		if m.ws.Target != workspace.TargetResources {
			return
		}
		row, found := m.cursorRow()
		if !found {
			return
		}
		id = row.ID
	}
	res, found := m.cat().Resource(id)
	if !found || !res.Sensitive() {
		return
	}
	if m.revealed[id] {
		delete(m.revealed, id)
	} else {
		m.revealed[id] = true
	}
}

// cycleTheme switches to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save preferences failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

// syncOutputView refreshes the output panel viewport.
func (m *Model) syncOutputView() {
	m.outputView.Width = maxInt(m.width-2, 0)
	m.outputView.Height = maxInt(panelHeight-2, 0)
	m.outputView.SetContent(strings.Join(m.output, "\n"))
	m.outputView.GotoBottom()
}
