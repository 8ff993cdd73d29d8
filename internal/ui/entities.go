package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/genpozi/poziverse/internal/catalog"
	"github.com/genpozi/poziverse/internal/workspace"
)

var errNoStore = errors.New("no catalog store")

// newEntryHint names what n creates on the current view, or "".
func (m Model) newEntryHint() string {
	switch m.ws.Target {
	case workspace.TargetProjects:
		return "new project"
	case workspace.TargetFiles:
		return "new file source"
	case workspace.TargetResources:
		return "new resource"
	case workspace.TargetUserControl:
		if m.userListView() {
			return "new user"
		}
	}
	return ""
}

// beginNew opens the create prompt or form for the current view.
func (m Model) beginNew() (tea.Model, tea.Cmd) {
	switch m.ws.Target {
	case workspace.TargetProjects:
		m.mode = modeNewProject
		m.prompt.Reset()
		return m, tea.Batch(m.prompt.Focus(), textinput.Blink)
	case workspace.TargetFiles:
		return m.openForm(fileSourceForm(nil))
	case workspace.TargetResources:
		return m.openForm(resourceForm())
	case workspace.TargetUserControl:
		if m.userListView() {
			return m.openForm(userForm())
		}
	}
	return m, nil
}

// beginEdit opens the edit form for the file source under the cursor.
func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	if m.ws.Target != workspace.TargetFiles {
		return m, nil
	}
	row, ok := m.cursorRow()
	if !ok {
		return m, nil
	}
	src, ok := m.cat().FileSource(row.ID)
	if !ok {
		return m, nil
	}
	return m.openForm(fileSourceForm(&src))
}

func (m Model) openForm(f entityForm) (tea.Model, tea.Cmd) {
	m.form = f
	m.mode = modeForm
	return m, tea.Batch(m.form.focusField(0), textinput.Blink)
}

func (m *Model) closeForm() {
	m.mode = modeNormal
	m.form = entityForm{}
}

// submitForm saves the open form through the store. The form stays open
// when the catalog rejects the input.
func (m *Model) submitForm() error {
	if m.store == nil {
		return errNoStore
	}
	f := m.form

	var (
		id, title string
		selectAs  workspace.Domain
	)
	err := m.store.Apply(func(c *catalog.Catalog) error {
		switch f.kind {
		case formFileSource:
			in := catalog.FileSourceInput{
				Name:     f.value("name"),
				Type:     f.value("type"),
				Provider: f.value("provider"),
				Path:     f.value("path"),
				Color:    catalog.ParseAccent(f.value("color")),
				Notes:    f.value("notes"),
			}
			var (
				fs  catalog.FileSource
				err error
			)
			if f.editID != "" {
				fs, err = c.UpdateFileSource(f.editID, in)
			} else {
				fs, err = c.AddFileSource(in)
			}
			id, title = fs.ID, fs.Name
			return err

		case formResource:
			r, err := c.AddResource(catalog.NewResource{
				Type:        f.value("type"),
				Title:       f.value("title"),
				Subtitle:    f.value("subtitle"),
				Description: f.value("description"),
				Value:       f.value("value"),
				Tags:        catalog.SplitList(f.value("tags")),
			})
			id, title, selectAs = r.ID, r.Title, workspace.DomainResource
			return err

		case formUser:
			u, err := c.AddUser(catalog.NewUser{
				Name:       f.value("name"),
				Email:      f.value("email"),
				Role:       f.value("role"),
				Department: f.value("department"),
			})
			id, title, selectAs = u.ID, u.Name, workspace.DomainUser
			return err
		}
		return fmt.Errorf("unknown form %d", f.kind)
	})
	if err != nil {
		m.logger.Debug("form rejected", zap.String("form", f.title), zap.Error(err))
		return err
	}

	m.applySnapshot(m.store.Snapshot())
	if selectAs != workspace.DomainNone {
		m.dispatch(workspace.Select(selectAs, id))
	}
	if f.editID != "" {
		m.logf("updated %q", title)
	} else {
		m.logf("created %q", title)
	}
	m.focusRow(id)
	return nil
}
