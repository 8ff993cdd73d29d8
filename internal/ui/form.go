package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/genpozi/poziverse/internal/catalog"
)

// formKind names the entity a form creates or edits.
type formKind int

const (
	formNone formKind = iota
	formFileSource
	formResource
	formUser
)

// fieldSpec describes one form input.
type fieldSpec struct {
	key         string
	label       string
	placeholder string
	value       string
}

type formField struct {
	key   string
	label string
	input textinput.Model
}

// entityForm is a small multi-field form. editID is set when an existing
// entity is being edited.
type entityForm struct {
	kind   formKind
	title  string
	editID string
	fields []formField
	focus  int
	err    string
}

func newEntityForm(kind formKind, title string, specs []fieldSpec) entityForm {
	f := entityForm{kind: kind, title: title}
	for _, spec := range specs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = spec.placeholder
		in.CharLimit = 120
		in.SetValue(spec.value)
		in.CursorEnd()
		f.fields = append(f.fields, formField{key: spec.key, label: spec.label, input: in})
	}
	return f
}

// value returns the trimmed text of a field.
func (f entityForm) value(key string) string {
	for _, field := range f.fields {
		if field.key == key {
			return strings.TrimSpace(field.input.Value())
		}
	}
	return ""
}

func (f entityForm) lastField() bool {
	return f.focus >= len(f.fields)-1
}

// focusField moves focus to field i, wrapping around.
func (f *entityForm) focusField(i int) tea.Cmd {
	n := len(f.fields)
	if n == 0 {
		return nil
	}
	f.fields[f.focus].input.Blur()
	f.focus = ((i % n) + n) % n
	return f.fields[f.focus].input.Focus()
}

// update forwards a key to the focused input.
func (f *entityForm) update(msg tea.Msg) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func fileSourceForm(src *catalog.FileSource) entityForm {
	specs := []fieldSpec{
		{key: "name", label: "Name"},
		{key: "type", label: "Type", placeholder: strings.Join(catalog.FileSourceTypes(), "|"), value: "cloud"},
		{key: "provider", label: "Provider", placeholder: strings.Join(catalog.FileSourceProviders(), "|"), value: "gdrive"},
		{key: "path", label: "Path", placeholder: "/mnt/..."},
		{key: "color", label: "Color", placeholder: accentNames(), value: catalog.AccentBlue.String()},
		{key: "notes", label: "Notes"},
	}
	title := "New file source"
	if src != nil {
		title = "Edit " + src.Name
		values := []string{src.Name, src.Type, src.Provider, src.Path, src.Color.String(), src.Notes}
		for i := range specs {
			specs[i].value = values[i]
		}
	}
	f := newEntityForm(formFileSource, title, specs)
	if src != nil {
		f.editID = src.ID
	}
	return f
}

func resourceForm() entityForm {
	return newEntityForm(formResource, "New resource", []fieldSpec{
		{key: "type", label: "Type", placeholder: strings.Join(catalog.ResourceTypes(), "|"), value: catalog.ResourceSnippet},
		{key: "title", label: "Title"},
		{key: "subtitle", label: "Subtitle"},
		{key: "value", label: "Value", placeholder: "content, url, host, or value"},
		{key: "tags", label: "Tags", placeholder: "comma separated"},
		{key: "description", label: "Description"},
	})
}

func userForm() entityForm {
	return newEntityForm(formUser, "New user", []fieldSpec{
		{key: "name", label: "Name"},
		{key: "email", label: "Email", placeholder: "name@poziverse.io"},
		{key: "role", label: "Role", placeholder: strings.Join(catalog.Roles(), "|"), value: catalog.RoleMember},
		{key: "department", label: "Department"},
	})
}

func accentNames() string {
	names := make([]string, 0, len(catalog.Accents()))
	for _, a := range catalog.Accents() {
		names = append(names, a.String())
	}
	return strings.Join(names, "|")
}

// renderForm renders the active form as a centered modal.
func (m Model) renderForm() string {
	styles := m.theme.Styles()
	f := m.form

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Muted)).
		Width(13)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(f.title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 44)))
	b.WriteString("\n\n")

	for i, field := range f.fields {
		label := labelStyle.Render(field.label)
		if i == f.focus {
			label = labelStyle.Foreground(lipgloss.Color(m.theme.Accent)).Render(field.label)
		}
		b.WriteString(label)
		b.WriteString(field.input.View())
		b.WriteString("\n")
	}

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render(f.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("tab next field · enter next/save · esc cancel"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(60)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
