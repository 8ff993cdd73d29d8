package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an edit names an ID the catalog does not hold.
var ErrNotFound = errors.New("not found")

// User roles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
	RoleGuest  = "guest"
)

var (
	roles               = []string{RoleAdmin, RoleMember, RoleGuest}
	resourceTypes       = []string{ResourceSnippet, ResourceKey, ResourceSecret, ResourceBookmark, ResourceServer, ResourceOther}
	fileSourceTypes     = []string{"cloud", "server", "local", "network", "container"}
	fileSourceProviders = []string{"gdrive", "dropbox", "s3", "smb", "ssh", "local", "docker"}
)

// Roles lists the user roles.
func Roles() []string { return slices.Clone(roles) }

// ResourceTypes lists the resource types.
func ResourceTypes() []string { return slices.Clone(resourceTypes) }

// FileSourceTypes lists the file source kinds.
func FileSourceTypes() []string { return slices.Clone(fileSourceTypes) }

// FileSourceProviders lists the file source providers.
func FileSourceProviders() []string { return slices.Clone(fileSourceProviders) }

// oneOf normalizes value against allowed. Blank yields def.
func oneOf(field, value, def string, allowed []string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return def, nil
	}
	if !slices.Contains(allowed, v) {
		return "", fmt.Errorf("unknown %s %q (want %s)", field, value, strings.Join(allowed, ", "))
	}
	return v, nil
}

func required(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", fmt.Errorf("%s is required", field)
	}
	return v, nil
}

// SplitList splits a comma separated list, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NewProject describes a project created from the workspace.
type NewProject struct {
	Title     string
	Subtitle  string
	Status    string
	Color     Accent
	TechStack []string
}

// AddProject appends a project with a generated ID and returns it.
func (c *Catalog) AddProject(in NewProject) (Project, error) {
	title, err := required("project title", in.Title)
	if err != nil {
		return Project{}, err
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = "active"
	}
	p := Project{
		ID:          uuid.NewString(),
		Title:       title,
		Subtitle:    strings.TrimSpace(in.Subtitle),
		Status:      status,
		TechStack:   slices.Clone(in.TechStack),
		LastUpdated: "Just now",
		Color:       in.Color,
	}
	c.Projects = append(c.Projects, p)
	return p, nil
}

// FileSourceInput is the editable part of a file source.
type FileSourceInput struct {
	Name     string
	Type     string // default cloud
	Provider string // default local
	Path     string
	Color    Accent
	Notes    string
}

func (in FileSourceInput) apply(fs FileSource) (FileSource, error) {
	var err error
	if fs.Name, err = required("file source name", in.Name); err != nil {
		return FileSource{}, err
	}
	if fs.Type, err = oneOf("file source type", in.Type, "cloud", fileSourceTypes); err != nil {
		return FileSource{}, err
	}
	if fs.Provider, err = oneOf("provider", in.Provider, "local", fileSourceProviders); err != nil {
		return FileSource{}, err
	}
	fs.Path = strings.TrimSpace(in.Path)
	fs.Color = in.Color
	fs.Notes = strings.TrimSpace(in.Notes)
	fs.LastSync = "Just now"
	return fs, nil
}

// AddFileSource appends a connected file source with a generated ID.
func (c *Catalog) AddFileSource(in FileSourceInput) (FileSource, error) {
	fs, err := in.apply(FileSource{
		ID:       uuid.NewString(),
		Status:   "connected",
		Capacity: Capacity{Total: 100},
	})
	if err != nil {
		return FileSource{}, err
	}
	c.FileSources = append(c.FileSources, fs)
	return fs, nil
}

// UpdateFileSource replaces the editable fields of a file source in place.
// ID, status, capacity, and credentials are kept.
func (c *Catalog) UpdateFileSource(id string, in FileSourceInput) (FileSource, error) {
	i := slices.IndexFunc(c.FileSources, func(f FileSource) bool { return f.ID == id })
	if i < 0 {
		return FileSource{}, fmt.Errorf("file source %q: %w", id, ErrNotFound)
	}
	fs, err := in.apply(c.FileSources[i])
	if err != nil {
		return FileSource{}, err
	}
	c.FileSources[i] = fs
	return fs, nil
}

// NewResource describes a resource created from the workspace. Value lands in
// the field that matches the type: snippet content, bookmark URL, server
// host, or the key/secret value.
type NewResource struct {
	Type        string // default snippet
	Title       string
	Subtitle    string
	Description string
	Value       string
	Tags        []string
}

// AddResource appends a resource with a generated ID.
func (c *Catalog) AddResource(in NewResource) (Resource, error) {
	title, err := required("resource title", in.Title)
	if err != nil {
		return Resource{}, err
	}
	typ, err := oneOf("resource type", in.Type, ResourceSnippet, resourceTypes)
	if err != nil {
		return Resource{}, err
	}
	today := time.Now().Format("Jan 2, 2006")
	r := Resource{
		ID:          uuid.NewString(),
		Type:        typ,
		Title:       title,
		Subtitle:    strings.TrimSpace(in.Subtitle),
		Description: strings.TrimSpace(in.Description),
		Tags:        slices.Clone(in.Tags),
		CreatedAt:   today,
		UpdatedAt:   today,
	}
	value := strings.TrimSpace(in.Value)
	switch typ {
	case ResourceSnippet:
		r.Content = value
	case ResourceBookmark:
		r.URL = value
	case ResourceServer:
		r.Host = value
	default:
		r.Value = value
	}
	c.Resources = append(c.Resources, r)
	return r, nil
}

// NewUser describes a user created from the admin view.
type NewUser struct {
	Name       string
	Email      string
	Role       string // default member
	Department string
}

// AddUser appends an offline user with a generated ID. Emails are unique.
func (c *Catalog) AddUser(in NewUser) (User, error) {
	name, err := required("user name", in.Name)
	if err != nil {
		return User{}, err
	}
	email, err := required("email", in.Email)
	if err != nil {
		return User{}, err
	}
	if !strings.Contains(email, "@") {
		return User{}, fmt.Errorf("invalid email %q", email)
	}
	if slices.ContainsFunc(c.Users, func(u User) bool { return strings.EqualFold(u.Email, email) }) {
		return User{}, fmt.Errorf("email %q already in use", email)
	}
	role, err := oneOf("role", in.Role, RoleMember, roles)
	if err != nil {
		return User{}, err
	}
	u := User{
		ID:         uuid.NewString(),
		Name:       name,
		Role:       role,
		Status:     "offline",
		Email:      email,
		Department: strings.TrimSpace(in.Department),
		LastActive: "Never",
		JoinDate:   time.Now().Format("Jan 2006"),
	}
	c.Users = append(c.Users, u)
	return u, nil
}

// RemoveProject deletes a project. It reports whether the ID existed.
func (c *Catalog) RemoveProject(id string) bool {
	var ok bool
	c.Projects, ok = remove(c.Projects, id, func(p Project) string { return p.ID })
	return ok
}

// RemoveFileSource deletes a file source.
func (c *Catalog) RemoveFileSource(id string) bool {
	var ok bool
	c.FileSources, ok = remove(c.FileSources, id, func(f FileSource) string { return f.ID })
	return ok
}

// RemoveResource deletes a resource.
func (c *Catalog) RemoveResource(id string) bool {
	var ok bool
	c.Resources, ok = remove(c.Resources, id, func(r Resource) string { return r.ID })
	return ok
}
