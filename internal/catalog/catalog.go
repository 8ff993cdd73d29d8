// Package catalog holds the read models shown by the workspace: projects,
// launchpad items, users, resources, file sources, and the supporting feeds.
// The default dataset is embedded; a YAML file can replace it.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/default.yaml
var defaultDataset []byte

// Catalog is the full dataset. The UI owns its copy; the store hands out
// clones.
type Catalog struct {
	Projects            []Project       `yaml:"projects"`
	LaunchpadCategories []Category      `yaml:"launchpad_categories"`
	Launchpad           []LaunchpadItem `yaml:"launchpad"`
	Users               []User          `yaml:"users"`
	ResourceCategories  []Category      `yaml:"resource_categories"`
	Resources           []Resource      `yaml:"resources"`
	FileSources         []FileSource    `yaml:"file_sources"`
	Folders             []WorkspaceItem `yaml:"folders"`
	Activity            []Activity      `yaml:"activity"`
	Notifications       []Notification  `yaml:"notifications"`
}

// Default returns a fresh copy of the embedded dataset.
func Default() *Catalog {
	cat, err := Parse(defaultDataset)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded dataset invalid: %v", err))
	}
	return cat
}

// Load reads a dataset from path. An empty path returns the embedded default.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes and validates a YAML dataset.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := cat.validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Catalog) validate() error {
	var errs []error
	check := func(domain string, ids []string) {
		seen := make(map[string]struct{}, len(ids))
		for i, id := range ids {
			if strings.TrimSpace(id) == "" {
				errs = append(errs, fmt.Errorf("%s[%d]: missing id", domain, i))
				continue
			}
			if _, dup := seen[id]; dup {
				errs = append(errs, fmt.Errorf("%s: duplicate id %q", domain, id))
			}
			seen[id] = struct{}{}
		}
	}
	check(DomainProjects, ids(c.Projects, func(p Project) string { return p.ID }))
	check(DomainLaunchpad, ids(c.Launchpad, func(l LaunchpadItem) string { return l.ID }))
	check(DomainUsers, ids(c.Users, func(u User) string { return u.ID }))
	check(DomainResources, ids(c.Resources, func(r Resource) string { return r.ID }))
	check(DomainFiles, ids(c.FileSources, func(f FileSource) string { return f.ID }))
	check(DomainFolders, ids(c.Folders, func(w WorkspaceItem) string { return w.ID }))
	return errors.Join(errs...)
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}

func find[T any](items []T, id string, key func(T) string) (T, bool) {
	for _, item := range items {
		if key(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func remove[T any](items []T, id string, key func(T) string) ([]T, bool) {
	for i, item := range items {
		if key(item) == id {
			out := make([]T, 0, len(items)-1)
			out = append(out, items[:i]...)
			return append(out, items[i+1:]...), true
		}
	}
	return items, false
}

// Project looks up a project by ID.
func (c *Catalog) Project(id string) (Project, bool) {
	return find(c.Projects, id, func(p Project) string { return p.ID })
}

// LaunchpadItem looks up a launchpad item by ID.
func (c *Catalog) LaunchpadItem(id string) (LaunchpadItem, bool) {
	return find(c.Launchpad, id, func(l LaunchpadItem) string { return l.ID })
}

// User looks up a user by ID.
func (c *Catalog) User(id string) (User, bool) {
	return find(c.Users, id, func(u User) string { return u.ID })
}

// Resource looks up a resource by ID.
func (c *Catalog) Resource(id string) (Resource, bool) {
	return find(c.Resources, id, func(r Resource) string { return r.ID })
}

// FileSource looks up a file source by ID.
func (c *Catalog) FileSource(id string) (FileSource, bool) {
	return find(c.FileSources, id, func(f FileSource) string { return f.ID })
}

// Clone returns a deep copy. Nested lists such as tags and tech stacks are
// copied too, so edits to the clone never reach the original.
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	return &Catalog{
		Projects: cloneEach(c.Projects, func(p Project) Project {
			p.TechStack = slices.Clone(p.TechStack)
			p.Collaborators = slices.Clone(p.Collaborators)
			p.Activity = slices.Clone(p.Activity)
			return p
		}),
		LaunchpadCategories: slices.Clone(c.LaunchpadCategories),
		Launchpad: cloneEach(c.Launchpad, func(l LaunchpadItem) LaunchpadItem {
			l.Tags = slices.Clone(l.Tags)
			return l
		}),
		Users: cloneEach(c.Users, func(u User) User {
			u.Skills = slices.Clone(u.Skills)
			return u
		}),
		ResourceCategories: slices.Clone(c.ResourceCategories),
		Resources: cloneEach(c.Resources, func(r Resource) Resource {
			r.Tags = slices.Clone(r.Tags)
			r.Services = slices.Clone(r.Services)
			return r
		}),
		FileSources:   slices.Clone(c.FileSources),
		Folders:       slices.Clone(c.Folders),
		Activity:      slices.Clone(c.Activity),
		Notifications: slices.Clone(c.Notifications),
	}
}

func cloneEach[T any](items []T, deep func(T) T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = deep(item)
	}
	return out
}

// TotalCapacity sums the capacity of all file sources.
func (c *Catalog) TotalCapacity() Capacity {
	var total Capacity
	for _, fs := range c.FileSources {
		total.Used += fs.Capacity.Used
		total.Total += fs.Capacity.Total
	}
	return total
}

// UnreadNotifications counts unread inbox entries.
func (c *Catalog) UnreadNotifications() int {
	n := 0
	for _, note := range c.Notifications {
		if note.Unread {
			n++
		}
	}
	return n
}
