package catalog

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Domain keys used in hide patterns and on the command line.
const (
	DomainProjects  = "projects"
	DomainLaunchpad = "launchpad"
	DomainUsers     = "users"
	DomainResources = "resources"
	DomainFiles     = "files"
	DomainFolders   = "folders"
)

// Domains lists the keys accepted by Prune patterns.
func Domains() []string {
	return []string{DomainProjects, DomainLaunchpad, DomainUsers, DomainResources, DomainFiles, DomainFolders}
}

// CompilePatterns compiles hide patterns of the form "<domain>/<id-glob>".
// '/' is a separator, so "projects/*" does not match across domains.
func CompilePatterns(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid hide pattern %q: %w", p, err)
		}
		out = append(out, g)
	}
	return out, nil
}

// Prune drops every entity whose "<domain>/<id>" key matches one of the
// patterns and returns how many were removed.
func (c *Catalog) Prune(patterns []string) (int, error) {
	globs, err := CompilePatterns(patterns)
	if err != nil {
		return 0, err
	}
	if len(globs) == 0 {
		return 0, nil
	}
	hidden := func(domain, id string) bool {
		key := domain + "/" + id
		for _, g := range globs {
			if g.Match(key) {
				return true
			}
		}
		return false
	}

	removed := 0
	c.Projects = keep(c.Projects, &removed, func(p Project) bool { return !hidden(DomainProjects, p.ID) })
	c.Launchpad = keep(c.Launchpad, &removed, func(l LaunchpadItem) bool { return !hidden(DomainLaunchpad, l.ID) })
	c.Users = keep(c.Users, &removed, func(u User) bool { return !hidden(DomainUsers, u.ID) })
	c.Resources = keep(c.Resources, &removed, func(r Resource) bool { return !hidden(DomainResources, r.ID) })
	c.FileSources = keep(c.FileSources, &removed, func(f FileSource) bool { return !hidden(DomainFiles, f.ID) })
	c.Folders = keep(c.Folders, &removed, func(w WorkspaceItem) bool { return !hidden(DomainFolders, w.ID) })
	return removed, nil
}

func keep[T any](items []T, removed *int, ok func(T) bool) []T {
	out := items[:0:0]
	for _, item := range items {
		if ok(item) {
			out = append(out, item)
			continue
		}
		*removed++
	}
	if items == nil {
		return nil
	}
	return out
}
