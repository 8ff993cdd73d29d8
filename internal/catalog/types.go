package catalog

// Collaborator is a person working on a project.
type Collaborator struct {
	Initials string `yaml:"initials"`
	Name     string `yaml:"name"`
	Status   string `yaml:"status"`
}

// ProjectActivity is one entry of a project's recent activity.
type ProjectActivity struct {
	Action string `yaml:"action"`
	Time   string `yaml:"time"`
	User   string `yaml:"user"`
}

// ProjectStats are the vanity counters shown in the sidebar.
type ProjectStats struct {
	Views int `yaml:"views"`
	Stars int `yaml:"stars"`
	Forks int `yaml:"forks"`
}

// Project is a workspace project.
type Project struct {
	ID            string            `yaml:"id"`
	Title         string            `yaml:"title"`
	Subtitle      string            `yaml:"subtitle,omitempty"`
	Description   string            `yaml:"description,omitempty"`
	Status        string            `yaml:"status"`
	LiveURL       string            `yaml:"live_url,omitempty"`
	RepoURL       string            `yaml:"repo_url,omitempty"`
	TechStack     []string          `yaml:"tech_stack,omitempty"`
	LastUpdated   string            `yaml:"last_updated,omitempty"`
	Color         Accent            `yaml:"color"`
	Progress      int               `yaml:"progress"`
	Collaborators []Collaborator    `yaml:"collaborators,omitempty"`
	Activity      []ProjectActivity `yaml:"activity,omitempty"`
	Stats         ProjectStats      `yaml:"stats"`
}

// LaunchpadStats are optional service statistics.
type LaunchpadStats struct {
	Uptime  string `yaml:"uptime,omitempty"`
	Users   int    `yaml:"users,omitempty"`
	Version string `yaml:"version,omitempty"`
}

// LaunchpadItem is an external application tile.
type LaunchpadItem struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	Category    string         `yaml:"category"`
	Color       Accent         `yaml:"color"`
	URL         string         `yaml:"url"`
	RepoURL     string         `yaml:"repo_url,omitempty"`
	Tags        []string       `yaml:"tags,omitempty"`
	Status      string         `yaml:"status"`
	Stats       LaunchpadStats `yaml:"stats,omitempty"`
}

// User is a member of the workspace directory.
type User struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Role       string   `yaml:"role"`
	Status     string   `yaml:"status"`
	Email      string   `yaml:"email"`
	Department string   `yaml:"department"`
	Projects   int      `yaml:"projects"`
	LastActive string   `yaml:"last_active,omitempty"`
	Location   string   `yaml:"location,omitempty"`
	JoinDate   string   `yaml:"join_date,omitempty"`
	Bio        string   `yaml:"bio,omitempty"`
	Skills     []string `yaml:"skills,omitempty"`
}

// Resource types.
const (
	ResourceSnippet  = "snippet"
	ResourceKey      = "key"
	ResourceSecret   = "secret"
	ResourceBookmark = "bookmark"
	ResourceServer   = "server"
	ResourceOther    = "other"
)

// Resource is a stored snippet, key, secret, bookmark, or server entry.
// Value holds an illustrative placeholder, never a real credential.
type Resource struct {
	ID           string   `yaml:"id"`
	Type         string   `yaml:"type"`
	Title        string   `yaml:"title"`
	Subtitle     string   `yaml:"subtitle,omitempty"`
	Tags         []string `yaml:"tags,omitempty"`
	Favorite     bool     `yaml:"favorite,omitempty"`
	CreatedAt    string   `yaml:"created_at,omitempty"`
	UpdatedAt    string   `yaml:"updated_at,omitempty"`
	Description  string   `yaml:"description,omitempty"`
	Content      string   `yaml:"content,omitempty"`
	Language     string   `yaml:"language,omitempty"`
	URL          string   `yaml:"url,omitempty"`
	Host         string   `yaml:"host,omitempty"`
	Value        string   `yaml:"value,omitempty"`
	Environment  string   `yaml:"environment,omitempty"`
	LastRotated  string   `yaml:"last_rotated,omitempty"`
	NextRotation string   `yaml:"next_rotation,omitempty"`
	RotationDue  bool     `yaml:"rotation_due,omitempty"`
	Services     []string `yaml:"services,omitempty"`
}

// Sensitive reports whether the resource value should be masked by default.
func (r Resource) Sensitive() bool {
	return r.Type == ResourceSecret || r.Type == ResourceKey
}

// Capacity is storage usage in gigabytes.
type Capacity struct {
	Used  float64 `yaml:"used"`
	Total float64 `yaml:"total"`
}

// Percent returns used/total as a percentage in [0, 100].
func (c Capacity) Percent() float64 {
	if c.Total <= 0 {
		return 0
	}
	p := c.Used / c.Total * 100
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// FileSource is a mounted storage location.
type FileSource struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Type          string   `yaml:"type"`
	Provider      string   `yaml:"provider"`
	Status        string   `yaml:"status"`
	Path          string   `yaml:"path"`
	Capacity      Capacity `yaml:"capacity"`
	LastSync      string   `yaml:"last_sync,omitempty"`
	Color         Accent   `yaml:"color"`
	Notes         string   `yaml:"notes,omitempty"`
	CredentialsID string   `yaml:"credentials_id,omitempty"`
}

// WorkspaceItem is a document tile in the folders view.
type WorkspaceItem struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Type  string `yaml:"type"`
	Color Accent `yaml:"color"`
}

// Activity is a team activity feed entry.
type Activity struct {
	ID     string `yaml:"id"`
	User   string `yaml:"user"`
	Action string `yaml:"action"`
	Target string `yaml:"target"`
	Time   string `yaml:"time"`
}

// Notification is an inbox entry.
type Notification struct {
	ID      string `yaml:"id"`
	Type    string `yaml:"type"`
	Message string `yaml:"message"`
	Time    string `yaml:"time"`
	Unread  bool   `yaml:"unread"`
}

// Category is a contextual menu entry that narrows a list view.
type Category struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}
