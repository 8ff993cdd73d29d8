package catalog

import "fmt"

// Severity ranks a problem for the problems panel.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Problem is one derived issue shown in the problems panel.
type Problem struct {
	Severity Severity
	Domain   string
	ID       string
	Message  string
}

// Problems derives the current issue list from the dataset: unreachable file
// sources, launchpad services that are down, and secrets due for rotation.
// Errors are listed before warnings; otherwise dataset order is kept.
func (c *Catalog) Problems() []Problem {
	var errs, warns []Problem
	for _, fs := range c.FileSources {
		switch fs.Status {
		case "error", "disconnected":
			errs = append(errs, Problem{SeverityError, DomainFiles, fs.ID,
				fmt.Sprintf("%s is %s (%s)", fs.Name, fs.Status, fs.Path)})
		}
	}
	for _, item := range c.Launchpad {
		switch item.Status {
		case "offline":
			errs = append(errs, Problem{SeverityError, DomainLaunchpad, item.ID,
				fmt.Sprintf("%s is offline", item.Name)})
		case "maintenance":
			warns = append(warns, Problem{SeverityWarning, DomainLaunchpad, item.ID,
				fmt.Sprintf("%s is under maintenance", item.Name)})
		}
	}
	for _, r := range c.Resources {
		if r.Sensitive() && r.RotationDue {
			msg := fmt.Sprintf("%s is due for rotation", r.Title)
			if r.NextRotation != "" {
				msg = fmt.Sprintf("%s is due for rotation (%s)", r.Title, r.NextRotation)
			}
			warns = append(warns, Problem{SeverityWarning, DomainResources, r.ID, msg})
		}
	}
	return append(errs, warns...)
}
