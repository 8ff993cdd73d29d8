package ui

import (
	"fmt"
	"strings"

	"github.com/genpozi/poziverse/internal/catalog"
)

// homeStats are the counters shown on the home dashboard.
type homeStats struct {
	projects       int
	activeProjects int
	apps           int
	appsOnline     int
	users          int
	usersOnline    int
	resources      int
	sources        int
	unread         int
	problems       int
	capacity       catalog.Capacity
}

func computeHomeStats(cat *catalog.Catalog) homeStats {
	s := homeStats{
		projects:  len(cat.Projects),
		apps:      len(cat.Launchpad),
		users:     len(cat.Users),
		resources: len(cat.Resources),
		sources:   len(cat.FileSources),
		unread:    cat.UnreadNotifications(),
		problems:  len(cat.Problems()),
		capacity:  cat.TotalCapacity(),
	}
	for _, p := range cat.Projects {
		if p.Status == "active" {
			s.activeProjects++
		}
	}
	for _, i := range cat.Launchpad {
		if i.Status == "online" {
			s.appsOnline++
		}
	}
	for _, u := range cat.Users {
		if u.Status == "online" {
			s.usersOnline++
		}
	}
	return s
}

// renderHome renders the dashboard: counters, storage usage, projects in
// flight, and the recent team activity.
func (m Model) renderHome(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	bgColor := m.theme.FocusBg
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)
	cat := m.cat()
	stats := computeHomeStats(cat)

	label := func(s string) string { return bg.Render(padRight(s, 12), styles.MutedText) }
	value := func(s string) string { return bg.Render(s, styles.Text.Bold(true)) }

	var lines []string
	lines = append(lines,
		bg.Render("Welcome back", styles.AccentText.Bold(true)),
		"",
		label("Projects")+value(fmt.Sprintf("%d", stats.projects))+bg.Render(fmt.Sprintf("  %d active", stats.activeProjects), styles.FaintText),
		label("Apps")+value(fmt.Sprintf("%d", stats.apps))+bg.Render(fmt.Sprintf("  %d online", stats.appsOnline), styles.FaintText),
		label("Team")+value(fmt.Sprintf("%d", stats.users))+bg.Render(fmt.Sprintf("  %d online", stats.usersOnline), styles.FaintText),
		label("Resources")+value(fmt.Sprintf("%d", stats.resources)),
		label("Inbox")+value(fmt.Sprintf("%d unread", stats.unread)),
	)

	problems := bg.Render("none", styles.SuccessText)
	if stats.problems > 0 {
		problems = bg.Render(fmt.Sprintf("%d (press p)", stats.problems), styles.WarningText)
	}
	lines = append(lines, label("Problems")+problems)

	barWidth := minInt(maxInt(width-34, 8), 40)
	lines = append(lines,
		label("Storage")+
			bg.Render(progressBar(stats.capacity.Percent(), barWidth), styles.InfoText)+
			bg.Render(fmt.Sprintf(" %.0f / %.0f GB", stats.capacity.Used, stats.capacity.Total), styles.FaintText),
	)

	if len(cat.Projects) > 0 {
		lines = append(lines, "", bg.Render("Projects", styles.AccentText.Bold(true)))
		for _, p := range cat.Projects {
			lines = append(lines,
				bg.Render("■ ", m.theme.Styles().AccentStyle(p.Color))+
					bg.Render(fit(p.Title, 26), styles.Text)+
					bg.Render(progressBar(float64(p.Progress), 10), styles.InfoText)+
					bg.Render(fmt.Sprintf(" %3d%%", p.Progress), styles.FaintText))
		}
	}

	if len(cat.Activity) > 0 {
		lines = append(lines, "", bg.Render("Recent activity", styles.AccentText.Bold(true)))
		for _, a := range cat.Activity {
			text := truncate(a.User+" "+a.Action+" "+a.Target, maxInt(width-10, 10))
			lines = append(lines,
				bg.Render(padRight(a.Time, 8), styles.FaintText)+bg.Render(text, styles.Text))
		}
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
