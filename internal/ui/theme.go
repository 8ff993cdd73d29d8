package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/genpozi/poziverse/internal/catalog"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header, status bar, nav bar
	SurfaceAlt string // Unfocused panes
	FocusBg    string // Focused pane

	// Row colors
	SelectionBg   string // Cursor row background
	SelectionText string // Cursor row text

	// Border colors
	Border      string
	BorderMuted string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// StatusColors maps entity status values to badge colors.
	StatusColors map[string]string

	// Accents maps every catalog accent to a palette color.
	Accents map[catalog.Accent]string
}

// AccentColor returns the palette color for an accent. Every accent has a
// color; anything unmapped uses the theme accent.
func (t Theme) AccentColor(a catalog.Accent) string {
	if c, ok := t.Accents[a]; ok && c != "" {
		return c
	}
	return t.Accent
}

// StatusColor returns the badge color for a status, falling back to muted.
func (t Theme) StatusColor(status string) string {
	if c, ok := t.StatusColors[strings.ToLower(strings.TrimSpace(status))]; ok {
		return c
	}
	return t.Muted
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		theme: t,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style

	theme Theme
}

// StatusStyle returns a foreground style for a status label.
func (s Styles) StatusStyle(status string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.theme.StatusColor(status)))
}

// AccentStyle returns a foreground style for a catalog accent.
func (s Styles) AccentStyle(a catalog.Accent) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.theme.AccentColor(a)))
}

// WithBackground returns a copy of Styles with every style on bgColor.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	return Styles{
		Text:        s.Text.Background(bg),
		MutedText:   s.MutedText.Background(bg),
		FaintText:   s.FaintText.Background(bg),
		AccentText:  s.AccentText.Background(bg),
		SuccessText: s.SuccessText.Background(bg),
		WarningText: s.WarningText.Background(bg),
		DangerText:  s.DangerText.Background(bg),
		InfoText:    s.InfoText.Background(bg),
		Header:      s.Header.Background(bg),
		Logo:        s.Logo.Background(bg),
		Selected:    s.Selected,
		theme:       s.theme,
	}
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

// statusColors builds the shared status mapping from a palette.
func statusColors(muted, success, warning, danger, info, accent string) map[string]string {
	return map[string]string{
		// projects
		"active":      success,
		"in-progress": info,
		"completed":   accent,
		// launchpad
		"online":      success,
		"offline":     danger,
		"maintenance": warning,
		// file sources
		"connected":    success,
		"syncing":      info,
		"disconnected": danger,
		"error":        danger,
		// users
		"away": warning,
		// roles
		"admin":  accent,
		"member": muted,
		"guest":  warning,
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2
		FocusBg:    "#29394f", // bg3

		SelectionBg:   "#2b3b51", // sel0
		SelectionText: "#cdcecf", // fg1

		Border:      "#39506d", // bg4
		BorderMuted: "#212e3f", // bg2
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan

		StatusColors: statusColors("#738091", "#81b29a", "#dbc074", "#c94f6d", "#63cdcf", "#719cd6"),

		Accents: map[catalog.Accent]string{
			catalog.AccentCyan:   "#63cdcf",
			catalog.AccentBlue:   "#719cd6",
			catalog.AccentPurple: "#9d79d6",
			catalog.AccentPink:   "#d67ad2",
			catalog.AccentGreen:  "#81b29a",
			catalog.AccentYellow: "#dbc074",
			catalog.AccentOrange: "#f4a261",
		},
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		SurfaceAlt: "#2A2A37", // sumiInk4
		FocusBg:    "#2A2A37", // sumiInk4

		SelectionBg:   "#2D4F67", // waveBlue1
		SelectionText: "#DCD7BA", // fujiWhite

		Border:      "#54546D", // sumiInk6
		BorderMuted: "#2A2A37", // sumiInk4
		BorderFocus: "#7E9CD8", // crystalBlue

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
		Info:    "#7FB4CA", // springBlue

		StatusColors: statusColors("#727169", "#98BB6C", "#E6C384", "#E46876", "#7FB4CA", "#7E9CD8"),

		Accents: map[catalog.Accent]string{
			catalog.AccentCyan:   "#7AA89F", // waveAqua2
			catalog.AccentBlue:   "#7E9CD8", // crystalBlue
			catalog.AccentPurple: "#957FB8", // oniViolet
			catalog.AccentPink:   "#D27E99", // sakuraPink
			catalog.AccentGreen:  "#98BB6C", // springGreen
			catalog.AccentYellow: "#E6C384", // carpYellow
			catalog.AccentOrange: "#FFA066", // surimiOrange
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800
		FocusBg:    "#283548",

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderMuted: "#1e293b", // slate-800
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		StatusColors: statusColors("#64748b", "#22c55e", "#f59e0b", "#ef4444", "#06b6d4", "#38bdf8"),

		Accents: map[catalog.Accent]string{
			catalog.AccentCyan:   "#22d3ee", // cyan-400
			catalog.AccentBlue:   "#60a5fa", // blue-400
			catalog.AccentPurple: "#a78bfa", // violet-400
			catalog.AccentPink:   "#f472b6", // pink-400
			catalog.AccentGreen:  "#4ade80", // green-400
			catalog.AccentYellow: "#facc15", // yellow-400
			catalog.AccentOrange: "#fb923c", // orange-400
		},
	}
}
