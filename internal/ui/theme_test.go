package ui

import (
	"testing"

	"github.com/genpozi/poziverse/internal/catalog"
)

func TestThemeAccentColorIsTotal(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, a := range catalog.Accents() {
			if _, ok := th.Accents[a]; !ok {
				t.Fatalf("theme %s has no color for accent %s", name, a)
			}
		}
		if got := th.AccentColor(catalog.Accent(42)); got != th.Accent {
			t.Fatalf("theme %s AccentColor(out of range) = %q, want %q", name, got, th.Accent)
		}
	}
}

func TestThemeStatusColor(t *testing.T) {
	th := GetTheme("Slate")

	if got := th.StatusColor("  Offline "); got != th.Danger {
		t.Fatalf("StatusColor(offline) = %q, want %q", got, th.Danger)
	}
	if got := th.StatusColor("maintenance"); got != th.Warning {
		t.Fatalf("StatusColor(maintenance) = %q, want %q", got, th.Warning)
	}
	if got := th.StatusColor("unknown"); got != th.Muted {
		t.Fatalf("StatusColor(unknown) = %q, want %q", got, th.Muted)
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Nightfox" || names[1] != "Kanagawa" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Kanagawa Slate]", names)
	}
	names[0] = "mutated"
	if ThemeNames()[0] != "Nightfox" {
		t.Fatalf("ThemeNames() exposes internal slice")
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"Slate", "Nightfox"},
		{"Unknown", "Nightfox"},
	}
	for _, tt := range tests {
		if got := NextTheme(tt.in); got != tt.want {
			t.Fatalf("NextTheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	if got := GetTheme("Dracula").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(unknown).Name = %q, want Nightfox", got)
	}
}
