package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadContents(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "theme", body: "theme = \"Slate\"\n", want: "Slate"},
		{name: "padded theme", body: "theme = \"  Kanagawa \"\n", want: "Kanagawa"},
		{name: "blank theme", body: "theme = \"\"\n", want: defaultTheme},
		{name: "unknown keys", body: "theme = \"Slate\"\nlayout = \"compact\"\n", want: "Slate"},
		{name: "empty file", body: "", want: defaultTheme},
		{name: "broken toml", body: "theme = [unclosed\n", want: defaultTheme, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.toml")
			writeFile(t, path, tt.body)

			p, err := Load(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if p.Theme != tt.want {
				t.Fatalf("Load().Theme = %q, want %q", p.Theme, tt.want)
			}
		})
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	for _, path := range []string{"", "~/nowhere/prefs.toml"} {
		p, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", path, err)
		}
		if p != Default() {
			t.Fatalf("Load(%q) = %+v, want defaults", path, p)
		}
	}
}

func TestLoadBlankPathUsesHomeConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".config", "poziverse", "prefs.toml"), "theme = \"Slate\"\n")

	p, err := Load("  ")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Theme != "Slate" {
		t.Fatalf("Load().Theme = %q, want Slate", p.Theme)
	}
}

func TestLoadDirectoryReportsError(t *testing.T) {
	p, err := Load(t.TempDir())
	if err == nil {
		t.Fatalf("Load(directory) returned no error")
	}
	if p != Default() {
		t.Fatalf("Load(directory) = %+v, want defaults", p)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.toml")

	for _, theme := range []string{"Kanagawa", "Slate"} {
		if err := Save(path, Prefs{Theme: theme}); err != nil {
			t.Fatalf("Save(%s) error = %v", theme, err)
		}
		p, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if p.Theme != theme {
			t.Fatalf("Load().Theme = %q after saving %q", p.Theme, theme)
		}
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "prefs.toml" {
		t.Fatalf("prefs dir holds %v, want only prefs.toml", entries)
	}
}

func TestSaveBlankThemeWritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := Save(path, Prefs{}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	p, err := Load(path)
	if err != nil || p.Theme != defaultTheme {
		t.Fatalf("Load() = %+v, %v", p, err)
	}
}

func TestPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Path("")
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if want := filepath.Join(home, ".config", "poziverse", "prefs.toml"); got != want {
		t.Fatalf("Path(\"\") = %q, want %q", got, want)
	}
}
