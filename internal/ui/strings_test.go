package ui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"hello", 10, "hello"},
		{"  hello  ", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"hello", 2, "he"},
		{"hello", 0, "hello"},
		{"héllo wörld", 6, "hél..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"in-progress", "In Progress"},
		{"rotation_due", "Rotation Due"},
		{"ONLINE", "Online"},
		{"", ""},
		{"  - ", ""},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Fatalf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFit(t *testing.T) {
	if got := fit("abc", 5); got != "abc  " {
		t.Fatalf("fit pad = %q", got)
	}
	if got := fit("abcdefgh", 6); got != "abc..." {
		t.Fatalf("fit truncate = %q", got)
	}
}

func TestMaskValue(t *testing.T) {
	if got := maskValue("sk_live_51Mz..."); got != "sk_l••••••••••••" {
		t.Fatalf("maskValue = %q", got)
	}
	if got := maskValue("abc"); got != "••••••••••••" {
		t.Fatalf("maskValue(short) = %q", got)
	}
	if got := maskValue("  "); got != "" {
		t.Fatalf("maskValue(empty) = %q", got)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percent float64
		width   int
		want    string
	}{
		{0, 4, "░░░░"},
		{50, 4, "██░░"},
		{100, 4, "████"},
		{150, 2, "██"},
		{-5, 2, "░░"},
		{50, 0, ""},
	}
	for _, tt := range tests {
		if got := progressBar(tt.percent, tt.width); got != tt.want {
			t.Fatalf("progressBar(%v, %d) = %q, want %q", tt.percent, tt.width, got, tt.want)
		}
	}
}
