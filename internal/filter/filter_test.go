package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type app struct {
	Name        string
	Description string
	Category    string
	Tags        []string
}

var (
	byName        Field[app] = func(a app) string { return a.Name }
	byDescription Field[app] = func(a app) string { return a.Description }
	byCategory    Field[app] = func(a app) string { return a.Category }
	byTags                   = AnyOf(func(a app) []string { return a.Tags })
)

func sampleApps() []app {
	return []app{
		{Name: "GitHub", Description: "Code repository", Category: "Development", Tags: []string{"Git", "CI/CD"}},
		{Name: "Docker", Description: "Container platform", Category: "Development", Tags: []string{"Containers"}},
		{Name: "Slack", Description: "Team messaging", Category: "Communication", Tags: []string{"Chat"}},
		{Name: "Gitea", Description: "Self-hosted git", Category: "Infrastructure", Tags: []string{"Git"}},
		{Name: "Plex", Description: "Media server", Category: "Infrastructure", Tags: []string{"Media"}},
	}
}

func names(items []app) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.Name)
	}
	return out
}

func TestText_CaseInsensitiveSubstring(t *testing.T) {
	items := []app{{Name: "GitHub"}, {Name: "Docker"}}
	got := Text(items, "git", byName)
	if diff := cmp.Diff([]app{{Name: "GitHub"}}, got); diff != "" {
		t.Fatalf("Text mismatch (-want +got):\n%s", diff)
	}
}

func TestText_EmptyQueryIsIdentity(t *testing.T) {
	items := sampleApps()
	got := Text(items, "", byName)
	if diff := cmp.Diff(items, got); diff != "" {
		t.Fatalf("Text with empty query changed items (-want +got):\n%s", diff)
	}

	got[0].Name = "changed"
	if items[0].Name != "GitHub" {
		t.Fatalf("Text returned a slice aliasing its input")
	}
}

func TestText_AnyFieldMatches(t *testing.T) {
	got := Text(sampleApps(), "SERVER", byName, byDescription)
	if diff := cmp.Diff([]string{"Plex"}, names(got)); diff != "" {
		t.Fatalf("Text mismatch (-want +got):\n%s", diff)
	}

	got = Text(sampleApps(), "git", byTags)
	if diff := cmp.Diff([]string{"GitHub", "Gitea"}, names(got)); diff != "" {
		t.Fatalf("Text over tags mismatch (-want +got):\n%s", diff)
	}
}

func TestText_NoFieldsMatchesNothing(t *testing.T) {
	if got := Text(sampleApps(), "git"); len(got) != 0 {
		t.Fatalf("Text without fields = %v, want none", names(got))
	}
}

func TestText_NilAndEmptyInputs(t *testing.T) {
	if got := Text[app](nil, "", byName); got != nil {
		t.Fatalf("Text(nil, \"\") = %v, want nil", got)
	}
	if got := Text[app](nil, "x", byName); len(got) != 0 {
		t.Fatalf("Text(nil, x) = %v, want empty", got)
	}
	if got := Text([]app{}, "x", byName); len(got) != 0 {
		t.Fatalf("Text(empty, x) = %v, want empty", got)
	}
}

func TestText_ResultIsOrderedSubsequence(t *testing.T) {
	items := sampleApps()
	for _, query := range []string{"", "g", "e", "t", "zzz", "Development", "o"} {
		got := Text(items, query, byName, byDescription)
		i := 0
		for _, want := range got {
			for i < len(items) && items[i].Name != want.Name {
				i++
			}
			if i == len(items) {
				t.Fatalf("query %q: %v is not an ordered subsequence of the input", query, names(got))
			}
			i++
		}
	}
}

func TestCategory_AllAndUnknown(t *testing.T) {
	items := sampleApps()

	if got := Category(items, All, byCategory); len(got) != len(items) {
		t.Fatalf("Category(all) kept %d, want %d", len(got), len(items))
	}
	if got := Category(items, "", byCategory); len(got) != len(items) {
		t.Fatalf("Category(\"\") kept %d, want %d", len(got), len(items))
	}
	if got := Category(items, "Gaming", byCategory); len(got) != 0 {
		t.Fatalf("Category(unknown) = %v, want none", names(got))
	}

	got := Category(items, "Infrastructure", byCategory)
	if diff := cmp.Diff([]string{"Gitea", "Plex"}, names(got)); diff != "" {
		t.Fatalf("Category mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoryAndTextCommute(t *testing.T) {
	items := sampleApps()
	for _, cat := range []string{All, "Development", "Infrastructure", "Nope"} {
		for _, query := range []string{"", "git", "E", "media"} {
			left := Text(Category(items, cat, byCategory), query, byName, byDescription)
			right := Category(Text(items, query, byName, byDescription), cat, byCategory)
			if diff := cmp.Diff(names(left), names(right)); diff != "" {
				t.Fatalf("cat=%q query=%q do not commute (-left +right):\n%s", cat, query, diff)
			}
		}
	}
}

func TestApply(t *testing.T) {
	got := Apply(sampleApps(), Query{Category: "Development", Text: "con"}, byCategory, byName, byDescription)
	if diff := cmp.Diff([]string{"Docker"}, names(got)); diff != "" {
		t.Fatalf("Apply mismatch (-want +got):\n%s", diff)
	}
}
