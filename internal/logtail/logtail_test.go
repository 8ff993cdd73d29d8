package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"read partial (5)", 5, expectedAll[5:]},
		{"read last (1)", 1, expectedAll[9:]},
		{"read exactly all (10)", 10, expectedAll},
		{"read more than exists (20)", 20, expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	lines, err := Read(filepath.Join(t.TempDir(), "absent.log"), 10)
	if err != nil {
		t.Fatalf("Read(missing) error = %v", err)
	}
	if lines != nil {
		t.Fatalf("Read(missing) = %v, want nil", lines)
	}
}

func TestRead_Directory(t *testing.T) {
	if _, err := Read(t.TempDir(), 10); err == nil {
		t.Fatalf("Read(directory) should fail")
	}
}

func TestParse(t *testing.T) {
	line := `{"level":"info","ts":"2026-10-19T09:14:03.120+0200","caller":"app/app.go:70","msg":"catalog loaded","projects":4,"path":"built-in"}`
	e, ok := Parse(line)
	if !ok {
		t.Fatalf("Parse() rejected a zap entry")
	}
	if e.Level != "info" || e.Message != "catalog loaded" || e.Time != "2026-10-19T09:14:03.120+0200" {
		t.Fatalf("Parse() = %+v", e)
	}
	if _, ok := e.Fields["caller"]; ok {
		t.Fatalf("caller should not be a field")
	}
	if e.Fields["path"] != "built-in" {
		t.Fatalf("path field = %v", e.Fields["path"])
	}

	for _, bad := range []string{"", "plain text", "{not json", `{"level":"info"}`, `["msg"]`} {
		if _, ok := Parse(bad); ok {
			t.Fatalf("Parse(%q) accepted", bad)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{
			in:   `{"level":"info","ts":"2026-10-19T09:14:03.120+0200","msg":"catalog loaded","projects":4,"path":"built-in"}`,
			want: "2026-10-19 09:14:03 INFO  catalog loaded path=built-in projects=4",
		},
		{
			in:   `{"level":"warn","msg":"catalog watch disabled","error":"no such file"}`,
			want: "WARN  catalog watch disabled error=no such file",
		},
		{
			in:   "not a json line",
			want: "not a json line",
		},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Fatalf("Format(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatLines(t *testing.T) {
	got := FormatLines([]string{"a", `{"level":"error","msg":"boom"}`})
	want := []string{"a", "ERROR boom"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FormatLines() = %v, want %v", got, want)
	}
}
