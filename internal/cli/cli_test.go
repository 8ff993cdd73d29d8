package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with a config path that does not exist, so
// the user's own config never leaks into a test.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	full := append([]string{"--config", filepath.Join(t.TempDir(), "absent.toml")}, args...)
	cmd.SetArgs(full)
	err := cmd.Execute()
	return out.String(), err
}

func TestListTable(t *testing.T) {
	out, err := execute(t, "list", "projects", "--query", "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Poziverse Dashboard")
	assert.NotContains(t, out, "API Gateway")
	assert.Contains(t, out, "(1 rows)")
}

func TestListCategoryCSV(t *testing.T) {
	out, err := execute(t, "list", "launchpad", "--category", "Development", "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "ID,Name,Category"), lines[0])
	assert.Contains(t, out, "dev-github")
	assert.Contains(t, out, "dev-docker")
	assert.NotContains(t, out, "ai-gemini")
}

func TestListMarkdown(t *testing.T) {
	out, err := execute(t, "list", "resources", "-c", "secret", "-f", "markdown")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "|"), out)
	assert.Contains(t, out, "JWT Secret")
	assert.NotContains(t, out, "TypeScript Handbook")
}

func TestListEmptyResult(t *testing.T) {
	out, err := execute(t, "list", "users", "--query", "nobody-matches-this")
	require.NoError(t, err)
	assert.Equal(t, "(0 rows)\n", out)
}

func TestListErrors(t *testing.T) {
	_, err := execute(t, "list", "widgets")
	assert.ErrorContains(t, err, "unknown domain")

	_, err = execute(t, "list", "projects", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "list")
	assert.Error(t, err)
}

func TestListCatalogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	data := "projects:\n  - id: x1\n    title: Side Quest\n    status: paused\n    color: pink\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, err := execute(t, "--catalog", path, "list", "projects")
	require.NoError(t, err)
	assert.Contains(t, out, "Side Quest")
	assert.Contains(t, out, "(1 rows)")
}

func TestListHonoursHidePatterns(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("hide = [\"files/fs*\"]\n"), 0o644))

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfgPath, "list", "files"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "(0 rows)\n", out.String())
}

func TestTargets(t *testing.T) {
	out, err := execute(t, "targets")
	require.NoError(t, err)
	for _, want := range []string{"home", "usercontrol", "User Control", "resources"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "(7 rows)")
}

func writeLogConfig(t *testing.T, logBody string) string {
	t.Helper()
	dir := t.TempDir()
	logPath := filepath.Join(dir, "poziverse.log")
	if logBody != "" {
		require.NoError(t, os.WriteFile(logPath, []byte(logBody), 0o644))
	}
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_file = \""+logPath+"\"\n"), 0o644))
	return cfgPath
}

func runWithConfig(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestLogsFormatsTail(t *testing.T) {
	body := `{"level":"info","ts":"2026-10-19T09:00:00.000Z","msg":"catalog loaded","projects":4}
{"level":"warn","ts":"2026-10-19T09:00:01.000Z","msg":"catalog watch disabled"}
{"level":"error","ts":"2026-10-19T09:00:02.000Z","msg":"catalog reload failed"}
`
	cfgPath := writeLogConfig(t, body)

	out, err := runWithConfig(t, cfgPath, "logs", "-n", "2")
	require.NoError(t, err)
	assert.NotContains(t, out, "catalog loaded")
	assert.Equal(t,
		"2026-10-19 09:00:01 WARN  catalog watch disabled\n2026-10-19 09:00:02 ERROR catalog reload failed\n",
		out)

	out, err = runWithConfig(t, cfgPath, "logs", "--raw", "-n", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `{"level":"error"`), out)
}

func TestLogsMissingFile(t *testing.T) {
	cfgPath := writeLogConfig(t, "")
	out, err := runWithConfig(t, cfgPath, "logs")
	require.NoError(t, err)
	assert.Contains(t, out, "no log entries")
}

func TestLogsDisabled(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_file = \"\"\n"), 0o644))
	_, err := runWithConfig(t, cfgPath, "logs")
	assert.ErrorContains(t, err, "logging is disabled")
}
