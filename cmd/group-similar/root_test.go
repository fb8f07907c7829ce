package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with isolated config lookup and
// in-memory streams.
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func decodeGroups(t *testing.T, out string) map[string][]string {
	t.Helper()
	var groups map[string][]string
	require.NoError(t, json.Unmarshal([]byte(out), &groups), "output: %s", out)
	return groups
}

const mixedNames = "Henry\nJane\nJune\nJoan\nJosé\nBarry\nJoseph\nMary\nHenry\nHarry\n"

func TestRoot_TextPermissive(t *testing.T) {
	out, _, err := executeCommand(t, "hello\nworld\n", "--threshold", "1")
	require.NoError(t, err)
	assert.Equal(t, "hello\n   world\n\n", out)
}

func TestRoot_TextStrictHidesSingletons(t *testing.T) {
	out, _, err := executeCommand(t, "hello\nworld\n", "--threshold", "0")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, _, err = executeCommand(t, "hello\nworld\n", "--threshold", "0", "--all")
	require.NoError(t, err)
	assert.Equal(t, "hello\n\nworld\n\n", out)
}

func TestRoot_DefaultThreshold(t *testing.T) {
	out, _, err := executeCommand(t, "Jane\nJune\nJoan\nJoseph\n")
	require.NoError(t, err)
	assert.Equal(t, "Jane\n   June\n\n", out)

	out, _, err = executeCommand(t, "Jane\nJune\nJoan\nJoseph\n", "--all")
	require.NoError(t, err)
	assert.Equal(t, "Jane\n   June\n\nJoan\n\nJoseph\n\n", out)
}

func TestRoot_JSON(t *testing.T) {
	out, _, err := executeCommand(t, mixedNames, "--threshold", "0.5", "--json")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"Henry": {"Henry", "Mary", "Barry", "Harry"},
		"José":  {"Joseph", "Joan", "Jane", "June"},
	}, decodeGroups(t, out))

	out, _, err = executeCommand(t, "hello\nworld\n", "--threshold", "0", "--format", "json", "--all")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"hello": {}, "world": {}}, decodeGroups(t, out))
}

func TestRoot_Table(t *testing.T) {
	out, _, err := executeCommand(t, "Jane\nJune\nJoan\nJoseph\n", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Representative")
	assert.Contains(t, out, "Dissimilarity")
	assert.Contains(t, out, "Jane")
	assert.Contains(t, out, "June")
	assert.NotContains(t, out, "Joseph")
}

func TestRoot_Summary(t *testing.T) {
	out, _, err := executeCommand(t, "Jane\nJune\nJoan\nJoseph\n", "--summary")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Jane\n   June\n\n"))
	assert.Contains(t, out, "Singletons")
	assert.Contains(t, out, "Records")

	// JSON stays parseable; the summary moves to stderr.
	out, errOut, err := executeCommand(t, "Jane\nJune\n", "--summary", "--json")
	require.NoError(t, err)
	decodeGroups(t, out)
	assert.Contains(t, errOut, "Records")
}

func TestRoot_IgnoreCase(t *testing.T) {
	in := "HENRY\nhenry\nMary\n"

	out, _, err := executeCommand(t, in, "--threshold", "0")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, _, err = executeCommand(t, in, "--threshold", "0", "--ignore-case")
	require.NoError(t, err)
	assert.Equal(t, "HENRY\n   henry\n\n", out)
}

func TestRoot_Normalize(t *testing.T) {
	decomposed := "Jose\u0301"
	composed := "Jos\u00e9"
	in := decomposed + "\n" + composed + "\n"

	out, _, err := executeCommand(t, in, "--threshold", "0")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, _, err = executeCommand(t, in, "--threshold", "0", "--normalize")
	require.NoError(t, err)
	assert.Equal(t, decomposed+"\n   "+composed+"\n\n", out)
}

func TestRoot_ReadsFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.txt", "hello\r\n")
	second := writeFile(t, dir, "b.txt", "world\r\n")

	out, _, err := executeCommand(t, "", "--threshold", "1", first, second)
	require.NoError(t, err)
	assert.Equal(t, "hello\n   world\n\n", out)

	out, _, err = executeCommand(t, "world\n", "--threshold", "1", first, "-")
	require.NoError(t, err)
	assert.Equal(t, "hello\n   world\n\n", out)
}

func TestRoot_MissingInputFile(t *testing.T) {
	_, _, err := executeCommand(t, "", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open input")
}

func TestRoot_EmptyInput(t *testing.T) {
	out, _, err := executeCommand(t, "", "--all")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRoot_EmptyLinesAreRecords(t *testing.T) {
	out, _, err := executeCommand(t, "a\n\na\n", "--threshold", "0", "--all")
	require.NoError(t, err)
	assert.Equal(t, "a\n   a\n\n\n\n", out)
}

func TestRoot_ConfigFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "threshold = 1.0\nformat = \"json\"\n")

	out, _, err := executeCommand(t, "hello\nworld\n", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"hello": {"world"}}, decodeGroups(t, out))

	// Flags win over the file.
	out, _, err = executeCommand(t, "hello\nworld\n", "--config", path, "--threshold", "0")
	require.NoError(t, err)
	assert.Empty(t, decodeGroups(t, out))
}

func TestRoot_DefaultConfigLocation(t *testing.T) {
	home := t.TempDir()
	writeFile(t, home, filepath.Join("group-similar", "config.toml"), "all = true\nthreshold = 0.0\n")

	cmd := newRootCommand()
	t.Setenv("XDG_CONFIG_HOME", home)
	var stdout bytes.Buffer
	cmd.SetIn(strings.NewReader("hello\nworld\n"))
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "hello\n\nworld\n\n", stdout.String())
}

func TestRoot_ConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := executeCommand(t, "", "--config", filepath.Join(dir, "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	unknown := writeFile(t, dir, "unknown.toml", "threshhold = 0.5\n")
	_, _, err = executeCommand(t, "", "--config", unknown)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")

	bad := writeFile(t, dir, "bad.toml", "threshold = 1.5\n")
	_, _, err = executeCommand(t, "", "--config", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "threshold")
}

func TestRoot_FlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"threshold out of range", []string{"--threshold", "2"}, "threshold"},
		{"unknown format", []string{"--format", "yaml"}, "format"},
		{"unknown method", []string{"--method", "centroid"}, "method"},
		{"unknown color", []string{"--color", "sometimes"}, "color"},
		{"negative workers", []string{"--workers", "-1"}, "workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, "a\nb\n", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	out, errOut, err := executeCommand(t, "hello\nworld\n", "--threshold", "1", "--verbose")
	require.NoError(t, err)
	assert.Equal(t, "hello\n   world\n\n", out)
	assert.Contains(t, errOut, "grouping")
	assert.Contains(t, errOut, "records=2")
}

func TestRoot_ProgressDoesNotTouchStdout(t *testing.T) {
	out, _, err := executeCommand(t, mixedNames, "--threshold", "0.5", "--progress", "--workers", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Henry\n   Henry\n   Mary\n   Barry\n   Harry\n\n"))
}

func TestRoot_MethodFlag(t *testing.T) {
	// Jane is equally near June and Joan, which chains all three together.
	out, _, err := executeCommand(t, "Jane\nJune\nJoan\nJoseph\n", "--method", "single", "--json")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"Joan": {"Jane", "June"}}, decodeGroups(t, out))
}
