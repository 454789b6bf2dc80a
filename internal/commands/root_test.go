// internal/commands/root_test.go
package cspdash

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MMIthomas/SAE303/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `[
  {"type":"header","version":"5.2.1"},
  {"type":"table","name":"results","database":"sae303","data":[
    {"name":"ACE","family":"Queens","status":"SAT","time":"1.0","nb_variables":"64"},
    {"name":"ACE","family":"Rcpsp","status":"UNSAT","time":"2.0","nb_variables":"300"},
    {"name":"Picat","family":"Queens","status":"UNKNOWN","time":"10000","nb_variables":"64"}
  ]}
]`

// resetFlags restores every flag of the command tree to its default so
// tests sharing rootCmd do not leak values into each other.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// runCLI executes rootCmd with args and returns everything written to
// stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { _ = logging.Close() })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs([]string{}) })

	_, err := rootCmd.ExecuteC()
	return buf.String(), err
}

func TestRootCmdUnknownCommand(t *testing.T) {
	out, err := runCLI(t, "nonexistent")
	require.Error(t, err)
	assert.Contains(t, out, `unknown command "nonexistent" for "cspdash"`)
}

func TestRenderWritesDashboard(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "results.json", sampleExport)
	html := filepath.Join(dir, "site", "index.html")
	analysis := filepath.Join(dir, "analysis.yaml")

	out, err := runCLI(t, "render",
		"-c", filepath.Join(dir, "absent.json"),
		"-i", input,
		"-o", html,
		"--layout", "tabs",
		"--analysis-output", analysis,
	)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Dashboard written to "+html)

	page, err := os.ReadFile(html)
	require.NoError(t, err)
	assert.Contains(t, string(page), "showTab")
	assert.FileExists(t, analysis)
}

func TestRenderRejectsUnknownLayout(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "results.json", sampleExport)

	out, err := runCLI(t, "render", "-c", filepath.Join(dir, "absent.json"), "-i", input, "--layout", "carousel")
	require.Error(t, err)
	assert.Contains(t, out, "carousel")
}

func TestConfigFileAndFlagsLayering(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "results.json", sampleExport)
	cfgPath := writeFile(t, dir, "config.yaml", "input: "+input+"\nlayout: tabs\nscatterLimit: 7\n")

	out, err := runCLI(t, "show", "config", "-c", cfgPath, "--logFormat", "json")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Config file: "+cfgPath)
	assert.Contains(t, out, "Input:            "+input)
	assert.Contains(t, out, "Layout:           tabs")
	assert.Contains(t, out, "Scatter Limit:    7")
	assert.Contains(t, out, "Log Format:       json")

	require.NotNil(t, GetConfig())
	assert.Equal(t, cfgPath, GetConfig().ConfigPath)
}

func TestEnvironmentOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.json", `{"layout":"grid","title":"From file"}`)
	t.Setenv("CSPDASH_TITLE", "From env")

	out, err := runCLI(t, "show", "config", "-c", cfgPath)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Title:            From env")
}

func TestShowConfigWithoutFile(t *testing.T) {
	out, err := runCLI(t, "show", "config", "-c", filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err, out)
	assert.Contains(t, out, "No config file loaded")
	assert.Contains(t, out, "Layout:           grid")
}

func TestShowListsInspectionCommands(t *testing.T) {
	absent := filepath.Join(t.TempDir(), "absent.json")

	out, err := runCLI(t, "show", "-c", absent)
	require.NoError(t, err, out)
	assert.Contains(t, out, "effective settings")
	assert.Contains(t, out, "config")

	out, err = runCLI(t, "inspect", "config", "-c", absent)
	require.NoError(t, err, out)
	assert.Contains(t, out, "No config file loaded")

	_, err = runCLI(t, "show", "everything", "-c", absent)
	require.Error(t, err)
}

func TestSummaryCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "results.json", sampleExport)

	out, err := runCLI(t, "summary", "-c", filepath.Join(dir, "absent.json"), "-i", input, "--no-color")
	require.NoError(t, err, out)
	assert.Contains(t, out, "sae303.results")
	assert.Contains(t, out, "Records         3")
	assert.NotContains(t, out, "\x1b[")
	assert.True(t, strings.Contains(out, "ACE") && strings.Contains(out, "Picat"))
}

func TestSummaryDebugDumpsAnalysis(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "results.json", sampleExport)
	logPath := filepath.Join(dir, "logs", "cspdash.log")

	out, err := runCLI(t, "summary", "-c", filepath.Join(dir, "absent.json"), "-i", input, "--no-color", "--debug", "--logFile", logPath)
	require.NoError(t, err, out)
	assert.Contains(t, out, "FastestSolver")
	assert.True(t, DebugEnabled())

	require.NoError(t, logging.Close())
	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "dataset loaded")
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", sampleExport)
	bad := writeFile(t, dir, "bad.json", `[{"data":[{"name":1}]}]`)
	noTable := writeFile(t, dir, "header.json", `[{"type":"header"}]`)
	absent := filepath.Join(dir, "absent.json")

	out, err := runCLI(t, "validate", "-c", absent, "-i", good)
	require.NoError(t, err, out)
	assert.Contains(t, out, "is valid (3 records)")

	out, err = runCLI(t, "validate", "-c", absent, "-i", noTable)
	require.NoError(t, err, out)
	assert.Contains(t, out, "has no table section")

	out, err = runCLI(t, "validate", "-c", absent, "-i", bad)
	require.Error(t, err)
	assert.Contains(t, out, "schema problem(s)")
	assert.Contains(t, out, "  - ")

	_, err = runCLI(t, "validate", "-c", absent, "-i", filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestSetVersionInfo(t *testing.T) {
	prev := [3]string{appVersion, appCommit, appDate}
	t.Cleanup(func() { SetVersionInfo(prev[0], prev[1], prev[2]) })

	SetVersionInfo("1.2.3", "abc123", "2025-01-01")
	assert.Equal(t, "1.2.3", appVersion)
	assert.Equal(t, "abc123", appCommit)
	assert.Equal(t, "2025-01-01", appDate)
}
