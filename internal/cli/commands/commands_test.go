package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/sqlsplit/internal/cli"
	"github.com/leapstack-labs/sqlsplit/internal/cli/config"
	"github.com/leapstack-labs/sqlsplit/internal/cli/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDump = "DROP TABLE foo;\nSELECT 1;\nDROP TABLE bar;\n"

// execute runs the root command with args and returns stdout, stderr, err.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(config.ResetConfig)

	var out, errOut bytes.Buffer
	root := cli.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeDump(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSplitCommand_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	input := writeDump(t, dir, "dump.sql", sampleDump)
	outDir := filepath.Join(dir, "out")

	_, _, err := execute(t, "split", input, "-o", outDir)
	require.NoError(t, err)

	foo, err := os.ReadFile(filepath.Join(outDir, "foo.sql"))
	require.NoError(t, err)
	assert.Equal(t, "DROP TABLE foo;\nSELECT 1;\n", string(foo))

	bar, err := os.ReadFile(filepath.Join(outDir, "bar.sql"))
	require.NoError(t, err)
	assert.Equal(t, "DROP TABLE bar;\n", string(bar))
}

func TestSplitCommand_DefaultOutputDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	input := writeDump(t, dir, "mydump.sql", sampleDump)

	_, _, err := execute(t, "split", input)
	require.NoError(t, err)

	// Output directory named after the input file's base name, in the
	// working directory.
	assert.FileExists(t, filepath.Join(dir, "mydump", "foo.sql"))
	assert.FileExists(t, filepath.Join(dir, "mydump", "bar.sql"))
}

func TestSplitCommand_TriggerCount(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	input := writeDump(t, dir, "dump.sql", sampleDump)
	outDir := filepath.Join(dir, "out")

	_, _, err := execute(t, "split", input, "-o", outDir, "--trigger-count", "2")
	require.NoError(t, err)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bar.sql", entries[0].Name())

	content, err := os.ReadFile(filepath.Join(outDir, "bar.sql"))
	require.NoError(t, err)
	assert.Equal(t, sampleDump, string(content))
}

func TestSplitCommand_IgnoreBlankLines(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	input := writeDump(t, dir, "dump.sql", "DROP TABLE foo;\n\n\nSELECT 1;\n")
	outDir := filepath.Join(dir, "out")

	_, _, err := execute(t, "split", input, "-o", outDir, "--ignore-blank-lines")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(outDir, "foo.sql"))
	require.NoError(t, err)
	assert.Equal(t, "DROP TABLE foo;\nSELECT 1;\n", string(content))
}

func TestSplitCommand_CustomConditions(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	input := writeDump(t, dir, "dump.sql", "ALTER TABLE a ADD x int;\nSELECT 1;\nALTER TABLE b DROP x;\n")
	outDir := filepath.Join(dir, "out")

	_, _, err := execute(t, "split", input, "-o", outDir, "-c", "ALTER TABLE")
	require.NoError(t, err)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	// ALTER TABLE has no extraction rule, so both units get fallback names.
	require.Len(t, entries, 2)
	assert.Equal(t, "file_0.sql", entries[0].Name())
	assert.Equal(t, "file_1.sql", entries[1].Name())
}

func TestSplitCommand_ReportJSON(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	input := writeDump(t, dir, "dump.sql", sampleDump)
	outDir := filepath.Join(dir, "out")

	stdout, _, err := execute(t, "split", input, "-o", outDir, "--report", "--output", "json")
	require.NoError(t, err)

	var rep output.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &rep))
	assert.Equal(t, input, rep.InputFile)
	assert.Equal(t, outDir, rep.OutputDir)
	assert.Equal(t, 2, rep.TotalFiles)
	assert.Equal(t, 0, rep.FailedWrites)
	assert.Equal(t, 1, rep.TriggerCount)
}

func TestSplitCommand_MissingInputFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, _, err := execute(t, "split", filepath.Join(dir, "nope.sql"), "-o", filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sqlsplit v")
}
