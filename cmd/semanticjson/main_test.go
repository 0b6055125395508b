package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzivkovi/semanticjson/pkg/reconciler"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeJSON(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiffCommand(t *testing.T) {
	dir := t.TempDir()
	file1 := writeJSON(t, dir, "a.json", `{"name": "Acme Inc", "count": 1}`)
	file2 := writeJSON(t, dir, "b.json", `{"name": "Acme Incorporated", "count": 1}`)

	out, err := executeCommand(t, "diff", file1, file2)
	require.NoError(t, err)

	var diff map[string]map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &diff))

	change, ok := diff["values_changed"]["root['name']"]
	require.True(t, ok, "output: %s", out)
	assert.Equal(t, "Acme Inc", change["old_value"])
	assert.Equal(t, "Acme Incorporated", change["new_value"])
}

func TestDiffCommand_MissingFile(t *testing.T) {
	dir := t.TempDir()
	file1 := writeJSON(t, dir, "a.json", `{}`)

	_, err := executeCommand(t, "diff", file1, filepath.Join(dir, "absent.json"))
	require.Error(t, err)
}

func TestCompareCommand_RawOutput(t *testing.T) {
	dir := t.TempDir()
	file1 := writeJSON(t, dir, "a.json", `{"name": "Acme Inc"}`)
	file2 := writeJSON(t, dir, "b.json", `{"name": "Acme Incorporated"}`)

	// Without an embedding endpoint every pair scores 0, so the change stays
	// in both diffs with a Changed status.
	out, err := executeCommand(t, "compare", file1, file2, "--format", "raw")
	require.NoError(t, err)

	var result struct {
		StructuralDiff map[string]map[string]interface{} `json:"structural_diff"`
		SemanticDiff   map[string]reconciler.Entry       `json:"semantic_diff"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Contains(t, result.StructuralDiff["values_changed"], "root['name']")
	entry := result.SemanticDiff["root['name']"]
	assert.Equal(t, reconciler.StatusChanged, entry.Status)
	assert.Zero(t, entry.Similarity)
}

func TestCompareCommand_OutputFile(t *testing.T) {
	dir := t.TempDir()
	file1 := writeJSON(t, dir, "a.json", `{"count": 1}`)
	file2 := writeJSON(t, dir, "b.json", `{"count": 2}`)
	outFile := filepath.Join(dir, "result.json")

	_, err := executeCommand(t, "compare", file1, file2, "--format", "raw", "--output", outFile)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestCompareCommand_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	file1 := writeJSON(t, dir, "a.json", `{}`)
	file2 := writeJSON(t, dir, "b.json", `{}`)

	_, err := executeCommand(t, "compare", file1, file2, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestCompareCommand_ThresholdOutOfRange(t *testing.T) {
	dir := t.TempDir()
	file1 := writeJSON(t, dir, "a.json", `{}`)
	file2 := writeJSON(t, dir, "b.json", `{}`)

	_, err := executeCommand(t, "compare", file1, file2, "--format", "raw", "--threshold", "1.5")
	require.Error(t, err)
	assert.ErrorIs(t, err, reconciler.ErrThreshold)
}

func TestCompareCommand_ParseFailure(t *testing.T) {
	dir := t.TempDir()
	file1 := writeJSON(t, dir, "a.json", `{"broken": `)
	file2 := writeJSON(t, dir, "b.json", `{}`)

	_, err := executeCommand(t, "compare", file1, file2, "--format", "raw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}
