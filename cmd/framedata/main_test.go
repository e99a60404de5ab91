package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with an empty home and working directory so no
// user config is picked up.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func testModel(t *testing.T) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("..", "..", "internal", "formats", "testdata", "brawl.yaml"))
	require.NoError(t, err)
	return path
}

func TestClassifyCommand(t *testing.T) {
	out, err := execute(t, "classify", "AttackS4S", "CliffCatch", "AttackWeird")
	require.NoError(t, err)

	assert.Contains(t, out, "attacks-smash")
	assert.Contains(t, out, "Smashes")
	assert.Contains(t, out, "Ledge Options")
	assert.Contains(t, out, "dropped")
}

func TestFormatsCommand(t *testing.T) {
	out, err := execute(t, "formats")
	require.NoError(t, err)

	assert.Contains(t, out, "yaml")
	assert.Contains(t, out, ".json")
}

func TestReportAndHistory(t *testing.T) {
	model := testModel(t)
	db := filepath.Join(t.TempDir(), "runs.db")

	out, err := execute(t, "report", model, "--db", db, "--store=true", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Mod Brawl")
	assert.Contains(t, out, "Mario")
	assert.Contains(t, out, "Saved as run #1")

	out, err = execute(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Brawl")
	assert.Contains(t, out, "#1")

	out, err = execute(t, "subaction", model, "Mario", "AttackAirN", "--db", db, "--from-store")
	require.NoError(t, err)
	assert.Contains(t, out, "Auto-cancel Window")
}

func TestSubactionCommand(t *testing.T) {
	out, err := execute(t, "subaction", testModel(t), "Mario", "AttackAirN", "--store=false", "--scripts", "--from-store=false")
	require.NoError(t, err)

	assert.Contains(t, out, "Mario / AttackAirN")
	assert.Contains(t, out, "IASA")
	assert.Contains(t, out, "Frames: 3-5")
	assert.Contains(t, out, "Sakurai Angle")
	assert.Contains(t, out, "Main script")
	assert.Contains(t, out, "Function 0x2000")

	_, err = execute(t, "subaction", testModel(t), "Mario", "Nope", "--from-store=false")
	assert.Error(t, err)
}

func TestScriptsCommand(t *testing.T) {
	out, err := execute(t, "scripts", testModel(t), "Mario", "--store=false")
	require.NoError(t, err)

	assert.Contains(t, out, "Function 0x2000")
	assert.Contains(t, out, "Called by: AttackAirN")
	assert.Contains(t, out, "Unknown event: mystery_event")

	out, err = execute(t, "scripts", testModel(t), "common", "--store=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Function 0x3000")
}

func TestInvalidSettings(t *testing.T) {
	_, err := execute(t, "classify", "Wait1", "--workers", "-1")
	assert.Error(t, err)

	// Reset for later tests
	_, err = execute(t, "classify", "Wait1", "--workers", "0")
	assert.NoError(t, err)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
