package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// invoke runs the CLI against an isolated config directory.
func invoke(t *testing.T, home string, argv ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("FORTRESS_HOME", home)

	restore := now
	now = func() time.Time { return time.Date(2024, time.March, 9, 14, 30, 5, 0, time.UTC) }
	defer func() { now = restore }()

	var out, errOut bytes.Buffer
	code = run(argv, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_NoCommandMatchesStatus(t *testing.T) {
	home := t.TempDir()

	code, implicit, _ := invoke(t, home)
	require.Equal(t, 0, code)
	code, explicit, _ := invoke(t, home, "status")
	require.Equal(t, 0, code)

	assert.Equal(t, explicit, implicit)
	assert.Contains(t, implicit, "FATED FORTRESS CLI")
}

func TestRun_FirstRunCreatesConfig(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested")

	code, _, _ := invoke(t, home, "status")
	require.Equal(t, 0, code)

	data, err := os.ReadFile(filepath.Join(home, "config.json"))
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "light", raw["theme"])
}

func TestRun_QuestsCreateWithoutTitle(t *testing.T) {
	code, stdout, stderr := invoke(t, t.TempDir(), "quests", "create")

	assert.Equal(t, 1, code)
	assert.NotContains(t, stdout, "successfully")
	assert.Contains(t, stderr, "--title required")
	assert.Contains(t, stderr, "Usage: fortress quests create")
}

func TestRun_QuestsCreateDefaults(t *testing.T) {
	code, stdout, _ := invoke(t, t.TempDir(), "quests", "create", "--title", "Build API")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Domain: BACKEND")
	assert.Contains(t, stdout, "Bond:   25 REP")
}

func TestRun_InvalidDomain(t *testing.T) {
	code, stdout, stderr := invoke(t, t.TempDir(), "quests", "create", "--title", "X", "--domain", "QA")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid domain")
}

func TestRun_RejectsBadFlags(t *testing.T) {
	for _, argv := range [][]string{
		{"quests", "create", "--title", "X", "--bond", "-5"},
		{"quests", "create", "--title", "X", "--bnd", "40", "--domian", "QA"},
	} {
		code, stdout, stderr := invoke(t, t.TempDir(), argv...)
		assert.Equal(t, 1, code, argv)
		assert.Empty(t, stdout, argv)
		assert.Contains(t, stderr, "Error:", argv)
	}
}

func TestRun_SubActionAfterFlag(t *testing.T) {
	code, stdout, stderr := invoke(t, t.TempDir(), "squads", "--format", "json", "list")
	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, `"name": "ALPHA"`)
}

func TestRun_SubmitRequiresBothFlags(t *testing.T) {
	code, stdout, stderr := invoke(t, t.TempDir(), "submit", "--quest-id", "Q-001")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "--content required")
}

func TestRun_QuestShowNotFound(t *testing.T) {
	code, stdout, stderr := invoke(t, t.TempDir(), "quests", "show", "Q-999")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "quest not found")
}

func TestRun_UnknownCommandShowsHelp(t *testing.T) {
	code, stdout, stderr := invoke(t, t.TempDir(), "dance")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Available Commands:")
	assert.Contains(t, stdout, "leaderboard")
	assert.Empty(t, stderr)
}

func TestRun_HelpAndVersion(t *testing.T) {
	code, stdout, _ := invoke(t, t.TempDir(), "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Available Commands:")

	code, stdout, _ = invoke(t, t.TempDir(), "quests", "create", "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "--title, -t <value>")
	assert.Contains(t, stdout, "(required)")

	code, stdout, _ = invoke(t, t.TempDir(), "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, Version)
}

func TestRun_LoginPersistsAcrossInvocations(t *testing.T) {
	home := t.TempDir()

	code, stdout, _ := invoke(t, home, "login", "--name", "Rin")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Logged in as Rin")

	code, stdout, _ = invoke(t, home, "status")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Name:   Rin")
}

func TestRun_MalformedConfigIsFatal(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.json"), []byte("{"), 0o600))

	code, _, stderr := invoke(t, home, "status")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "failed to parse config file")
}

func TestRun_DuplicateFlagIsParseError(t *testing.T) {
	code, _, stderr := invoke(t, t.TempDir(), "login", "--name", "a", "--name", "b")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "flag provided more than once")
}

func TestRun_DebugLogsToStderr(t *testing.T) {
	code, stdout, stderr := invoke(t, t.TempDir(), "--debug", "leaderboard")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "LEADERBOARD")
	assert.Contains(t, stderr, "dispatching command")
}
