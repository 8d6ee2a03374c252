package args

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fated-fortress/fortress-cli/app/cli"
	"github.com/fated-fortress/fortress-cli/app/guild"
	"github.com/fated-fortress/fortress-cli/app/screens/dashboard"
	"github.com/fated-fortress/fortress-cli/app/theme"
	config "github.com/fated-fortress/fortress-cli/internal"
)

type testEnv struct {
	*Env
	out     *bytes.Buffer
	store   *config.Store
	copied  []string
	copyErr error
	ran     []tea.Model
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	te := &testEnv{out: &bytes.Buffer{}, store: &config.Store{Dir: t.TempDir()}}
	te.Env = &Env{
		Out:    te.out,
		Theme:  theme.Plain(),
		Store:  te.store,
		Guild:  guild.NewFixtures(),
		Logger: zap.NewNop(),
		Now:    func() time.Time { return time.Date(2024, time.March, 9, 14, 30, 5, 0, time.UTC) },
		NewID:  func() string { return "3f1c0a52-0000-4000-8000-000000000001" },
		CopyToClipboard: func(s string) error {
			te.copied = append(te.copied, s)
			return te.copyErr
		},
		RunProgram: func(m tea.Model) error {
			te.ran = append(te.ran, m)
			return nil
		},
	}
	return te
}

// run parses argv the way the router does, validates and executes.
func (te *testEnv) run(t *testing.T, argv ...string) error {
	t.Helper()
	parsed := cli.ParseCommandLineArgs(argv, Checker{})
	require.Empty(t, parsed.Errors)
	cmd, found := GetCommand(parsed.CommandName)
	require.True(t, found, "command %q not registered", parsed.CommandName)
	if err := ValidateArgs(cmd, parsed); err != nil {
		return err
	}
	return cmd.Execute(te.Env, parsed)
}

func TestRegistry_HasEveryCommand(t *testing.T) {
	for _, name := range []string{
		"status", "quests", "quests list", "quests create", "quests show",
		"squads", "squads list", "leaderboard", "submit", "verify", "login", "dashboard",
		"config get", "config list",
	} {
		assert.True(t, CommandExists(name), name)
	}

	all := GetAllCommands()
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Name(), all[i].Name())
	}
}

func TestChecker_IsBoolFlag(t *testing.T) {
	assert.True(t, Checker{}.IsBoolFlag("submit", "copy"))
	assert.False(t, Checker{}.IsBoolFlag("submit", "content"))
	assert.False(t, Checker{}.IsBoolFlag("nope", "copy"))
}

func TestQuestsCreate_Defaults(t *testing.T) {
	te := newTestEnv(t)
	require.NoError(t, te.run(t, "quests", "create", "--title", "Build API"))

	out := te.out.String()
	assert.Contains(t, out, "Title:  Build API")
	assert.Contains(t, out, "Domain: BACKEND")
	assert.Contains(t, out, "Bond:   25 REP")
	assert.Contains(t, out, "Quest created successfully")
	assert.Contains(t, out, "ID: Q-006")
}

func TestQuestsCreate_Overrides(t *testing.T) {
	te := newTestEnv(t)
	require.NoError(t, te.run(t, "quests", "create", "--title=Ship it", "--domain", "devops", "--bond", "40"))

	assert.Contains(t, te.out.String(), "Domain: DEVOPS")
	assert.Contains(t, te.out.String(), "Bond:   40 REP")
}

func TestQuestsCreate_UsageErrors(t *testing.T) {
	testCases := []struct {
		name string
		argv []string
	}{
		{name: "missing title", argv: []string{"quests", "create"}},
		{name: "blank title", argv: []string{"quests", "create", "--title="}},
		{name: "bad domain", argv: []string{"quests", "create", "--title", "X", "--domain", "QA"}},
		{name: "bad bond", argv: []string{"quests", "create", "--title", "X", "--bond", "lots"}},
		{name: "negative bond", argv: []string{"quests", "create", "--title", "X", "--bond=-5"}},
		{name: "negative bond as next word", argv: []string{"quests", "create", "--title", "X", "--bond", "-5"}},
		{name: "misspelled bond", argv: []string{"quests", "create", "--title", "X", "--bnd", "40"}},
		{name: "misspelled domain", argv: []string{"quests", "create", "--title", "X", "--domian", "QA"}},
		{name: "domain without value", argv: []string{"quests", "create", "--title", "X", "--domain"}},
		{name: "unknown short flag", argv: []string{"quests", "create", "--title", "X", "-z"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			te := newTestEnv(t)
			err := te.run(t, tc.argv...)
			require.Error(t, err)
			assert.True(t, IsUsageError(err))
			assert.NotContains(t, te.out.String(), "successfully")
		})
	}
}

func TestQuestsGroup_RequiresAction(t *testing.T) {
	te := newTestEnv(t)
	err := te.run(t, "quests")
	assert.True(t, IsUsageError(err))

	err = te.run(t, "quests", "delete")
	require.Error(t, err)
	assert.True(t, IsUsageError(err))
	assert.Contains(t, err.Error(), `"delete"`)
	assert.Empty(t, te.out.String())
}

func TestQuestsShow_LooksUpByID(t *testing.T) {
	te := newTestEnv(t)
	require.NoError(t, te.run(t, "quests", "show", "Q-003"))
	assert.Contains(t, te.out.String(), "Setup CI/CD pipeline")
	assert.NotContains(t, te.out.String(), "Implement user authentication")
}

func TestQuestsShow_NotFound(t *testing.T) {
	te := newTestEnv(t)
	err := te.run(t, "quests", "show", "Q-999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, guild.ErrQuestNotFound))
	assert.False(t, IsUsageError(err))
	assert.Empty(t, te.out.String())
}

func TestQuestsShow_MissingID(t *testing.T) {
	te := newTestEnv(t)
	err := te.run(t, "quests", "show")
	assert.True(t, IsUsageError(err))
}

func TestQuestsList_Formats(t *testing.T) {
	te := newTestEnv(t)
	require.NoError(t, te.run(t, "quests", "list"))
	assert.Contains(t, te.out.String(), "ACTIVE QUESTS")
	assert.Contains(t, te.out.String(), "(5 total)")

	te.out.Reset()
	require.NoError(t, te.run(t, "quests", "list", "--format", "json"))
	assert.True(t, strings.HasPrefix(te.out.String(), "["))
	assert.Contains(t, te.out.String(), `"domain": "FRONTEND"`)

	te.out.Reset()
	require.NoError(t, te.run(t, "quests", "list", "-o", "yaml"))
	assert.Contains(t, te.out.String(), "status: IN_PROGRESS")

	te.out.Reset()
	require.NoError(t, te.run(t, "quests", "--format", "json", "list"))
	assert.True(t, strings.HasPrefix(te.out.String(), "["))

	err := te.run(t, "quests", "list", "--format", "xml")
	assert.True(t, IsUsageError(err))
}

func TestSquads_GroupDefaultsToList(t *testing.T) {
	te := newTestEnv(t)
	require.NoError(t, te.run(t, "squads"))
	grouped := te.out.String()

	te.out.Reset()
	require.NoError(t, te.run(t, "squads", "list"))
	assert.Equal(t, grouped, te.out.String())
	assert.Contains(t, grouped, "DELTA")
}

func TestLeaderboard_RankOrder(t *testing.T) {
	te := newTestEnv(t)
	te.Guild = guild.NewMemory(nil, nil, []guild.LeaderboardEntry{
		{Rank: 3, Name: "third"},
		{Rank: 1, Name: "first"},
		{Rank: 2, Name: "second"},
	}, guild.Stats{})

	require.NoError(t, te.run(t, "leaderboard"))
	out := te.out.String()
	first, second, third := strings.Index(out, "first"), strings.Index(out, "second"), strings.Index(out, "third")
	assert.True(t, first < second && second < third, out)
}

func TestSubmit(t *testing.T) {
	te := newTestEnv(t)
	long := strings.Repeat("x", 80)
	require.NoError(t, te.run(t, "submit", "--quest-id", "Q-001", "--content", long, "--copy"))

	out := te.out.String()
	assert.Contains(t, out, "Quest ID:  Q-001")
	assert.Contains(t, out, "Content:   "+strings.Repeat("x", 50)+"...")
	assert.NotContains(t, out, strings.Repeat("x", 51))
	assert.Contains(t, out, "Transaction ID: 20240309143005")
	assert.Equal(t, []string{"20240309143005"}, te.copied)
}

func TestSubmit_ClipboardFailureIsNotFatal(t *testing.T) {
	te := newTestEnv(t)
	te.copyErr = errors.New("no clipboard utilities available")
	require.NoError(t, te.run(t, "submit", "--quest-id", "Q-001", "--content", "done", "--copy"))
	assert.Contains(t, te.out.String(), "Submission received")
}

func TestSubmit_RequiresBothFlags(t *testing.T) {
	for _, argv := range [][]string{
		{"submit"},
		{"submit", "--quest-id", "Q-001"},
		{"submit", "--content", "done"},
	} {
		te := newTestEnv(t)
		err := te.run(t, argv...)
		require.Error(t, err, argv)
		assert.True(t, IsUsageError(err))
		assert.Empty(t, te.out.String())
	}

	te := newTestEnv(t)
	err := te.run(t, "submit")
	assert.Equal(t, "Both --quest-id and --content required", err.Error())
}

func TestVerify(t *testing.T) {
	te := newTestEnv(t)
	require.NoError(t, te.run(t, "verify", "--quest-id", "Q-001"))
	assert.Contains(t, te.out.String(), "Verifying Quest: Q-001")
	assert.Contains(t, te.out.String(), "Status: VERIFIED")
	assert.Contains(t, te.out.String(), "Reward: 30 REP")

	te.out.Reset()
	require.NoError(t, te.run(t, "verify", "Q-002"))
	assert.Contains(t, te.out.String(), "Verifying Quest: Q-002")

	err := te.run(t, "verify")
	assert.True(t, IsUsageError(err))
}

func TestLogin(t *testing.T) {
	te := newTestEnv(t)

	require.NoError(t, te.run(t, "login"))
	assert.Contains(t, te.out.String(), "Name: Not set")

	te.out.Reset()
	require.NoError(t, te.run(t, "login", "--name", "Rin"))
	assert.Contains(t, te.out.String(), "Logged in as Rin")

	cfg, err := te.store.Ensure()
	require.NoError(t, err)
	assert.Equal(t, "Rin", cfg.UserName())
	assert.Equal(t, "3f1c0a52-0000-4000-8000-000000000001", cfg.UserID())

	te.NewID = func() string { return "should-not-be-used" }
	require.NoError(t, te.run(t, "login", "--name", "Kai"))
	cfg, err = te.store.Ensure()
	require.NoError(t, err)
	assert.Equal(t, "Kai", cfg.UserName())
	assert.Equal(t, "3f1c0a52-0000-4000-8000-000000000001", cfg.UserID())

	te.out.Reset()
	require.NoError(t, te.run(t, "login"))
	assert.Contains(t, te.out.String(), "Name: Kai")
}

func TestLogin_NameRequiresValue(t *testing.T) {
	te := newTestEnv(t)
	err := te.run(t, "login", "--name")
	require.Error(t, err)
	assert.True(t, IsUsageError(err))
	assert.Contains(t, err.Error(), "--name requires a value")
	assert.Empty(t, te.out.String())

	cfg, err := te.store.Ensure()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.UserName())
}

func TestValidateArgs_GlobalFlagsAllowed(t *testing.T) {
	cmd, ok := GetCommand("leaderboard")
	require.True(t, ok)
	args := cli.ParseCommandLineArgs([]string{"leaderboard", "--debug", "-h"}, Checker{})
	assert.NoError(t, ValidateArgs(cmd, args))

	args = cli.ParseCommandLineArgs([]string{"leaderboard", "--verbose"}, Checker{})
	err := ValidateArgs(cmd, args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag --verbose")
}

func TestStatus_ReflectsLogin(t *testing.T) {
	te := newTestEnv(t)
	require.NoError(t, te.run(t, "status"))
	assert.Contains(t, te.out.String(), "Not logged in")

	require.NoError(t, te.run(t, "login", "--name", "Rin"))
	te.out.Reset()
	require.NoError(t, te.run(t, "status"))
	assert.Contains(t, te.out.String(), "Name:   Rin")
}

func TestDashboard_RunsProgram(t *testing.T) {
	te := newTestEnv(t)
	require.NoError(t, te.run(t, "dashboard", "--per-page", "3"))
	require.Len(t, te.ran, 1)
	m, ok := te.ran[0].(dashboard.Model)
	require.True(t, ok)
	assert.Equal(t, 2, m.TotalPages())

	err := te.run(t, "dashboard", "--per-page", "0")
	assert.True(t, IsUsageError(err))
}
