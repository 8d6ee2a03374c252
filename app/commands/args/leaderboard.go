package args

import (
	"fmt"

	"github.com/fated-fortress/fortress-cli/app/cli"
	"github.com/fated-fortress/fortress-cli/app/report"
)

// LeaderboardCommand shows the top builders by rank.
type LeaderboardCommand struct{}

func init() {
	RegisterCommand(&LeaderboardCommand{})
}

func (c *LeaderboardCommand) Name() string             { return "leaderboard" }
func (c *LeaderboardCommand) Description() string      { return "Show leaderboard" }
func (c *LeaderboardCommand) Usage() string            { return "[--format table|json|yaml]" }
func (c *LeaderboardCommand) ExpectedArgs() []ArgDef   { return []ArgDef{} }
func (c *LeaderboardCommand) ExpectedFlags() []FlagDef { return []FlagDef{formatFlag} }

func (c *LeaderboardCommand) Execute(env *Env, args cli.CommandArgs) error {
	entries, err := env.Guild.Leaderboard()
	if err != nil {
		return fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return writeList(env, c.Name(), args, entries, func() {
		report.WriteLeaderboard(env.Out, env.Theme, entries)
	})
}
