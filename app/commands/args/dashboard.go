package args

import (
	"fmt"

	"github.com/fated-fortress/fortress-cli/app/cli"
	"github.com/fated-fortress/fortress-cli/app/screens/dashboard"
)

// DashboardCommand opens the interactive browser.
type DashboardCommand struct{}

func init() {
	RegisterCommand(&DashboardCommand{})
}

func (c *DashboardCommand) Name() string        { return "dashboard" }
func (c *DashboardCommand) Description() string { return "Browse quests, squads and leaderboard interactively" }
func (c *DashboardCommand) Usage() string       { return "[--per-page 8]" }

func (c *DashboardCommand) ExpectedArgs() []ArgDef { return []ArgDef{} }

func (c *DashboardCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{{Name: "per-page", Description: "Rows per page.", HasValue: true, Default: "8"}}
}

func (c *DashboardCommand) Execute(env *Env, args cli.CommandArgs) error {
	perPage, err := args.IntFlagOr("per-page", 8)
	if err != nil {
		return &UsageError{Command: c.Name(), Err: err}
	}
	if perPage <= 0 {
		return usageErrorf(c.Name(), "--per-page must be positive, got %d", perPage)
	}

	m, err := dashboard.New(env.Theme, env.Guild, perPage)
	if err != nil {
		return err
	}
	if err := env.RunProgram(m); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
