package args

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/fated-fortress/fortress-cli/app/cli"
	"github.com/fated-fortress/fortress-cli/app/report"
)

// StatusName is also what an invocation without a command runs.
const StatusName = "status"

// StatusCommand shows connection, user and fortress counters.
type StatusCommand struct{}

func init() {
	RegisterCommand(&StatusCommand{})
}

func (c *StatusCommand) Name() string { return StatusName }

func (c *StatusCommand) Description() string { return "Show fortress status" }

func (c *StatusCommand) Usage() string { return "" }

func (c *StatusCommand) ExpectedArgs() []ArgDef { return []ArgDef{} }

func (c *StatusCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *StatusCommand) Execute(env *Env, args cli.CommandArgs) error {
	cfg, err := env.Store.Ensure()
	if err != nil {
		return err
	}
	stats, err := env.Guild.Stats()
	if err != nil {
		return fmt.Errorf("failed to load fortress stats: %w", err)
	}
	env.Logger.Debug("loaded config", zap.String("endpoint", cfg.API.Endpoint), zap.Bool("logged_in", cfg.UserName() != ""))

	report.WriteStatus(env.Out, env.Theme, cfg, stats, env.Now())
	return nil
}
