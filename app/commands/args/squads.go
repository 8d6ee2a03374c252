package args

import (
	"fmt"

	"github.com/fated-fortress/fortress-cli/app/cli"
	"github.com/fated-fortress/fortress-cli/app/report"
)

// SquadsCommand is the "squads" group; without a sub-action it lists.
type SquadsCommand struct{}

// SquadsListCommand lists every squad.
type SquadsListCommand struct{}

func init() {
	RegisterCommand(&SquadsCommand{})
	RegisterCommand(&SquadsListCommand{})
}

func (c *SquadsCommand) Name() string             { return "squads" }
func (c *SquadsCommand) Description() string      { return "Squad management (list)" }
func (c *SquadsCommand) Usage() string            { return "[list] [--format table|json|yaml]" }
func (c *SquadsCommand) ExpectedArgs() []ArgDef   { return []ArgDef{} }
func (c *SquadsCommand) ExpectedFlags() []FlagDef { return []FlagDef{formatFlag} }

func (c *SquadsCommand) Execute(env *Env, args cli.CommandArgs) error {
	if action := args.Variable(0); action != "" {
		return usageErrorf(c.Name(), "unknown squads action %q (choose from list)", action)
	}
	return (&SquadsListCommand{}).Execute(env, args)
}

func (c *SquadsListCommand) Name() string             { return "squads list" }
func (c *SquadsListCommand) Description() string      { return "List all squads" }
func (c *SquadsListCommand) Usage() string            { return "[--format table|json|yaml]" }
func (c *SquadsListCommand) ExpectedArgs() []ArgDef   { return []ArgDef{} }
func (c *SquadsListCommand) ExpectedFlags() []FlagDef { return []FlagDef{formatFlag} }

func (c *SquadsListCommand) Execute(env *Env, args cli.CommandArgs) error {
	squads, err := env.Guild.ListSquads()
	if err != nil {
		return fmt.Errorf("failed to list squads: %w", err)
	}
	return writeList(env, c.Name(), args, squads, func() {
		report.WriteSquads(env.Out, env.Theme, squads)
	})
}
