package args

import (
	"github.com/fated-fortress/fortress-cli/app/cli"
	"github.com/fated-fortress/fortress-cli/app/report"
)

// VerifyCommand marks a quest submission as verified.
type VerifyCommand struct{}

func init() {
	RegisterCommand(&VerifyCommand{})
}

func (c *VerifyCommand) Name() string        { return "verify" }
func (c *VerifyCommand) Description() string { return "Verify a quest" }
func (c *VerifyCommand) Usage() string       { return "--quest-id <id> | <quest-id>" }

func (c *VerifyCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{{Name: "quest-id", Description: "Quest ID, instead of --quest-id."}}
}

func (c *VerifyCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{{Name: "quest-id", Description: "Quest ID.", HasValue: true}}
}

func (c *VerifyCommand) Execute(env *Env, args cli.CommandArgs) error {
	questID := args.FlagOr("quest-id", args.Variable(0))
	if questID == "" {
		return usageErrorf(c.Name(), "--quest-id required")
	}
	report.WriteVerification(env.Out, env.Theme, questID)
	return nil
}
