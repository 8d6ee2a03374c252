package args

import (
	"go.uber.org/zap"

	"github.com/fated-fortress/fortress-cli/app/cli"
	"github.com/fated-fortress/fortress-cli/app/report"
	"github.com/fated-fortress/fortress-cli/app/screens/shared"
)

// PreviewWidth is how much submitted content is echoed back.
const PreviewWidth = 50

// SubmitCommand records work against a quest.
type SubmitCommand struct{}

func init() {
	RegisterCommand(&SubmitCommand{})
}

func (c *SubmitCommand) Name() string        { return "submit" }
func (c *SubmitCommand) Description() string { return "Submit work" }
func (c *SubmitCommand) Usage() string       { return "--quest-id <id> --content <content> [--copy]" }

func (c *SubmitCommand) ExpectedArgs() []ArgDef { return []ArgDef{} }

func (c *SubmitCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{
		{Name: "quest-id", Description: "Quest ID.", HasValue: true, Required: true},
		{Name: "content", Description: "Submission content.", HasValue: true, Required: true},
		{Name: "copy", Description: "Copy the transaction ID to the clipboard.", HasValue: false},
	}
}

func (c *SubmitCommand) Execute(env *Env, args cli.CommandArgs) error {
	questID := args.FlagOr("quest-id", "")
	content := args.FlagOr("content", "")

	txID := report.WriteSubmission(env.Out, env.Theme, questID, shared.Preview(content, PreviewWidth), env.Now())

	if args.Bool("copy") {
		// The submission already succeeded; a missing clipboard only warrants a warning.
		if err := env.CopyToClipboard(txID); err != nil {
			env.Logger.Warn("could not copy transaction id", zap.String("transaction_id", txID), zap.Error(err))
		} else {
			env.Logger.Debug("copied transaction id", zap.String("transaction_id", txID))
		}
	}
	return nil
}
