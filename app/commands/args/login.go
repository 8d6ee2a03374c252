package args

import (
	"go.uber.org/zap"

	"github.com/fated-fortress/fortress-cli/app/cli"
	"github.com/fated-fortress/fortress-cli/app/report"
	config "github.com/fated-fortress/fortress-cli/internal"
)

// LoginCommand sets or shows the stored user name.
type LoginCommand struct{}

func init() {
	RegisterCommand(&LoginCommand{})
}

func (c *LoginCommand) Name() string        { return "login" }
func (c *LoginCommand) Description() string { return "Login to fortress" }
func (c *LoginCommand) Usage() string       { return "[--name <name>]" }

func (c *LoginCommand) ExpectedArgs() []ArgDef { return []ArgDef{} }

func (c *LoginCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{{Name: "name", ShortName: "n", Description: "Your name.", HasValue: true}}
}

func (c *LoginCommand) Execute(env *Env, args cli.CommandArgs) error {
	cfg, err := env.Store.Ensure()
	if err != nil {
		return err
	}

	name := args.FlagOr("name", args.FlagOr("n", ""))
	if name == "" {
		report.WriteCurrentUser(env.Out, env.Theme, cfg)
		return nil
	}

	cfg.User.Name = config.StringPtr(name)
	if cfg.UserID() == "" {
		cfg.User.ID = config.StringPtr(env.NewID())
	}
	if err := env.Store.Save(cfg); err != nil {
		return err
	}
	env.Logger.Debug("saved login", zap.String("user_id", cfg.UserID()))

	report.WriteLoggedIn(env.Out, env.Theme, name)
	return nil
}
