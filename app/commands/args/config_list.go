package args

import (
	"fmt"

	"github.com/fated-fortress/fortress-cli/app/cli"
)

// ConfigListCommand lists every configuration key and value.
type ConfigListCommand struct{}

func init() {
	RegisterCommand(&ConfigListCommand{})
}

func (c *ConfigListCommand) Name() string {
	return "config list"
}

func (c *ConfigListCommand) Description() string {
	return "Lists all configuration keys and values."
}

func (c *ConfigListCommand) Usage() string {
	return ""
}

func (c *ConfigListCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *ConfigListCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *ConfigListCommand) Execute(env *Env, args cli.CommandArgs) error {
	cfg, err := env.Store.Ensure()
	if err != nil {
		return err
	}

	values := configValues(cfg)
	fmt.Fprintf(env.Out, "\n%s\n", env.Theme.Title.Render("Configuration"))
	fmt.Fprintln(env.Out, env.Theme.Divider())
	for _, k := range configKeys(values) {
		v := values[k]
		if v == "" {
			v = env.Theme.Muted.Render("(unset)")
		}
		fmt.Fprintf(env.Out, "  %-13s %s\n", k, v)
	}
	fmt.Fprintln(env.Out)
	return nil
}
