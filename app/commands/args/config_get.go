package args

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fated-fortress/fortress-cli/app/cli"
	config "github.com/fated-fortress/fortress-cli/internal"
)

// ConfigGetCommand prints one configuration value.
type ConfigGetCommand struct{}

func init() {
	RegisterCommand(&ConfigGetCommand{})
}

func (c *ConfigGetCommand) Name() string {
	return "config get"
}

func (c *ConfigGetCommand) Description() string {
	return "Gets the value of a specific configuration key."
}

func (c *ConfigGetCommand) Usage() string {
	return "<key>"
}

func (c *ConfigGetCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "key", Description: "Dotted key, e.g. api.endpoint or user.name.", Required: true},
	}
}

func (c *ConfigGetCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *ConfigGetCommand) Execute(env *Env, args cli.CommandArgs) error {
	cfg, err := env.Store.Ensure()
	if err != nil {
		return err
	}

	key := strings.ToLower(args.Variable(0))
	values := configValues(cfg)
	value, ok := values[key]
	if !ok {
		return usageErrorf(c.Name(), "unknown config key %q (choose from %s)", key, strings.Join(configKeys(values), ", "))
	}
	fmt.Fprintln(env.Out, value)
	return nil
}

// configValues flattens cfg into dotted keys. Unset values read as "".
func configValues(cfg config.Config) map[string]string {
	key := ""
	if cfg.API.Key != nil {
		key = "********"
	}
	return map[string]string{
		"user.id":      cfg.UserID(),
		"user.name":    cfg.UserName(),
		"user.squad":   cfg.UserSquad(),
		"api.endpoint": cfg.API.Endpoint,
		"api.key":      key,
		"theme":        cfg.Theme,
	}
}

func configKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
