package args

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/fated-fortress/fortress-cli/app/cli"
	"github.com/fated-fortress/fortress-cli/app/guild"
	"github.com/fated-fortress/fortress-cli/app/theme"
	config "github.com/fated-fortress/fortress-cli/internal"
)

// ArgDef is an alias for cli.ArgDef
type ArgDef = cli.ArgDef

// FlagDef is an alias for cli.FlagDef
type FlagDef = cli.FlagDef

// Command represents a CLI command that can be executed directly.
type Command interface {
	// Name returns the command's name (e.g., "quests list").
	Name() string
	// Description returns a brief help description for the command.
	Description() string
	// Execute runs the command logic with the parsed arguments.
	Execute(env *Env, args cli.CommandArgs) error
	// Usage returns a brief usage string (e.g., "<quest-id>").
	Usage() string
	// ExpectedArgs returns definitions for expected positional arguments.
	ExpectedArgs() []ArgDef
	// ExpectedFlags returns definitions for expected flags.
	ExpectedFlags() []FlagDef
}

// ConfigStore is the part of config.Store the commands use.
type ConfigStore interface {
	Ensure() (config.Config, error)
	Save(cfg config.Config) error
}

// Env carries everything a command reads from or writes to. Commands never
// touch os.Stdout, the clock or the clipboard directly.
type Env struct {
	Out    io.Writer
	Theme  theme.Theme
	Store  ConfigStore
	Guild  guild.Repository
	Logger *zap.Logger

	Now             func() time.Time
	NewID           func() string
	CopyToClipboard func(string) error
	RunProgram      func(tea.Model) error
}

// UsageError reports missing or invalid arguments. The router prints it with
// the command's usage line and exits with status 1.
type UsageError struct {
	Command string
	Err     error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func usageErrorf(command, format string, a ...any) error {
	return &UsageError{Command: command, Err: fmt.Errorf(format, a...)}
}

// IsUsageError reports whether err is, or wraps, a UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// commandRegistry holds all registered CLI commands, keyed by name.
var commandRegistry = make(map[string]Command)

// RegisterCommand adds a command to the registry. It is called from init()
// in each command's file and panics on duplicate names.
func RegisterCommand(cmd Command) {
	if _, exists := commandRegistry[cmd.Name()]; exists {
		panic(fmt.Sprintf("Command already registered: %s", cmd.Name()))
	}
	commandRegistry[cmd.Name()] = cmd
}

// GetCommand retrieves a command from the registry by its name.
func GetCommand(name string) (Command, bool) {
	cmd, found := commandRegistry[name]
	return cmd, found
}

// CommandExists checks if a command with the given name is registered.
func CommandExists(name string) bool {
	_, found := commandRegistry[name]
	return found
}

// GetAllCommands returns every registered command sorted by name.
func GetAllCommands() []Command {
	cmds := make([]Command, 0, len(commandRegistry))
	for _, cmd := range commandRegistry {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// Checker implements cli.CommandRegistryChecker over the registry.
type Checker struct{}

func (Checker) CommandExists(name string) bool { return CommandExists(name) }

func (Checker) IsBoolFlag(command, flag string) bool {
	cmd, found := GetCommand(command)
	if !found {
		return false
	}
	for _, f := range cmd.ExpectedFlags() {
		if (f.Name == flag || (f.ShortName != "" && f.ShortName == flag)) && !f.HasValue {
			return true
		}
	}
	return false
}

// ValidateArgs checks flags, required flags and positional arguments before a
// command runs, so a usage error never leaves partial output behind.
func ValidateArgs(cmd Command, args cli.CommandArgs) error {
	if err := validateFlags(cmd, args); err != nil {
		return err
	}

	var missing []string
	for _, f := range cmd.ExpectedFlags() {
		if !f.Required {
			continue
		}
		v, ok := args.Flags[f.Name]
		if !ok && f.ShortName != "" {
			v, ok = args.Flags[f.ShortName]
		}
		if !ok || strings.TrimSpace(v) == "" {
			missing = append(missing, "--"+f.Name)
		}
	}
	for i, a := range cmd.ExpectedArgs() {
		if a.Required && strings.TrimSpace(args.Variable(i)) == "" {
			missing = append(missing, "<"+a.Name+">")
		}
	}
	switch len(missing) {
	case 0:
		return nil
	case 1:
		return usageErrorf(cmd.Name(), "%s required", missing[0])
	default:
		return usageErrorf(cmd.Name(), "%s required", joinAnd(missing))
	}
}

// globalFlags are accepted by every command.
var globalFlags = map[string]bool{"help": true, "h": true, "version": true, "debug": true}

// validateFlags rejects flags the command does not declare and value flags
// given without a value.
func validateFlags(cmd Command, args cli.CommandArgs) error {
	defs := make(map[string]FlagDef)
	for _, f := range cmd.ExpectedFlags() {
		defs[f.Name] = f
		if f.ShortName != "" {
			defs[f.ShortName] = f
		}
	}

	given := make([]string, 0, len(args.Flags)+len(args.BoolFlags))
	for name := range args.Flags {
		given = append(given, name)
	}
	for name := range args.BoolFlags {
		given = append(given, name)
	}
	sort.Strings(given)

	for _, name := range given {
		if globalFlags[name] {
			continue
		}
		f, ok := defs[name]
		if !ok {
			return usageErrorf(cmd.Name(), "unknown flag %s", flagLabel(name))
		}
		if f.HasValue && args.BoolFlags[name] {
			return usageErrorf(cmd.Name(), "--%s requires a value", f.Name)
		}
	}
	return nil
}

func flagLabel(name string) string {
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}

func joinAnd(items []string) string {
	if len(items) <= 1 {
		return strings.Join(items, "")
	}
	return "Both " + strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}
