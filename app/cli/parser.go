package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// CommandRegistryChecker answers the questions the parser needs about the
// command set. It keeps the cli package free of a dependency on commands.
type CommandRegistryChecker interface {
	CommandExists(name string) bool
	// IsBoolFlag reports whether flag never takes a value for command.
	IsBoolFlag(command, flag string) bool
}

// ArgDef defines the structure for an expected positional argument.
type ArgDef struct {
	Name        string // e.g., "quest-id"
	Description string // Help text for the argument
	Required    bool   // Whether the argument is mandatory
}

// FlagDef defines the structure for an expected flag.
type FlagDef struct {
	Name        string // Long name (e.g., "title")
	ShortName   string // Short name (e.g., "t"), empty if none
	Description string // Help text for the flag
	HasValue    bool   // Whether the flag expects a value (true for --flag=v, false for --flag)
	Required    bool   // Whether the flag is mandatory
	Default     string // Shown in help; applied by the command
}

// CommandArgs holds structured information parsed from command-line arguments.
type CommandArgs struct {
	RawArgs          []string          // Keep the original args for help detection and logging
	CommandName      string            // The command specified (e.g., "status", "quests create")
	Variables        []string          // Positional arguments provided after the command name
	Flags            map[string]string // Flags provided (e.g., --title=X -> map["title"]="X")
	BoolFlags        map[string]bool   // Boolean flags (e.g., --copy -> map["copy"]=true)
	HelpRequested    bool              // If a help flag (--help, -h) was detected
	VersionRequested bool              // If a version flag (--version) was detected
	DebugRequested   bool              // If --debug was detected
	Errors           []error           // Any parsing errors encountered
}

// Flag returns the value of a long flag and whether it was given.
func (a CommandArgs) Flag(name string) (string, bool) {
	v, ok := a.Flags[name]
	return v, ok
}

// FlagOr returns the trimmed value of a flag, or def when it is absent or blank.
func (a CommandArgs) FlagOr(name, def string) string {
	if v, ok := a.Flags[name]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

// IntFlagOr parses an integer flag, returning def when it is absent.
func (a CommandArgs) IntFlagOr(name string, def int) (int, error) {
	v, ok := a.Flags[name]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("--%s must be an integer, got %q", name, v)
	}
	return n, nil
}

// Bool reports whether a boolean flag was set.
func (a CommandArgs) Bool(name string) bool {
	return a.BoolFlags[name]
}

// Variable returns the i-th positional argument, or "" when missing.
func (a CommandArgs) Variable(i int) string {
	if i < 0 || i >= len(a.Variables) {
		return ""
	}
	return a.Variables[i]
}

// globalBoolFlags never take a value, whatever the command.
var globalBoolFlags = map[string]bool{
	"help":    true,
	"h":       true,
	"version": true,
	"debug":   true,
}

// ParseCommandLineArgs processes the raw command-line arguments using a command registry checker.
func ParseCommandLineArgs(rawArgs []string, registry CommandRegistryChecker) CommandArgs {
	parsed := CommandArgs{
		RawArgs:   rawArgs,
		Variables: make([]string, 0),
		Flags:     make(map[string]string),
		BoolFlags: make(map[string]bool),
		Errors:    make([]error, 0),
	}

	// --- Stage 0: global flags, wherever they appear ---
	for _, arg := range rawArgs {
		switch arg {
		case "--help", "-h":
			parsed.HelpRequested = true
		case "--version":
			parsed.VersionRequested = true
		case "--debug":
			parsed.DebugRequested = true
		}
	}

	// --- Stage 1: resolve the command name from the first two non-flag words ---
	rest := resolveCommand(rawArgs, registry, &parsed)

	isBool := func(name string) bool {
		return globalBoolFlags[name] || registry.IsBoolFlag(parsed.CommandName, name)
	}

	// --- Stage 2: flags and variables from what is left ---
	for i := 0; i < len(rest); i++ {
		arg := rest[i]

		switch {
		case arg == "--version" || arg == "--debug":
			continue
		case arg == "--":
			parsed.Variables = append(parsed.Variables, rest[i+1:]...)
			i = len(rest)
		case strings.HasPrefix(arg, "--"):
			flagName := strings.TrimPrefix(arg, "--")
			flagValue := ""
			hasExplicitValue := false

			if name, value, found := strings.Cut(flagName, "="); found {
				flagName = name
				flagValue = value
				hasExplicitValue = true
			} else if !isBool(flagName) && i+1 < len(rest) && isValueToken(rest[i+1]) {
				flagValue = rest[i+1]
				hasExplicitValue = true
				i++ // Consume the value argument
			}

			if hasExplicitValue {
				if _, exists := parsed.Flags[flagName]; exists {
					parsed.Errors = append(parsed.Errors, fmt.Errorf("flag provided more than once: --%s", flagName))
				}
				parsed.Flags[flagName] = flagValue
			} else {
				if _, exists := parsed.BoolFlags[flagName]; exists {
					parsed.Errors = append(parsed.Errors, fmt.Errorf("boolean flag provided more than once: --%s", flagName))
				}
				parsed.BoolFlags[flagName] = true
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flagChars := strings.TrimPrefix(arg, "-")

			potentialValue := ""
			if i+1 < len(rest) && isValueToken(rest[i+1]) {
				potentialValue = rest[i+1]
			}

			valueConsumed := false
			for j, flagChar := range flagChars {
				flagName := string(flagChar)
				if j == len(flagChars)-1 && potentialValue != "" && !isBool(flagName) {
					if _, exists := parsed.Flags[flagName]; exists {
						parsed.Errors = append(parsed.Errors, fmt.Errorf("flag provided more than once: -%s", flagName))
					}
					parsed.Flags[flagName] = potentialValue
					valueConsumed = true
				} else {
					if _, exists := parsed.BoolFlags[flagName]; exists {
						parsed.Errors = append(parsed.Errors, fmt.Errorf("boolean flag provided more than once: -%s", flagName))
					}
					parsed.BoolFlags[flagName] = true
				}
			}
			if valueConsumed {
				i++
			}
		case arg == "-":
			parsed.Errors = append(parsed.Errors, fmt.Errorf("invalid flag format: %s", arg))
		default:
			parsed.Variables = append(parsed.Variables, arg)
		}
	}

	return parsed
}

// isValueToken reports whether tok can be the value of the flag before it.
// Negative numbers count as values, so "--bond -5" keeps its -5.
func isValueToken(tok string) bool {
	if !strings.HasPrefix(tok, "-") {
		return true
	}
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}

// valueFlagName returns the name of the flag in tok that could take the next
// token as its value, or "" when tok is not such a flag.
func valueFlagName(tok string) string {
	switch {
	case strings.HasPrefix(tok, "--"):
		if strings.Contains(tok, "=") {
			return ""
		}
		return strings.TrimPrefix(tok, "--")
	case strings.HasPrefix(tok, "-") && len(tok) > 1 && !isValueToken(tok):
		return tok[len(tok)-1:]
	}
	return ""
}

// resolveCommand sets parsed.CommandName from the leading words and returns
// the remaining tokens. A two-word command ("quests list") wins over its
// first word. Words that name no command are left for variable parsing.
func resolveCommand(rawArgs []string, registry CommandRegistryChecker, parsed *CommandArgs) []string {
	first, second := -1, -1
	for i, arg := range rawArgs {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if first == -1 {
			first = i
			continue
		}
		// A word directly after a value flag is that flag's value, not a sub-command.
		if name := valueFlagName(rawArgs[i-1]); name != "" &&
			!globalBoolFlags[name] && !registry.IsBoolFlag(rawArgs[first], name) {
			continue
		}
		second = i
		break
	}
	if first == -1 {
		return rawArgs
	}

	without := func(skip ...int) []string {
		out := make([]string, 0, len(rawArgs))
		for i, arg := range rawArgs {
			dropped := false
			for _, s := range skip {
				if i == s {
					dropped = true
				}
			}
			if !dropped {
				out = append(out, arg)
			}
		}
		return out
	}

	if second != -1 {
		if name := rawArgs[first] + " " + rawArgs[second]; registry.CommandExists(name) {
			parsed.CommandName = name
			return without(first, second)
		}
	}
	if registry.CommandExists(rawArgs[first]) {
		parsed.CommandName = rawArgs[first]
		return without(first)
	}
	return rawArgs
}
