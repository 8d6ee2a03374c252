package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fated-fortress/fortress-cli/app/cli"
	commands "github.com/fated-fortress/fortress-cli/app/commands/args"
	"github.com/fated-fortress/fortress-cli/app/guild"
	"github.com/fated-fortress/fortress-cli/app/logging"
	"github.com/fated-fortress/fortress-cli/app/theme"
	config "github.com/fated-fortress/fortress-cli/internal"
)

// Version is set via linker flags during build.
var Version = "v0.1.0"

// now is swapped in tests so status and submit output is stable.
var now = time.Now

const binaryName = "fortress"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(argv []string, stdout, stderr io.Writer) int {
	parsedArgs := cli.ParseCommandLineArgs(argv, commands.Checker{})

	logger := logging.New(stderr, parsedArgs.DebugRequested)
	defer func() { _ = logger.Sync() }()
	errTheme := theme.ForWriter(stderr)

	if len(parsedArgs.Errors) > 0 {
		fmt.Fprintln(stderr, errTheme.Error.Render("Error parsing arguments:"))
		for _, err := range parsedArgs.Errors {
			fmt.Fprintf(stderr, "  - %v\n", err)
		}
		return 1
	}

	if parsedArgs.VersionRequested {
		fmt.Fprintf(stdout, "Fated Fortress CLI %s\n", Version)
		return 0
	}

	if parsedArgs.HelpRequested {
		if parsedArgs.CommandName != "" {
			displayCommandHelp(stdout, parsedArgs.CommandName)
		} else {
			displayGeneralHelp(stdout)
		}
		return 0
	}

	if parsedArgs.CommandName == "" {
		if len(parsedArgs.Variables) > 0 {
			logger.Debug("unknown command", zap.Strings("args", parsedArgs.Variables))
			displayGeneralHelp(stdout)
			return 0
		}
		parsedArgs.CommandName = commands.StatusName
	}

	cmd, found := commands.GetCommand(parsedArgs.CommandName)
	if !found {
		displayGeneralHelp(stdout)
		return 0
	}

	if err := commands.ValidateArgs(cmd, parsedArgs); err != nil {
		printUsageError(stderr, errTheme, cmd, err)
		return 1
	}

	store, err := config.NewStore()
	if err != nil {
		fmt.Fprintln(stderr, errTheme.Error.Render("Error: "+err.Error()))
		return 1
	}
	logger.Debug("resolved config", zap.String("path", store.Path()))

	env := &commands.Env{
		Out:             stdout,
		Theme:           theme.ForWriter(stdout),
		Store:           store,
		Guild:           guild.NewFixtures(),
		Logger:          logger,
		Now:             now,
		NewID:           uuid.NewString,
		CopyToClipboard: clipboard.WriteAll,
		RunProgram: func(m tea.Model) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(stdout)).Run()
			return err
		},
	}

	logger.Debug("dispatching command",
		zap.String("command", cmd.Name()),
		zap.Strings("variables", parsedArgs.Variables),
		zap.Any("flags", parsedArgs.Flags))

	if err := cmd.Execute(env, parsedArgs); err != nil {
		if commands.IsUsageError(err) {
			printUsageError(stderr, errTheme, cmd, err)
			return 1
		}
		logger.Debug("command failed", zap.String("command", cmd.Name()), zap.Error(err))
		fmt.Fprintln(stderr, errTheme.Error.Render("Error: "+err.Error()))
		return 1
	}
	return 0
}

func printUsageError(w io.Writer, t theme.Theme, cmd commands.Command, err error) {
	fmt.Fprintln(w, t.Error.Render("Error: "+err.Error()))
	fmt.Fprintf(w, "Usage: %s %s %s\n", binaryName, cmd.Name(), cmd.Usage())
}

// displayGeneralHelp prints the top-level help message.
func displayGeneralHelp(w io.Writer) {
	fmt.Fprintln(w, "⚔ Fated Fortress CLI - Manage your guild from the command line")
	fmt.Fprintf(w, "Usage: %s [command] [variables...] [--flags...]\n", binaryName)
	fmt.Fprintln(w, "Run without a command to show status.")

	fmt.Fprintln(w, "\nAvailable Commands:")
	for _, cmd := range commands.GetAllCommands() {
		fmt.Fprintf(w, "  %-15s %s\n", cmd.Name(), cmd.Description())
	}

	fmt.Fprintln(w, "\nExamples:")
	fmt.Fprintln(w, `  fortress status                    Show fortress status
  fortress quests list               List all quests
  fortress quests create --title "Build API" --domain BACKEND
  fortress squads list               List all squads
  fortress leaderboard               Show top builders
  fortress submit --quest-id Q-001 --content "Implemented auth"
  fortress verify --quest-id Q-001
  fortress login --name "YourName"`)
	fmt.Fprintf(w, "\nRun '%s [command] --help' for more information on a specific command.\n", binaryName)
	fmt.Fprintln(w, "Global Flags: --help, -h, --version, --debug")
}

// displayCommandHelp displays detailed help for a specific command.
func displayCommandHelp(w io.Writer, commandName string) {
	cmd, found := commands.GetCommand(commandName)
	if !found {
		fmt.Fprintf(w, "Error: Unknown command '%s'\n", commandName)
		displayGeneralHelp(w)
		return
	}

	fmt.Fprintf(w, "Usage: %s %s %s\n\n", binaryName, cmd.Name(), cmd.Usage())
	fmt.Fprintf(w, "  %s\n", cmd.Description())

	if args := cmd.ExpectedArgs(); len(args) > 0 {
		fmt.Fprintln(w, "\nArguments:")
		for _, arg := range args {
			required := ""
			if arg.Required {
				required = " (required)"
			}
			fmt.Fprintf(w, "  %-20s %s%s\n", arg.Name, arg.Description, required)
		}
	}

	if flags := cmd.ExpectedFlags(); len(flags) > 0 {
		fmt.Fprintln(w, "\nFlags:")
		for _, flag := range flags {
			flagUsage := "--" + flag.Name
			if flag.ShortName != "" {
				flagUsage += ", -" + flag.ShortName
			}
			if flag.HasValue {
				flagUsage += " <value>"
			}
			var notes []string
			if flag.Required {
				notes = append(notes, "required")
			}
			if flag.Default != "" {
				notes = append(notes, "default "+flag.Default)
			}
			suffix := ""
			if len(notes) > 0 {
				suffix = " (" + strings.Join(notes, ", ") + ")"
			}
			fmt.Fprintf(w, "  %-20s %s%s\n", flagUsage, flag.Description, suffix)
		}
	}
	fmt.Fprintln(w, "\nGlobal Flags: --help, -h, --version, --debug")
}
