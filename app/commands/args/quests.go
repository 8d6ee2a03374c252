package args

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/fated-fortress/fortress-cli/app/cli"
	"github.com/fated-fortress/fortress-cli/app/guild"
	"github.com/fated-fortress/fortress-cli/app/report"
)

// Defaults applied by quests create.
const (
	DefaultDomain = guild.DomainBackend
	DefaultBond   = 25
)

// QuestsCommand is the "quests" group. It only runs when no known
// sub-action followed, which is a usage error.
type QuestsCommand struct{}

// QuestsListCommand lists every quest.
type QuestsListCommand struct{}

// QuestsCreateCommand previews a new quest.
type QuestsCreateCommand struct{}

// QuestsShowCommand shows one quest by id.
type QuestsShowCommand struct{}

func init() {
	RegisterCommand(&QuestsCommand{})
	RegisterCommand(&QuestsListCommand{})
	RegisterCommand(&QuestsCreateCommand{})
	RegisterCommand(&QuestsShowCommand{})
}

func (c *QuestsCommand) Name() string        { return "quests" }
func (c *QuestsCommand) Description() string { return "Quest management (list, create, show)" }
func (c *QuestsCommand) Usage() string       { return "<list|create|show> [options]" }

func (c *QuestsCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{{Name: "action", Description: "One of list, create, show.", Required: true}}
}

func (c *QuestsCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *QuestsCommand) Execute(env *Env, args cli.CommandArgs) error {
	if action := args.Variable(0); action != "" {
		return usageErrorf(c.Name(), "unknown quests action %q (choose from list, create, show)", action)
	}
	return usageErrorf(c.Name(), "quests action required (choose from list, create, show)")
}

func (c *QuestsListCommand) Name() string             { return "quests list" }
func (c *QuestsListCommand) Description() string      { return "List all quests" }
func (c *QuestsListCommand) Usage() string            { return "[--format table|json|yaml]" }
func (c *QuestsListCommand) ExpectedArgs() []ArgDef   { return []ArgDef{} }
func (c *QuestsListCommand) ExpectedFlags() []FlagDef { return []FlagDef{formatFlag} }

func (c *QuestsListCommand) Execute(env *Env, args cli.CommandArgs) error {
	quests, err := env.Guild.ListQuests()
	if err != nil {
		return fmt.Errorf("failed to list quests: %w", err)
	}
	return writeList(env, c.Name(), args, quests, func() {
		report.WriteQuestList(env.Out, env.Theme, quests)
	})
}

func (c *QuestsCreateCommand) Name() string        { return "quests create" }
func (c *QuestsCreateCommand) Description() string { return "Create new quest" }
func (c *QuestsCreateCommand) Usage() string {
	return `--title "Your quest title" [--domain BACKEND] [--bond 25]`
}
func (c *QuestsCreateCommand) ExpectedArgs() []ArgDef { return []ArgDef{} }

func (c *QuestsCreateCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{
		{Name: "title", ShortName: "t", Description: "Quest title.", HasValue: true, Required: true},
		{Name: "domain", ShortName: "d", Description: "BACKEND, FRONTEND or DEVOPS.", HasValue: true, Default: string(DefaultDomain)},
		{Name: "bond", ShortName: "b", Description: "Bond amount in REP.", HasValue: true, Default: fmt.Sprint(DefaultBond)},
	}
}

func (c *QuestsCreateCommand) Execute(env *Env, args cli.CommandArgs) error {
	title := args.FlagOr("title", args.FlagOr("t", ""))

	domain, err := guild.ParseDomain(args.FlagOr("domain", args.FlagOr("d", string(DefaultDomain))))
	if err != nil {
		return &UsageError{Command: c.Name(), Err: err}
	}

	bondFlag := "bond"
	if _, ok := args.Flag("bond"); !ok {
		bondFlag = "b"
	}
	bond, err := args.IntFlagOr(bondFlag, DefaultBond)
	if err != nil {
		return &UsageError{Command: c.Name(), Err: err}
	}
	if bond <= 0 {
		return usageErrorf(c.Name(), "--bond must be positive, got %d", bond)
	}

	id, err := env.Guild.NextQuestID()
	if err != nil {
		return fmt.Errorf("failed to allocate quest id: %w", err)
	}

	q := guild.Quest{ID: id, Title: title, Domain: domain, Bond: bond, Status: guild.QuestOpen}
	env.Logger.Debug("quest drafted", zap.String("id", q.ID), zap.String("domain", string(q.Domain)), zap.Int("bond", q.Bond))
	report.WriteQuestCreated(env.Out, env.Theme, q)
	return nil
}

func (c *QuestsShowCommand) Name() string        { return "quests show" }
func (c *QuestsShowCommand) Description() string { return "Show quest details" }
func (c *QuestsShowCommand) Usage() string       { return "<quest-id>" }

func (c *QuestsShowCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{{Name: "quest-id", Description: "Quest ID, e.g. Q-001.", Required: true}}
}

func (c *QuestsShowCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *QuestsShowCommand) Execute(env *Env, args cli.CommandArgs) error {
	id := args.Variable(0)
	q, err := env.Guild.GetQuest(id)
	if err != nil {
		// Not-found errors wrap guild.ErrQuestNotFound for the router.
		return err
	}
	report.WriteQuestDetail(env.Out, env.Theme, q)
	return nil
}
