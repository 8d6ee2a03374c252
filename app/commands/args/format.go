package args

import (
	"github.com/fated-fortress/fortress-cli/app/cli"
	"github.com/fated-fortress/fortress-cli/app/report"
)

var formatFlag = FlagDef{
	Name:        "format",
	ShortName:   "o",
	Description: "Output format: table, json or yaml.",
	HasValue:    true,
	Default:     string(report.FormatTable),
}

// writeList encodes data in the requested format, or calls table for the
// default tabular report.
func writeList(env *Env, command string, args cli.CommandArgs, data any, table func()) error {
	raw := args.FlagOr("format", args.FlagOr("o", ""))
	format, err := report.ParseFormat(raw)
	if err != nil {
		return &UsageError{Command: command, Err: err}
	}
	if format == report.FormatTable {
		table()
		return nil
	}
	return report.Encode(env.Out, format, data)
}
