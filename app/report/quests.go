// Package report renders guild data as terminal reports. Every function
// writes to the given writer and styles output through a theme.Theme only.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/fated-fortress/fortress-cli/app/guild"
	"github.com/fated-fortress/fortress-cli/app/screens/shared"
	"github.com/fated-fortress/fortress-cli/app/theme"
)

// TitleWidth is the widest quest title shown in the quest table.
const TitleWidth = 28

const dateLayout = "2006-01-02"

// QuestStatusStyle picks the style for a quest status.
func QuestStatusStyle(t theme.Theme, s guild.QuestStatus) lipgloss.Style {
	switch s {
	case guild.QuestCompleted:
		return t.Success
	case guild.QuestInProgress:
		return t.Warning
	default:
		return t.Neutral
	}
}

// DomainStyle picks the style for a quest domain.
func DomainStyle(t theme.Theme, d guild.Domain) lipgloss.Style {
	switch d {
	case guild.DomainBackend:
		return t.Gold
	case guild.DomainFrontend:
		return t.Secondary
	default:
		return t.Neutral
	}
}

// QuestTable renders quests as a table in the order given.
func QuestTable(t theme.Theme, quests []guild.Quest) string {
	rows := make([][]string, 0, len(quests))
	for _, q := range quests {
		rows = append(rows, []string{
			q.ID,
			DomainStyle(t, q.Domain).Render(string(q.Domain)),
			shared.TruncateColumn(q.Title, TitleWidth),
			strconv.Itoa(q.Bond),
			QuestStatusStyle(t, q.Status).Render(string(q.Status)),
		})
	}

	const bondColumn = 3
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(t.Border).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		Headers("ID", "Domain", "Title", "Bond", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.Header
			}
			if col == bondColumn {
				return t.Cell.Align(lipgloss.Right)
			}
			return t.Cell
		}).
		Render()
}

// WriteQuestList writes the quest list report.
func WriteQuestList(w io.Writer, t theme.Theme, quests []guild.Quest) {
	fmt.Fprintf(w, "\n%s (%d total)\n", t.Title.Render("📜 ACTIVE QUESTS"), len(quests))
	fmt.Fprintln(w, t.Divider())
	fmt.Fprintln(w, QuestTable(t, quests))
	fmt.Fprintln(w)
}

// WriteQuestCreated confirms a new quest.
func WriteQuestCreated(w io.Writer, t theme.Theme, q guild.Quest) {
	fmt.Fprintf(w, "\n%s\n", t.Title.Render("⚔ Creating New Quest"))
	fmt.Fprintln(w, t.Divider())
	fmt.Fprintf(w, "  Title:  %s\n", t.Gold.Render(q.Title))
	fmt.Fprintf(w, "  Domain: %s\n", q.Domain)
	fmt.Fprintf(w, "  Bond:   %d REP\n", q.Bond)
	fmt.Fprintf(w, "\n%s\n", t.Success.Render("✓ Quest created successfully!"))
	fmt.Fprintf(w, "  ID: %s\n\n", q.ID)
}

// WriteQuestDetail writes every field of a single quest.
func WriteQuestDetail(w io.Writer, t theme.Theme, q guild.Quest) {
	assignee := q.Assignee
	if assignee == "" {
		assignee = "None"
	}
	fmt.Fprintf(w, "\n%s\n", t.Title.Render("Quest Details: "+q.ID))
	fmt.Fprintln(w, t.Divider())
	fmt.Fprintf(w, "  Title:       %s\n", q.Title)
	fmt.Fprintf(w, "  Domain:      %s\n", DomainStyle(t, q.Domain).Render(string(q.Domain)))
	fmt.Fprintf(w, "  Bond:        %d REP\n", q.Bond)
	fmt.Fprintf(w, "  Status:      %s\n", QuestStatusStyle(t, q.Status).Render(string(q.Status)))
	fmt.Fprintf(w, "  Assignee:    %s\n", assignee)
	fmt.Fprintf(w, "  Created:     %s\n", formatDate(q.Created))
	fmt.Fprintf(w, "  Expires:     %s\n\n", formatDate(q.Expires))
}
