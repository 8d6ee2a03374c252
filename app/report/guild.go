package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fated-fortress/fortress-cli/app/guild"
	"github.com/fated-fortress/fortress-cli/app/screens/shared"
	"github.com/fated-fortress/fortress-cli/app/theme"
)

// SquadGlyph returns the status marker and its style for a squad.
func SquadGlyph(t theme.Theme, s guild.SquadStatus) string {
	if s == guild.SquadActive {
		return t.Success.Render("● " + string(s))
	}
	return t.Warning.Render("○ " + string(s))
}

// WriteSquads writes each squad with its members, score and status.
func WriteSquads(w io.Writer, t theme.Theme, squads []guild.Squad) {
	fmt.Fprintf(w, "\n%s\n", t.Title.Render("⚔ SQUADS"))
	fmt.Fprintln(w, t.Divider())
	for _, s := range squads {
		fmt.Fprintf(w, "  %s │\n", t.Gold.Render(shared.PadLeft(s.Name, 10)))
		fmt.Fprintf(w, "              Members: %d │ Score: %d │ %s\n", s.MemberCount, s.Score, SquadGlyph(t, s.Status))
	}
	fmt.Fprintln(w)
}

// RankMedal decorates the top three ranks.
func RankMedal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return "  "
	}
}

// WriteLeaderboard writes entries in the order given; callers pass them
// sorted by rank.
func WriteLeaderboard(w io.Writer, t theme.Theme, entries []guild.LeaderboardEntry) {
	fmt.Fprintf(w, "\n%s\n", t.Title.Render("👑 LEADERBOARD"))
	fmt.Fprintln(w, t.Divider())
	for _, e := range entries {
		fmt.Fprintf(w, "  %s #%d %s [%s] │ REP: %5d │ Quests: %d\n",
			RankMedal(e.Rank), e.Rank,
			t.Gold.Render(shared.PadLeft(e.Name, 12)),
			shared.PadLeft(e.Squad, 7),
			e.Rep, e.QuestsCompleted)
	}
	fmt.Fprintln(w)
}

func formatDate(ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Format(dateLayout)
}
