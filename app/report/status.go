package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fated-fortress/fortress-cli/app/guild"
	"github.com/fated-fortress/fortress-cli/app/theme"
	config "github.com/fated-fortress/fortress-cli/internal"
)

// TransactionIDLayout formats submission transaction ids.
const TransactionIDLayout = "20060102150405"

// VerifiedReward is the REP shown for a verified quest.
const VerifiedReward = 30

const banner = `
    ╔═══════════════════════════════════════════════╗
    ║   ███████╗ ██████╗ ██████╗ ████████╗██████╗   ║
    ║   ██╔════╝██╔═══██╗██╔══██╗╚══██╔══╝██╔══██╗  ║
    ║   █████╗  ██║   ██║██████╔╝   ██║   ██████╔╝  ║
    ║   ██╔══╝  ██║   ██║██╔══██╗   ██║   ██╔══██╗  ║
    ║   ██║     ╚██████╔╝██║  ██║   ██║   ██║  ██║  ║
    ║   ╚═╝      ╚═════╝ ╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝  ║
    ╚═══════════════════════════════════════════════╝
`

// WriteStatus writes the connection, user and fortress summary.
func WriteStatus(w io.Writer, t theme.Theme, cfg config.Config, stats guild.Stats, now time.Time) {
	fmt.Fprintln(w, t.Gold.Render(banner))
	fmt.Fprintf(w, "%s | %s\n", t.Title.Render("⚔ FATED FORTRESS CLI"), now.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w, t.Divider())

	fmt.Fprintf(w, "\n%s\n", t.Title.Render("Connection Status:"))
	fmt.Fprintf(w, "  Endpoint: %s\n", cfg.API.Endpoint)
	fmt.Fprintf(w, "  Theme:    %s\n", strings.ToUpper(cfg.Theme))

	fmt.Fprintf(w, "\n%s\n", t.Title.Render("User:"))
	if name := cfg.UserName(); name != "" {
		squad := cfg.UserSquad()
		if squad == "" {
			squad = "None"
		}
		fmt.Fprintf(w, "  Name:   %s\n", name)
		fmt.Fprintf(w, "  Squad:  %s\n", squad)
	} else {
		fmt.Fprintf(w, "  %s\n", t.Warning.Render("Not logged in - run 'fortress login'"))
	}

	fmt.Fprintf(w, "\n%s\n", t.Title.Render("Fortress Stats:"))
	fmt.Fprintf(w, "  🏰 Builders:  %s\n", t.Gold.Render(fmt.Sprint(stats.Builders)))
	fmt.Fprintf(w, "  📜 Quests:    %s\n", t.Gold.Render(fmt.Sprint(stats.Quests)))
	fmt.Fprintf(w, "  ⚔ REP:       %s\n", t.Gold.Render(fmt.Sprint(stats.TotalRep)))
	fmt.Fprintf(w, "  ✅ Verify:    %s\n", t.Gold.Render(fmt.Sprintf("%d%%", stats.VerifyRate)))

	fmt.Fprintf(w, "\n%s\n", t.Title.Render("Quick Actions:"))
	fmt.Fprintln(w, "  fortress quests list    - View all quests")
	fmt.Fprintln(w, "  fortress squads list    - View all squads")
	fmt.Fprintln(w, "  fortress leaderboard    - View top builders")
	fmt.Fprintln(w, "  fortress quests create  - Create new quest")
	fmt.Fprintln(w)
}

// WriteSubmission confirms received work and returns the transaction id.
func WriteSubmission(w io.Writer, t theme.Theme, questID, preview string, now time.Time) string {
	txID := now.Format(TransactionIDLayout)
	fmt.Fprintf(w, "\n%s\n", t.Title.Render("📤 Submitting Work"))
	fmt.Fprintln(w, t.Divider())
	fmt.Fprintf(w, "  Quest ID:  %s\n", questID)
	fmt.Fprintf(w, "  Content:   %s\n", preview)
	fmt.Fprintf(w, "\n%s\n", t.Success.Render("✓ Submission received!"))
	fmt.Fprintf(w, "  Transaction ID: %s\n\n", txID)
	return txID
}

// WriteVerification writes the verification outcome for a quest.
func WriteVerification(w io.Writer, t theme.Theme, questID string) {
	fmt.Fprintf(w, "\n%s\n", t.Title.Render("✅ Verifying Quest: "+questID))
	fmt.Fprintln(w, t.Divider())
	fmt.Fprintln(w, "  Status: VERIFIED")
	fmt.Fprintf(w, "  Reward: %d REP\n", VerifiedReward)
	fmt.Fprintf(w, "\n%s\n\n", t.Success.Render("✓ Verification complete!"))
}

// WriteLoggedIn confirms a login.
func WriteLoggedIn(w io.Writer, t theme.Theme, name string) {
	fmt.Fprintf(w, "\n%s\n\n", t.Success.Render("✓ Logged in as "+name))
}

// WriteCurrentUser shows the stored user name.
func WriteCurrentUser(w io.Writer, t theme.Theme, cfg config.Config) {
	name := cfg.UserName()
	if name == "" {
		name = "Not set"
	}
	fmt.Fprintf(w, "\n%s\n", t.Title.Render("Current user:"))
	fmt.Fprintf(w, "  Name: %s\n\n", name)
}
