// Package dashboard is the interactive full-screen browser over quests,
// squads and the leaderboard.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fated-fortress/fortress-cli/app/guild"
	"github.com/fated-fortress/fortress-cli/app/report"
	"github.com/fated-fortress/fortress-cli/app/screens/shared"
	"github.com/fated-fortress/fortress-cli/app/theme"
)

// Tab identifies which data set is on screen.
type Tab int

const (
	TabQuests Tab = iota
	TabSquads
	TabLeaderboard
)

var tabTitles = []string{"Quests", "Squads", "Leaderboard"}

func (t Tab) String() string { return tabTitles[t] }

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Prev, k.Next, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NextTab, k.PrevTab}, {k.Prev, k.Next}, {k.Quit}}
}

var defaultKeys = keyMap{
	Next:    key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
	Prev:    key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
	NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
	PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous view")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	theme  theme.Theme
	quests []guild.Quest
	squads []guild.Squad
	board  []guild.LeaderboardEntry

	tab    Tab
	pager  paginator.Model
	keys   keyMap
	help   help.Model
	width  int
	height int
}

// New loads everything from repo up front; the dashboard never refetches.
func New(t theme.Theme, repo guild.Repository, perPage int) (Model, error) {
	quests, err := repo.ListQuests()
	if err != nil {
		return Model{}, fmt.Errorf("failed to list quests: %w", err)
	}
	squads, err := repo.ListSquads()
	if err != nil {
		return Model{}, fmt.Errorf("failed to list squads: %w", err)
	}
	board, err := repo.Leaderboard()
	if err != nil {
		return Model{}, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	if perPage <= 0 {
		perPage = 8
	}
	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = perPage
	pager.ActiveDot = t.Gold.Render("•")
	pager.InactiveDot = t.Muted.Render("•")

	m := Model{
		theme:  t,
		quests: quests,
		squads: squads,
		board:  board,
		pager:  pager,
		keys:   defaultKeys,
		help:   help.New(),
	}
	m.resetPager()
	return m, nil
}

// Tab returns the active view.
func (m Model) Tab() Tab { return m.tab }

// Page returns the zero-based page of the active view.
func (m Model) Page() int { return m.pager.Page }

// TotalPages returns the page count of the active view.
func (m Model) TotalPages() int { return m.pager.TotalPages }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % Tab(len(tabTitles))
			m.resetPager()
		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + Tab(len(tabTitles)) - 1) % Tab(len(tabTitles))
			m.resetPager()
		case key.Matches(msg, m.keys.Next):
			m.pager.NextPage()
		case key.Matches(msg, m.keys.Prev):
			m.pager.PrevPage()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.tabs())
	b.WriteString("\n")
	b.WriteString(m.theme.Divider())
	b.WriteString("\n")
	for _, line := range m.rows() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.pager.TotalPages > 1 {
		b.WriteString("  " + m.pager.View() + "\n")
	}
	b.WriteString(shared.Footer(m.theme.Muted, m.help.View(m.keys)))

	out := b.String()
	if m.height > 0 {
		out = shared.TruncateLines(out, m.height)
	}
	return out
}

func (m *Model) resetPager() {
	m.pager.Page = 0
	m.pager.SetTotalPages(m.itemCount())
}

func (m Model) itemCount() int {
	switch m.tab {
	case TabSquads:
		return len(m.squads)
	case TabLeaderboard:
		return len(m.board)
	default:
		return len(m.quests)
	}
}

func (m Model) tabs() string {
	parts := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if Tab(i) == m.tab {
			parts[i] = m.theme.Title.Render("[" + title + "]")
		} else {
			parts[i] = m.theme.Muted.Render(" " + title + " ")
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) rows() []string {
	start, end := m.pager.GetSliceBounds(m.itemCount())
	var lines []string
	switch m.tab {
	case TabSquads:
		for _, s := range m.squads[start:end] {
			lines = append(lines, fmt.Sprintf("  %s  members %-3d score %-6d %s",
				m.theme.Gold.Render(shared.PadRight(s.Name, 10)), s.MemberCount, s.Score, report.SquadGlyph(m.theme, s.Status)))
		}
	case TabLeaderboard:
		for _, e := range m.board[start:end] {
			lines = append(lines, fmt.Sprintf("  %s #%-2d %s %s REP %5d  quests %d",
				report.RankMedal(e.Rank), e.Rank, m.theme.Gold.Render(shared.PadRight(e.Name, 12)),
				shared.PadRight(e.Squad, 8), e.Rep, e.QuestsCompleted))
		}
	default:
		for _, q := range m.quests[start:end] {
			lines = append(lines, fmt.Sprintf("  %s  %s  %s  %4d  %s",
				q.ID,
				report.DomainStyle(m.theme, q.Domain).Render(shared.PadRight(string(q.Domain), 8)),
				shared.PadRight(shared.TruncateColumn(q.Title, report.TitleWidth), report.TitleWidth),
				q.Bond,
				report.QuestStatusStyle(m.theme, q.Status).Render(string(q.Status))))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, m.theme.Muted.Render("  nothing to show"))
	}
	return lines
}
