package guild

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Memory is an in-process Repository over fixed data. Nothing it returns
// is persisted.
type Memory struct {
	quests []Quest
	squads []Squad
	board  []LeaderboardEntry
	stats  Stats
}

// NewMemory builds a Memory repository over the given data. Slices are
// copied so callers cannot mutate the repository afterwards.
func NewMemory(quests []Quest, squads []Squad, board []LeaderboardEntry, stats Stats) *Memory {
	return &Memory{
		quests: append([]Quest(nil), quests...),
		squads: append([]Squad(nil), squads...),
		board:  append([]LeaderboardEntry(nil), board...),
		stats:  stats,
	}
}

// NewFixtures returns the demo data set shipped with the CLI.
func NewFixtures() *Memory {
	created := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	expires := created.AddDate(0, 0, 7)
	quest := func(id, title string, d Domain, bond int, st QuestStatus, assignee string) Quest {
		return Quest{ID: id, Title: title, Domain: d, Bond: bond, Status: st, Assignee: assignee, Created: created, Expires: expires}
	}

	return NewMemory(
		[]Quest{
			quest("Q-001", "Implement user authentication", DomainBackend, 30, QuestOpen, "e394a..."),
			quest("Q-002", "Design dashboard UI", DomainFrontend, 25, QuestInProgress, "7d3c1..."),
			quest("Q-003", "Setup CI/CD pipeline", DomainDevOps, 35, QuestOpen, ""),
			quest("Q-004", "Write API documentation", DomainBackend, 20, QuestCompleted, "9a2b5..."),
			quest("Q-005", "Optimize database queries", DomainBackend, 40, QuestOpen, ""),
		},
		[]Squad{
			{Name: "ALPHA", MemberCount: 8, Score: 1247, Status: SquadActive},
			{Name: "BRAVO", MemberCount: 6, Score: 892, Status: SquadActive},
			{Name: "CHARLIE", MemberCount: 5, Score: 634, Status: SquadActive},
			{Name: "DELTA", MemberCount: 4, Score: 412, Status: SquadRecruiting},
		},
		[]LeaderboardEntry{
			{Rank: 1, Name: "e394a...f", Squad: "ALPHA", Rep: 1000, QuestsCompleted: 12},
			{Rank: 2, Name: "7d3c1...a", Squad: "ALPHA", Rep: 1000, QuestsCompleted: 11},
			{Rank: 3, Name: "6860a...b", Squad: "BRAVO", Rep: 892, QuestsCompleted: 9},
			{Rank: 4, Name: "9a2b5...c", Squad: "CHARLIE", Rep: 756, QuestsCompleted: 8},
			{Rank: 5, Name: "2b4d6...d", Squad: "BRAVO", Rep: 634, QuestsCompleted: 7},
		},
		Stats{Builders: 32, Quests: 14, TotalRep: 634, VerifyRate: 61},
	)
}

func (m *Memory) ListQuests() ([]Quest, error) {
	return append([]Quest(nil), m.quests...), nil
}

func (m *Memory) GetQuest(id string) (Quest, error) {
	for _, q := range m.quests {
		if strings.EqualFold(q.ID, strings.TrimSpace(id)) {
			return q, nil
		}
	}
	return Quest{}, fmt.Errorf("quest %s: %w", id, ErrQuestNotFound)
}

// NextQuestID returns the id following the highest numbered "Q-NNN" quest.
func (m *Memory) NextQuestID() (string, error) {
	highest := 0
	for _, q := range m.quests {
		n, err := strconv.Atoi(strings.TrimPrefix(q.ID, "Q-"))
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("Q-%03d", highest+1), nil
}

func (m *Memory) ListSquads() ([]Squad, error) {
	return append([]Squad(nil), m.squads...), nil
}

// Leaderboard returns entries sorted by rank whatever order they were stored in.
func (m *Memory) Leaderboard() ([]LeaderboardEntry, error) {
	out := append([]LeaderboardEntry(nil), m.board...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out, nil
}

func (m *Memory) Stats() (Stats, error) {
	return m.stats, nil
}

var _ Repository = (*Memory)(nil)
