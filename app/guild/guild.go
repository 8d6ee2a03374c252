// Package guild holds the quest, squad and leaderboard model and the
// repository interfaces the commands read them through.
package guild

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrQuestNotFound is returned when no quest has the requested id.
var ErrQuestNotFound = errors.New("quest not found")

// Domain is the discipline a quest belongs to.
type Domain string

const (
	DomainBackend  Domain = "BACKEND"
	DomainFrontend Domain = "FRONTEND"
	DomainDevOps   Domain = "DEVOPS"
)

// Domains lists every valid domain in display order.
var Domains = []Domain{DomainBackend, DomainFrontend, DomainDevOps}

// ParseDomain normalizes s to a Domain. Matching ignores case.
func ParseDomain(s string) (Domain, error) {
	d := Domain(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Domains {
		if d == known {
			return d, nil
		}
	}
	names := make([]string, len(Domains))
	for i, known := range Domains {
		names[i] = string(known)
	}
	return "", fmt.Errorf("invalid domain %q (choose from %s)", s, strings.Join(names, ", "))
}

// QuestStatus is the lifecycle state of a quest.
type QuestStatus string

const (
	QuestOpen       QuestStatus = "OPEN"
	QuestInProgress QuestStatus = "IN_PROGRESS"
	QuestCompleted  QuestStatus = "COMPLETED"
)

// SquadStatus tells whether a squad takes new members.
type SquadStatus string

const (
	SquadActive     SquadStatus = "ACTIVE"
	SquadRecruiting SquadStatus = "RECRUITING"
)

// Quest is a unit of work with a bond reward.
type Quest struct {
	ID       string      `json:"id" yaml:"id"`
	Title    string      `json:"title" yaml:"title"`
	Domain   Domain      `json:"domain" yaml:"domain"`
	Bond     int         `json:"bond" yaml:"bond"`
	Status   QuestStatus `json:"status" yaml:"status"`
	Assignee string      `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	Created  time.Time   `json:"created" yaml:"created"`
	Expires  time.Time   `json:"expires" yaml:"expires"`
}

// Squad is a named team with an aggregate score.
type Squad struct {
	Name        string      `json:"name" yaml:"name"`
	MemberCount int         `json:"member_count" yaml:"member_count"`
	Score       int         `json:"score" yaml:"score"`
	Status      SquadStatus `json:"status" yaml:"status"`
}

// LeaderboardEntry is one ranked builder.
type LeaderboardEntry struct {
	Rank            int    `json:"rank" yaml:"rank"`
	Name            string `json:"name" yaml:"name"`
	Squad           string `json:"squad" yaml:"squad"`
	Rep             int    `json:"rep" yaml:"rep"`
	QuestsCompleted int    `json:"quests_completed" yaml:"quests_completed"`
}

// Stats are the fortress-wide counters shown by the status command.
type Stats struct {
	Builders   int
	Quests     int
	TotalRep   int
	VerifyRate int // percent
}

// QuestRepository reads quests.
type QuestRepository interface {
	ListQuests() ([]Quest, error)
	// GetQuest returns ErrQuestNotFound when id is unknown.
	GetQuest(id string) (Quest, error)
	// NextQuestID returns the id the next created quest would get.
	NextQuestID() (string, error)
}

// SquadRepository reads squads.
type SquadRepository interface {
	ListSquads() ([]Squad, error)
}

// LeaderboardRepository reads the leaderboard ordered by rank ascending.
type LeaderboardRepository interface {
	Leaderboard() ([]LeaderboardEntry, error)
}

// StatsRepository reads the fortress counters.
type StatsRepository interface {
	Stats() (Stats, error)
}

// Repository bundles every read the CLI performs.
type Repository interface {
	QuestRepository
	SquadRepository
	LeaderboardRepository
	StatsRepository
}
