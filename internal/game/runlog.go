package game

import (
	"maps"
	"sort"
)

// RunLog records statistics gathered during one session. It lives in memory
// only and is gone when the process exits.
type RunLog struct {
	Seed          int64
	Rooms         int
	TurnsPlayed   int
	EnemiesKilled map[string]int // monster name → kill count
	ItemsUsed     map[string]int // item name → use count
	DamageDealt   int
	DamageTaken   int
	CauseOfDeath  string // name of the last monster that hurt the player
}

func newRunLog(seed int64, rooms int) RunLog {
	return RunLog{
		Seed:          seed,
		Rooms:         rooms,
		EnemiesKilled: make(map[string]int),
		ItemsUsed:     make(map[string]int),
	}
}

func (l RunLog) clone() RunLog {
	l.EnemiesKilled = maps.Clone(l.EnemiesKilled)
	l.ItemsUsed = maps.Clone(l.ItemsUsed)
	return l
}

// KillCount is one row of the kill breakdown.
type KillCount struct {
	Name  string
	Count int
}

// Kills returns kills sorted by count descending, then name.
func (l RunLog) Kills() []KillCount {
	kills := make([]KillCount, 0, len(l.EnemiesKilled))
	for name, n := range l.EnemiesKilled {
		kills = append(kills, KillCount{name, n})
	}
	sort.Slice(kills, func(i, j int) bool {
		if kills[i].Count != kills[j].Count {
			return kills[i].Count > kills[j].Count
		}
		return kills[i].Name < kills[j].Name
	})
	return kills
}

// TotalKills sums EnemiesKilled.
func (l RunLog) TotalKills() int {
	n := 0
	for _, c := range l.EnemiesKilled {
		n += c
	}
	return n
}

// TotalItemsUsed sums ItemsUsed.
func (l RunLog) TotalItemsUsed() int {
	n := 0
	for _, c := range l.ItemsUsed {
		n += c
	}
	return n
}
