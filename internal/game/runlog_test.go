package game

import "testing"

func TestRunLogKillsSorted(t *testing.T) {
	log := newRunLog(5, 3)
	log.EnemiesKilled["Rat"] = 3
	log.EnemiesKilled["Orc"] = 3
	log.EnemiesKilled["Troll"] = 1

	kills := log.Kills()
	want := []KillCount{{"Orc", 3}, {"Rat", 3}, {"Troll", 1}}
	if len(kills) != len(want) {
		t.Fatalf("kills = %v; want %v", kills, want)
	}
	for i := range want {
		if kills[i] != want[i] {
			t.Errorf("kills[%d] = %v; want %v", i, kills[i], want[i])
		}
	}
	if n := log.TotalKills(); n != 7 {
		t.Errorf("TotalKills = %d; want 7", n)
	}
}

func TestRunLogTotalItemsUsed(t *testing.T) {
	log := newRunLog(0, 2)
	if log.TotalItemsUsed() != 0 {
		t.Error("fresh log should have no items used")
	}
	log.ItemsUsed["Health Potion"] = 2
	log.ItemsUsed["Sword"] = 1
	if n := log.TotalItemsUsed(); n != 3 {
		t.Errorf("TotalItemsUsed = %d; want 3", n)
	}
}

func TestRunLogCloneIsIndependent(t *testing.T) {
	log := newRunLog(9, 4)
	log.EnemiesKilled["Rat"] = 1
	c := log.clone()
	c.EnemiesKilled["Rat"] = 10
	c.ItemsUsed["Sword"] = 1
	if log.EnemiesKilled["Rat"] != 1 || len(log.ItemsUsed) != 0 {
		t.Error("clone shares maps with the original")
	}
	if c.Seed != 9 || c.Rooms != 4 {
		t.Errorf("clone = %+v", c)
	}
}
