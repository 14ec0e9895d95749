package generate

import (
	"math/rand"
	"testing"

	"ascii-rogue/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

func defaultTestConfig(seed int64) *Config {
	return DefaultConfig(rand.New(rand.NewSource(seed)))
}

// reachable flood-fills walkable tiles from (sx, sy).
func reachable(gmap *gamemap.GameMap, sx, sy int) mapset.Set[SpawnPoint] {
	visited := mapset.New[SpawnPoint]()
	start := SpawnPoint{X: sx, Y: sy}
	if !gmap.IsWalkable(sx, sy) {
		return visited
	}
	visited.Put(start)
	queue := []SpawnPoint{start}
	dirs := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			next := SpawnPoint{X: cur.X + d[0], Y: cur.Y + d[1]}
			if visited.Has(next) || !gmap.IsWalkable(next.X, next.Y) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return visited
}

func TestGenerateRoomsDoNotOverlap(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		gmap := Generate(defaultTestConfig(seed))
		rooms := gmap.Rooms
		for i := 0; i < len(rooms); i++ {
			for j := i + 1; j < len(rooms); j++ {
				if rooms[i].Intersects(rooms[j]) {
					t.Errorf("seed=%d: room %d %+v overlaps room %d %+v",
						seed, i, rooms[i], j, rooms[j])
				}
			}
		}
	}
}

func TestGenerateRoomsInsideBorder(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		cfg := defaultTestConfig(seed)
		gmap := Generate(cfg)
		if len(gmap.Rooms) > cfg.MaxRooms {
			t.Fatalf("seed=%d: %d rooms exceeds %d attempts", seed, len(gmap.Rooms), cfg.MaxRooms)
		}
		for i, r := range gmap.Rooms {
			if r.W < cfg.MinRoomSize || r.W > cfg.MaxRoomSize || r.H < cfg.MinRoomSize || r.H > cfg.MaxRoomSize {
				t.Errorf("seed=%d: room %d size %dx%d out of range", seed, i, r.W, r.H)
			}
			if r.X < 1 || r.Y < 1 || r.X+r.W > cfg.MapWidth-1 || r.Y+r.H > cfg.MapHeight-1 {
				t.Errorf("seed=%d: room %d %+v touches the map border", seed, i, r)
			}
		}
		// The outer ring must stay wall.
		for x := 0; x < gmap.Width; x++ {
			if gmap.IsWalkable(x, 0) || gmap.IsWalkable(x, gmap.Height-1) {
				t.Errorf("seed=%d: border row carved at x=%d", seed, x)
			}
		}
		for y := 0; y < gmap.Height; y++ {
			if gmap.IsWalkable(0, y) || gmap.IsWalkable(gmap.Width-1, y) {
				t.Errorf("seed=%d: border column carved at y=%d", seed, y)
			}
		}
	}
}

func TestGenerateRoomInteriorsAreFloor(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		gmap := Generate(defaultTestConfig(seed))
		for i, r := range gmap.Rooms {
			for y := r.Y; y < r.Y+r.H; y++ {
				for x := r.X; x < r.X+r.W; x++ {
					if gmap.At(x, y).Kind != gamemap.TileFloor {
						t.Fatalf("seed=%d: room %d tile (%d,%d) is not floor", seed, i, x, y)
					}
				}
			}
		}
	}
}

// TestGenerateConsecutiveRoomsConnected verifies rooms[i] is reachable from
// rooms[i-1], and so every room is reachable from the first.
func TestGenerateConsecutiveRoomsConnected(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		gmap := Generate(defaultTestConfig(seed))
		if len(gmap.Rooms) == 0 {
			continue
		}
		sx, sy := gmap.Rooms[0].Center()
		seen := reachable(gmap, sx, sy)
		for i, r := range gmap.Rooms {
			cx, cy := r.Center()
			if !seen.Has(SpawnPoint{X: cx, Y: cy}) {
				t.Errorf("seed=%d: room %d center (%d,%d) unreachable from room 0", seed, i, cx, cy)
			}
		}
		// No stray floor outside what the first room reaches.
		if seen.Size() != gmap.FloorCount() {
			t.Errorf("seed=%d: %d reachable tiles, %d floor tiles", seed, seen.Size(), gmap.FloorCount())
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(defaultTestConfig(99))
	b := Generate(defaultTestConfig(99))
	if len(a.Rooms) != len(b.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(a.Rooms), len(b.Rooms))
	}
	for i := range a.Rooms {
		if a.Rooms[i] != b.Rooms[i] {
			t.Fatalf("room %d differs: %+v vs %+v", i, a.Rooms[i], b.Rooms[i])
		}
	}
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("tile (%d,%d) differs", x, y)
			}
		}
	}
}

func TestGenerateTinyMapAcceptsNothing(t *testing.T) {
	cfg := defaultTestConfig(1)
	cfg.MapWidth, cfg.MapHeight = 6, 6
	gmap := Generate(cfg)
	if len(gmap.Rooms) != 0 {
		t.Fatalf("6x6 map cannot fit a 5x5 room with a border; got %d rooms", len(gmap.Rooms))
	}
	if gmap.FloorCount() != 0 {
		t.Fatal("no floor should be carved when no room is accepted")
	}
}

func TestGenerateSingleCandidateFits(t *testing.T) {
	// A 7x7 map fits exactly one 5x5 room at (1,1).
	cfg := defaultTestConfig(3)
	cfg.MapWidth, cfg.MapHeight = 7, 7
	cfg.MaxRoomSize = 5
	gmap := Generate(cfg)
	if len(gmap.Rooms) != 1 {
		t.Fatalf("rooms = %d; want 1", len(gmap.Rooms))
	}
	if r := gmap.Rooms[0]; r != (gamemap.Room{X: 1, Y: 1, W: 5, H: 5}) {
		t.Errorf("room = %+v; want {1 1 5 5}", r)
	}
}
