package generate

import "ascii-rogue/internal/gamemap"

// Generate places up to cfg.MaxRooms non-overlapping rooms on a wall-filled
// map and joins each accepted room to the one accepted before it.
// gmap.Rooms holds the rooms in acceptance order: the first is the player's
// start, the last is the boss room. It may hold fewer than two rooms on a
// cramped map; callers decide whether that is fatal.
func Generate(cfg *Config) *gamemap.GameMap {
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)

	for range cfg.MaxRooms {
		w := randRange(cfg.Rand, cfg.MinRoomSize, cfg.MaxRoomSize)
		h := randRange(cfg.Rand, cfg.MinRoomSize, cfg.MaxRoomSize)
		// Keep a one-tile wall border around the whole map.
		maxX := cfg.MapWidth - w - 1
		maxY := cfg.MapHeight - h - 1
		if maxX < 1 || maxY < 1 {
			continue
		}
		room := gamemap.Room{
			X: randRange(cfg.Rand, 1, maxX),
			Y: randRange(cfg.Rand, 1, maxY),
			W: w,
			H: h,
		}
		if overlapsAny(room, gmap.Rooms) {
			continue
		}

		carveRoom(gmap, room)
		if n := len(gmap.Rooms); n > 0 {
			x1, y1 := room.Center()
			x2, y2 := gmap.Rooms[n-1].Center()
			carveCorridor(gmap, x1, y1, x2, y2, cfg)
		}
		gmap.Rooms = append(gmap.Rooms, room)
	}
	return gmap
}

func overlapsAny(room gamemap.Room, rooms []gamemap.Room) bool {
	for _, other := range rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom turns every tile of room into floor.
func carveRoom(gmap *gamemap.GameMap, room gamemap.Room) {
	for y := room.Y; y < room.Y+room.H; y++ {
		for x := room.X; x < room.X+room.W; x++ {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
}
