package generate

import "ascii-rogue/internal/gamemap"

// carveCorridor digs an L-shaped tunnel between (x1,y1) and (x2,y2). The
// bend direction is a coin flip per corridor: either along y1 then down x2,
// or down x1 then along y2.
func carveCorridor(gmap *gamemap.GameMap, x1, y1, x2, y2 int, cfg *Config) {
	if cfg.Rand.Intn(2) == 0 {
		carveH(gmap, x1, x2, y1)
		carveV(gmap, y1, y2, x2)
	} else {
		carveV(gmap, y1, y2, x1)
		carveH(gmap, x1, x2, y2)
	}
}

func carveH(gmap *gamemap.GameMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if gmap.InBounds(x, y) {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
}

func carveV(gmap *gamemap.GameMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if gmap.InBounds(x, y) {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
}
