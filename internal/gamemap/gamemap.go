package gamemap

// GameMap holds the tile grid and the accepted rooms in acceptance order.
// Generation is the only writer; the grid is read-only during play.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
	Rooms         []Room
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) Tile {
	return m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
// Out-of-bounds cells behave as walls.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}

// FloorCount returns the number of floor tiles on the map.
func (m *GameMap) FloorCount() int {
	n := 0
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			if m.Tiles[y][x].Kind == TileFloor {
				n++
			}
		}
	}
	return n
}
