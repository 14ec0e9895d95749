package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
)

// Tile is one map cell.
type Tile struct {
	Kind     TileKind
	Walkable bool
}

// MakeWall returns a blocking wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall}
}

// MakeFloor returns a passable floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Walkable: true}
}

// Glyph is the character a tile is drawn with.
func (t Tile) Glyph() rune {
	if t.Kind == TileFloor {
		return '.'
	}
	return '#'
}
