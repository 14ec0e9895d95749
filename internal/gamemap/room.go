package gamemap

// Room is an axis-aligned rectangle of floor tiles. (X, Y) is the top-left
// tile; the room spans X..X+W-1 and Y..Y+H-1.
type Room struct {
	X, Y int
	W, H int
}

// Center returns the room's center tile, rounding down.
func (r Room) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether r overlaps other. The test compares the
// far edge X+W rather than the last tile X+W-1, so rooms separated by less
// than one wall column count as overlapping.
func (r Room) Intersects(other Room) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Contains reports whether (x, y) lies inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inner returns the tile range one step in from every wall, clamped to the
// full room when the room is too thin to shrink.
func (r Room) Inner() (x1, y1, x2, y2 int) {
	x1, y1 = r.X+1, r.Y+1
	x2, y2 = r.X+r.W-2, r.Y+r.H-2
	if x1 > x2 || y1 > y2 {
		return r.X, r.Y, r.X + r.W - 1, r.Y + r.H - 1
	}
	return x1, y1, x2, y2
}
