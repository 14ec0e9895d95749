package render

// Camera translates between world coordinates and screen coordinates.
// Every tile is one terminal column wide.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
	MapWidth   int
	MapHeight  int
}

// NewCamera creates a camera over a mapW×mapH world centered on (cx, cy).
func NewCamera(cx, cy, viewW, viewH, mapW, mapH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH, MapWidth: mapW, MapHeight: mapH}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so that (cx, cy) is as close to the middle
// as the map edges allow. A map that fits the view is pinned to the
// top-left corner.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = clampOffset(cx-c.ViewWidth/2, c.MapWidth-c.ViewWidth)
	c.OffsetY = clampOffset(cy-c.ViewHeight/2, c.MapHeight-c.ViewHeight)
}

func clampOffset(off, limit int) int {
	if off > limit {
		off = limit
	}
	if off < 0 {
		off = 0
	}
	return off
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = wx - c.OffsetX
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx + c.OffsetX, sy + c.OffsetY
}
