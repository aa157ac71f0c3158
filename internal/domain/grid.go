package domain

// TileKind classifies a grid cell.
type TileKind string

const (
	TileEmpty   TileKind = "empty"
	TileBlocked TileKind = "blocked"
	TileCache   TileKind = "cache" // collectible data cache
	TileSpawn   TileKind = "spawn"
	TileExit    TileKind = "exit"
)

// MaxCorruption is the corruption level at which a tile stops being
// traversable regardless of its kind.
const MaxCorruption = 100

// Tile is one cell of the sector grid. Tiles are owned by the Grid; only the
// collection phase and external setup mutate them.
type Tile struct {
	Kind       TileKind `json:"kind"`
	Corruption int      `json:"corruption"` // 0..100
}

// IsWalkable reports whether an entity may stand on this tile.
func (t Tile) IsWalkable() bool {
	return t.Kind != TileBlocked && t.Corruption < MaxCorruption
}

// Grid is a fixed width x height tile map. Treated as a value: phases that
// mutate tile state work on a private Clone and publish the copy.
type Grid struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  [][]Tile `json:"tiles"` // indexed [y][x]
}

// NewGrid allocates an open grid of empty tiles.
func NewGrid(width, height int) *Grid {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Tile{Kind: TileEmpty}
		}
	}
	return &Grid{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether the position lies inside the grid.
func (g *Grid) InBounds(pos GridPosition) bool {
	return pos.X >= 0 && pos.X < g.Width && pos.Y >= 0 && pos.Y < g.Height
}

// Index flattens a coordinate for map keys (y*Width + x).
func (g *Grid) Index(pos GridPosition) int {
	return pos.Y*g.Width + pos.X
}

// TileAt returns the tile at pos. The second result is false out of bounds.
func (g *Grid) TileAt(pos GridPosition) (Tile, bool) {
	if !g.InBounds(pos) {
		return Tile{}, false
	}
	return g.Tiles[pos.Y][pos.X], true
}

// SetTile overwrites the tile at pos. Out-of-bounds writes are ignored.
func (g *Grid) SetTile(pos GridPosition, t Tile) {
	if !g.InBounds(pos) {
		return
	}
	g.Tiles[pos.Y][pos.X] = t
}

// IsWalkable reports whether pos is inside the grid and traversable.
func (g *Grid) IsWalkable(pos GridPosition) bool {
	t, ok := g.TileAt(pos)
	return ok && t.IsWalkable()
}

// ManhattanDistance between two cells.
func (g *Grid) ManhattanDistance(a, b GridPosition) int {
	return a.ManhattanTo(b)
}

// orthoOffsets fixes the neighbor expansion order everywhere search runs.
// Changing it changes tie-breaking, which changes produced paths.
var orthoOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// OrthogonalNeighbors returns the in-bounds four-neighborhood of pos in
// fixed order: up, down, left, right.
func (g *Grid) OrthogonalNeighbors(pos GridPosition) []GridPosition {
	out := make([]GridPosition, 0, 4)
	for _, d := range orthoOffsets {
		n := pos.Shift(d[0], d[1])
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns an independent deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([][]Tile, g.Height)
	for y := range g.Tiles {
		tiles[y] = make([]Tile, g.Width)
		copy(tiles[y], g.Tiles[y])
	}
	return &Grid{Width: g.Width, Height: g.Height, Tiles: tiles}
}
