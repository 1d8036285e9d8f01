package entity

import "image"

// Level is a loaded tile grid together with the objects spawned from it.
// It owns the objects for its whole lifetime.
type Level struct {
	Grid   *TileGrid
	Bands  TileBands
	Origin image.Point // world offset of tile (0,0)

	SpawnTile     image.Point
	TilesheetPath string
	SheetCols     int
	SheetRows     int

	Bouncers     []*Bouncer
	Flags        []*Flag
	Balloons     []*Balloon
	Destructible []*DestructibleBlock

	win  bool
	lose bool
}

// NewLevel creates a level around a grid with the default tile bands
func NewLevel(grid *TileGrid) *Level {
	return &Level{
		Grid:  grid,
		Bands: DefaultTileBands(),
	}
}

// Classify returns the class of the tile at tile coordinates
func (l *Level) Classify(tx, ty int) TileClass {
	return l.Bands.Classify(l.Grid.At(tx, ty))
}

// Objects returns all objects in draw order:
// bouncers, flags, balloons, destructible blocks
func (l *Level) Objects() []LevelObject {
	objs := make([]LevelObject, 0, len(l.Bouncers)+len(l.Flags)+len(l.Balloons)+len(l.Destructible))
	for _, o := range l.Bouncers {
		objs = append(objs, o)
	}
	for _, o := range l.Flags {
		objs = append(objs, o)
	}
	for _, o := range l.Balloons {
		objs = append(objs, o)
	}
	for _, o := range l.Destructible {
		objs = append(objs, o)
	}
	return objs
}

// Update advances every object by deltaMs
func (l *Level) Update(deltaMs int) {
	for _, o := range l.Objects() {
		o.Update(deltaMs)
	}
}

// Render asks every object to draw itself
func (l *Level) Render(d TileDrawer) {
	for _, o := range l.Objects() {
		o.Render(d)
	}
}

// SpawnPosition returns the player spawn in level-local world units
func (l *Level) SpawnPosition() (x, y int) {
	return l.SpawnTile.X * l.Grid.TileSize, l.SpawnTile.Y * l.Grid.TileSize
}

// MarkWin sets the win flag. It stays set until the level is reloaded.
func (l *Level) MarkWin() {
	l.win = true
}

// SetLose assigns the lose flag
func (l *Level) SetLose(lose bool) {
	l.lose = lose
}

// LevelWin reports whether the top boundary was crossed
func (l *Level) LevelWin() bool {
	return l.win
}

// LevelLose reports and clears the lose flag
func (l *Level) LevelLose() bool {
	lose := l.lose
	l.lose = false
	return lose
}
