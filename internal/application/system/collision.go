package system

import (
	"github.com/younwookim/summit/internal/domain/entity"
	"github.com/younwookim/summit/internal/infrastructure/config"
)

// CollisionSystem resolves axis-aligned boxes against a level's tiles and objects.
// Boxes are in level-local world units. Each Move* call is a single-axis sweep;
// callers must apply horizontal and vertical resolution in a consistent order.
type CollisionSystem struct {
	level  *entity.Level
	config config.CollisionConfig
}

// NewCollisionSystem creates a resolver for a level
func NewCollisionSystem(level *entity.Level, cfg config.CollisionConfig) *CollisionSystem {
	return &CollisionSystem{
		level:  level,
		config: cfg,
	}
}

// Level returns the level being resolved against
func (s *CollisionSystem) Level() *entity.Level {
	return s.level
}

func (s *CollisionSystem) tileSize() int {
	return s.level.Grid.TileSize
}

// MoveLeft checks the column under the box's left edge.
// On collision the returned X is the right edge of that column.
func (s *CollisionSystem) MoveLeft(box entity.Box) (bool, int) {
	ts := s.tileSize()
	x := box.X / ts
	y0, y1 := box.Rows(ts)
	if box.X < 0 {
		return true, 0
	}

	collision := false
	for y := y0; y <= y1; y++ {
		if !collision && s.level.Classify(x, y) == entity.TileSolid {
			if box.X-ts*(x+1) > -(s.config.Slack + 1) {
				collision = true
			}
		}
		if s.destroyBlockAt(x, y) {
			collision = true
		}
	}

	if collision {
		return true, ts * (x + 1)
	}
	return false, box.X
}

// MoveRight checks the column under the box's right edge.
// On collision the returned X puts the box flush against that column.
func (s *CollisionSystem) MoveRight(box entity.Box) (bool, int) {
	ts := s.tileSize()
	x := box.Right() / ts
	y0, y1 := box.Rows(ts)
	if box.Right() >= s.level.Grid.PixelWidth() {
		return true, s.level.Grid.PixelWidth() - box.W
	}

	collision := false
	for y := y0; y <= y1; y++ {
		if !collision && s.level.Classify(x, y) == entity.TileSolid {
			if box.X-ts*x+box.W <= s.config.Slack {
				collision = true
			}
		}
		if s.destroyBlockAt(x, y) {
			collision = true
		}
	}

	if collision {
		return true, ts*x - box.W
	}
	return false, box.X
}

// MoveUp checks the row under the box's top edge. Leaving through the top
// of the level wins it. Destructible blocks stop the box but are not
// destroyed from below.
func (s *CollisionSystem) MoveUp(box entity.Box) (bool, int) {
	ts := s.tileSize()
	x0, x1 := box.Cols(ts)
	y := box.Y / ts
	if box.Y < 0 {
		s.level.MarkWin()
		return true, 0
	}

	collision := false
	for x := x0; x <= x1; x++ {
		if !collision && s.level.Classify(x, y) == entity.TileSolid {
			if box.Y-ts*(y+1) > -(s.config.Slack + 1) {
				collision = true
			}
		}
		if s.blockAt(x, y) != nil {
			collision = true
		}
	}

	if collision {
		return true, ts * (y + 1)
	}
	return false, box.Y
}

// MoveDown checks the row under the box's bottom edge. Clouds are solid in
// this direction only. Leaving through the bottom loses the level unless
// the mover is invulnerable.
func (s *CollisionSystem) MoveDown(box entity.Box, invulnerable bool) (bool, int) {
	ts := s.tileSize()
	x0, x1 := box.Cols(ts)
	y := box.Bottom() / ts
	if box.Bottom() >= s.level.Grid.PixelHeight() {
		s.level.SetLose(!invulnerable)
		return true, s.level.Grid.PixelHeight() - box.H
	}

	collision := false
	for x := x0; x <= x1; x++ {
		if !collision {
			class := s.level.Classify(x, y)
			if class == entity.TileSolid || class == entity.TileCloud {
				if box.Y-ts*y+box.H <= s.config.Slack {
					collision = true
				}
			}
		}
		if s.destroyBlockAt(x, y) {
			collision = true
		}
	}

	if collision {
		return true, ts*y - box.H
	}
	return false, box.Y
}

// HitsSpike reports whether any tile under the box is a hazard.
// Invulnerable movers never hit spikes.
func (s *CollisionSystem) HitsSpike(box entity.Box, invulnerable bool) bool {
	if invulnerable {
		return false
	}

	ts := s.tileSize()
	x0, x1 := box.Cols(ts)
	y0, y1 := box.Rows(ts)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			if s.level.Classify(x, y) == entity.TileHazard {
				return true
			}
		}
	}
	return false
}

// HitsBouncer compresses every idle bouncer under the box
func (s *CollisionSystem) HitsBouncer(box entity.Box) bool {
	hit := false
	for _, b := range s.level.Bouncers {
		if s.inFootprint(box, b) && !b.IsCompressed() {
			b.Compress()
			hit = true
		}
	}
	return hit
}

// HitsFlag reports whether any flag is under the box
func (s *CollisionSystem) HitsFlag(box entity.Box) bool {
	hit := false
	for _, f := range s.level.Flags {
		if s.inFootprint(box, f) {
			hit = true
		}
	}
	return hit
}

// FlagUnder returns the first flag under the box, or nil
func (s *CollisionSystem) FlagUnder(box entity.Box) *entity.Flag {
	for _, f := range s.level.Flags {
		if s.inFootprint(box, f) {
			return f
		}
	}
	return nil
}

// HitsBalloon pops every intact balloon under the box
func (s *CollisionSystem) HitsBalloon(box entity.Box) bool {
	hit := false
	for _, b := range s.level.Balloons {
		if s.inFootprint(box, b) && !b.IsPopped() {
			b.Pop()
			hit = true
		}
	}
	return hit
}

// TouchingWall probes the columns just left and right of the box.
// rightSelected picks the right wall unless the left also touches and the
// caller did not ask for right priority.
func (s *CollisionSystem) TouchingWall(box entity.Box, preferRight bool) (touching, rightSelected bool) {
	ts := s.tileSize()
	x0, x1 := box.Cols(ts)
	y0, y1 := box.Rows(ts)
	reach := s.config.WallReach

	left, right := false, false
	for y := y0; y <= y1; y++ {
		if x0 > 0 && s.level.Classify(x0-1, y) == entity.TileSolid && box.X%ts < reach {
			left = true
		}
		if s.blockAt(x0-1, y) != nil {
			left = true
		}

		if x1+1 < s.level.Grid.Width && s.level.Classify(x1+1, y) == entity.TileSolid && box.Right()%ts >= ts-reach {
			right = true
		}
		if s.blockAt(x1+1, y) != nil {
			right = true
		}
	}

	rightSelected = right && !(!preferRight && left)
	return left || right, rightSelected
}

// blockAt returns the undestroyed destructible block in a tile cell, or nil
func (s *CollisionSystem) blockAt(tx, ty int) *entity.DestructibleBlock {
	ts := s.tileSize()
	for _, b := range s.level.Destructible {
		bx, by := entity.CellOf(b, ts)
		if bx == tx && by == ty && !b.IsDestroyed() {
			return b
		}
	}
	return nil
}

// destroyBlockAt starts crumbling every undestroyed block in a cell
func (s *CollisionSystem) destroyBlockAt(tx, ty int) bool {
	ts := s.tileSize()
	hit := false
	for _, b := range s.level.Destructible {
		bx, by := entity.CellOf(b, ts)
		if bx == tx && by == ty && !b.IsDestroyed() {
			b.Destroy()
			hit = true
		}
	}
	return hit
}

func (s *CollisionSystem) inFootprint(box entity.Box, o entity.LevelObject) bool {
	ts := s.tileSize()
	x0, x1 := box.Cols(ts)
	y0, y1 := box.Rows(ts)
	ox, oy := entity.CellOf(o, ts)
	return ox >= x0 && ox <= x1 && oy >= y0 && oy <= y1
}
