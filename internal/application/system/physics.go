package system

import (
	"github.com/younwookim/summit/internal/domain/entity"
	"github.com/younwookim/summit/internal/infrastructure/config"
)

// PhysicsEvents reports what happened to the player during one step
type PhysicsEvents struct {
	Bounced    bool
	Refilled   bool // dash restored by a balloon
	Checkpoint bool // spawn point moved to a new flag
	Died       bool
	Won        bool
}

// PhysicsSystem moves the player through the level.
// All tile and object collision goes through the CollisionSystem.
type PhysicsSystem struct {
	config    *config.GameConfig
	collision *CollisionSystem
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.GameConfig, collision *CollisionSystem) *PhysicsSystem {
	return &PhysicsSystem{
		config:    cfg,
		collision: collision,
	}
}

// Update applies one physics step to the player
func (s *PhysicsSystem) Update(player *entity.Player, dt float64) PhysicsEvents {
	var events PhysicsEvents
	if player.Dead {
		return events
	}

	// Store previous ground state for coyote time
	player.WasOnGround = player.OnGround

	s.applyGravity(player, dt)

	// Get units to move this frame
	dx, dy := player.ApplyVelocity(dt)

	player.OnGround = false
	player.OnCeiling = false

	// Horizontal first, then vertical
	s.moveX(player, dx)
	s.moveY(player, dy)

	player.OnWall, player.WallRight = s.collision.TouchingWall(player.Box(), player.FacingRight)
	if player.OnGround {
		player.WallSliding = false
	}

	s.interact(player, &events)
	return events
}

// applyGravity applies gravity acceleration to the player
func (s *PhysicsSystem) applyGravity(player *entity.Player, dt float64) {
	if player.Dashing {
		return // No gravity during dash
	}

	player.VY += s.config.Physics.Gravity * dt

	maxFall := s.config.Physics.MaxFallSpeed
	if player.WallSliding {
		maxFall = s.config.Physics.WallSlideSpeed
	}
	if player.VY > maxFall {
		player.VY = maxFall
	}
}

// maxStep keeps every sweep within the collision slack so fast movers
// cannot skip over a tile edge
func (s *PhysicsSystem) maxStep() int {
	if s.config.Collision.Slack < 1 {
		return 1
	}
	return s.config.Collision.Slack
}

// moveX moves the player horizontally in slack-sized steps
func (s *PhysicsSystem) moveX(player *entity.Player, dx int) {
	step := s.maxStep()
	for dx != 0 {
		d := clamp(dx, -step, step)
		box := player.Box()
		box.X += d

		var hit bool
		var x int
		if d < 0 {
			hit, x = s.collision.MoveLeft(box)
		} else {
			hit, x = s.collision.MoveRight(box)
		}
		player.X = x
		if hit {
			player.VX = 0
			player.RemX = 0
			return
		}
		dx -= d
	}
}

// moveY moves the player vertically in slack-sized steps.
// A resting player probes one unit down so ground contact never flickers.
func (s *PhysicsSystem) moveY(player *entity.Player, dy int) {
	if dy == 0 && player.VY >= 0 {
		box := player.Box()
		box.Y++
		if hit, y := s.collision.MoveDown(box, player.Invulnerable); hit {
			s.land(player, y)
		}
		return
	}

	step := s.maxStep()
	for dy != 0 {
		d := clamp(dy, -step, step)
		box := player.Box()
		box.Y += d

		if d < 0 {
			if hit, y := s.collision.MoveUp(box); hit {
				player.Y = y
				player.VY = 0
				player.RemY = 0
				player.OnCeiling = true
				return
			}
		} else {
			if hit, y := s.collision.MoveDown(box, player.Invulnerable); hit {
				s.land(player, y)
				return
			}
		}
		player.Y = box.Y
		dy -= d
	}
}

func (s *PhysicsSystem) land(player *entity.Player, y int) {
	player.Y = y
	player.VY = 0
	player.RemY = 0
	player.OnGround = true
}

// interact applies hazards, objects and level outcomes at the new position
func (s *PhysicsSystem) interact(player *entity.Player, events *PhysicsEvents) {
	box := player.Box()
	level := s.collision.Level()

	if s.collision.HitsSpike(box, player.Invulnerable) || level.LevelLose() {
		player.Dead = true
		events.Died = true
		return
	}

	if s.collision.HitsBouncer(box) {
		player.VY = -s.config.Bounce.Force
		player.RemY = 0
		player.OnGround = false
		player.CanDash = true
		player.Dashing = false
		events.Bounced = true
	}

	if s.collision.HitsBalloon(box) {
		player.CanDash = true
		events.Refilled = true
	}

	if f := s.collision.FlagUnder(box); f != nil {
		fx, fy := f.Position()
		ts := level.Grid.TileSize
		sx, sy := fx+(ts-player.W)/2, fy+ts-player.H
		if sx != player.SpawnX || sy != player.SpawnY {
			player.SpawnX, player.SpawnY = sx, sy
			events.Checkpoint = true
		}
	}

	events.Won = level.LevelWin()
}

// Helper functions
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
