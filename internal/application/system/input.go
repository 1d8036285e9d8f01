package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/summit/internal/domain/entity"
	"github.com/younwookim/summit/internal/infrastructure/config"
)

// InputSystem handles player input
type InputSystem struct {
	config *config.GameConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.GameConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// InputState holds the current input state
type InputState struct {
	Left         bool
	Right        bool
	Up           bool
	Down         bool
	Jump         bool
	JumpPressed  bool
	JumpReleased bool
	Dash         bool
	ToggleGod    bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:         ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:        ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:           ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:         ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Jump:         ebiten.IsKeyPressed(ebiten.KeyC),
		JumpPressed:  inpututil.IsKeyJustPressed(ebiten.KeyC),
		JumpReleased: inpututil.IsKeyJustReleased(ebiten.KeyC),
		Dash:         inpututil.IsKeyJustPressed(ebiten.KeyX),
		ToggleGod:    inpututil.IsKeyJustPressed(ebiten.KeyG),
	}
}

// UpdatePlayer updates the player based on input
func (s *InputSystem) UpdatePlayer(player *entity.Player, input InputState, dt float64) {
	if player.Dead {
		return
	}

	if input.ToggleGod {
		player.Invulnerable = !player.Invulnerable
	}

	// Update timers
	s.updateTimers(player, dt)

	// Skip movement input if dashing
	if player.Dashing {
		return
	}

	// Horizontal movement, locked briefly after a wall jump
	if player.WallJumpTimer <= 0 {
		s.handleMovement(player, input, dt)
	}

	s.handleWallSlide(player, input)

	// Jump
	s.handleJump(player, input)

	// Dash
	s.handleDash(player, input)
}

// updateTimers updates various player timers
func (s *InputSystem) updateTimers(player *entity.Player, dt float64) {
	// Coyote time
	if player.OnGround {
		player.CoyoteTimer = s.config.Jump.CoyoteTime
	} else if player.CoyoteTimer > 0 {
		player.CoyoteTimer -= dt
	}

	// Jump buffer
	if player.JumpBufferTimer > 0 {
		player.JumpBufferTimer -= dt
	}

	// Dash
	if player.DashTimer > 0 {
		player.DashTimer -= dt
		if player.DashTimer <= 0 {
			player.Dashing = false
		}
	}

	if player.WallJumpTimer > 0 {
		player.WallJumpTimer -= dt
	}

	// Reset dash on ground
	if player.OnGround {
		player.CanDash = true
	}
}

// handleMovement handles horizontal movement
func (s *InputSystem) handleMovement(player *entity.Player, input InputState, dt float64) {
	targetVX := 0.0
	maxSpeed := s.config.Movement.MaxSpeed

	if input.Left {
		targetVX = -maxSpeed
		player.FacingRight = false
	}
	if input.Right {
		targetVX = maxSpeed
		player.FacingRight = true
	}

	accel := s.config.Movement.Acceleration
	if targetVX == 0 {
		accel = s.config.Movement.Deceleration
	}

	// Air control
	if !player.OnGround {
		accel *= s.config.Movement.AirControl
	}

	// Approach target velocity
	delta := accel * dt
	if player.VX < targetVX {
		player.VX += delta
		if player.VX > targetVX {
			player.VX = targetVX
		}
	} else if player.VX > targetVX {
		player.VX -= delta
		if player.VX < targetVX {
			player.VX = targetVX
		}
	}
}

// handleWallSlide slows the fall while pushing into a wall in the air
func (s *InputSystem) handleWallSlide(player *entity.Player, input InputState) {
	pushing := (player.WallRight && input.Right) || (!player.WallRight && input.Left)
	player.WallSliding = player.OnWall && !player.OnGround && player.VY > 0 && pushing
}

// handleJump handles jumping
func (s *InputSystem) handleJump(player *entity.Player, input InputState) {
	// Buffer jump input
	if input.JumpPressed {
		player.JumpBufferTimer = s.config.Jump.JumpBuffer
	}

	// Can jump if on ground or has coyote time
	canJump := player.OnGround || player.CoyoteTimer > 0
	wantsJump := player.JumpBufferTimer > 0

	switch {
	case canJump && wantsJump:
		player.VY = -s.config.Jump.Force
		player.OnGround = false
		player.CoyoteTimer = 0
		player.JumpBufferTimer = 0
	case wantsJump && player.OnWall:
		// Kick away from the wall
		dir := 1.0
		if player.WallRight {
			dir = -1.0
		}
		player.VY = -s.config.Jump.Force
		player.VX = dir * s.config.Jump.WallJumpSpeed
		player.FacingRight = dir > 0
		player.WallSliding = false
		player.WallJumpTimer = s.config.Jump.WallJumpLock
		player.JumpBufferTimer = 0
	}

	// Variable jump height (release to reduce upward velocity)
	if input.JumpReleased && player.VY < 0 {
		player.VY *= s.config.Jump.VariableJumpMultiplier
	}
}

// handleDash handles dashing in any of eight directions
func (s *InputSystem) handleDash(player *entity.Player, input InputState) {
	if !input.Dash || !player.CanDash {
		return
	}

	dx, dy := 0.0, 0.0
	if input.Left {
		dx = -1
	}
	if input.Right {
		dx = 1
	}
	if input.Up {
		dy = -1
	}
	if input.Down {
		dy = 1
	}
	if dx == 0 && dy == 0 {
		dx = 1
		if !player.FacingRight {
			dx = -1
		}
	}
	if dx != 0 && dy != 0 {
		// Diagonal dashes cover the same distance
		dx *= diagonal
		dy *= diagonal
	}

	// Start dash
	player.Dashing = true
	player.DashTimer = s.config.Dash.Duration
	player.CanDash = false
	player.WallSliding = false
	player.VX = dx * s.config.Dash.Speed
	player.VY = dy * s.config.Dash.Speed
}

const diagonal = 0.70710678118654752
