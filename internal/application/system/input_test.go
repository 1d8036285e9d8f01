package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/summit/internal/domain/entity"
	"github.com/younwookim/summit/internal/infrastructure/config"
)

const frame = 1.0 / 60.0

func createTestPlayerForInput() *entity.Player {
	return entity.NewPlayer(32, 32, 12, 14)
}

func createTestInputConfig() *config.GameConfig {
	return config.Default()
}

func TestNewInputSystem(t *testing.T) {
	cfg := createTestInputConfig()

	sys := NewInputSystem(cfg)

	require.NotNil(t, sys)
	assert.Equal(t, cfg, sys.config)
}

func TestInputSystem_UpdateTimers(t *testing.T) {
	cfg := createTestInputConfig()
	sys := NewInputSystem(cfg)

	t.Run("decrements coyote timer when in air", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.CoyoteTimer = 0.1
		player.OnGround = false

		sys.updateTimers(player, 0.05)

		assert.InDelta(t, 0.05, player.CoyoteTimer, 0.001)
	})

	t.Run("resets coyote timer when on ground", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.CoyoteTimer = 0.0
		player.OnGround = true

		sys.updateTimers(player, 0.016)

		assert.Equal(t, cfg.Jump.CoyoteTime, player.CoyoteTimer)
	})

	t.Run("decrements dash timer", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.DashTimer = 0.1
		player.Dashing = true

		sys.updateTimers(player, 0.05)

		assert.InDelta(t, 0.05, player.DashTimer, 0.001)
		assert.True(t, player.Dashing)
	})

	t.Run("ends dash when timer expires", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.DashTimer = 0.01
		player.Dashing = true

		sys.updateTimers(player, 0.02)

		assert.False(t, player.Dashing)
	})

	t.Run("restores dash on ground", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.CanDash = false
		player.OnGround = true

		sys.updateTimers(player, 0.016)

		assert.True(t, player.CanDash)
	})

	t.Run("decrements wall jump lock", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.WallJumpTimer = 0.15

		sys.updateTimers(player, 0.1)

		assert.InDelta(t, 0.05, player.WallJumpTimer, 0.001)
	})
}

func TestInputSystem_HandleMovement(t *testing.T) {
	cfg := createTestInputConfig()
	sys := NewInputSystem(cfg)

	t.Run("accelerates right", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.VX = 0
		player.OnGround = true

		sys.handleMovement(player, InputState{Right: true}, frame)

		assert.InDelta(t, cfg.Movement.Acceleration*frame, player.VX, 0.001)
		assert.True(t, player.FacingRight)
	})

	t.Run("accelerates left", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.VX = 0
		player.OnGround = true

		sys.handleMovement(player, InputState{Left: true}, frame)

		assert.Less(t, player.VX, 0.0)
		assert.False(t, player.FacingRight)
	})

	t.Run("caps at max speed", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.OnGround = true

		for i := 0; i < 60; i++ {
			sys.handleMovement(player, InputState{Right: true}, frame)
		}

		assert.Equal(t, cfg.Movement.MaxSpeed, player.VX)
	})

	t.Run("decelerates when no input", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.VX = 100
		player.OnGround = true

		sys.handleMovement(player, InputState{}, frame)

		assert.Less(t, player.VX, 100.0)
	})

	t.Run("air control reduces acceleration", func(t *testing.T) {
		ground := createTestPlayerForInput()
		ground.OnGround = true
		air := createTestPlayerForInput()
		air.OnGround = false

		sys.handleMovement(ground, InputState{Right: true}, frame)
		sys.handleMovement(air, InputState{Right: true}, frame)

		assert.Greater(t, air.VX, 0.0)
		assert.Less(t, air.VX, ground.VX)
	})
}

func TestInputSystem_DecelerationToZero(t *testing.T) {
	cfg := createTestInputConfig()
	sys := NewInputSystem(cfg)

	player := createTestPlayerForInput()
	player.OnGround = true
	player.VX = 50

	for i := 0; i < 100; i++ {
		sys.handleMovement(player, InputState{}, frame)
	}

	assert.Equal(t, 0.0, player.VX)
}

func TestInputSystem_HandleJump(t *testing.T) {
	cfg := createTestInputConfig()
	sys := NewInputSystem(cfg)

	t.Run("jumps when on ground", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.OnGround = true
		player.JumpBufferTimer = 0.05

		sys.handleJump(player, InputState{})

		assert.Equal(t, -cfg.Jump.Force, player.VY)
		assert.False(t, player.OnGround)
		assert.Equal(t, 0.0, player.JumpBufferTimer)
	})

	t.Run("jumps with coyote time", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.OnGround = false
		player.CoyoteTimer = 0.05
		player.JumpBufferTimer = 0.05

		sys.handleJump(player, InputState{})

		assert.Equal(t, -cfg.Jump.Force, player.VY)
		assert.Equal(t, 0.0, player.CoyoteTimer)
	})

	t.Run("buffers jump when pressed", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.OnGround = false
		player.JumpBufferTimer = 0

		sys.handleJump(player, InputState{JumpPressed: true})

		assert.Equal(t, cfg.Jump.JumpBuffer, player.JumpBufferTimer)
		assert.Equal(t, 0.0, player.VY)
	})

	t.Run("wall jump kicks away from right wall", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.OnWall = true
		player.WallRight = true
		player.WallSliding = true
		player.JumpBufferTimer = 0.05

		sys.handleJump(player, InputState{})

		assert.Equal(t, -cfg.Jump.Force, player.VY)
		assert.Equal(t, -cfg.Jump.WallJumpSpeed, player.VX)
		assert.False(t, player.FacingRight)
		assert.False(t, player.WallSliding)
		assert.Equal(t, cfg.Jump.WallJumpLock, player.WallJumpTimer)
	})

	t.Run("wall jump kicks away from left wall", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.OnWall = true
		player.WallRight = false
		player.JumpBufferTimer = 0.05

		sys.handleJump(player, InputState{})

		assert.Equal(t, cfg.Jump.WallJumpSpeed, player.VX)
		assert.True(t, player.FacingRight)
	})

	t.Run("variable jump reduces velocity on release", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.VY = -200

		sys.handleJump(player, InputState{JumpReleased: true})

		assert.Equal(t, -200*cfg.Jump.VariableJumpMultiplier, player.VY)
	})

	t.Run("variable jump only affects upward velocity", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.VY = 100 // Falling

		sys.handleJump(player, InputState{JumpReleased: true})

		assert.Equal(t, 100.0, player.VY) // Unchanged
	})

	t.Run("cannot jump without buffer or ground", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.OnGround = false
		player.CoyoteTimer = 0
		player.JumpBufferTimer = 0
		player.VY = 0

		sys.handleJump(player, InputState{})

		assert.Equal(t, 0.0, player.VY)
	})
}

func TestInputSystem_HandleWallSlide(t *testing.T) {
	sys := NewInputSystem(createTestInputConfig())

	tests := []struct {
		name      string
		onWall    bool
		wallRight bool
		onGround  bool
		vy        float64
		input     InputState
		want      bool
	}{
		{"pushing into right wall while falling", true, true, false, 50, InputState{Right: true}, true},
		{"pushing into left wall while falling", true, false, false, 50, InputState{Left: true}, true},
		{"pushing away from wall", true, true, false, 50, InputState{Left: true}, false},
		{"rising", true, true, false, -50, InputState{Right: true}, false},
		{"on ground", true, true, true, 50, InputState{Right: true}, false},
		{"no wall", false, true, false, 50, InputState{Right: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := createTestPlayerForInput()
			player.OnWall = tt.onWall
			player.WallRight = tt.wallRight
			player.OnGround = tt.onGround
			player.VY = tt.vy

			sys.handleWallSlide(player, tt.input)

			assert.Equal(t, tt.want, player.WallSliding)
		})
	}
}

func TestInputSystem_HandleDash(t *testing.T) {
	cfg := createTestInputConfig()
	sys := NewInputSystem(cfg)

	t.Run("dashes forward without direction", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.FacingRight = true

		sys.handleDash(player, InputState{Dash: true})

		assert.True(t, player.Dashing)
		assert.False(t, player.CanDash)
		assert.Equal(t, cfg.Dash.Duration, player.DashTimer)
		assert.Equal(t, cfg.Dash.Speed, player.VX)
		assert.Equal(t, 0.0, player.VY)
	})

	t.Run("dashes left when facing left", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.FacingRight = false

		sys.handleDash(player, InputState{Dash: true})

		assert.Equal(t, -cfg.Dash.Speed, player.VX)
	})

	t.Run("dashes straight up", func(t *testing.T) {
		player := createTestPlayerForInput()

		sys.handleDash(player, InputState{Dash: true, Up: true})

		assert.Equal(t, 0.0, player.VX)
		assert.Equal(t, -cfg.Dash.Speed, player.VY)
	})

	t.Run("diagonal dash keeps speed", func(t *testing.T) {
		player := createTestPlayerForInput()

		sys.handleDash(player, InputState{Dash: true, Right: true, Up: true})

		speed := player.VX*player.VX + player.VY*player.VY
		assert.InDelta(t, cfg.Dash.Speed*cfg.Dash.Speed, speed, 0.01)
		assert.Greater(t, player.VX, 0.0)
		assert.Less(t, player.VY, 0.0)
	})

	t.Run("cannot dash when can dash is false", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.CanDash = false

		sys.handleDash(player, InputState{Dash: true})

		assert.False(t, player.Dashing)
	})
}

func TestInputSystem_UpdatePlayer(t *testing.T) {
	cfg := createTestInputConfig()
	sys := NewInputSystem(cfg)

	t.Run("toggles god mode", func(t *testing.T) {
		player := createTestPlayerForInput()

		sys.UpdatePlayer(player, InputState{ToggleGod: true}, frame)
		assert.True(t, player.Invulnerable)

		sys.UpdatePlayer(player, InputState{ToggleGod: true}, frame)
		assert.False(t, player.Invulnerable)
	})

	t.Run("no movement when dashing", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.VX = 300
		player.Dashing = true
		player.DashTimer = 0.1

		sys.UpdatePlayer(player, InputState{Left: true}, frame)

		assert.Equal(t, 300.0, player.VX)
	})

	t.Run("input locked after wall jump", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.VX = 140
		player.WallJumpTimer = 0.15

		sys.UpdatePlayer(player, InputState{Left: true}, frame)

		assert.Equal(t, 140.0, player.VX)
	})

	t.Run("dead player ignores input", func(t *testing.T) {
		player := createTestPlayerForInput()
		player.Dead = true

		sys.UpdatePlayer(player, InputState{Right: true, ToggleGod: true}, frame)

		assert.Equal(t, 0.0, player.VX)
		assert.False(t, player.Invulnerable)
	})
}
