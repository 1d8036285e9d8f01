package entity

// Box is an axis-aligned box in level-local world units
type Box struct {
	X, Y int
	W, H int
}

// Right returns the last column covered by the box
func (b Box) Right() int {
	return b.X + b.W - 1
}

// Bottom returns the last row covered by the box
func (b Box) Bottom() int {
	return b.Y + b.H - 1
}

// Cols returns the tile column span of the box
func (b Box) Cols(tileSize int) (x0, x1 int) {
	return b.X / tileSize, b.Right() / tileSize
}

// Rows returns the tile row span of the box
func (b Box) Rows(tileSize int) (y0, y1 int) {
	return b.Y / tileSize, b.Bottom() / tileSize
}

// Body is the moving part of an entity.
// Position is integer world units, velocity is units per second.
type Body struct {
	X, Y   int
	VX, VY float64

	// Sub-pixel remainder carried between frames
	RemX, RemY float64

	OnGround    bool
	OnCeiling   bool
	OnWall      bool
	WallRight   bool
	FacingRight bool
	WasOnGround bool // For coyote time
}

// ApplyVelocity returns whole units to move this frame and keeps the fraction
func (b *Body) ApplyVelocity(dt float64) (dx, dy int) {
	fx := b.VX*dt + b.RemX
	fy := b.VY*dt + b.RemY
	dx = int(fx)
	dy = int(fy)
	b.RemX = fx - float64(dx)
	b.RemY = fy - float64(dy)
	return dx, dy
}

// Player is the entity steered by input and resolved against the level
type Player struct {
	Body
	W, H int

	// Timers (seconds)
	CoyoteTimer     float64
	JumpBufferTimer float64
	DashTimer       float64
	WallJumpTimer   float64

	// State
	Dashing      bool
	CanDash      bool
	WallSliding  bool
	Invulnerable bool // god mode
	Dead         bool

	// Respawn point in world units, moved by checkpoints
	SpawnX, SpawnY int
}

// NewPlayer creates a player at the given world position
func NewPlayer(x, y, w, h int) *Player {
	return &Player{
		Body: Body{
			X:           x,
			Y:           y,
			FacingRight: true,
		},
		W:       w,
		H:       h,
		CanDash: true,
		SpawnX:  x,
		SpawnY:  y,
	}
}

// Box returns the player's collision box
func (p *Player) Box() Box {
	return Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Respawn resets the player to its current spawn point
func (p *Player) Respawn() {
	p.X, p.Y = p.SpawnX, p.SpawnY
	p.VX, p.VY = 0, 0
	p.RemX, p.RemY = 0, 0
	p.Dashing = false
	p.DashTimer = 0
	p.CanDash = true
	p.WallSliding = false
	p.Dead = false
}
