package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display   DisplayConfig   `yaml:"display"`
	Physics   PhysicsSettings `yaml:"physics"`
	Movement  MovementConfig  `yaml:"movement"`
	Jump      JumpConfig      `yaml:"jump"`
	Dash      DashConfig      `yaml:"dash"`
	Bounce    BounceConfig    `yaml:"bounce"`
	Player    PlayerConfig    `yaml:"player"`
	Collision CollisionConfig `yaml:"collision"`
	Tiles     TilesConfig     `yaml:"tiles"`
	Objects   ObjectsConfig   `yaml:"objects"`
	Levels    []string        `yaml:"levels"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

type PhysicsSettings struct {
	Gravity        float64 `yaml:"gravity"`
	MaxFallSpeed   float64 `yaml:"maxFallSpeed"`
	WallSlideSpeed float64 `yaml:"wallSlideSpeed"`
}

type MovementConfig struct {
	Acceleration float64 `yaml:"acceleration"`
	Deceleration float64 `yaml:"deceleration"`
	MaxSpeed     float64 `yaml:"maxSpeed"`
	AirControl   float64 `yaml:"airControl"`
}

type JumpConfig struct {
	Force                  float64 `yaml:"force"`
	VariableJumpMultiplier float64 `yaml:"variableJumpMultiplier"`
	CoyoteTime             float64 `yaml:"coyoteTime"`
	JumpBuffer             float64 `yaml:"jumpBuffer"`
	WallJumpSpeed          float64 `yaml:"wallJumpSpeed"` // horizontal kick off a wall
	WallJumpLock           float64 `yaml:"wallJumpLock"`  // seconds input is ignored after a wall jump
}

type DashConfig struct {
	Speed    float64 `yaml:"speed"`
	Duration float64 `yaml:"duration"`
}

// BounceConfig configures the launch given by bouncers
type BounceConfig struct {
	Force float64 `yaml:"force"`
}

type PlayerConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CollisionConfig tunes the tile collision tests
type CollisionConfig struct {
	// Slack is the penetration, in world units, tolerated before a solid
	// tile registers on a directional move.
	Slack int `yaml:"slack"`
	// WallReach is how close to a tile boundary the box edge must be for a
	// wall to count as touched.
	WallReach int `yaml:"wallReach"`
}

// BandConfig is an inclusive tile ID range
type BandConfig struct {
	Low  int `yaml:"low"`
	High int `yaml:"high"`
}

// TilesConfig assigns tile ID ranges to collision classes
type TilesConfig struct {
	Solid  []BandConfig `yaml:"solid"`
	Hazard []BandConfig `yaml:"hazard"`
	Cloud  []BandConfig `yaml:"cloud"`
}

// ObjectsConfig holds level object durations in milliseconds
type ObjectsConfig struct {
	CompressMs     int `yaml:"compressMs"`
	CrumbleStageMs int `yaml:"crumbleStageMs"`
	FlagWaveMs     int `yaml:"flagWaveMs"`
}

// Default returns the built-in configuration. Loaded files override it.
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  320,
			ScreenHeight: 320,
			Scale:        2,
			Framerate:    60,
		},
		Physics: PhysicsSettings{
			Gravity:        900,
			MaxFallSpeed:   320,
			WallSlideSpeed: 60,
		},
		Movement: MovementConfig{
			Acceleration: 1500,
			Deceleration: 2000,
			MaxSpeed:     110,
			AirControl:   0.7,
		},
		Jump: JumpConfig{
			Force:                  300,
			VariableJumpMultiplier: 0.45,
			CoyoteTime:             0.1,
			JumpBuffer:             0.1,
			WallJumpSpeed:          140,
			WallJumpLock:           0.15,
		},
		Dash: DashConfig{
			Speed:    280,
			Duration: 0.15,
		},
		Bounce: BounceConfig{
			Force: 420,
		},
		Player: PlayerConfig{
			Width:  12,
			Height: 14,
		},
		Collision: CollisionConfig{
			Slack:     10,
			WallReach: 4,
		},
		Tiles: TilesConfig{
			Solid:  []BandConfig{{Low: 1, High: 17}, {Low: 23, High: 25}},
			Hazard: []BandConfig{{Low: 34, High: 37}},
			Cloud:  []BandConfig{{Low: 41, High: 42}},
		},
		Objects: ObjectsConfig{
			CompressMs:     250,
			CrumbleStageMs: 200,
			FlagWaveMs:     400,
		},
		Levels: []string{"levels/level01.txt"},
	}
}
