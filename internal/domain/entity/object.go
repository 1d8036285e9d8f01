package entity

// ObjectKind identifies a level object variant
type ObjectKind int

const (
	KindBouncer ObjectKind = iota
	KindFlag
	KindBalloon
	KindDestructible
)

// String returns the string representation of the object kind
func (k ObjectKind) String() string {
	switch k {
	case KindBouncer:
		return "Bouncer"
	case KindFlag:
		return "Flag"
	case KindBalloon:
		return "Balloon"
	case KindDestructible:
		return "DestructibleBlock"
	default:
		return "Unknown"
	}
}

// Level file markers that spawn objects
const (
	MarkerBouncer      = 'E'
	MarkerFlag         = '^'
	MarkerBalloon      = 'N'
	MarkerDestructible = 'G'
)

// Sheet tiles used to draw objects
const (
	SpriteBouncer         TileID = 'E' - '0'
	SpriteBouncerSquashed TileID = 'F' - '0'
	SpriteFlag            TileID = '^' - '0'
	SpriteFlagWave        TileID = '_' - '0'
	SpriteBalloonHead     TileID = 'N' - '0'
	SpriteBalloonHandle   TileID = 'O' - '0'
	SpriteBlock           TileID = 'G' - '0'
	SpriteBlockCrumble1   TileID = 'H' - '0'
	SpriteBlockCrumble2   TileID = 'I' - '0'
)

// TileDrawer draws one sheet tile at a level-local world position
type TileDrawer interface {
	DrawTile(id TileID, x, y int)
}

// LevelObject is an interactive object spawned from the level file.
// The set of variants is closed: Bouncer, Flag, Balloon, DestructibleBlock.
type LevelObject interface {
	Kind() ObjectKind
	// Position returns the tile-aligned world position relative to the level origin
	Position() (x, y int)
	Update(deltaMs int)
	Render(d TileDrawer)

	levelObject()
}

// ObjectTimings configures object state machine durations in milliseconds
type ObjectTimings struct {
	CompressMs     int
	CrumbleStageMs int
	FlagWaveMs     int
}

// DefaultObjectTimings returns the stock durations
func DefaultObjectTimings() ObjectTimings {
	return ObjectTimings{
		CompressMs:     250,
		CrumbleStageMs: 200,
		FlagWaveMs:     400,
	}
}

// CellOf returns the tile cell an object occupies
func CellOf(o LevelObject, tileSize int) (tx, ty int) {
	x, y := o.Position()
	return x / tileSize, y / tileSize
}

type placed struct {
	x, y int
}

func (p placed) Position() (int, int) {
	return p.x, p.y
}

func (placed) levelObject() {}
