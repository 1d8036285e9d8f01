package entity

// TileID is the raw value stored in a grid cell. 0 means empty.
type TileID int

// TileClass is the collision meaning of a tile ID
type TileClass int

const (
	TileEmpty TileClass = iota
	TileSolid
	TileHazard
	TileCloud // solid only when falling onto it
	TileOther
)

// String returns the string representation of the tile class
func (c TileClass) String() string {
	switch c {
	case TileEmpty:
		return "Empty"
	case TileSolid:
		return "Solid"
	case TileHazard:
		return "Hazard"
	case TileCloud:
		return "Cloud"
	case TileOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Default band thresholds. Ranges are inclusive.
const (
	SolidLow       TileID = 1
	SolidHigh      TileID = 17
	BlockSolidLow  TileID = 23
	BlockSolidHigh TileID = 25
	SpikeLow       TileID = 'R' - '0'
	SpikeCount            = 4
	CloudLow       TileID = 41
	CloudHigh      TileID = 42
)

// Band is an inclusive range of tile IDs
type Band struct {
	Low  TileID
	High TileID
}

// Contains reports whether id falls inside the band
func (b Band) Contains(id TileID) bool {
	return id >= b.Low && id <= b.High
}

// TileBands maps tile ID ranges to collision classes
type TileBands struct {
	Solid  []Band
	Hazard []Band
	Cloud  []Band
}

// DefaultTileBands returns the bands used by the stock tilesheet
func DefaultTileBands() TileBands {
	return TileBands{
		Solid: []Band{
			{Low: SolidLow, High: SolidHigh},
			{Low: BlockSolidLow, High: BlockSolidHigh},
		},
		Hazard: []Band{
			{Low: SpikeLow, High: SpikeLow + SpikeCount - 1},
		},
		Cloud: []Band{
			{Low: CloudLow, High: CloudHigh},
		},
	}
}

// Classify returns the collision class of a tile ID
func (tb TileBands) Classify(id TileID) TileClass {
	if id == 0 {
		return TileEmpty
	}
	if inAny(tb.Solid, id) {
		return TileSolid
	}
	if inAny(tb.Hazard, id) {
		return TileHazard
	}
	if inAny(tb.Cloud, id) {
		return TileCloud
	}
	return TileOther
}

// Classify classifies id against the default bands
func Classify(id TileID) TileClass {
	return defaultBands.Classify(id)
}

var defaultBands = DefaultTileBands()

func inAny(bands []Band, id TileID) bool {
	for _, b := range bands {
		if b.Contains(id) {
			return true
		}
	}
	return false
}
