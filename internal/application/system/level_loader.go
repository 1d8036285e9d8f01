package system

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"log"
	"strings"

	"github.com/younwookim/summit/internal/domain/entity"
	"github.com/younwookim/summit/internal/infrastructure/config"
)

// LevelMagic is the tag every level file starts with
const LevelMagic = "TILEMAP"

var (
	// ErrFileNotFound is returned when the level source cannot be opened
	ErrFileNotFound = errors.New("level file not found")
	// ErrFormat matches every *FormatError
	ErrFormat = errors.New("level format error")
)

// FormatError reports a malformed level file
type FormatError struct {
	Line   int // 1-based
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("level format error at line %d: %s", e.Line, e.Reason)
}

// Is lets errors.Is(err, ErrFormat) match any FormatError
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// LoadOptions controls how a level is placed and configured
type LoadOptions struct {
	Origin  image.Point // world offset of tile (0,0)
	Timings entity.ObjectTimings
	Bands   entity.TileBands // zero value selects the default bands
}

// NewLoadOptions builds load options from the game config
func NewLoadOptions(cfg *config.GameConfig, origin image.Point) LoadOptions {
	return LoadOptions{
		Origin: origin,
		Timings: entity.ObjectTimings{
			CompressMs:     cfg.Objects.CompressMs,
			CrumbleStageMs: cfg.Objects.CrumbleStageMs,
			FlagWaveMs:     cfg.Objects.FlagWaveMs,
		},
		Bands: entity.TileBands{
			Solid:  bandsFromConfig(cfg.Tiles.Solid),
			Hazard: bandsFromConfig(cfg.Tiles.Hazard),
			Cloud:  bandsFromConfig(cfg.Tiles.Cloud),
		},
	}
}

func bandsFromConfig(bands []config.BandConfig) []entity.Band {
	out := make([]entity.Band, len(bands))
	for i, b := range bands {
		out[i] = entity.Band{Low: entity.TileID(b.Low), High: entity.TileID(b.High)}
	}
	return out
}

// LoadLevel opens a level file from fsys and parses it
func LoadLevel(fsys fs.FS, path string, opts LoadOptions) (*entity.Level, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	defer func() { _ = f.Close() }()

	lvl, err := ParseLevel(f, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", path, err)
	}

	log.Printf("Level loaded: %s (%dx%d, %d bouncers, %d flags, %d balloons, %d blocks)",
		path, lvl.Grid.Width, lvl.Grid.Height,
		len(lvl.Bouncers), len(lvl.Flags), len(lvl.Balloons), len(lvl.Destructible))
	return lvl, nil
}

// ParseLevel reads a TILEMAP level description.
// Nothing is returned unless the whole grid was read.
func ParseLevel(r io.Reader, opts LoadOptions) (*entity.Level, error) {
	p := &levelParser{scanner: bufio.NewScanner(r)}
	p.scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	magic, err := p.next("magic tag")
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(magic, LevelMagic) {
		return nil, p.fail("missing %s tag", LevelMagic)
	}

	var width, height, tileSize, blockSize, spawnX, spawnY, sheetCols, sheetRows int
	if err := p.ints("grid size", &width, &height); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, p.fail("invalid grid size %dx%d", width, height)
	}
	if err := p.ints("tile size", &tileSize, &blockSize); err != nil {
		return nil, err
	}
	if tileSize <= 0 {
		return nil, p.fail("invalid tile size %d", tileSize)
	}
	if err := p.ints("player spawn", &spawnX, &spawnY); err != nil {
		return nil, err
	}
	sheetLine, err := p.next("tilesheet path")
	if err != nil {
		return nil, err
	}
	sheetFields := strings.Fields(sheetLine)
	if len(sheetFields) == 0 {
		return nil, p.fail("empty tilesheet path")
	}
	if err := p.ints("tilesheet size", &sheetCols, &sheetRows); err != nil {
		return nil, err
	}
	if sheetCols <= 0 || sheetRows <= 0 {
		return nil, p.fail("invalid tilesheet size %dx%d", sheetCols, sheetRows)
	}

	// Grown per row, the header size is not trusted
	var (
		tiles    []entity.TileID
		bouncers []*entity.Bouncer
		flags    []*entity.Flag
		balloons []*entity.Balloon
		blocks   []*entity.DestructibleBlock
	)
	for j := 0; j < height; j++ {
		row, err := p.next(fmt.Sprintf("row %d of %d", j+1, height))
		if err != nil {
			return nil, err
		}
		if len(row) < width {
			return nil, p.fail("row %d has %d columns, want %d", j+1, len(row), width)
		}
		for i := 0; i < width; i++ {
			x, y := i*tileSize, j*tileSize
			var id entity.TileID
			switch c := row[i]; c {
			case entity.MarkerBouncer:
				bouncers = append(bouncers, entity.NewBouncer(x, y, opts.Timings))
			case entity.MarkerFlag:
				flags = append(flags, entity.NewFlag(x, y, opts.Timings))
			case entity.MarkerBalloon:
				balloons = append(balloons, entity.NewBalloon(x, y, tileSize))
			case entity.MarkerDestructible:
				blocks = append(blocks, entity.NewDestructibleBlock(x, y, opts.Timings))
			default:
				id = tileFromChar(c)
			}
			tiles = append(tiles, id)
		}
	}

	grid, err := entity.NewTileGrid(width, height, tileSize, blockSize, tiles)
	if err != nil {
		return nil, p.fail("%v", err)
	}

	lvl := entity.NewLevel(grid)
	if len(opts.Bands.Solid)+len(opts.Bands.Hazard)+len(opts.Bands.Cloud) > 0 {
		lvl.Bands = opts.Bands
	}
	lvl.Origin = opts.Origin
	lvl.SpawnTile = image.Pt(spawnX, spawnY)
	lvl.TilesheetPath = sheetFields[0]
	lvl.SheetCols = sheetCols
	lvl.SheetRows = sheetRows
	lvl.Bouncers = bouncers
	lvl.Flags = flags
	lvl.Balloons = balloons
	lvl.Destructible = blocks
	return lvl, nil
}

// tileFromChar maps a non-spawning level character to a tile ID.
// Balloon handles (O, P), crumble frames (H, I) and the unused
// markers J, K, L, M, B are placeholders and load as empty cells.
func tileFromChar(c byte) entity.TileID {
	switch c {
	case ' ', 'O', 'P', 'H', 'I', 'J', 'K', 'L', 'M', 'B':
		return 0
	}
	return entity.TileID(int(c) - '0')
}

type levelParser struct {
	scanner *bufio.Scanner
	line    int
}

func (p *levelParser) next(what string) (string, error) {
	if !p.scanner.Scan() {
		err := p.scanner.Err()
		p.line++
		if errors.Is(err, bufio.ErrTooLong) {
			return "", p.fail("line too long reading %s", what)
		}
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", what, err)
		}
		return "", p.fail("unexpected end of file reading %s", what)
	}
	p.line++
	return p.scanner.Text(), nil
}

func (p *levelParser) ints(what string, dst ...*int) error {
	line, err := p.next(what)
	if err != nil {
		return err
	}
	args := make([]any, len(dst))
	for i, d := range dst {
		args[i] = d
	}
	if _, err := fmt.Sscan(line, args...); err != nil {
		return p.fail("bad %s %q", what, line)
	}
	return nil
}

func (p *levelParser) fail(format string, args ...any) error {
	return &FormatError{Line: p.line, Reason: fmt.Sprintf(format, args...)}
}
