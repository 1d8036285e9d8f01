package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameFile is the name of the main config file
const GameFile = "game.yaml"

// Loader loads game configuration and levels using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem levels and tilesheets are read from
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadGame loads game.yaml on top of the defaults
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, GameFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", GameFile, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", GameFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", GameFile, err)
	}

	return cfg, nil
}

// Validate checks values the game cannot run without
func (c *GameConfig) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive")
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("framerate must be positive")
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("player size must be positive")
	}
	if c.Collision.Slack < 0 || c.Collision.WallReach < 0 {
		return fmt.Errorf("collision tolerances must not be negative")
	}
	for _, group := range [][]BandConfig{c.Tiles.Solid, c.Tiles.Hazard, c.Tiles.Cloud} {
		for _, b := range group {
			if b.Low > b.High {
				return fmt.Errorf("tile band %d..%d is empty", b.Low, b.High)
			}
		}
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("no levels listed")
	}
	return nil
}
