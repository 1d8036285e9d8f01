// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/summit/internal/application/replay"
	"github.com/younwookim/summit/internal/application/scene"
	"github.com/younwookim/summit/internal/application/state"
	"github.com/younwookim/summit/internal/application/system"
	"github.com/younwookim/summit/internal/domain/entity"
	"github.com/younwookim/summit/internal/infrastructure/config"
	"github.com/younwookim/summit/internal/infrastructure/render"
	"github.com/younwookim/summit/internal/infrastructure/watch"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorWall    = color.RGBA{80, 80, 100, 255}
	colorSpike   = color.RGBA{200, 50, 50, 255}
	colorCloud   = color.RGBA{200, 200, 230, 160}
	colorDecor   = color.RGBA{50, 60, 80, 255}
	colorPlayer  = color.RGBA{100, 200, 100, 255}
	colorGod     = color.RGBA{255, 215, 0, 255}
	colorNoDash  = color.RGBA{90, 140, 220, 255}
	colorOverlay = color.RGBA{0, 0, 0, 128}
)

// Fallback colors for object sprites when no tilesheet is loaded
var spriteColors = map[entity.TileID]color.RGBA{
	entity.SpriteBouncer:         {230, 140, 40, 255},
	entity.SpriteBouncerSquashed: {150, 90, 30, 255},
	entity.SpriteFlag:            {240, 240, 240, 255},
	entity.SpriteFlagWave:        {210, 210, 210, 255},
	entity.SpriteBalloonHead:     {220, 60, 120, 255},
	entity.SpriteBalloonHandle:   {120, 120, 120, 255},
	entity.SpriteBlock:           {150, 110, 70, 255},
	entity.SpriteBlockCrumble1:   {120, 90, 60, 255},
	entity.SpriteBlockCrumble2:   {90, 70, 50, 255},
}

const (
	respawnDelay = 0.5 // seconds
	clearDelay   = 1.0
)

// Options configures a Playing scene
type Options struct {
	LevelPath  string // empty starts at the first configured level
	RecordPath string
	Replay     *replay.ReplayData
	GodMode    bool
	Watcher    *watch.Watcher
	Headless   bool // skip tilesheet loading
}

// Playing is the main gameplay scene
type Playing struct {
	config   *config.GameConfig
	loader   *config.Loader
	levels   []string
	levelIdx int

	level         *entity.Level
	state         state.GameState
	stateTimer    float64
	player        *entity.Player
	collision     *system.CollisionSystem
	physicsSystem *system.PhysicsSystem
	inputSystem   *system.InputSystem

	headless bool
	textures map[string]*render.Texture
	batch    *render.TileBatch
	sprites  *render.SpriteDrawer

	screenW     int
	screenH     int
	dt          float64
	msRemainder float64
	deaths      int

	// Input recording and playback
	recorder       *Recorder
	recordFilename string
	replayer       *replay.Replayer

	watcher *watch.Watcher
}

// New creates a new Playing scene and loads its first level
func New(cfg *config.GameConfig, loader *config.Loader, opts Options) (*Playing, error) {
	p := &Playing{
		config:         cfg,
		loader:         loader,
		levels:         cfg.Levels,
		state:          state.StatePlaying,
		inputSystem:    system.NewInputSystem(cfg),
		headless:       opts.Headless,
		textures:       make(map[string]*render.Texture),
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		dt:             1.0 / float64(cfg.Display.Framerate),
		recordFilename: opts.RecordPath,
		watcher:        opts.Watcher,
	}

	levelPath := opts.LevelPath
	godMode := opts.GodMode
	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
		levelPath = opts.Replay.Level
		godMode = opts.Replay.GodMode
		log.Printf("Replaying %d frames on %s", p.replayer.TotalFrames(), levelPath)
	}
	if levelPath != "" {
		p.levels, p.levelIdx = resolveLevel(cfg.Levels, levelPath)
	}
	if len(p.levels) == 0 {
		return nil, fmt.Errorf("no levels to play")
	}

	if err := p.loadLevel(p.levelIdx); err != nil {
		return nil, err
	}
	p.player.Invulnerable = godMode

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(p.levels[p.levelIdx], godMode)
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}

	return p, nil
}

// resolveLevel finds path in the configured list, or plays it on its own
func resolveLevel(levels []string, path string) ([]string, int) {
	for i, l := range levels {
		if l == path {
			return levels, i
		}
	}
	return []string{path}, 0
}

// loadLevel reads a level from disk and places a fresh player at its spawn
func (p *Playing) loadLevel(idx int) error {
	lvl, err := system.LoadLevel(p.loader.FS(), p.levels[idx], system.NewLoadOptions(p.config, image.Point{}))
	if err != nil {
		return err
	}
	lvl.Origin = p.centerOrigin(lvl.Grid)

	godMode := p.player != nil && p.player.Invulnerable
	p.levelIdx = idx
	p.setLevel(lvl)

	ts := lvl.Grid.TileSize
	w, h := p.config.Player.Width, p.config.Player.Height
	sx, sy := lvl.SpawnPosition()
	p.player = entity.NewPlayer(sx+(ts-w)/2, sy+ts-h, w, h)
	p.player.Invulnerable = godMode
	return nil
}

// setLevel swaps in a level and rebuilds everything that refers to it
func (p *Playing) setLevel(lvl *entity.Level) {
	p.level = lvl
	p.collision = system.NewCollisionSystem(lvl, p.config.Collision)
	p.physicsSystem = system.NewPhysicsSystem(p.config, p.collision)
	p.msRemainder = 0
	p.buildRenderer()
}

func (p *Playing) buildRenderer() {
	p.batch, p.sprites = nil, nil
	if p.headless {
		return
	}

	tex, err := p.texture(p.level.TilesheetPath)
	if err != nil {
		log.Printf("Tilesheet unavailable, drawing tiles as rects: %v", err)
		return
	}
	lvl := p.level
	p.batch = render.NewTileBatch(lvl.Grid, lvl.Origin, lvl.SheetCols, lvl.SheetRows, tex)
	p.sprites = render.NewSpriteDrawer(tex, lvl.SheetCols, lvl.SheetRows, lvl.Origin, lvl.Grid.BlockSize)
}

func (p *Playing) texture(path string) (*render.Texture, error) {
	if tex, ok := p.textures[path]; ok {
		return tex, nil
	}
	tex, err := render.LoadTexture(p.loader.FS(), path)
	if err != nil {
		return nil, err
	}
	p.textures[path] = tex
	return tex, nil
}

// centerOrigin centers levels smaller than the screen
func (p *Playing) centerOrigin(grid *entity.TileGrid) image.Point {
	var o image.Point
	if w := grid.PixelWidth(); w < p.screenW {
		o.X = (p.screenW - w) / 2
	}
	if h := grid.PixelHeight(); h < p.screenH {
		o.Y = (p.screenH - h) / 2
	}
	return o
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.pollWatcher()

	switch p.state {
	case state.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePaused
			return nil, nil
		}
		// F5: Save recording manually
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
			p.saveRecording()
		}
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
		return nil, nil
	case state.StateComplete:
		if inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			p.restart()
		}
		return nil, nil
	}

	p.Tick()
	return nil, nil // nil = stay on this scene
}

// Tick advances the simulation by one frame.
// Input comes from the replay while it lasts, then from the keyboard.
func (p *Playing) Tick() {
	var input system.InputState
	if p.state.Running() {
		input = p.readInput()
	}
	p.Step(input)
}

// Step advances the simulation by one frame with the given input.
// Input is ignored while the player is dead or the level is cleared.
func (p *Playing) Step(input system.InputState) {
	switch p.state {
	case state.StatePlaying:
		if p.recorder != nil {
			p.recorder.RecordFrame(input)
		}
		p.step(input)
	case state.StateDead:
		if p.countdown() {
			p.respawn()
		}
	case state.StateLevelClear:
		if p.countdown() {
			p.nextLevel()
		}
	}
}

func (p *Playing) readInput() system.InputState {
	if p.replayer != nil && !p.replayer.Done() {
		in, _ := p.replayer.GetInput()
		if p.replayer.Done() {
			log.Printf("Replay finished after %d frames", p.replayer.TotalFrames())
		}
		return InputFromReplay(in)
	}
	return p.inputSystem.GetInput()
}

// step runs input, physics and level objects, in that order
func (p *Playing) step(input system.InputState) {
	p.inputSystem.UpdatePlayer(p.player, input, p.dt)
	events := p.physicsSystem.Update(p.player, p.dt)
	p.updateObjects()

	if events.Checkpoint {
		log.Printf("Checkpoint reached at (%d, %d)", p.player.SpawnX, p.player.SpawnY)
	}

	switch {
	case events.Died:
		p.deaths++
		p.enter(state.StateDead, respawnDelay)
	case events.Won:
		log.Printf("Level cleared: %s", p.levels[p.levelIdx])
		p.enter(state.StateLevelClear, clearDelay)
	}
}

// updateObjects steps level objects in whole milliseconds, carrying the fraction
func (p *Playing) updateObjects() {
	ms := p.dt*1000 + p.msRemainder
	whole := int(ms)
	p.msRemainder = ms - float64(whole)
	p.level.Update(whole)
}

func (p *Playing) enter(s state.GameState, delay float64) {
	p.state = s
	p.stateTimer = delay
}

func (p *Playing) countdown() bool {
	p.stateTimer -= p.dt
	return p.stateTimer <= 0
}

// respawn resets level objects and returns the player to the last checkpoint
func (p *Playing) respawn() {
	lvl, err := system.LoadLevel(p.loader.FS(), p.levels[p.levelIdx], system.NewLoadOptions(p.config, p.level.Origin))
	if err != nil {
		log.Printf("Failed to reset level: %v", err)
	} else {
		p.setLevel(lvl)
	}
	p.player.Respawn()
	p.state = state.StatePlaying
}

func (p *Playing) nextLevel() {
	next := p.levelIdx + 1
	if next >= len(p.levels) {
		p.state = state.StateComplete
		log.Printf("All levels cleared (deaths: %d)", p.deaths)
		p.saveRecording()
		return
	}
	if err := p.loadLevel(next); err != nil {
		log.Printf("Failed to load next level: %v", err)
		p.state = state.StateComplete
		return
	}
	p.state = state.StatePlaying
}

func (p *Playing) restart() {
	p.deaths = 0
	if err := p.loadLevel(0); err != nil {
		log.Printf("Failed to restart: %v", err)
		return
	}
	p.state = state.StatePlaying

	// Reset recorder if recording
	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.levels[0], p.player.Invulnerable)
		log.Printf("Recording restarted")
	}
}

// pollWatcher reloads the current level when its file changes on disk
// and logs any pending watch errors
func (p *Playing) pollWatcher() {
	if p.watcher == nil {
		return
	}
	for err := p.watcher.PollError(); err != nil; err = p.watcher.PollError() {
		log.Printf("Level watcher error: %v", err)
	}
	for {
		changed, ok := p.watcher.Poll()
		if !ok {
			return
		}
		if !strings.HasSuffix(filepath.ToSlash(changed), p.levels[p.levelIdx]) {
			continue
		}
		log.Printf("Level changed on disk, reloading: %s", changed)
		if err := p.loadLevel(p.levelIdx); err != nil {
			log.Printf("Reload failed: %v", err)
			continue
		}
		p.state = state.StatePlaying
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// camera returns the top-left world position shown on screen
func (p *Playing) camera() (int, int) {
	o := p.level.Origin
	camX := o.X + p.player.X + p.player.W/2 - p.screenW/2
	camY := o.Y + p.player.Y + p.player.H/2 - p.screenH/2

	// Clamp camera to level bounds
	maxCamX := o.X + p.level.Grid.PixelWidth() - p.screenW
	maxCamY := o.Y + p.level.Grid.PixelHeight() - p.screenH
	camX = max(0, min(camX, maxCamX))
	camY = max(0, min(camY, maxCamY))
	return camX, camY
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	// Fill background
	screen.Fill(colorBG)

	camX, camY := p.camera()

	// Static tiles first, then objects in list order
	if p.batch != nil {
		p.batch.Draw(screen, camX, camY)
		p.sprites.Begin(screen, camX, camY)
		p.level.Render(p.sprites)
	} else {
		p.drawTiles(screen, camX, camY)
		p.level.Render(&rectDrawer{
			dst:    screen,
			origin: p.level.Origin,
			camX:   camX,
			camY:   camY,
			size:   p.level.Grid.TileSize,
		})
	}
	p.drawPlayer(screen, camX, camY)

	// Draw UI - always on top
	p.drawUI(screen)

	// Draw state overlays
	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\n\nPress ESC to resume")
	case state.StateDead:
		p.drawOverlay(screen, "OUCH")
	case state.StateLevelClear:
		p.drawOverlay(screen, "LEVEL CLEAR")
	case state.StateComplete:
		p.drawOverlay(screen, fmt.Sprintf("SUMMIT REACHED\n\nDeaths: %d\n\nPress Z to restart", p.deaths))
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY int) {
	ts := p.level.Grid.TileSize
	o := p.level.Origin
	for ty := 0; ty < p.level.Grid.Height; ty++ {
		for tx := 0; tx < p.level.Grid.Width; tx++ {
			var c color.Color
			switch p.level.Classify(tx, ty) {
			case entity.TileEmpty:
				continue
			case entity.TileSolid:
				c = colorWall
			case entity.TileHazard:
				c = colorSpike
			case entity.TileCloud:
				c = colorCloud
			default:
				c = colorDecor
			}

			x := float64(o.X + tx*ts - camX)
			y := float64(o.Y + ty*ts - camY)
			ebitenutil.DrawRect(screen, x, y, float64(ts), float64(ts), c)
		}
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY int) {
	o := p.level.Origin
	x := float64(o.X + p.player.X - camX)
	y := float64(o.Y + p.player.Y - camY)

	c := colorPlayer
	switch {
	case p.player.Invulnerable:
		c = colorGod
	case !p.player.CanDash:
		c = colorNoDash
	}
	ebitenutil.DrawRect(screen, x, y, float64(p.player.W), float64(p.player.H), c)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	status := fmt.Sprintf("Level %d/%d  Deaths: %d", p.levelIdx+1, len(p.levels), p.deaths)
	if p.player.Invulnerable {
		status += "  GOD"
	}
	if p.replayer != nil && !p.replayer.Done() {
		status += fmt.Sprintf("  REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	ebitenutil.DebugPrintAt(screen, status, 4, p.screenH-16)

	// Controls
	ebitenutil.DebugPrint(screen, "Arrows: Move | C: Jump | X: Dash | G: God | ESC: Pause")
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// rectDrawer draws object sprites as flat rects
type rectDrawer struct {
	dst        *ebiten.Image
	origin     image.Point
	camX, camY int
	size       int
}

func (d *rectDrawer) DrawTile(id entity.TileID, x, y int) {
	c, ok := spriteColors[id]
	if !ok {
		return
	}
	ebitenutil.DrawRect(d.dst,
		float64(d.origin.X+x-d.camX), float64(d.origin.Y+y-d.camY),
		float64(d.size), float64(d.size), c)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// State returns the current scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Player returns the player entity
func (p *Playing) Player() *entity.Player {
	return p.player
}

// Level returns the level being played
func (p *Playing) Level() *entity.Level {
	return p.level
}

// LevelIndex returns the position of the current level in the level list
func (p *Playing) LevelIndex() int {
	return p.levelIdx
}

// Deaths returns the number of deaths since the run started
func (p *Playing) Deaths() int {
	return p.deaths
}

// ReplayDone reports whether a replay was given and has been fully played
func (p *Playing) ReplayDone() bool {
	return p.replayer != nil && p.replayer.Done()
}
