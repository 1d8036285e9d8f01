package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/summit/internal/application/game"
	"github.com/younwookim/summit/internal/application/replay"
	"github.com/younwookim/summit/internal/application/scene/playing"
	"github.com/younwookim/summit/internal/infrastructure/config"
	"github.com/younwookim/summit/internal/infrastructure/watch"
)

//go:embed configs
var configFS embed.FS

// newLoader reads from dir when given, otherwise from the embedded configs
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func main() {
	// Parse command line flags
	levelFlag := flag.String("level", "", "Level to start on, relative to the config dir (e.g., -level levels/level02.txt)")
	configFlag := flag.String("config", "", "Load game.yaml and levels from this directory instead of the built-in ones")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back recorded input from file")
	headlessFlag := flag.Bool("headless", false, "Run -replay without a window and print the outcome")
	watchFlag := flag.Bool("watch", false, "Reload the current level when its file changes (needs -config)")
	godFlag := flag.Bool("god", false, "Start in god mode")
	flag.Parse()

	// Load configuration
	loader, err := newLoader(*configFlag)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := loader.LoadGame()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := playing.Options{
		LevelPath:  *levelFlag,
		RecordPath: *recordFlag,
		GodMode:    *godFlag,
	}
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		opts.Replay = data
	}

	if *headlessFlag {
		if opts.Replay == nil {
			log.Fatalf("-headless needs -replay")
		}
		opts.Headless = true
		p, err := playing.New(cfg, loader, opts)
		if err != nil {
			log.Fatalf("Failed to start level: %v", err)
		}
		log.Printf("Replay result: %s", simulateReplay(p, maxHeadlessFrames))
		return
	}

	var watcher *watch.Watcher
	if *watchFlag {
		if *configFlag == "" {
			log.Fatalf("-watch needs -config")
		}
		watcher, err = watch.New(filepath.Join(*configFlag, "levels"))
		if err != nil {
			log.Fatalf("Failed to watch levels: %v", err)
		}
		opts.Watcher = watcher
	}

	p, err := playing.New(cfg, loader, opts)
	if err != nil {
		log.Fatalf("Failed to start level: %v", err)
	}
	g := game.New(p, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Summit")
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	runErr := ebiten.RunGame(g)
	g.Close()
	if watcher != nil {
		_ = watcher.Close()
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
