package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/ledgeline/internal/application/game"
	"github.com/younwookim/ledgeline/internal/application/replay"
	"github.com/younwookim/ledgeline/internal/application/scene/playing"
	"github.com/younwookim/ledgeline/internal/application/system"
	"github.com/younwookim/ledgeline/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	configDir := flag.String("config", "", "Config directory to load and watch (default: embedded configs)")
	roomName := flag.String("room", "start", "Room to start in")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	verifyFlag := flag.Bool("verify", false, "With -replay, run the recording without a window and print the result")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}

	if *verifyFlag {
		if *replayFlag == "" {
			log.Fatalf("-verify needs -replay")
		}
		res, err := verify(loader, *replayFlag)
		if err != nil {
			log.Fatalf("Failed to verify replay: %v", err)
		}
		log.Print(res)
		return
	}

	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	atlas, err := system.LoadAtlas(loader)
	if err != nil {
		log.Fatalf("Failed to load rooms: %v", err)
	}

	opts := playing.Options{
		Config:     cfg,
		Atlas:      atlas,
		Room:       *roomName,
		Loader:     loader,
		RecordPath: *recordFlag,
	}
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		opts.Replay = data
	}
	if *configDir != "" {
		watcher, err := config.NewWatcher(*configDir)
		if err != nil {
			log.Printf("Hot reload disabled: %v", err)
		} else {
			defer func() { _ = watcher.Close() }()
			opts.Watcher = watcher
		}
	}

	scene, err := playing.New(opts)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	display := cfg.Physics.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, display.TickRate)
	defer g.Close()

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Ledgeline")
	ebiten.SetTPS(display.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		log.Printf("Game stopped: %v", err)
	}
}

// newLoader reads configs from dir, or from the embedded copy when dir is empty
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
