// Command replayview plays a recorded session in the terminal.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/ledgeline/internal/application/replay"
	"github.com/younwookim/ledgeline/internal/application/system"
	"github.com/younwookim/ledgeline/internal/infrastructure/config"
)

const redrawRate = 30

func main() {
	configDir := flag.String("config", "cmd/game/configs", "Config directory")
	replayFlag := flag.String("replay", "", "Recorded input file")
	cellFlag := flag.Float64("cell", 16, "World units per terminal cell")
	flag.Parse()

	if *replayFlag == "" {
		log.Fatalf("-replay is required")
	}
	if *cellFlag <= 0 {
		log.Fatalf("-cell must be positive")
	}

	loader := config.NewLoader(*configDir)
	physics, err := loader.LoadPhysics()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	atlas, err := system.LoadAtlas(loader)
	if err != nil {
		log.Fatalf("Failed to load rooms: %v", err)
	}
	data, err := replay.LoadReplay(*replayFlag)
	if err != nil {
		log.Fatalf("Failed to load replay: %v", err)
	}
	playback, err := replay.NewPlayback(physics, atlas, data)
	if err != nil {
		log.Fatalf("Failed to start playback: %v", err)
	}
	defer playback.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	tickRate := playback.Replayer().TickRate(physics.Display.TickRate)
	v := newViewer(screen, playback, *cellFlag, tickRate/redrawRate)
	run(v)
}

// run redraws at a fixed rate until the user quits
func run(v *viewer) {
	ticker := time.NewTicker(time.Second / redrawRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	v.draw()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
			v.draw()
		case <-ticker.C:
			v.advance()
			v.draw()
		}
	}
}
