// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"

	"go-artillery/internal/app"
	"go-artillery/internal/assets"
	"go-artillery/internal/config"
	"go-artillery/internal/event"
	"go-artillery/internal/state"
	"go-artillery/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON settings file")
	seed := flag.Int64("seed", 0, "random seed, 0 for time-based")
	targets := flag.Int("targets", -1, "target groups per wave")
	assetsDir := flag.String("assets", "", "directory holding the sprites")
	fontPath := flag.String("font", "", "TrueType font for the score panel, empty for Go Mono")
	skipMenu := flag.Bool("skip-menu", false, "start playing right away")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	settings := config.DefaultSettings()
	if *configPath != "" {
		var err error
		settings, err = config.LoadSettings(*configPath)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *targets >= 0 {
		settings.Targets = *targets
	}
	if *assetsDir != "" {
		settings.AssetsDir = *assetsDir
	}
	if err := settings.Validate(); err != nil {
		log.Fatal(err)
	}

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	sprites, err := assets.LoadSprites(settings.AssetsDir)
	if err != nil {
		log.Fatalf("Failed to load sprites: %v", err)
	}
	face, err := assets.LoadFace(*fontPath, config.ScoreFontSize)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	rng := utils.NewPRNGService(settings.Seed)
	log.Printf("Random seed: %d", rng.Seed())

	sm := state.NewStateMachine()
	startGame := func() state.State {
		manager := app.NewManager(app.Context{
			Settings: settings,
			Rng:      rng,
			Sprites:  sprites,
			Events:   event.NewDispatcher(),
		})
		return state.NewPlayState(sm, manager, face)
	}
	if *skipMenu {
		sm.SetState(startGame())
	} else {
		sm.SetState(state.NewMenuState(sm, face, startGame))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(sm); err != nil {
		log.Fatal(err)
	}
	log.Println("Bye")
}
