// cmd/game_raylib/main.go
package main

import (
	"flag"
	"log"

	"go-artillery/internal/app"
	"go-artillery/internal/config"
	"go-artillery/internal/event"
	"go-artillery/internal/rlfront"
	"go-artillery/internal/ui"
	"go-artillery/internal/utils"
	"go-artillery/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON settings file")
	seed := flag.Int64("seed", 0, "random seed, 0 for time-based")
	targets := flag.Int("targets", -1, "target groups per wave")
	assetsDir := flag.String("assets", "", "directory holding the sprites")
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

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, config.WindowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TicksPerSecond)

	textures := rlfront.NewTextureManager()
	defer textures.Cleanup()
	sprites, err := textures.LoadSprites(settings.AssetsDir)
	if err != nil {
		log.Fatalf("Failed to load sprites: %v", err)
	}

	rng := utils.NewPRNGService(settings.Seed)
	log.Printf("Random seed: %d", rng.Seed())
	manager := app.NewManager(app.Context{
		Settings: settings,
		Rng:      rng,
		Sprites:  sprites,
		Events:   event.NewDispatcher(),
	})

	canvas := rlfront.NewCanvas(config.ScoreFontSize)
	frame := render.NewDisplayList()
	wave := ui.DefaultWaveIndicator()
	pause := ui.DefaultPauseIndicator()
	pauseButton := rlfront.NewPauseButton(config.PauseButtonX, config.PauseButtonY, config.PauseButtonSize, config.TextDarkColor, config.White)
	swallowClick := false

	for {
		snap := rlfront.Poll()
		clicked := pauseButton.IsClicked(rl.GetMousePosition())
		if clicked {
			swallowClick = true
		}
		if swallowClick {
			// The click belongs to the button, not to the cannon.
			snap = snap.WithoutPointerEvents()
			if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
				swallowClick = false
			}
		}
		if rl.IsKeyPressed(rl.KeyP) || clicked {
			pauseButton.Toggle()
			if pauseButton.IsPaused {
				manager.CancelCharge()
			}
		}
		paused := pauseButton.IsPaused

		done := snap.HasQuit()
		if !paused {
			frame.Reset()
			done = manager.Process(snap, frame)
			wave.Draw(frame, manager.World.Wave)
		}

		rl.BeginDrawing()
		rl.ClearBackground(config.BackgroundColor)
		frame.Replay(canvas)
		if paused {
			pause.Draw(canvas)
		}
		pauseButton.Draw()
		rl.EndDrawing()

		if done {
			break
		}
	}
	log.Printf("Final score: %d", manager.Score().Score())
}
