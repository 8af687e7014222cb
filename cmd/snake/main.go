package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"snake/internal/app"
	"snake/internal/audio"
	"snake/internal/ui/graphics"
	"snake/internal/ui/terminal"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	config := app.DefaultConfig()
	flag.StringVar(&config.Backend, "backend", config.Backend, "renderer: ebiten or terminal")
	flag.Int64Var(&config.Seed, "seed", 0, "food placement seed (0 = time based)")
	flag.BoolVar(&config.Mute, "mute", false, "disable sound effects")
	flag.BoolVar(&config.Verbose, "v", false, "keep logging while the terminal renderer is active")
	flag.Parse()

	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var (
		score int32
		err   error
	)
	switch config.Backend {
	case app.BackendTerminal:
		score, err = runTerminal(config)
	default:
		score, err = runWindow(config)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log.Printf("Exited with score %d", score)
}

func runWindow(config *app.Config) (int32, error) {
	var cues audio.Cues = audio.Nop{}
	if !config.Mute {
		cues = audio.NewEbitenCues()
	}

	application, err := app.NewApp(config, cues)
	if err != nil {
		return 0, err
	}
	defer application.Close()

	engine := graphics.NewEngine(application)
	if err := engine.Run(); err != nil {
		return 0, fmt.Errorf("window: %w", err)
	}

	return application.State().Score, nil
}

// runTerminal restores the screen and the log output before it returns.
func runTerminal(config *app.Config) (int32, error) {
	platform, err := terminal.NewPlatform()
	if err != nil {
		return 0, err
	}
	defer platform.Close()

	defer silenceLog(!config.Verbose)()

	var cues audio.Cues = audio.Nop{}
	if !config.Mute {
		beepCues, err := audio.NewBeepCues()
		if err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			cues = beepCues
		}
	}

	application, err := app.NewApp(config, cues)
	if err != nil {
		return 0, err
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.NewLoop(application, platform).Run(ctx)

	return application.State().Score, nil
}

// silenceLog discards log output while the terminal owns the screen. The
// returned func restores the previous writer.
func silenceLog(silence bool) func() {
	if !silence {
		return func() {}
	}
	prev := log.Writer()
	log.SetOutput(io.Discard)
	return func() { log.SetOutput(prev) }
}
