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

	"github.com/gdamore/tcell/v2"

	"github.com/lguibr/pongarena/audio"
	"github.com/lguibr/pongarena/game"
	"github.com/lguibr/pongarena/render"
	"github.com/lguibr/pongarena/session"
	"github.com/lguibr/pongarena/utils"
)

func main() {
	configPath := flag.String("config", "", "TOML tuning file applied on top of the preset")
	preset := flag.String("preset", "classic", "tuning preset: classic or tuned")
	logPath := flag.String("log", "", "write logs to this file (default: discard)")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if err := run(*configPath, *preset, *logPath, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, preset, logPath string, mute bool) error {
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := loadConfig(configPath, preset)
	if err != nil {
		return err
	}
	log.Printf("config: preset=%s policy=%s win=%d", preset, cfg.ReflectionPolicy, cfg.WinScore)

	var sounds game.Audio = game.NopAudio{}
	if !mute {
		sm := audio.NewSoundManager(cfg.Volume)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the match runs silent
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sm.Cleanup()
			sounds = sm
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}

	sess, err := session.New(cfg, screen, sounds, log.Default())
	if err != nil {
		screen.Fini()
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, runErr := sess.Run(ctx)
	sess.Close()
	if runErr != nil {
		return runErr
	}

	if frame, err := render.RenderToASCII(result.Final, 80, 24); err == nil {
		fmt.Print(frame)
	}
	if result.Quit && result.Winner == game.SideNone {
		fmt.Printf("Quit at %d : %d\n", result.Final.LhsScore, result.Final.RhsScore)
		return nil
	}
	fmt.Println(session.WinnerMessage(result.Winner))
	return nil
}

func loadConfig(path, preset string) (utils.Config, error) {
	var base utils.Config
	switch preset {
	case "classic":
		base = utils.DefaultConfig()
	case "tuned":
		base = utils.TunedConfig()
	default:
		return utils.Config{}, fmt.Errorf("%w: unknown preset %q", utils.ErrInvalidConfig, preset)
	}
	if path == "" {
		return base, nil
	}
	return utils.LoadConfig(path, base)
}
