package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/minoterm/minoterm/audio"
	"github.com/minoterm/minoterm/config"
	"github.com/minoterm/minoterm/core"
	"github.com/minoterm/minoterm/engine"
	"github.com/minoterm/minoterm/input"
	"github.com/minoterm/minoterm/logging"
	"github.com/minoterm/minoterm/render"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logging.New(cfg.LogFile, cfg.Debug)
	defer logging.Sync(log)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}

	// Reset the raw-mode terminal before any panic output. Every producer
	// goroutine runs through core.Go, so this covers them all.
	core.SetCrashHandler(func(r any) {
		screen.Fini()
		log.Errorw("crash", "panic", r)
		logging.Sync(log)
	})

	sounder := audio.NewSounder()
	if err := sounder.Initialize(); err != nil {
		// Non-fatal, the game runs silent.
		log.Warnw("audio unavailable", "error", err)
	}

	opts := engine.Options{
		StartLevel:     cfg.Level,
		Seed:           cfg.Seed,
		LockdownRule:   lockdownRule(cfg.Lockdown),
		RotationSystem: rotationSystem(cfg.Rotation),
		Beep:           cfg.Beep,
		Color:          cfg.Color,
		Help:           cfg.Help,
	}
	if opts.Seed == 0 {
		opts.Seed = engine.DeriveSeed()
	}
	log.Infow("session start",
		"level", opts.StartLevel,
		"seed", opts.Seed,
		"rotation", cfg.Rotation,
		"lockdown", cfg.Lockdown,
	)

	game := engine.NewGame(opts, engine.Listeners{render.New(screen), sounder}, log)

	reader := input.NewReader(screen, game.Commands(), log)
	game.SetInputGate(reader)
	reader.Start()

	outcome := game.Run()

	reader.Stop()
	sounder.Cleanup()
	screen.Fini()

	score := game.Score()
	log.Infow("session end",
		"outcome", outcome,
		"score", score.Score,
		"level", score.Level,
		"lines", score.Lines,
		"elapsed", game.Elapsed(),
	)
	fmt.Printf("score %d  level %d  lines %d  time %s\n",
		score.Score, score.Level, score.Lines, game.Elapsed().Round(time.Second))
}

func lockdownRule(name string) engine.LockdownRule {
	switch name {
	case config.LockdownInfinite:
		return engine.LockdownInfinite
	case config.LockdownClassic:
		return engine.LockdownClassic
	default:
		return engine.LockdownExtended
	}
}

func rotationSystem(name string) engine.RotationSystem {
	if name == config.RotationClassic {
		return engine.RotationClassic
	}
	return engine.RotationSuper
}
