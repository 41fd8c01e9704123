// Package config resolves the startup configuration from an optional .env
// file, environment variables and command-line flags, in increasing
// precedence. All validation happens here, before any game state exists.
package config

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Rotation and lockdown mode names accepted on the command line.
const (
	RotationSuper   = "super"
	RotationClassic = "classic"

	LockdownExtended = "extended"
	LockdownInfinite = "infinite"
	LockdownClassic  = "classic"
)

const (
	MinLevel = 1
	MaxLevel = 15
)

// Config is the immutable startup configuration.
type Config struct {
	Level    int    // starting level, 1..15
	Seed     uint32 // 0 means unset: derive from entropy
	Rotation string // super | classic
	Lockdown string // extended | infinite | classic
	Beep     bool
	Color    bool
	Help     bool
	Debug    bool
	LogFile  string
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Level:    1,
		Rotation: RotationSuper,
		Lockdown: LockdownExtended,
		Beep:     true,
		Color:    true,
		Help:     true,
		LogFile:  "minoterm.log",
	}
}

// Load resolves configuration from .env (if present), MINOTERM_* environment
// variables and the given command-line arguments, then validates.
func Load(args []string) (Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	cfg := Default()
	cfg.applyEnv()

	fs := flag.NewFlagSet("minoterm", flag.ContinueOnError)
	fs.IntVar(&cfg.Level, "level", cfg.Level, "starting level (1..15)")
	seed := fs.Uint64("seed", uint64(cfg.Seed), "randomizer seed (1..4294967295, 0 derives one)")
	fs.StringVar(&cfg.Rotation, "rotation", cfg.Rotation, "rotation system: super|classic")
	fs.StringVar(&cfg.Lockdown, "lockdown", cfg.Lockdown, "lock-down rule: extended|infinite|classic")
	fs.BoolVar(&cfg.Beep, "beep", cfg.Beep, "sound feedback")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "colored pieces")
	fs.BoolVar(&cfg.Help, "help-panel", cfg.Help, "show the key help panel")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "verbose logging to the log file")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file path")
	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "parsing flags")
	}

	if *seed > 4294967295 {
		return Config{}, errors.Errorf("seed %d out of range 0..4294967295", *seed)
	}
	cfg.Seed = uint32(*seed)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays MINOTERM_* environment variables onto the defaults.
func (c *Config) applyEnv() {
	if v, ok := lookupInt("MINOTERM_LEVEL"); ok {
		c.Level = v
	}
	if v, ok := lookupInt("MINOTERM_SEED"); ok && v >= 0 {
		c.Seed = uint32(v)
	}
	if v := os.Getenv("MINOTERM_ROTATION"); v != "" {
		c.Rotation = v
	}
	if v := os.Getenv("MINOTERM_LOCKDOWN"); v != "" {
		c.Lockdown = v
	}
	if v := os.Getenv("MINOTERM_LOG"); v != "" {
		c.LogFile = v
	}
	if v, ok := lookupBool("MINOTERM_DEBUG"); ok {
		c.Debug = v
	}
}

func lookupInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func lookupBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

// Validate rejects malformed configuration before the game starts.
func (c Config) Validate() error {
	if c.Level < MinLevel || c.Level > MaxLevel {
		return errors.Errorf("level %d out of range %d..%d", c.Level, MinLevel, MaxLevel)
	}
	switch c.Rotation {
	case RotationSuper, RotationClassic:
	default:
		return errors.Errorf("unknown rotation system %q", c.Rotation)
	}
	switch c.Lockdown {
	case LockdownExtended, LockdownInfinite, LockdownClassic:
	default:
		return errors.Errorf("unknown lock-down rule %q", c.Lockdown)
	}
	return nil
}
