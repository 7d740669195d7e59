package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/scratchpad/dsgo/hashtable"
)

type config struct {
	Demo     string
	Seed     uint64
	Count    int
	Pops     int
	Order    string
	Size     int
	MaxLoad  float64
	LogLevel string
}

// loadConfig reads flags from args, falling back to DSDEMO_*
// environment variables and then to defaults.
func loadConfig(args []string) (config, error) {
	fs := pflag.NewFlagSet("dsdemo", pflag.ContinueOnError)
	fs.Uint64("seed", 0, "seed for the pseudo-random input")
	fs.Int("count", 0, "number of random values to insert (default 30 for heap, 24 for hashtable)")
	fs.Int("pops", 8, "number of values to pop from the heap")
	fs.String("order", "asc", "heap order: asc or desc")
	fs.Int("size", 16, "initial hash table bucket count")
	fs.Float64("max-load", hashtable.DefaultMaxLoad, "hash table maximum load")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix("DSDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return config{}, fmt.Errorf("cannot bind flags: %w", err)
	}

	cfg := config{
		Demo:     fs.Arg(0),
		Seed:     v.GetUint64("seed"),
		Count:    v.GetInt("count"),
		Pops:     v.GetInt("pops"),
		Order:    v.GetString("order"),
		Size:     v.GetInt("size"),
		MaxLoad:  v.GetFloat64("max-load"),
		LogLevel: v.GetString("log-level"),
	}
	if cfg.Count == 0 {
		cfg.Count = defaultCount(cfg.Demo)
	}
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func defaultCount(demo string) int {
	if demo == "hashtable" {
		return 24
	}
	return 30
}

func (cfg config) validate() error {
	switch {
	case cfg.Demo == "":
		return errors.New("missing demo name (heap or hashtable)")
	case cfg.Demo != "heap" && cfg.Demo != "hashtable":
		return fmt.Errorf("unknown demo %q", cfg.Demo)
	case cfg.Count < 0:
		return fmt.Errorf("count must not be negative, got %d", cfg.Count)
	case cfg.Pops < 0:
		return fmt.Errorf("pops must not be negative, got %d", cfg.Pops)
	case cfg.Order != "asc" && cfg.Order != "desc":
		return fmt.Errorf("order must be asc or desc, got %q", cfg.Order)
	case cfg.Size < 1:
		return fmt.Errorf("size must be at least 1, got %d", cfg.Size)
	case !(cfg.MaxLoad > 0):
		return fmt.Errorf("max-load must be positive, got %v", cfg.MaxLoad)
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid log-level: %w", err)
	}
	return nil
}

// newLogger returns a console logger writing to stderr.
// The level has already been checked by validate.
func newLogger(level string) *zap.Logger {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zap.InfoLevel
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		lvl,
	)
	return zap.New(core)
}
