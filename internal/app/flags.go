package app

import (
	"flag"
	"log"
	"strconv"

	"torus-life/internal/core"
	"torus-life/internal/session"
)

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Size    int
	Cell    int
	TPS     int
	Seed    int64
	Live    int
	Pattern string
	Dir     string
	Paused  bool
}

// NewConfig returns a Config populated with the reference defaults.
func NewConfig() *Config {
	return &Config{
		Size: core.DefaultSize,
		Cell: core.DefaultCellSize,
		TPS:  15,
		Seed: 42,
		Live: 5000,
		Dir:  ".",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "grid edge in cells, border included")
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell edge in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.IntVar(&c.Live, "live", c.Live, "cells set alive by a random fill")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "start from a named pattern instead of a random fill")
	fs.StringVar(&c.Dir, "dir", c.Dir, "directory for saved grids")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
}

// FromMap populates a Config from flag-style key/value pairs. Unknown keys
// and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := *NewConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= core.MinSize {
			c.Size = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cell = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["live"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Live = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["dir"]; ok && v != "" {
		c.Dir = v
	}
	if v, ok := cfg["paused"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Paused = parsed
		}
	}
	return c
}

// SessionOptions converts the configuration for session.New.
func (c *Config) SessionOptions(logger *log.Logger) session.Options {
	return session.Options{
		Size:        c.Size,
		CellSize:    c.Cell,
		RandomCount: c.Live,
		Seed:        c.Seed,
		Dir:         c.Dir,
		Logger:      logger,
	}
}

// NewSession builds and seeds a session as the drivers start it.
func (c *Config) NewSession(logger *log.Logger) (*session.Session, error) {
	sess, err := session.New(c.SessionOptions(logger))
	if err != nil {
		return nil, err
	}
	if err := sess.Seed(c.Pattern); err != nil {
		return nil, err
	}
	sess.SetPaused(c.Paused)
	return sess, nil
}
