package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-size", "40", "-cell", "4", "-pattern", "glider", "-paused"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Size != 40 || cfg.Cell != 4 || cfg.Pattern != "glider" || !cfg.Paused {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.TPS != 15 || cfg.Live != 5000 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"size":   "64",
		"tps":    "30",
		"seed":   "-3",
		"live":   "100",
		"paused": "true",
		"cell":   "zero",
	})
	if cfg.Size != 64 || cfg.TPS != 30 || cfg.Seed != -3 || cfg.Live != 100 || !cfg.Paused {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Cell != 10 {
		t.Fatalf("bad cell value should keep default, got %d", cfg.Cell)
	}
	if got := FromMap(map[string]string{"size": "2"}); got.Size != 150 {
		t.Fatalf("undersized grid accepted: %d", got.Size)
	}
	if got := FromMap(nil); got != *NewConfig() {
		t.Fatalf("nil map should give defaults, got %+v", got)
	}
}

func TestNewSession(t *testing.T) {
	cfg := FromMap(map[string]string{"size": "20", "pattern": "blinker", "paused": "true", "dir": t.TempDir()})
	sess, err := cfg.NewSession(nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if sess.Grid().Size() != 20 || sess.Grid().Population() != 3 || !sess.Paused() {
		t.Fatalf("size=%d population=%d paused=%v", sess.Grid().Size(), sess.Grid().Population(), sess.Paused())
	}
	cfg.Pattern = "unknown"
	if _, err := cfg.NewSession(nil); err == nil {
		t.Fatalf("expected unknown pattern error")
	}
}
