package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Hash.Width != 8 || cfg.Hash.Height != 8 || cfg.Hash.Factor != 4 {
		t.Errorf("unexpected hash defaults: %+v", cfg.Hash)
	}
	if cfg.Hash.Algorithm != "phash" {
		t.Errorf("default algorithm = %q; want phash", cfg.Hash.Algorithm)
	}
	if cfg.Dedupe.Threshold != 10 {
		t.Errorf("default threshold = %d; want 10", cfg.Dedupe.Threshold)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d; want 8080", cfg.Server.Port)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("IMGPRINT_WIDTH", "16")
	t.Setenv("IMGPRINT_FACTOR", "2")
	t.Setenv("IMGPRINT_ALGORITHM", "dhash")
	t.Setenv("IMGPRINT_PORT", "9090")

	cfg := Load()

	if cfg.Hash.Width != 16 {
		t.Errorf("width = %d; want 16", cfg.Hash.Width)
	}
	if cfg.Hash.Factor != 2 {
		t.Errorf("factor = %d; want 2", cfg.Hash.Factor)
	}
	if cfg.Hash.Algorithm != "dhash" {
		t.Errorf("algorithm = %q; want dhash", cfg.Hash.Algorithm)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d; want 9090", cfg.Server.Port)
	}
}

func TestLoadIgnoresInvalidEnvInt(t *testing.T) {
	t.Setenv("IMGPRINT_WIDTH", "not-a-number")
	t.Setenv("IMGPRINT_FACTOR", "-3")

	cfg := Load()

	if cfg.Hash.Width != 8 {
		t.Errorf("width = %d; want default 8", cfg.Hash.Width)
	}
	if cfg.Hash.Factor != 4 {
		t.Errorf("factor = %d; want default 4", cfg.Hash.Factor)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := Load()

	preset, ok := cfg.GetPreset("detail")
	if !ok {
		t.Fatal("detail preset missing")
	}
	if preset.Width != 16 || preset.Height != 16 || preset.Factor != 4 {
		t.Errorf("detail preset = %+v; want 16x16 factor 4", preset)
	}

	if _, ok := cfg.GetPreset("nope"); ok {
		t.Error("unknown preset should not resolve")
	}
}
