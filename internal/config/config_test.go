package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Delay != DefaultDelay {
		t.Errorf("expected delay %s, got %s", DefaultDelay, cfg.Delay)
	}
	if cfg.Theme != "dark" {
		t.Errorf("expected dark theme, got %s", cfg.Theme)
	}
	if cfg.Target != 10 {
		t.Errorf("expected target 10, got %d", cfg.Target)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "algodyssey.yaml")
	content := "delay: 250ms\ntheme: light\ndatasets:\n  kadane: [1, -2, 3]\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Delay != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %s", cfg.Delay)
	}
	if cfg.Theme != "light" {
		t.Errorf("expected light theme, got %s", cfg.Theme)
	}
	if cfg.Target != DefaultTarget {
		t.Errorf("unset target should keep default, got %d", cfg.Target)
	}
	if got := cfg.Dataset("kadane"); len(got) != 3 || got[1] != -2 {
		t.Errorf("unexpected kadane dataset %v", got)
	}
	if cfg.Dataset("mergesort") != nil {
		t.Error("expected nil dataset for unconfigured card")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad theme", "theme: neon\n"},
		{"negative delay", "delay: -1s\n"},
		{"too long", "datasets:\n  mergesort: [1,2,3,4,5,6,7,8,9,10,11]\n"},
		{"not yaml", "delay: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	cfg := DefaultConfig()
	cfg.Delay = 2 * time.Second
	cfg.Datasets["binarysearch"] = []int{1, 2, 3}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Delay != 2*time.Second || len(got.Dataset("binarysearch")) != 3 {
		t.Errorf("round trip lost values: %+v", got)
	}
}

func TestDatasetIsCopy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Datasets["kadane"] = []int{1, 2}
	d := cfg.Dataset("kadane")
	d[0] = 99
	if cfg.Datasets["kadane"][0] != 1 {
		t.Error("Dataset returned shared slice")
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("binarysearch", "deep")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if p.Target != 50 {
		t.Errorf("expected target 50, got %d", p.Target)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("kadane", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "classic") != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("kadane")
	if len(presets) != 3 || presets[0] != "classic" {
		t.Errorf("unexpected kadane presets %v", presets)
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"50", 50},
		{" -3 ", -3},
		{"", 10},
		{"ten", 10},
		{"4.5", 10},
	}

	for _, tt := range tests {
		if got := ParseTarget(tt.in, DefaultTarget); got != tt.want {
			t.Errorf("ParseTarget(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseData(t *testing.T) {
	got, err := ParseData("5, 1,4 -2")
	if err != nil {
		t.Fatalf("ParseData failed: %v", err)
	}
	want := []int{5, 1, 4, -2}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}

	if _, err := ParseData("1,x"); err == nil {
		t.Error("expected error for non-integer value")
	}
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.yaml")
	if err := os.WriteFile(path, []byte("delay: 1s\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *Config) {
			select {
			case changes <- c:
			default:
			}
		}, nil)
	}()

	deadline := time.After(5 * time.Second)
	for {
		// the watcher may not be registered yet, so keep rewriting
		if err := os.WriteFile(path, []byte("delay: 2s\n"), 0644); err != nil {
			t.Fatal(err)
		}
		select {
		case c := <-changes:
			// a truncating write can surface the empty file first
			if c.Delay != 2*time.Second {
				continue
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch returned %v", err)
			}
			return
		case <-time.After(50 * time.Millisecond):
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}
