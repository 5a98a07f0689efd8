package core_test

import (
	"testing"

	"github.com/gobuffalo/envy"

	"github.com/devblok/glstream/core"
	"github.com/devblok/glstream/glr"
)

func TestStreamingStrategyMapping(t *testing.T) {
	cases := []struct {
		name     string
		strategy glr.Strategy
		wantErr  bool
	}{
		{"ring", glr.StrategyRingBuffer, false},
		{"pool", glr.StrategyBufferPool, false},
		{"", glr.StrategyNone, true},
		{"umap", glr.StrategyNone, true},
	}
	for _, tc := range cases {
		cfg := core.RendererConfiguration{Strategy: tc.name}
		got, err := cfg.StreamingStrategy()
		if tc.wantErr {
			if err != glr.ErrInvalidStrategy {
				t.Errorf("%q: error = %v, want ErrInvalidStrategy", tc.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", tc.name, err)
		}
		if got != tc.strategy {
			t.Errorf("%q: strategy = %v, want %v", tc.name, got, tc.strategy)
		}
	}
}

func TestFromEnvDefaults(t *testing.T) {
	defaults := core.Configuration{
		Time:     core.TimeConfiguration{FramesPerSecond: 60},
		Renderer: core.RendererConfiguration{Strategy: "ring", ScreenWidth: 800, ScreenHeight: 600},
	}
	envy.Temp(func() {
		cfg, err := core.FromEnv(defaults)
		if err != nil {
			t.Fatal(err)
		}
		if cfg != defaults {
			t.Errorf("config = %+v, want defaults %+v", cfg, defaults)
		}
	})
}

func TestFromEnvOverrides(t *testing.T) {
	defaults := core.Configuration{
		Time:     core.TimeConfiguration{FramesPerSecond: 60},
		Renderer: core.RendererConfiguration{Strategy: "ring", ScreenWidth: 800, ScreenHeight: 600},
	}
	envy.Temp(func() {
		envy.Set("GLSTREAM_RENDERER", "pool")
		envy.Set("GLSTREAM_WIDTH", "1280")
		envy.Set("GLSTREAM_HEIGHT", "720")
		envy.Set("GLSTREAM_FPS", "144")

		cfg, err := core.FromEnv(defaults)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Renderer.Strategy != "pool" {
			t.Errorf("strategy = %q, want pool", cfg.Renderer.Strategy)
		}
		if cfg.Renderer.ScreenWidth != 1280 || cfg.Renderer.ScreenHeight != 720 {
			t.Errorf("screen = %dx%d, want 1280x720", cfg.Renderer.ScreenWidth, cfg.Renderer.ScreenHeight)
		}
		if cfg.Time.FramesPerSecond != 144 {
			t.Errorf("fps = %d, want 144", cfg.Time.FramesPerSecond)
		}
	})
}

func TestFromEnvRejectsGarbage(t *testing.T) {
	envy.Temp(func() {
		envy.Set("GLSTREAM_WIDTH", "wide")
		if _, err := core.FromEnv(core.Configuration{}); err == nil {
			t.Error("no error for a non-numeric GLSTREAM_WIDTH")
		}
	})
}
