package core

import (
	"errors"
	"strconv"

	"github.com/gobuffalo/envy"

	"github.com/devblok/glstream/glr"
)

// Configuration defines a global engine configuration setting
type Configuration struct {
	Time     TimeConfiguration
	Renderer RendererConfiguration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int
}

// RendererConfiguration is used to configure the streaming renderer
type RendererConfiguration struct {
	// Strategy selects the streaming strategy, "ring" or "pool".
	Strategy string

	ScreenWidth  uint32
	ScreenHeight uint32
}

// StreamingStrategy maps the configured strategy name to a renderer
// strategy. Unrecognized names fail with glr.ErrInvalidStrategy.
func (c RendererConfiguration) StreamingStrategy() (glr.Strategy, error) {
	switch c.Strategy {
	case "ring":
		return glr.StrategyRingBuffer, nil
	case "pool":
		return glr.StrategyBufferPool, nil
	}
	return glr.StrategyNone, glr.ErrInvalidStrategy
}

// FromEnv fills a Configuration from the process environment, keeping
// the given defaults for unset variables. Recognized variables:
// GLSTREAM_RENDERER, GLSTREAM_WIDTH, GLSTREAM_HEIGHT, GLSTREAM_FPS.
func FromEnv(defaults Configuration) (Configuration, error) {
	cfg := defaults
	cfg.Renderer.Strategy = envy.Get("GLSTREAM_RENDERER", defaults.Renderer.Strategy)

	if v := envy.Get("GLSTREAM_WIDTH", ""); v != "" {
		w, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return cfg, errors.New("GLSTREAM_WIDTH: " + err.Error())
		}
		cfg.Renderer.ScreenWidth = uint32(w)
	}
	if v := envy.Get("GLSTREAM_HEIGHT", ""); v != "" {
		h, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return cfg, errors.New("GLSTREAM_HEIGHT: " + err.Error())
		}
		cfg.Renderer.ScreenHeight = uint32(h)
	}
	if v := envy.Get("GLSTREAM_FPS", ""); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return cfg, errors.New("GLSTREAM_FPS: " + err.Error())
		}
		cfg.Time.FramesPerSecond = fps
	}
	return cfg, nil
}
