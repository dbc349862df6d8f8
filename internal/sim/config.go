package sim

import "strings"

const (
	DefaultSeed         = "village"
	DefaultWidth        = 1600.0
	DefaultHeight       = 1200.0
	DefaultCanvasWidth  = 960.0
	DefaultCanvasHeight = 540.0
)

// Config describes the world the constructor builds. Canvas dimensions
// belong to the presentation layer but feed the camera's viewport math.
type Config struct {
	Seed         string  `json:"seed"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	CanvasWidth  float64 `json:"canvasWidth"`
	CanvasHeight float64 `json:"canvasHeight"`
}

func (cfg Config) normalized() Config {
	normalized := cfg
	normalized.Seed = strings.TrimSpace(normalized.Seed)
	if normalized.Seed == "" {
		normalized.Seed = DefaultSeed
	}
	if normalized.Width <= 0 {
		normalized.Width = DefaultWidth
	}
	if normalized.Height <= 0 {
		normalized.Height = DefaultHeight
	}
	if normalized.CanvasWidth <= 0 {
		normalized.CanvasWidth = DefaultCanvasWidth
	}
	if normalized.CanvasHeight <= 0 {
		normalized.CanvasHeight = DefaultCanvasHeight
	}
	return normalized
}

// Normalized clamps the configuration into a usable state.
func (cfg Config) Normalized() Config {
	return cfg.normalized()
}

// DefaultConfig is the stock village layout.
func DefaultConfig() Config {
	return Config{
		Seed:         DefaultSeed,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		CanvasWidth:  DefaultCanvasWidth,
		CanvasHeight: DefaultCanvasHeight,
	}
}
