package video

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Names of known resolutions.
const (
	HDVertical   = "HD_Vertical"
	HDHorizontal = "HD_Horizontal"
	Square       = "Square"
)

// ResolutionFor returns width and height in pixels for a named resolution.
// Unknown names fall back to HDVertical (1080 × 1920).
func ResolutionFor(name string) (width, height int) {
	switch name {
	case HDVertical:
		return 1080, 1920
	case HDHorizontal:
		return 1920, 1080
	case Square:
		return 1080, 1080
	}
	return 1080, 1920
}

// Limits for the duration of a clip, in seconds.
const (
	MinDuration = 1
	MaxDuration = 60
)

// ErrInvalidConfig is returned for configurations no video can be produced from.
var ErrInvalidConfig = errors.New("invalid video configuration")

// Config describes the video to produce.
type Config struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	FPS      int    `json:"fps"`
	Duration int    `json:"duration"` // in seconds
	Quality  string `json:"quality"`
	Format   string `json:"format"`
}

// NewConfig creates a configuration for a named resolution (see ResolutionFor).
func NewConfig(resolution string, fps, duration int, quality, format string) Config {
	w, h := ResolutionFor(resolution)
	return Config{
		Width:    w,
		Height:   h,
		FPS:      fps,
		Duration: duration,
		Quality:  quality,
		Format:   format,
	}
}

// Validate checks if a video can be produced from cfg.
func (cfg Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: resolution %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	if cfg.FPS <= 0 {
		return fmt.Errorf("%w: frame rate must be positive, is %d", ErrInvalidConfig, cfg.FPS)
	}
	if cfg.Duration < MinDuration || cfg.Duration > MaxDuration {
		return fmt.Errorf("%w: duration must be %d-%d seconds, is %d", ErrInvalidConfig,
			MinDuration, MaxDuration, cfg.Duration)
	}
	return nil
}

// TotalFrames is the number of frames a video of this configuration consists of.
func (cfg Config) TotalFrames() int {
	return cfg.FPS * cfg.Duration
}

// JSON returns cfg in JSON format, or an empty string if cfg cannot be marshalled.
func (cfg Config) JSON() string {
	b, err := json.Marshal(cfg)
	if err != nil {
		tracer().Errorf("cannot marshal video config: %v", err)
		return ""
	}
	return string(b)
}
