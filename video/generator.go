package video

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// Generator collects the frames of a video.
//
// A Generator is owned by the client feeding it frames and is not safe for
// concurrent use.
type Generator struct {
	config Config
	frames *arraylist.List
}

// NewGenerator creates a frame collector for a configuration.
func NewGenerator(cfg Config) *Generator {
	tracer().Infof("video generator initialized: %dx%d @ %dfps, %ds",
		cfg.Width, cfg.Height, cfg.FPS, cfg.Duration)
	return &Generator{
		config: cfg,
		frames: arraylist.New(),
	}
}

// Config returns the configuration of g.
func (g *Generator) Config() Config {
	return g.config
}

// Width is the frame width in pixels.
func (g *Generator) Width() int {
	return g.config.Width
}

// Height is the frame height in pixels.
func (g *Generator) Height() int {
	return g.config.Height
}

// TotalFrames is the number of frames expected for the complete video.
func (g *Generator) TotalFrames() int {
	return g.config.TotalFrames()
}

// AddFrame appends a frame. The generator stores a private copy of data.
func (g *Generator) AddFrame(data []byte) {
	frame := make([]byte, len(data))
	copy(frame, data)
	g.frames.Add(frame)
	if n := g.frames.Size(); n%10 == 0 {
		tracer().Infof("captured %d frames", n)
	}
}

// FrameCount is the number of frames captured so far.
func (g *Generator) FrameCount() int {
	return g.frames.Size()
}

// Frame returns the i-th captured frame.
func (g *Generator) Frame(i int) ([]byte, bool) {
	f, ok := g.frames.Get(i)
	if !ok {
		return nil, false
	}
	return f.([]byte), true
}

// Progress returns the percentage of captured frames, relative to
// TotalFrames. It will not exceed 100.
func (g *Generator) Progress() int {
	total := g.TotalFrames()
	if total <= 0 {
		return 0
	}
	p := g.FrameCount() * 100 / total
	if p > 100 {
		p = 100
	}
	return p
}

// Clear drops all captured frames.
func (g *Generator) Clear() {
	g.frames.Clear()
	tracer().Infof("frames cleared")
}

// ConfigJSON returns the configuration of g in JSON format.
func (g *Generator) ConfigJSON() string {
	return g.config.JSON()
}
