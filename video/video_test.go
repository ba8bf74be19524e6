package video

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
)

func TestResolutionFor(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, x := range []struct {
		name string
		w, h int
	}{
		{HDVertical, 1080, 1920},
		{HDHorizontal, 1920, 1080},
		{Square, 1080, 1080},
		{"unknown-name", 1080, 1920},
		{"", 1080, 1920},
		{"square", 1080, 1920}, // names are case sensitive
	} {
		w, h := ResolutionFor(x.name)
		assert.Equal(t, x.w, w, "width of %q", x.name)
		assert.Equal(t, x.h, h, "height of %q", x.name)
	}
}

func TestConfig(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	cfg := NewConfig(Square, 30, 5, "high", "MP4")
	assert.Equal(t, 1080, cfg.Width)
	assert.Equal(t, 1080, cfg.Height)
	assert.Equal(t, 150, cfg.TotalFrames())
	assert.NoError(t, cfg.Validate())
	assert.JSONEq(t,
		`{"width":1080,"height":1080,"fps":30,"duration":5,"quality":"high","format":"MP4"}`,
		cfg.JSON())
	//
	for _, bad := range []Config{
		NewConfig(Square, 30, 0, "high", "MP4"),
		NewConfig(Square, 30, 61, "high", "MP4"),
		NewConfig(Square, 0, 5, "high", "MP4"),
		{Width: 0, Height: 100, FPS: 30, Duration: 5},
	} {
		err := bad.Validate()
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfig), "expected ErrInvalidConfig, have %v", err)
	}
}

func TestGenerator(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	g := NewGenerator(NewConfig(HDHorizontal, 10, 2, "medium", "GIF"))
	assert.Equal(t, 1920, g.Width())
	assert.Equal(t, 1080, g.Height())
	assert.Equal(t, 20, g.TotalFrames())
	assert.Equal(t, 0, g.FrameCount())
	assert.Equal(t, 0, g.Progress())
	//
	data := []byte{1, 2, 3}
	for i := 0; i < 10; i++ {
		data[0] = byte(i)
		g.AddFrame(data)
	}
	assert.Equal(t, 10, g.FrameCount())
	assert.Equal(t, 50, g.Progress())
	f, ok := g.Frame(3)
	assert.True(t, ok)
	assert.Equal(t, []byte{3, 2, 3}, f, "frames must be copied")
	_, ok = g.Frame(10)
	assert.False(t, ok)
	//
	for i := 0; i < 15; i++ {
		g.AddFrame(data)
	}
	assert.Equal(t, 100, g.Progress())
	g.Clear()
	assert.Equal(t, 0, g.FrameCount())
	assert.Equal(t, 20, g.TotalFrames())
	assert.Contains(t, g.ConfigJSON(), `"format":"GIF"`)
}
