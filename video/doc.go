/*
Package video does the bookkeeping for rendering text into video frames.

Frames are painted by a client onto a canvas and handed to a Generator as
opaque byte slices. The Generator counts and stores them until an encoder
collects them; encoding itself is not done here.

Resolutions are referred to by name. Unknown names silently fall back to
HDVertical, the format of short vertical clips.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package video

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
