// Package encode delivers rendered RGBA frames to a video sink. The core
// hands every frame to a FrameWriter in presentation order and treats any
// write failure as fatal to the current render.
package encode

import "errors"

// ErrFrameSize is returned when a frame buffer does not match the sink's
// configured width*height*4 bytes.
var ErrFrameSize = errors.New("encode: frame buffer has wrong size")

// FrameWriter consumes fully assembled RGBA8 frame buffers.
//
// WriteFrame takes ownership of nothing: the caller may reuse the buffer
// once the call returns. pts is a presentation timestamp in time-base
// units and must increase monotonically. Close finalizes the stream;
// writers must be closed even after a write error.
type FrameWriter interface {
	WriteFrame(frame []byte, pts int64) error
	Close() error
}
