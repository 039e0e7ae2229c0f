package encode

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// PNGSeq writes one numbered PNG per frame into a directory. Useful for
// inspecting individual frames and for environments without ffmpeg.
type PNGSeq struct {
	dir    string
	width  int
	height int
}

// NewPNGSeq creates the output directory if needed and returns a writer
// producing dir/frame-00000.png, dir/frame-00001.png, ... keyed by pts.
func NewPNGSeq(dir string, width, height int) (*PNGSeq, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("encode: create %s: %w", dir, err)
	}
	return &PNGSeq{dir: dir, width: width, height: height}, nil
}

// WriteFrame encodes the frame as dir/frame-<pts>.png.
func (p *PNGSeq) WriteFrame(frame []byte, pts int64) error {
	if len(frame) != p.width*p.height*4 {
		return ErrFrameSize
	}
	img := &image.RGBA{
		Pix:    frame,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
	path := filepath.Join(p.dir, fmt.Sprintf("frame-%05d.png", pts))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("encode: close %s: %w", path, err)
	}
	return nil
}

// Close implements FrameWriter; PNG frames are self-contained.
func (p *PNGSeq) Close() error { return nil }

// WritePNG writes a single RGBA frame to path as a PNG.
func WritePNG(path string, frame []byte, width, height int) error {
	if len(frame) != width*height*4 {
		return ErrFrameSize
	}
	img := &image.RGBA{
		Pix:    frame,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode: write %s: %w", path, err)
	}
	return f.Close()
}
