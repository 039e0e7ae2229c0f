package fractal

import (
	"context"
	"fmt"
	"image/color"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// PixelSource computes individual pixel colors for the engine. Pixel must
// be safe for concurrent use; *ValueGenerator satisfies this because it is
// read-only after construction.
type PixelSource interface {
	ImageSize() (width, height int)
	Pixel(x, y int) color.RGBA
}

// ProgressFunc receives the per-worker completion fractions (0 to 1, one
// entry per worker). Called from the coordinating goroutine, never
// concurrently with itself. Reporting is best-effort and carries no
// correctness weight.
type ProgressFunc func(perWorker []float64)

// RenderOptions configures one parallel frame computation.
type RenderOptions struct {
	// Workers is the number of parallel workers; values below 1 are
	// treated as 1.
	Workers int

	// OnProgress, when set, is invoked at most once per ProgressInterval
	// with the latest known per-worker completion fractions, plus once
	// after the final pixel.
	OnProgress       ProgressFunc
	ProgressInterval time.Duration
}

// WorkerError reports a panic inside a rendering worker.
type WorkerError struct {
	Worker int
	Cause  any
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("fractal: worker %d panicked: %v", e.Worker, e.Cause)
}

// pixelResult carries one computed pixel from a worker to the coordinator.
type pixelResult struct {
	index int
	color color.RGBA
}

// Render computes a full RGBA8 frame (width*height*4 bytes, row-major,
// origin top-left) from the pixel source.
//
// The pixel index space is partitioned into interleaved subsequences:
// worker i owns indices i, i+K, i+2K, ... so the sets are disjoint and
// exactly exhaustive, and the assembled image is byte-identical for any
// worker count. Workers stream results over a channel; the coordinator
// writes each color into its final position and polls per-worker progress
// counters. A cancelled context aborts the frame and returns ctx.Err().
func Render(ctx context.Context, src PixelSource, opts RenderOptions) ([]byte, error) {
	width, height := src.ImageSize()
	total := width * height

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > total {
		workers = total
	}

	results := make(chan pixelResult, 4*workers)
	done := make([]atomic.Int64, workers)
	assigned := make([]int, workers)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		offset := i
		count := total / workers
		if offset < total%workers {
			count++
		}
		assigned[offset] = count

		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &WorkerError{Worker: offset, Cause: r}
				}
			}()
			return renderWorker(ctx, src, results, &done[offset], offset, workers, count, width)
		})
	}

	// Close the result channel once every worker has returned so the drain
	// loop below terminates even when a worker dies early.
	go func() {
		_ = g.Wait()
		close(results)
	}()

	image := make([]byte, total*4)
	progress := make([]float64, workers)
	lastReport := time.Now()

	for msg := range results {
		at := msg.index * 4
		image[at] = msg.color.R
		image[at+1] = msg.color.G
		image[at+2] = msg.color.B
		image[at+3] = msg.color.A

		if opts.OnProgress != nil && time.Since(lastReport) > opts.ProgressInterval {
			reportProgress(opts.OnProgress, progress, done, assigned)
			lastReport = time.Now()
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if opts.OnProgress != nil {
		reportProgress(opts.OnProgress, progress, done, assigned)
	}
	return image, nil
}

func renderWorker(ctx context.Context, src PixelSource, results chan<- pixelResult,
	done *atomic.Int64, offset, stride, count, width int) error {

	for i := 0; i < count; i++ {
		index := i*stride + offset
		x := index % width
		y := index / width

		// The hot loop only touches the atomic counter; cancellation and
		// progress are observed by the coordinator.
		select {
		case results <- pixelResult{index: index, color: src.Pixel(x, y)}:
		case <-ctx.Done():
			return ctx.Err()
		}
		done.Store(int64(i + 1))
	}
	return nil
}

func reportProgress(fn ProgressFunc, scratch []float64, done []atomic.Int64, assigned []int) {
	for i := range scratch {
		if assigned[i] == 0 {
			scratch[i] = 1
			continue
		}
		scratch[i] = float64(done[i].Load()) / float64(assigned[i])
	}
	fn(scratch)
}
