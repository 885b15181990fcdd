package xform

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// defaultTileRows is the row-band height tiles are cut to before being
// handed to workers, mirroring the teacher's pChunk batch-size knob
// (bmpx.resizeOptions.pChunk) but expressed in scanlines rather than
// pixels, since tiles here are always full-width bands.
const defaultTileRows = 32

// tileRows splits roi into full-width, full-depth, full-channel bands of
// at most rows scanlines each, covering roi exactly with no overlap --
// the tiling contract spec.md §5 and §9 (parallel_image) describe.
func tileRows(roi ROI, rows int) []ROI {
	if rows <= 0 {
		rows = defaultTileRows
	}
	var tiles []ROI
	for y := roi.YBegin; y < roi.YEnd; y += rows {
		yend := minInt(y+rows, roi.YEnd)
		t := roi
		t.YBegin, t.YEnd = y, yend
		tiles = append(tiles, t)
	}
	return tiles
}

// ParallelImage partitions roi into disjoint row-band tiles and runs fn
// once per tile on a worker pool, blocking until every tile completes.
// nthreads==0 means "library default" (runtime.NumCPU()); nthreads==1
// forces strictly serial execution, the correctness baseline spec.md §5
// requires every parallel result to match bit-for-bit. Tiles share no
// mutable state, so this generalizes the teacher's hand-rolled
// sync.WaitGroup-over-a-channel-of-chunks pool (bmpx.Resize's "parallel"
// closure) to golang.org/x/sync/errgroup's bounded worker group.
func ParallelImage(roi ROI, nthreads int, fn func(tile ROI)) {
	if !roi.Defined() {
		return
	}
	tiles := tileRows(roi, defaultTileRows)
	if nthreads == 1 {
		for _, t := range tiles {
			fn(t)
		}
		return
	}
	n := nthreads
	if n <= 0 {
		n = runtime.NumCPU()
		if n < 1 {
			n = 1
		}
	}
	var g errgroup.Group
	g.SetLimit(n)
	for _, t := range tiles {
		t := t
		g.Go(func() error {
			fn(t)
			return nil
		})
	}
	_ = g.Wait()
}
