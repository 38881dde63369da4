package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Grid is a mutable in-memory grid of RGBA pixels with zero-based
// coordinates: x in [0,Width), y in [0,Height), origin at the top-left.
//
// The backing store is non-premultiplied (*image.NRGBA), so every channel
// value round-trips byte-exact through PNG: when the cleaner zeroes a
// pixel, or the masker copies one, no premultiplication rounding creeps in.
//
// A Grid is owned by whichever component currently processes it. Methods
// are not synchronized; the pipeline processes one asset at a time.
type Grid struct {
	img *image.NRGBA
	w   int
	h   int
}

// NewGrid creates a fully transparent grid of the given dimensions.
//
// Returns ErrInvalidDimensions when width or height is less than 1.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		img: image.NewNRGBA(image.Rect(0, 0, width, height)),
		w:   width,
		h:   height,
	}, nil
}

// FromImage copies src into a fresh grid, upconverting whatever channel
// layout the source uses (grayscale, paletted, YCbCr, 16-bit) to 8-bit
// RGBA. Sources in other layouts are converted, never rejected.
//
// Returns ErrInvalidDimensions for an empty source image.
func FromImage(src image.Image) (*Grid, error) {
	b := src.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, b.Dx(), b.Dy())
	}
	// imaging.Clone normalizes the bounds to start at (0,0).
	return &Grid{img: imaging.Clone(src), w: b.Dx(), h: b.Dy()}, nil
}

// Width returns the grid width in pixels.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height in pixels.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (x, y) addresses a pixel of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the pixel at (x, y). Out-of-bounds coordinates yield the zero
// pixel (fully transparent black), matching the image.NRGBA contract.
func (g *Grid) At(x, y int) color.NRGBA {
	return g.img.NRGBAAt(x, y)
}

// Set writes the pixel at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c color.NRGBA) {
	g.img.SetNRGBA(x, y, c)
}

// Image exposes the backing image for encoding and read-only analysis.
// Mutating it mutates the grid.
func (g *Grid) Image() *image.NRGBA {
	return g.img
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{img: imaging.Clone(g.img), w: g.w, h: g.h}
}
