package imaging

import (
	"image"
	"image/color"
)

// maskInset keeps the circle edge clear of the outermost pixel ring, where
// cleaning artifacts tend to survive.
const maskInset = 2

// CircleRadius returns the radius of the centered crop circle for a
// width x height grid: half the short side minus a fixed inset. The result
// is zero or negative for grids smaller than twice the inset; CircleMask
// treats that as an empty circle.
func CircleRadius(width, height int) float64 {
	short := width
	if height < short {
		short = height
	}
	return float64(short)/2 - maskInset
}

// CircleMask builds an alpha mask for a width x height grid. Pixels whose
// coordinate (x, y) satisfies
//
//	(x-cx)^2 + (y-cy)^2 <= r^2
//
// with center (width/2, height/2) and r from CircleRadius are fully opaque;
// everything else is fully transparent. When the radius is not positive the
// mask is entirely transparent rather than inverted, which would happen if
// a negative radius were squared into the comparison.
func CircleMask(width, height int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	r := CircleRadius(width, height)
	if r <= 0 {
		return mask
	}

	cx := float64(width) / 2
	cy := float64(height) / 2
	rr := r * r
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= rr {
				mask.SetAlpha(x, y, color.Alpha{A: 255})
			}
		}
	}
	return mask
}

// ApplyCircleMask composites g onto a fresh transparent canvas through the
// grid's circle mask and returns the canvas as a new grid. The input grid is
// not modified.
//
// Pixels inside the circle are copied byte for byte, transparent ones
// included, so RGB data stored under zero alpha survives the crop. Pixels
// outside the circle are (0,0,0,0). The standard library's draw.DrawMask
// cannot be used here: it round-trips sources through premultiplied alpha,
// which zeroes the RGB bytes of transparent pixels.
func ApplyCircleMask(g *Grid) *Grid {
	w, h := g.Width(), g.Height()
	mask := CircleMask(w, h)

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.AlphaAt(x, y).A == 255 {
				out.SetNRGBA(x, y, g.At(x, y))
			}
		}
	}
	return &Grid{img: out, w: w, h: h}
}
