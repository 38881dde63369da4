package imaging

import (
	"image"
	"image/color"
)

// DefaultTolerance is the color distance below which a pixel counts as
// background when the caller does not specify a tolerance.
const DefaultTolerance = 30

// CleanResult reports what a background-cleaning pass did to a grid.
type CleanResult struct {
	ClearedPixels    int `json:"cleared_pixels"`     // Pixels whose alpha went from non-zero to zero
	Seeds            int `json:"seeds"`              // Border pixels that started a flood fill
	HintMatchedSeeds int `json:"hint_matched_seeds"` // Seeds within tolerance of a background hint
}

// BorderPoints returns every coordinate on the outer edge of a width x height
// grid: the top and bottom rows interleaved column by column, then the left
// and right columns interleaved row by row. Corner pixels appear twice in the
// result; the cleaner's visited set makes the duplicates harmless, and
// keeping them preserves the seeding order.
func BorderPoints(width, height int) []image.Point {
	pts := make([]image.Point, 0, 2*width+2*height)
	for x := 0; x < width; x++ {
		pts = append(pts, image.Point{X: x, Y: 0})
		pts = append(pts, image.Point{X: x, Y: height - 1})
	}
	for y := 0; y < height; y++ {
		pts = append(pts, image.Point{X: 0, Y: y})
		pts = append(pts, image.Point{X: width - 1, Y: y})
	}
	return pts
}

// Clean removes the contiguous background of a sprite by flood-filling inward
// from the grid border. The grid is modified in place.
//
// Parameters:
//   - g: The pixel grid to clean.
//   - hints: Known background colors. Hints never gate seeding; they are
//     advisory, and seeds that sit strictly within tolerance of one are
//     tallied in HintMatchedSeeds so callers can judge how well the hints
//     described the actual border.
//   - tolerance: Maximum Euclidean RGB distance for a pixel to count as
//     background relative to its seed.
//
// Returns:
//   - *CleanResult: Counts of cleared pixels and seeds. Never nil.
//
// # Algorithm
//
// Every non-transparent border pixel that has not already been visited seeds
// a breadth-first fill. The fill compares each 4-connected pixel against the
// seed's own color, not against any hint: a hint may be off by almost the
// full tolerance, and chaining the fill off it would double the drift.
// Pixels within tolerance (inclusive) are set fully transparent (0,0,0,0)
// and their neighbors enqueued; pixels beyond it are left byte-for-byte
// untouched. Transparent pixels inside the fill still propagate it when
// their stored RGB matches the seed, so a region cleared by an earlier seed
// does not shield pixels behind it.
//
// A single visited set spans all seeds, so each pixel is examined at most
// once per call. ClearedPixels counts only pixels that actually became
// transparent; re-clearing an already transparent pixel rewrites its RGB
// bytes to zero but does not count.
func Clean(g *Grid, hints []RGBColor, tolerance float64) *CleanResult {
	w, h := g.Width(), g.Height()
	res := &CleanResult{}

	visited := make([]bool, w*h)
	dirs := []image.Point{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}}

	var queue []image.Point
	for _, bp := range BorderPoints(w, h) {
		if visited[bp.Y*w+bp.X] {
			continue
		}
		seed := g.At(bp.X, bp.Y)
		if seed.A == 0 {
			continue
		}
		seedRGB := RGBColor{R: seed.R, G: seed.G, B: seed.B}

		res.Seeds++
		if matchesHint(seedRGB, hints, tolerance) {
			res.HintMatchedSeeds++
		}

		queue = append(queue[:0], bp)
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]

			idx := p.Y*w + p.X
			if visited[idx] {
				continue
			}
			visited[idx] = true

			px := g.At(p.X, p.Y)
			if Distance(RGBColor{R: px.R, G: px.G, B: px.B}, seedRGB) > tolerance {
				continue
			}

			if px.A != 0 {
				res.ClearedPixels++
			}
			g.Set(p.X, p.Y, color.NRGBA{})

			// Neighbors go on the queue even when already visited; the
			// dequeue check discards the duplicates.
			for _, d := range dirs {
				nx, ny := p.X+d.X, p.Y+d.Y
				if nx >= 0 && nx < w && ny >= 0 && ny < h {
					queue = append(queue, image.Point{X: nx, Y: ny})
				}
			}
		}
	}

	return res
}

// matchesHint reports whether c sits strictly within tolerance of any hint.
func matchesHint(c RGBColor, hints []RGBColor, tolerance float64) bool {
	for _, hint := range hints {
		if Distance(c, hint) < tolerance {
			return true
		}
	}
	return false
}
