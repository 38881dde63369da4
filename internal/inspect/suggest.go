package inspect

import (
	"fmt"
	"math"
	"sort"

	"github.com/cenkalti/dominantcolor"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"gonum.org/v1/gonum/stat"

	"sprite-prep/internal/imaging"
)

// maxHints caps how many background hint candidates Suggest produces.
const maxHints = 3

// Suggestion proposes cleaning parameters derived from what the image
// border actually contains.
type Suggestion struct {
	// DominantColor is the most common color of the whole image, useful
	// as a sanity check against the border-derived hints.
	DominantColor imaging.RGBColor `json:"dominant_color"`

	// Hints are candidate background colors, most common border color
	// first. Empty when the border is entirely transparent.
	Hints []imaging.RGBColor `json:"hints"`

	// Tolerance is a cleaning tolerance wide enough to cover the spread
	// of border colors around the hints.
	Tolerance float64 `json:"tolerance"`
}

// Suggest derives cleaning parameters from a grid.
//
// Hint candidates come from k-means clustering of the non-transparent
// border pixel colors (at most maxHints clusters); the tolerance covers
// the observed spread of border colors around those hints. When the whole
// border is already transparent there is nothing to measure: no hints are
// suggested and the tolerance falls back to DefaultTolerance.
func Suggest(g *imaging.Grid) (*Suggestion, error) {
	dom := dominantcolor.Find(g.Image())
	s := &Suggestion{
		DominantColor: imaging.RGBColor{R: dom.R, G: dom.G, B: dom.B},
		Tolerance:     imaging.DefaultTolerance,
	}

	border := borderColors(g)
	if len(border) == 0 {
		return s, nil
	}

	obs := make(clusters.Observations, len(border))
	for i, c := range border {
		obs[i] = clusters.Coordinates{
			float64(c.R) / 255,
			float64(c.G) / 255,
			float64(c.B) / 255,
		}
	}

	k := maxHints
	if len(obs) < k {
		k = len(obs)
	}

	km := kmeans.New()
	cc, err := km.Partition(obs, k)
	if err != nil {
		return nil, fmt.Errorf("cluster border colors: %w", err)
	}

	// Most common border color first: the biggest cluster is the most
	// plausible background.
	sort.Slice(cc, func(i, j int) bool {
		return len(cc[i].Observations) > len(cc[j].Observations)
	})

	seen := make(map[imaging.RGBColor]struct{})
	for _, c := range cc {
		hint := imaging.RGBColor{
			R: uint8(math.Round(c.Center[0] * 255)),
			G: uint8(math.Round(c.Center[1] * 255)),
			B: uint8(math.Round(c.Center[2] * 255)),
		}
		if _, ok := seen[hint]; ok {
			continue
		}
		seen[hint] = struct{}{}
		s.Hints = append(s.Hints, hint)
	}

	dists := make([]float64, len(border))
	for i, c := range border {
		nearest := math.MaxFloat64
		for _, hint := range s.Hints {
			if d := imaging.Distance(c, hint); d < nearest {
				nearest = d
			}
		}
		dists[i] = nearest
	}
	s.Tolerance = suggestTolerance(dists)

	return s, nil
}

// borderColors collects the colors of the non-transparent border pixels,
// each border pixel counted once.
func borderColors(g *imaging.Grid) []imaging.RGBColor {
	w, h := g.Width(), g.Height()
	seen := make([]bool, w*h)

	var colors []imaging.RGBColor
	for _, p := range imaging.BorderPoints(w, h) {
		idx := p.Y*w + p.X
		if seen[idx] {
			continue
		}
		seen[idx] = true

		px := g.At(p.X, p.Y)
		if px.A == 0 {
			continue
		}
		colors = append(colors, imaging.RGBColor{R: px.R, G: px.G, B: px.B})
	}
	return colors
}

// suggestTolerance turns nearest-hint distances into a tolerance: two
// standard deviations above the mean, rounded and clamped to a usable
// range. The lower clamp keeps a perfectly uniform border from producing
// a tolerance of zero.
func suggestTolerance(dists []float64) float64 {
	if len(dists) == 0 {
		return imaging.DefaultTolerance
	}

	mean := stat.Mean(dists, nil)
	sd := 0.0
	if len(dists) > 1 {
		sd = stat.StdDev(dists, nil)
	}

	tol := math.Round(mean + 2*sd)
	if tol < 10 {
		return 10
	}
	if tol > 255 {
		return 255
	}
	return tol
}
