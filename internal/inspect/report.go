package inspect

import (
	"github.com/anthonynsimon/bild/histogram"

	"sprite-prep/internal/imaging"
)

// cornerSize is the side length of the sampled top-left pixel block.
const cornerSize = 5

// AlphaStats breaks a grid's pixels down by transparency.
type AlphaStats struct {
	Transparent int `json:"transparent"` // alpha == 0
	Opaque      int `json:"opaque"`      // alpha == 255
	Partial     int `json:"partial"`     // everything in between
}

// Report is a snapshot of the observable properties an operator checks
// before and after a cleaning pass.
type Report struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// CornerSamples holds the top-left 5x5 pixel values (clamped for
	// smaller images), row-major.
	CornerSamples [][]imaging.RGBAColor `json:"corner_samples"`

	// RowColorCount is the number of distinct pixel values in row 0.
	RowColorCount int `json:"row_color_count"`

	// RowFirstColors lists the first distinct row-0 values in scan order,
	// at most five.
	RowFirstColors []imaging.RGBAColor `json:"row_first_colors"`

	Alpha AlphaStats `json:"alpha"`
}

// Inspect examines a grid without modifying it.
//
// The corner sample shows whether the background reaches the image edge,
// the row color count shows how uniform the top border is, and the alpha
// statistics show how much a cleaning pass actually changed. Inspect never
// fails; a 1x1 grid simply yields a 1x1 corner sample.
func Inspect(g *imaging.Grid) *Report {
	w, h := g.Width(), g.Height()

	rows := cornerSize
	if h < rows {
		rows = h
	}
	cols := cornerSize
	if w < cols {
		cols = w
	}

	corner := make([][]imaging.RGBAColor, rows)
	for y := 0; y < rows; y++ {
		corner[y] = make([]imaging.RGBAColor, cols)
		for x := 0; x < cols; x++ {
			px := g.At(x, y)
			corner[y][x] = imaging.RGBAColor{R: px.R, G: px.G, B: px.B, A: px.A}
		}
	}

	seen := make(map[imaging.RGBAColor]struct{})
	var first []imaging.RGBAColor
	for x := 0; x < w; x++ {
		px := g.At(x, 0)
		c := imaging.RGBAColor{R: px.R, G: px.G, B: px.B, A: px.A}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		if len(first) < 5 {
			first = append(first, c)
		}
	}

	hist := histogram.NewRGBAHistogram(g.Image())
	transparent := hist.A.Bins[0]
	opaque := hist.A.Bins[255]

	return &Report{
		Width:          w,
		Height:         h,
		CornerSamples:  corner,
		RowColorCount:  len(seen),
		RowFirstColors: first,
		Alpha: AlphaStats{
			Transparent: transparent,
			Opaque:      opaque,
			Partial:     w*h - transparent - opaque,
		},
	}
}
