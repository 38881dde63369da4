package pipeline

import (
	"context"
	"fmt"
	"io"

	"sprite-prep/internal/imaging"
	"sprite-prep/internal/removal"
)

// AssetResult records the outcome of one pipeline stage on one asset.
// ClearedPixels is only meaningful for the clean stage.
type AssetResult struct {
	Name          string `json:"name"`
	ClearedPixels int    `json:"cleared_pixels"`
	Err           error  `json:"-"`
}

// Results aggregates the per-asset outcomes of one batch run.
type Results []AssetResult

// Failed counts the assets that ended in an error.
func (rs Results) Failed() int {
	n := 0
	for _, r := range rs {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// Runner executes pipeline stages over a batch of assets. A failing asset
// is reported and recorded, and the batch moves on to the next one.
//
// Progress lines go to Out in the phrasing the pipeline has always used,
// so existing log-scraping keeps working.
type Runner struct {
	Out io.Writer
}

// NewRunner returns a Runner reporting progress to out. A nil writer
// discards progress output.
func NewRunner(out io.Writer) *Runner {
	if out == nil {
		out = io.Discard
	}
	return &Runner{Out: out}
}

// Clean runs the flood-fill background pass over every asset: load, clear
// border-connected background regions using the asset's hints and
// tolerance, save in place.
func (r *Runner) Clean(assets []Asset) Results {
	results := make(Results, 0, len(assets))
	for _, a := range assets {
		res := AssetResult{Name: a.Name}
		res.ClearedPixels, res.Err = r.cleanOne(a)
		if res.Err != nil {
			fmt.Fprintf(r.Out, "Error processing %s: %v\n", a.Name, res.Err)
		}
		results = append(results, res)
	}
	return results
}

func (r *Runner) cleanOne(a Asset) (int, error) {
	hints, err := a.HintColors()
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(r.Out, "Aggressive cleaning %s...\n", a.Name)
	g, err := imaging.Load(a.Name)
	if err != nil {
		return 0, err
	}
	clean := imaging.Clean(g, hints, a.EffectiveTolerance())
	fmt.Fprintf(r.Out, "Cleared %d pixels.\n", clean.ClearedPixels)
	if err := imaging.Save(g, a.Name); err != nil {
		return clean.ClearedPixels, err
	}
	fmt.Fprintf(r.Out, "Saved %s\n", a.Name)
	return clean.ClearedPixels, nil
}

// Crop runs the circular mask pass over every asset: load, composite
// through the centered circle, save in place. It is a logically independent
// second pass and does not require a prior Clean.
func (r *Runner) Crop(assets []Asset) Results {
	results := make(Results, 0, len(assets))
	for _, a := range assets {
		res := AssetResult{Name: a.Name}
		res.Err = r.cropOne(a)
		if res.Err != nil {
			fmt.Fprintf(r.Out, "Error processing %s: %v\n", a.Name, res.Err)
		}
		results = append(results, res)
	}
	return results
}

func (r *Runner) cropOne(a Asset) error {
	fmt.Fprintf(r.Out, "Circular cropping %s...\n", a.Name)
	g, err := imaging.Load(a.Name)
	if err != nil {
		return err
	}
	masked := imaging.ApplyCircleMask(g)
	if err := imaging.Save(masked, a.Name); err != nil {
		return err
	}
	fmt.Fprintf(r.Out, "Saved cropped %s\n", a.Name)
	return nil
}

// Remove runs a background-removal collaborator over every asset. The
// remover overwrites each file in place; the Runner only sequences the
// calls and contains failures.
func (r *Runner) Remove(ctx context.Context, rem removal.Remover, assets []Asset) Results {
	results := make(Results, 0, len(assets))
	for _, a := range assets {
		res := AssetResult{Name: a.Name}
		fmt.Fprintf(r.Out, "Removing background from %s...\n", a.Name)
		res.Err = rem.RemoveBackground(ctx, a.Name)
		if res.Err != nil {
			fmt.Fprintf(r.Out, "Error processing %s: %v\n", a.Name, res.Err)
		} else {
			fmt.Fprintf(r.Out, "Successfully processed %s\n", a.Name)
		}
		results = append(results, res)
	}
	return results
}
