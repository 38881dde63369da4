package imaging

import "errors"

// Error taxonomy for the asset pipeline. The batch runner classifies
// per-asset failures against these sentinels with errors.Is; everything the
// loader/saver boundary reports wraps exactly one of them.
var (
	// ErrDecode is returned when an asset file is missing, unreadable, or
	// holds corrupt image data.
	ErrDecode = errors.New("imaging: decode failed")

	// ErrInvalidDimensions is returned when a grid would have zero or
	// negative width or height, which makes the mask radius and center
	// computation degenerate.
	ErrInvalidDimensions = errors.New("imaging: invalid dimensions")

	// ErrSave is returned when a processed asset cannot be persisted back
	// to its path.
	ErrSave = errors.New("imaging: save failed")
)
