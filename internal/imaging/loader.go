package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Load reads and decodes the image at path into a pixel grid.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats
//     are PNG, JPEG, GIF, BMP, TIFF, and WebP.
//
// Returns:
//   - *Grid: The decoded pixels, normalized to non-premultiplied RGBA.
//   - error: Non-nil if the file cannot be opened or decoded. All failures
//     wrap ErrDecode.
//
// Every asset is decoded fresh from disk on each call. The pipeline
// overwrites files in place between passes, so holding decoded images in
// memory keyed by path would hand later passes stale pixels.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	return FromImage(img)
}

// Save encodes the grid and writes it to path, replacing any existing file.
// The output format follows the file extension. Failures wrap ErrSave.
func Save(g *Grid, path string) error {
	if err := imaging.Save(g.Image(), path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSave, path, err)
	}
	return nil
}

// ImageInfo contains metadata about an image file on disk.
//
// This struct provides essential information about an asset without
// requiring the caller to analyze the pixel data directly.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the decoded image format: "png", "jpeg", "gif", "bmp",
	// "tiff", or "webp". Detection is based on file contents, not extension.
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the image has an alpha (transparency) channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo decodes the image at path and returns metadata about it.
//
// Parameters:
//   - path: Path to the image file.
//
// Returns:
//   - *ImageInfo: Metadata including dimensions, format, color depth, alpha
//     channel presence, and file size.
//   - error: Non-nil if the image cannot be decoded (wraps ErrDecode) or the
//     file cannot be stat'd.
//
// # Color Depth Detection
//
// Color depth is determined by the decoded Go image type:
//   - *image.RGBA64, *image.NRGBA64, *image.Gray16 -> "16-bit"
//   - All other types -> "8-bit"
func LoadImageInfo(path string) (*ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	bounds := img.Bounds()

	hasAlpha := false
	colorDepth := "8-bit"
	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		colorDepth = "16-bit"
	case *image.Gray16:
		colorDepth = "16-bit"
	}

	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		ColorDepth:    colorDepth,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}
