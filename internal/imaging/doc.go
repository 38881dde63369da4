// Package imaging provides the pixel-level operations of the sprite
// preparation pipeline.
//
// This package implements the two destructive passes the pipeline runs over
// game assets: tolerance-based background cleaning seeded from the image
// border, and circular masking that composites a sprite onto a transparent
// canvas. It also provides loading, saving, and color sampling support for
// the diagnostic tooling. All operations work on the Grid type, a
// non-premultiplied RGBA pixel store with a coordinate system where (0,0)
// is at the top-left corner, X increases rightward, and Y increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - Coordinates are inclusive for single points
//
// # Transparency Model
//
// Pixels are stored without alpha premultiplication, so a fully transparent
// pixel keeps whatever RGB bytes were last written to it. Cleaning writes
// (0,0,0,0); masking copies transparent pixels byte for byte. Color distance
// is computed over RGB only and never consults alpha.
//
// # Color Representation
//
// Colors are returned in multiple formats for flexibility:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - RGBA: 8-bit components with alpha (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Error Handling
//
// Failures at the file boundary wrap one of the package sentinels so the
// batch runner can classify them with errors.Is:
//   - ErrDecode: missing, unreadable, or corrupt asset files
//   - ErrInvalidDimensions: grids with zero or negative width or height
//   - ErrSave: assets that cannot be written back to disk
//
// In-memory operations on a valid Grid do not fail; out-of-bounds reads
// return the zero color and out-of-bounds writes are ignored.
package imaging
