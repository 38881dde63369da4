// Package inspect reports on sprite assets without modifying them.
//
// This package provides the read-only half of the pipeline: a structural
// Report of what an asset looks like right now, and a Suggestion of
// cleaning parameters derived from its border. Operators run these before
// a cleaning pass to pick hints and tolerance, and after one to confirm
// how much changed.
//
// # Report
//
// Inspect samples the top-left corner block, counts the distinct colors
// of the top row, and tallies pixels by transparency. The corner block and
// row count answer the practical question "does the background touch the
// edge, and is it uniform enough to flood from there"; the alpha tally is
// the fastest way to see whether a pass did anything.
//
// # Suggestion
//
// Suggest replaces eyeballing the report: it clusters the border colors
// (k-means, at most three clusters), offers the cluster centers as hint
// candidates ordered by how much border they cover, and sizes a tolerance
// from the spread of border colors around those hints. The dominant color
// of the whole image is included as a cross-check; when it matches the
// first hint, the sprite likely shares its background color and a cleaning
// pass deserves extra care.
//
// Both entry points are total over well-formed grids; Suggest can fail
// only if clustering does, which a valid non-empty border never triggers.
package inspect
