// Package pipeline orchestrates sprite cleanup over batches of asset files.
//
// A batch is described by a Config: a list of assets, each naming one image
// file plus optional background hints and a match tolerance. DefaultConfig
// returns the built-in set the pipeline was originally tuned against;
// LoadConfig reads the same shape from a JSON file.
//
// The Runner applies one stage at a time across the whole batch:
//
//   - Clean clears border-connected background regions in place.
//   - Crop composites each image through a centered circular mask.
//   - Remove hands each file to an external background-removal engine.
//
// Stages are independent and run in whatever order the operator chooses.
// A failure on one asset is reported and recorded in the Results, and the
// remaining assets still run; callers turn Results.Failed into an exit
// status.
package pipeline
