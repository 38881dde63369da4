// Package removal provides neural background removal for sprite images
// through external engines.
//
// Two engines implement the Remover interface:
//
//   - RembgEngine shells out to the local rembg command-line tool.
//   - Client calls the hosted remove.bg HTTP API.
//
// Both overwrite the input file in place on success and leave it untouched
// on failure. They are interchangeable from the caller's point of view;
// which one to use is an operational choice between running a local model
// and paying for API credits.
//
// # Prerequisites
//
// RembgEngine requires the rembg tool on PATH:
//
//	pip install "rembg[cli]"
//
// The first run downloads the segmentation model weights, which can take a
// while. NewRembgEngine fails immediately when the binary is missing.
//
// Client requires a remove.bg API key, available from
// https://www.remove.bg/api. The free tier is rate limited and returns
// HTTP 402 when credits run out; that surfaces as an ordinary error with
// the response text attached.
package removal
