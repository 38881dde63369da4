package removal

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// rembgBinary is the executable name resolved on PATH.
const rembgBinary = "rembg"

// RembgEngine removes backgrounds using the local rembg command-line tool.
//
// rembg runs a U2-Net style segmentation model and needs no network access
// or API key once installed. The engine shells out with
//
//	rembg i <input> <output>
//
// and replaces the input file with the tool's output.
type RembgEngine struct {
	binary string
}

// NewRembgEngine locates rembg on PATH and returns an engine bound to the
// resolved binary. It fails fast so a batch run does not get halfway
// through before discovering the tool is missing.
func NewRembgEngine() (*RembgEngine, error) {
	bin, err := exec.LookPath(rembgBinary)
	if err != nil {
		return nil, fmt.Errorf("rembg not found on PATH: %w", err)
	}
	return &RembgEngine{binary: bin}, nil
}

// RemoveBackground runs rembg on the file at path and renames the result
// over the input on success.
//
// The tool writes to a temporary file in the same directory as the input,
// so the final rename never crosses filesystems and a failed run leaves
// the original file untouched. Canceling the context kills the subprocess.
func (e *RembgEngine) RemoveBackground(ctx context.Context, path string) error {
	dir, base := filepath.Split(path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.rembg-%d", base, os.Getpid()))

	cmd := exec.CommandContext(ctx, e.binary, "i", path, tmpPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(tmpPath)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("rembg failed on %s: %w: %s", path, err, msg)
		}
		return fmt.Errorf("rembg failed on %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
