package removal

import "context"

// Remover removes the background of one image file, overwriting the file
// in place on success.
//
// Implementations treat the image as a black box: image in, image out with
// background alpha pushed toward zero. The flood-fill cleaner never calls
// a Remover; the two are alternative first passes an operator chooses
// between, with the circular mask applied afterward either way.
type Remover interface {
	RemoveBackground(ctx context.Context, path string) error
}
