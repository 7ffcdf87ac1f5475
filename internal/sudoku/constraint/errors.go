package constraint

import "errors"

// ErrInvalidInput marks malformed input: wrong grid shape, out-of-range
// digits, or a kikagaku partition that isn't a clean 9x9 split.
var ErrInvalidInput = errors.New("invalid input")
