package builder

import "errors"

// ErrTooFewIDs indicates that the id slice is shorter than the minimum
// the requested topology needs (2 for Path, Star and Complete, 3 for
// Cycle). Match with errors.Is; the wrapped message carries the
// constructor name and the offending length.
var ErrTooFewIDs = errors.New("builder: too few ids")

// ErrDuplicateIDs indicates that the id slice contains the same id more
// than once. Constructors require distinct ids so the emitted topology
// matches the documented shape exactly.
var ErrDuplicateIDs = errors.New("builder: duplicate ids")
