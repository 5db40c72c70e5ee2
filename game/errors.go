package game

import "errors"

// Failure taxonomy shared by the board engine and the codecs. Every
// failure is local and synchronous: an operation either returns a
// consistent new value or one of these errors, and nothing is mutated
// on the error path.
var (
	// ErrOutOfRange reports a coordinate or index outside the valid
	// hexagon for the configured size.
	ErrOutOfRange = errors.New("coordinate outside the valid board")

	// ErrInvalidConfiguration reports an unsupported size or player
	// count at construction time.
	ErrInvalidConfiguration = errors.New("invalid board configuration")

	// ErrIllegalMove reports a move that is not derivable from the
	// current legal-move set.
	ErrIllegalMove = errors.New("move is not legal on the current board")

	// ErrMalformedVector reports a vector with the wrong length,
	// non-binary entries, or a one-hot violation.
	ErrMalformedVector = errors.New("malformed vector")

	// ErrOverflow reports a packed integer that does not fit the
	// declared bit length.
	ErrOverflow = errors.New("packed integer exceeds vector length")
)
