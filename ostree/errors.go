package ostree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("ostree: invalid configuration")
	// ErrDuplicateKey signals an insert of a key which is already present.
	ErrDuplicateKey = errors.New("ostree: duplicate key")
	// ErrIndexOutOfRange signals a rank outside of [0, Len()).
	ErrIndexOutOfRange = errors.New("ostree: index out of range")
	// ErrInvalidWeight signals a weight or weight delta outside the accepted range.
	ErrInvalidWeight = errors.New("ostree: invalid weight")
	// ErrInvalidDimension signals an invalid or missing seek dimension.
	ErrInvalidDimension = errors.New("ostree: invalid dimension")
	// ErrInvalidTree is reported by Check for a violated structural invariant.
	ErrInvalidTree = errors.New("ostree: invariant violated")
)
