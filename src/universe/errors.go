package universe

import "errors"

var (
	//ErrInvalidDimension is returned when a non-positive width or height is requested
	ErrInvalidDimension = errors.New("invalid dimension")
	//ErrOutOfBounds is returned for coordinates outside the grid
	ErrOutOfBounds = errors.New("out of bounds")
	//ErrMalformedPattern is returned when a pattern has an unrecognized character
	ErrMalformedPattern = errors.New("malformed pattern")
)
