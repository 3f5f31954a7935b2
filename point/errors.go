package point

import "errors"

var (
	// ErrInvalidDegrees indicates a rotation angle that is not congruent to
	// 0, 90, 180 or 270 modulo 360.
	ErrInvalidDegrees = errors.New("point: degrees must be a multiple of 90")
)
