package piece

import "errors"

// ErrUnknownPiece indicates an ID that is not in the piece table.
// Usage: if errors.Is(err, ErrUnknownPiece) { /* validate input */ }.
var ErrUnknownPiece = errors.New("piece: unknown piece")
