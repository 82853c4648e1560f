package naming

import "errors"

// ErrUnknownRule signals that a rule spelling could not be recognized
var ErrUnknownRule = errors.New("unknown rename rule")
