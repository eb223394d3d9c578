package spec

import "errors"

// ErrType is returned when a Sort step is asked to order values that
// cannot be meaningfully compared to one another.
var ErrType = errors.New("jsonpath: type")

// ErrValue is reserved for semantically invalid (but syntactically
// well-formed) step arguments.
var ErrValue = errors.New("jsonpath: value")
