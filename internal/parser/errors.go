package parser

import "errors"

var (
	// ErrMalformedDirective is returned in strict mode when a directive's
	// arguments do not have the shape the converter expects.
	ErrMalformedDirective = errors.New("malformed directive")
	// ErrDuplicateDirective is returned in strict mode when a directive is
	// attached more than once to the same field.
	ErrDuplicateDirective = errors.New("duplicate directive")
)
