package signature

import "errors"

var (
	// ErrEmptySignature is returned when there is no header to take a method
	// name from
	ErrEmptySignature = errors.New("empty signature")
	// ErrBlankToken is returned when the header contains an empty word, from a
	// leading space or two spaces in a row
	ErrBlankToken = errors.New("blank token in signature header")
	// ErrMalformedArgument is returned when an argument is not a `type name` pair
	ErrMalformedArgument = errors.New("malformed argument")
	// ErrUnsupportedHeaderShape is returned in strict mode when no return type
	// can be taken from the header
	ErrUnsupportedHeaderShape = errors.New("unsupported header shape")
)
