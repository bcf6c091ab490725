package domain

import "errors"

// Domain errors
var (
	// Key errors
	ErrInvalidKeyLength   = errors.New("invalid key length")
	ErrInvalidKeyEncoding = errors.New("invalid key encoding")

	// Buffer errors
	ErrNilBuffer         = errors.New("nil buffer")
	ErrShortKeyBuffer    = errors.New("key buffer too short")
	ErrShortAcceptBuffer = errors.New("accept buffer too short")
)
