package domain

import (
	"errors"
	"fmt"
)

// Status is the result code returned across the C boundary
type Status int

const (
	// StatusOK means the accept value was written
	StatusOK Status = 0
	// StatusNilPointer means the key or result pointer was nil
	StatusNilPointer Status = -1
	// StatusShortKey means fewer than 24 key bytes were supplied
	StatusShortKey Status = -2
	// StatusShortAccept means fewer than 28 result bytes were supplied
	StatusShortAccept Status = -3
	// StatusInvalidKey means the key is not a base64 encoded 16-byte nonce
	StatusInvalidKey Status = -4
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusNilPointer:
		return "NilPointer"
	case StatusShortKey:
		return "ShortKey"
	case StatusShortAccept:
		return "ShortAccept"
	case StatusInvalidKey:
		return "InvalidKey"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Err returns the sentinel error for the status, or nil for StatusOK
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusNilPointer:
		return ErrNilBuffer
	case StatusShortKey:
		return ErrShortKeyBuffer
	case StatusShortAccept:
		return ErrShortAcceptBuffer
	case StatusInvalidKey:
		return ErrInvalidKeyEncoding
	default:
		return fmt.Errorf("unknown status %d", int(s))
	}
}

// StatusFromError maps an error returned by the checked accept functions to a Status.
// Errors outside the domain map to StatusInvalidKey.
func StatusFromError(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrNilBuffer):
		return StatusNilPointer
	case errors.Is(err, ErrShortKeyBuffer):
		return StatusShortKey
	case errors.Is(err, ErrShortAcceptBuffer):
		return StatusShortAccept
	default:
		return StatusInvalidKey
	}
}
