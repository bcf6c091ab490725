// Package boundary exposes the accept computation over raw, fixed-size byte
// buffers so that code outside the Go runtime can call it through cgo exports.
//
// Accept is the unchecked path: it reads exactly protocol.KeyLength bytes and
// writes exactly protocol.AcceptLength bytes, trusting the caller completely.
// AcceptChecked takes explicit buffer lengths and reports violations as a
// domain.Status instead of touching memory it was not promised.
//
// Neither function retains key or result after returning.
package boundary

import (
	"fmt"
	"unsafe"

	"websocket-accept/internal/domain"
	"websocket-accept/internal/infrastructure"
	"websocket-accept/pkg/protocol"
)

var validator = infrastructure.NewHandshakeValidator()

// Accept reads protocol.KeyLength bytes at key and writes the protocol.AcceptLength
// byte accept value at result. No terminator is written. The key bytes are not
// validated; passing shorter buffers is undefined behaviour.
func Accept(key, result unsafe.Pointer) {
	src := unsafe.Slice((*byte)(key), protocol.KeyLength)
	dst := unsafe.Slice((*byte)(result), protocol.AcceptLength)
	infrastructure.PutAccept(dst, src)
}

// AcceptChecked is Accept with explicit buffer lengths. Only the first
// protocol.KeyLength key bytes are read. On any status other than StatusOK
// the result buffer is left untouched.
func AcceptChecked(key unsafe.Pointer, keyLen int, result unsafe.Pointer, resultLen int) domain.Status {
	if err := Check(key, keyLen, result, resultLen); err != nil {
		return domain.StatusFromError(err)
	}
	Accept(key, result)
	return domain.StatusOK
}

// Check reports why AcceptChecked would refuse the given buffers, or nil
func Check(key unsafe.Pointer, keyLen int, result unsafe.Pointer, resultLen int) error {
	if key == nil || result == nil {
		return domain.ErrNilBuffer
	}
	if keyLen < protocol.KeyLength {
		return fmt.Errorf("%w: got %d bytes, need %d", domain.ErrShortKeyBuffer, keyLen, protocol.KeyLength)
	}
	if resultLen < protocol.AcceptLength {
		return fmt.Errorf("%w: got %d bytes, need %d", domain.ErrShortAcceptBuffer, resultLen, protocol.AcceptLength)
	}
	return validator.ValidateKey(unsafe.String((*byte)(key), protocol.KeyLength))
}
