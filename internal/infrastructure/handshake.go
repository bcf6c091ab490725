package infrastructure

import (
	"encoding/base64"
	"fmt"

	"websocket-accept/internal/domain"
	"websocket-accept/pkg/protocol"
)

// HandshakeValidator validates Sec-WebSocket-Key values and derives accept keys from them
type HandshakeValidator struct{}

// NewHandshakeValidator creates a new HandshakeValidator
func NewHandshakeValidator() *HandshakeValidator {
	return &HandshakeValidator{}
}

// ValidateKey checks that key is a base64 encoded 16-byte nonce
func (h *HandshakeValidator) ValidateKey(key string) error {
	if len(key) != protocol.KeyLength {
		return fmt.Errorf("%w: %s must be %d characters, got %d",
			domain.ErrInvalidKeyLength, protocol.HeaderSecWebSocketKey, protocol.KeyLength, len(key))
	}

	// DecodedLen(24) is 18; a well formed key carries two padding characters
	var nonce [18]byte
	n, err := base64.StdEncoding.Strict().Decode(nonce[:], []byte(key))
	if err != nil {
		return fmt.Errorf("%w: %s is not base64: %v", domain.ErrInvalidKeyEncoding, protocol.HeaderSecWebSocketKey, err)
	}
	if n != protocol.NonceSize {
		return fmt.Errorf("%w: %s decodes to %d bytes, expected %d",
			domain.ErrInvalidKeyEncoding, protocol.HeaderSecWebSocketKey, n, protocol.NonceSize)
	}

	return nil
}

// GenerateAcceptKey generates the Sec-WebSocket-Accept value from the client's key.
// The key is used as is.
func (h *HandshakeValidator) GenerateAcceptKey(key string) string {
	return ComputeAccept(key)
}

// GenerateAcceptKeyChecked validates the key before generating the accept value
func (h *HandshakeValidator) GenerateAcceptKeyChecked(key string) (string, error) {
	if err := h.ValidateKey(key); err != nil {
		return "", err
	}
	return ComputeAccept(key), nil
}
