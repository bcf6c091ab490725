package infrastructure

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"github.com/valyala/bytebufferpool"

	"websocket-accept/pkg/protocol"
)

// scratchPool holds the key + GUID buffers hashed by the accept functions
var scratchPool bytebufferpool.Pool

// ComputeAccept returns the Sec-WebSocket-Accept value for key.
// According to RFC 6455: base64(SHA1(key + "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"))
//
// The key is not validated. Any input produces a 28 character value, but only a
// 24 character key yields a value a WebSocket client will accept.
func ComputeAccept(key string) string {
	bb := scratchPool.Get()
	_, _ = bb.WriteString(key)

	accept := encodeAccept(bb)
	return string(accept[:])
}

// PutAccept writes the accept value for key into dst[:protocol.AcceptLength].
// It panics if dst is shorter than protocol.AcceptLength.
func PutAccept(dst, key []byte) {
	_ = dst[protocol.AcceptLength-1]

	bb := scratchPool.Get()
	_, _ = bb.Write(key)

	accept := encodeAccept(bb)
	copy(dst, accept[:])
}

// encodeAccept appends the GUID to bb, returns bb to the pool and encodes the digest
func encodeAccept(bb *bytebufferpool.ByteBuffer) (accept [protocol.AcceptLength]byte) {
	_, _ = bb.WriteString(protocol.WebSocketGUID)
	sum := sha1.Sum(bb.B)
	scratchPool.Put(bb)

	base64.StdEncoding.Encode(accept[:], sum[:])
	return accept
}

// VerifyAccept reports whether accept is the value a server must send for key
func VerifyAccept(key, accept string) bool {
	if len(accept) != protocol.AcceptLength {
		return false
	}
	expected := ComputeAccept(key)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(accept)) == 1
}

// GenerateKey returns a fresh Sec-WebSocket-Key: a random 16-byte nonce, base64 encoded
func GenerateKey() (string, error) {
	var nonce [protocol.NonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("failed to read nonce: %w", err)
	}
	return base64.StdEncoding.EncodeToString(nonce[:]), nil
}
