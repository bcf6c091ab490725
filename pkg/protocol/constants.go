package protocol

// WebSocket handshake constants as defined in RFC 6455

const (
	// WebSocketGUID is the magic string used in handshake accept key calculation
	WebSocketGUID = "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"

	// NonceSize is the size of the random nonce a client encodes into its key
	NonceSize = 16

	// KeyLength is the length of a base64 encoded nonce: base64.StdEncoding.EncodedLen(NonceSize)
	KeyLength = 24

	// DigestSize is the size of the SHA-1 digest of key + GUID
	DigestSize = 20

	// AcceptLength is base64.StdEncoding.EncodedLen(DigestSize)
	AcceptLength = 28

	// Header names
	HeaderSecWebSocketKey    = "Sec-WebSocket-Key"
	HeaderSecWebSocketAccept = "Sec-WebSocket-Accept"
)
