package port

// ByteSource is the outbound port supplying random bytes. Implementations
// must be safe for concurrent use.
type ByteSource interface {
	// Byte returns one uniformly distributed value in [0, 255].
	Byte() uint8
}
