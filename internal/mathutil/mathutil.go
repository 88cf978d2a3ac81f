package mathutil

// StorageBits is the width of the raw storage type for bit patterns.
const StorageBits = 64

// Mask returns a value with the n lowest bits set.
// n must be in [0, StorageBits].
func Mask(n int) uint64 {
	return ^uint64(0) >> (StorageBits - uint(n))
}
