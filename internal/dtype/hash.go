package dtype

import (
	"crypto/sha256"
	"encoding/binary"
)

// hashString folds a canonical serialization into the 32-bit
// structural content hash spec §3.1 requires of every DataType,
// grounded on the teacher's sha256-based stable-ID scheme (formerly
// internal/sid) rather than a weaker non-cryptographic hash, since the
// instantiation cache and match memo both key off this value and a
// high collision rate there would silently merge unrelated types.
func hashString(s string) uint32 {
	sum := sha256.Sum256([]byte(s))
	return binary.BigEndian.Uint32(sum[:4])
}
