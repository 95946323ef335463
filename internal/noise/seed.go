package noise

import (
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	mathrand "math/rand/v2"
)

// GenerateSecureSeed produces a cryptographically sourced 32-bit seed. When
// the system entropy source fails it falls back to math/rand/v2 so callers
// always get an unpredictable-enough seed rather than none at all.
func GenerateSecureSeed() uint32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		slog.Warn("crypto seed source unavailable, falling back to math/rand", "error", err)
		return mathrand.Uint32()
	}
	return binary.BigEndian.Uint32(b[:])
}
