// Package id generates sortable identifiers for requests and records.
package id

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// Crockford's Base32 alphabet (excludes I, L, O, U to avoid confusion).
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// NewULID generates a ULID (Universally Unique Lexicographically Sortable
// Identifier): a 26-character string holding 48 bits of millisecond timestamp
// in the first 10 characters and 80 random bits in the remaining 16. Later
// IDs sort after earlier ones.
func NewULID() string {
	var out [26]byte
	encodeTime(out[:10], uint64(time.Now().UnixMilli()))
	encodeRandom(out[10:])
	return string(out[:])
}

// encodeTime writes ts into dst big-endian, five bits per character. Bits
// above 5*len(dst) are discarded.
func encodeTime(dst []byte, ts uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = alphabet[ts&0x1F]
		ts >>= 5
	}
}

// encodeRandom fills dst with random alphabet characters, five bits of
// entropy each.
func encodeRandom(dst []byte) {
	buf := make([]byte, len(dst))
	if _, err := rand.Read(buf); err != nil {
		// Fallback: time-based entropy (degraded but functional)
		binary.BigEndian.PutUint64(buf, uint64(time.Now().UnixNano()))
	}
	for i, b := range buf {
		dst[i] = alphabet[int(b)&0x1F]
	}
}
