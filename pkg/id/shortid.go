package id

import "time"

// NewShortID generates a 16-character identifier: 30 bits of timestamp in the
// first 6 characters and 50 random bits in the remaining 10. Sortable within
// a ~34 year window and URL-safe; meant for user-visible record keys where a
// full ULID is overkill.
func NewShortID() string {
	var out [16]byte
	encodeTime(out[:6], uint64(time.Now().UnixMilli())&0x3FFFFFFF)
	encodeRandom(out[6:])
	return string(out[:])
}
