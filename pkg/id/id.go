package id

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"strings"
	"time"
)

const (
	crockfordBase32 = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
	base36          = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// base36Limit is the largest multiple of 36 that fits in a byte.
	// Bytes at or above it are discarded so every symbol is equally likely.
	base36Limit = 252
)

// NewULID returns a 26 character, lexicographically sortable identifier:
// 48 bits of millisecond time followed by 80 random bits, Crockford base32.
func NewULID() string {
	return ulidAt(time.Now())
}

func ulidAt(t time.Time) string {
	var raw [16]byte
	binary.BigEndian.PutUint64(raw[:8], uint64(t.UnixMilli())<<16)
	fillRandom(raw[6:])

	// 128 bits are emitted as 26 five-bit groups; the first group carries
	// two leading zero bits.
	var out [26]byte
	for i := range out {
		bit := i*5 - 2
		var v byte
		for j := range 5 {
			b := bit + j
			v <<= 1
			if b >= 0 && raw[b/8]&(0x80>>(b%8)) != 0 {
				v |= 1
			}
		}
		out[i] = crockfordBase32[v]
	}
	return string(out[:])
}

// NewOrderID returns "<prefix>-<unix ms>-<5 random base36 chars>",
// e.g. "MIMOO-1760968800000-K3Z9Q".
func NewOrderID(prefix string, at time.Time) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('-')
	b.WriteString(strconv.FormatInt(at.UnixMilli(), 10))
	b.WriteByte('-')
	b.WriteString(RandomBase36(5))
	return b.String()
}

// RandomBase36 returns n random upper case base36 characters.
func RandomBase36(n int) string {
	return randomBase36(n, fillRandom)
}

func randomBase36(n int, read func([]byte)) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, n)
	buf := make([]byte, n+n/4+1)
	for len(out) < n {
		read(buf)
		for _, v := range buf {
			if v >= base36Limit {
				continue
			}
			out = append(out, base36[v%36])
			if len(out) == n {
				break
			}
		}
	}
	return string(out)
}

// fillRandom fills b from crypto/rand, which never fails as of Go 1.24.
func fillRandom(b []byte) {
	_, _ = rand.Read(b)
}
