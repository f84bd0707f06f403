package uniuri

import (
	"crypto/rand"
)

const (
	// StdLen is a standard length of uniuri string to achieve ~95 bits of entropy.
	StdLen = 16
)

// StdChars is the set of characters allowed in a uniuri string.
var StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

// New returns a new random string of the standard length.
func New() string {
	return NewLen(StdLen)
}

// NewLen returns a new random string of the provided length, consisting of
// standard characters. Bytes outside the rejection threshold are skipped to
// avoid modulo bias.
func NewLen(length int) string {
	if length == 0 {
		return ""
	}

	clen := len(StdChars)
	maxRb := 255 - (256 % clen)

	out := make([]byte, 0, length)
	buf := make([]byte, length*2)

	for {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, rb := range buf {
			c := int(rb)
			if c > maxRb {
				continue
			}

			out = append(out, StdChars[c%clen])
			if len(out) == length {
				return string(out)
			}
		}
	}
}
