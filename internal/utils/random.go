package utils

import (
	"crypto/rand"
	"math/big"
)

const (
	digits     = "0123456789"
	lowerAlnum = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// RandomDigits returns a string of n random decimal digits.
// Used for the numeric suffix of generated user and room names.
func RandomDigits(n int) string {
	return randomFromAlphabet(digits, n)
}

// RandomLowerAlnum returns a string of n random lowercase-alphanumeric
// characters. Used for generated passwords (10 chars) and API keys (40 chars).
func RandomLowerAlnum(n int) string {
	return randomFromAlphabet(lowerAlnum, n)
}

// randomFromAlphabet draws n characters from alphabet using crypto/rand.
// rand.Int over a 10..36 element alphabet cannot fail with a valid reader,
// so a read error panics rather than forcing an error return on every caller.
func randomFromAlphabet(alphabet string, n int) string {
	max := big.NewInt(int64(len(alphabet)))

	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		out[i] = alphabet[idx.Int64()]
	}

	return string(out)
}
