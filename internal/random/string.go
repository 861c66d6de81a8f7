package random

import (
	"crypto/rand"
	"math/big"
)

const (
	digits     = "0123456789"
	lowerCase  = "abcdefghijklmnopqrstuvwxyz"
	upperCase  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	asciiChars = digits + lowerCase + upperCase
)

// ASCIIString generates random ASCII string
func ASCIIString(minLen, maxLen int) string {
	return stringFrom(asciiChars, minLen, maxLen)
}

// UpperString generates random string of upper case latin letters, like a workout code
func UpperString(minLen, maxLen int) string {
	return stringFrom(upperCase, minLen, maxLen)
}

func stringFrom(letters string, minLen, maxLen int) string {
	slen := Int(minLen, maxLen)
	lettersLen := big.NewInt(int64(len(letters)))

	s := make([]byte, 0, slen)
	for len(s) < slen {
		num, _ := rand.Int(rand.Reader, lettersLen)
		char := letters[num.Int64()]
		// first character is never a digit
		if len(s) == 0 && '0' <= char && char <= '9' {
			continue
		}
		s = append(s, char)
	}

	return string(s)
}
