// File: internal/cipher/cipher.go
package cipher

import (
	"errors"
	"fmt"
)

const (
	// AlphabetSize is the number of letters in each case's alphabet.
	AlphabetSize = 26
	// MinShift and MaxShift bound the shifts accepted from user input.
	MinShift = 0
	MaxShift = AlphabetSize - 1
)

// ErrShiftOutOfRange is returned by ValidateShift for shifts outside [MinShift, MaxShift].
var ErrShiftOutOfRange = errors.New("shift must be between 0 and 25")

// Candidate is a single brute-force result.
type Candidate struct {
	Shift int    `json:"shift"`
	Text  string `json:"text"`
}

// Normalize reduces any shift to its equivalent in [0, 25].
func Normalize(shift int) int {
	s := shift % AlphabetSize
	if s < 0 {
		s += AlphabetSize
	}
	return s
}

// ValidateShift reports whether shift lies in the range the CLI accepts.
// The transform functions themselves work for any integer.
func ValidateShift(shift int) error {
	if shift < MinShift || shift > MaxShift {
		return fmt.Errorf("%w: got %d", ErrShiftOutOfRange, shift)
	}
	return nil
}

// Encrypt shifts every ASCII letter in text forward by shift positions within
// its own case, wrapping around the alphabet. Everything else is copied as-is.
func Encrypt(text string, shift int) string {
	s := Normalize(shift)
	if s == 0 {
		return text
	}

	// Only ASCII bytes are rewritten, so working on bytes keeps any other
	// content, including invalid UTF-8, intact.
	buf := []byte(text)
	for i, c := range buf {
		buf[i] = shiftByte(c, s)
	}
	return string(buf)
}

// Decrypt reverses Encrypt for the same shift.
func Decrypt(text string, shift int) string {
	// Reduce before negating so math.MinInt cannot overflow.
	return Encrypt(text, -Normalize(shift))
}

// BruteForce decrypts text with every shift from 0 to 25, in ascending order.
func BruteForce(text string) []Candidate {
	out := make([]Candidate, 0, AlphabetSize)
	for shift := MinShift; shift <= MaxShift; shift++ {
		out = append(out, Candidate{Shift: shift, Text: Decrypt(text, shift)})
	}
	return out
}

// shiftByte expects s already reduced to [0, 25].
func shiftByte(c byte, s int) byte {
	switch {
	case c >= 'A' && c <= 'Z':
		return 'A' + (c-'A'+byte(s))%AlphabetSize
	case c >= 'a' && c <= 'z':
		return 'a' + (c-'a'+byte(s))%AlphabetSize
	default:
		return c
	}
}
