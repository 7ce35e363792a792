// File: internal/cipher/reader.go
package cipher

import "io"

// Reader applies Encrypt to everything read from an underlying reader.
// UTF-8 continuation and lead bytes are never in the ASCII letter range, so
// transforming byte by byte gives the same result as Encrypt on the whole text.
type Reader struct {
	r     io.Reader
	shift int
}

// NewReader returns a Reader that encrypts r with shift. Pass a negated shift
// (or use NewDecryptReader) to decrypt.
func NewReader(r io.Reader, shift int) *Reader {
	return &Reader{r: r, shift: Normalize(shift)}
}

// NewDecryptReader returns a Reader that reverses NewReader(r, shift).
func NewDecryptReader(r io.Reader, shift int) *Reader {
	// Reduce before negating so math.MinInt cannot overflow.
	return &Reader{r: r, shift: Normalize(-Normalize(shift))}
}

func (cr *Reader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	for i := 0; i < n; i++ {
		p[i] = shiftByte(p[i], cr.shift)
	}
	return n, err
}
