// File: internal/cipher/cipher_test.go
package cipher

import (
	"errors"
	"math"
	"testing"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleTexts = []string{
	"",
	"Hello",
	"Hello, World! 123",
	"Attack at dawn",
	"the quick brown fox jumps over the lazy dog",
	"THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG",
	"Zebra-zoo_42\t\n",
	"naïve café, 東京",
}

var sampleShifts = []int{0, 1, 3, 7, 13, 25, 26, 27, 52, -1, -3, -25, -26, -27, 1000, -1000, math.MaxInt, math.MinInt}

func TestEncrypt(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		shift int
		want  string
	}{
		{"simple", "Hello", 3, "Khoor"},
		{"case preserved", "AbC", 1, "BcD"},
		{"punctuation passes through", "Hello, World! 123", 3, "Khoor, Zruog! 123"},
		{"wraps uppercase", "XYZ", 3, "ABC"},
		{"wraps lowercase", "xyz", 3, "abc"},
		{"negative shift", "abc", -1, "zab"},
		{"large shift", "abc", 27, "bcd"},
		{"non-ascii untouched", "café", 1, "dbgé"},
		{"empty", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encrypt(tt.text, tt.shift))
		})
	}
}

func TestDecrypt_KnownShift(t *testing.T) {
	assert.Equal(t, "Hello", Decrypt("Khoor", 3))
	assert.Equal(t, "Attack at dawn", Decrypt("Haahjr ha khdu", 7))
}

func TestRoundTrip(t *testing.T) {
	for _, text := range sampleTexts {
		for _, shift := range sampleShifts {
			got := Decrypt(Encrypt(text, shift), shift)
			require.Equal(t, text, got, "round trip failed for shift %d", shift)
		}
	}
}

func TestIdentityShift(t *testing.T) {
	for _, text := range sampleTexts {
		assert.Equal(t, text, Encrypt(text, 0))
		assert.Equal(t, text, Decrypt(text, 0))
	}
}

func TestShiftPeriodicity(t *testing.T) {
	for _, text := range sampleTexts {
		for _, shift := range sampleShifts {
			assert.Equal(t, Encrypt(text, shift%AlphabetSize), Encrypt(text, shift))
			assert.Equal(t, Encrypt(text, Normalize(shift)), Encrypt(text, shift))
		}
	}
}

func TestNegativeShiftEquivalence(t *testing.T) {
	for _, text := range sampleTexts {
		assert.Equal(t, Encrypt(text, 25), Encrypt(text, -1))
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 0, Normalize(0))
	assert.Equal(t, 25, Normalize(-1))
	assert.Equal(t, 1, Normalize(27))
	assert.Equal(t, 0, Normalize(-26))

	for _, shift := range sampleShifts {
		n := Normalize(shift)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, AlphabetSize)
	}
}

func TestValidateShift(t *testing.T) {
	assert.NoError(t, ValidateShift(0))
	assert.NoError(t, ValidateShift(25))

	for _, shift := range []int{-1, 26, 100, math.MinInt} {
		err := ValidateShift(shift)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrShiftOutOfRange))
	}
}

func TestBruteForce(t *testing.T) {
	t.Run("returns all shifts in order", func(t *testing.T) {
		results := BruteForce("Khoor")
		require.Len(t, results, AlphabetSize)
		for i, c := range results {
			assert.Equal(t, i, c.Shift)
			assert.Equal(t, Decrypt("Khoor", i), c.Text)
		}
	})

	t.Run("contains the original plaintext", func(t *testing.T) {
		results := BruteForce(Encrypt("Attack at dawn", 7))
		assert.Contains(t, results, Candidate{Shift: 7, Text: "Attack at dawn"})
	})

	t.Run("exactly one candidate matches for every valid shift", func(t *testing.T) {
		const plain = "the quick brown fox"
		for shift := MinShift; shift <= MaxShift; shift++ {
			matches := 0
			for _, c := range BruteForce(Encrypt(plain, shift)) {
				if c.Text == plain {
					matches++
					assert.Equal(t, shift, c.Shift)
				}
			}
			assert.Equal(t, 1, matches, "shift %d", shift)
		}
	})

	t.Run("text without letters repeats unchanged", func(t *testing.T) {
		want := make([]Candidate, AlphabetSize)
		for i := range want {
			want[i] = Candidate{Shift: i, Text: "123 !?"}
		}
		if diff := cmp.Diff(want, BruteForce("123 !?")); diff != "" {
			t.Errorf("BruteForce() mismatch (-want +got):\n%s", diff)
		}
	})
}

// FuzzRoundTrip checks that decrypting an encryption always restores the input.
func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte("Hello, World! 123"))
	f.Fuzz(func(t *testing.T, data []byte) {
		consumer := fuzz.NewConsumer(data)
		text, err := consumer.GetString()
		if err != nil {
			return
		}
		shift, err := consumer.GetInt()
		if err != nil {
			return
		}

		encrypted := Encrypt(text, shift)
		if got := Decrypt(encrypted, shift); got != text {
			t.Fatalf("Decrypt(Encrypt(%q, %d)) = %q", text, shift, got)
		}
		if len(encrypted) != len(text) {
			t.Fatalf("Encrypt changed length: %d -> %d", len(text), len(encrypted))
		}
	})
}

func TestShiftByte(t *testing.T) {
	for s := MinShift; s <= MaxShift; s++ {
		for c := 0; c < 128; c++ {
			b := byte(c)
			got := shiftByte(b, s)
			switch {
			case b >= 'A' && b <= 'Z':
				assert.True(t, got >= 'A' && got <= 'Z', "%q shifted by %d left uppercase", b, s)
				assert.Equal(t, byte(s), (got-'A'+AlphabetSize-(b-'A'))%AlphabetSize)
			case b >= 'a' && b <= 'z':
				assert.True(t, got >= 'a' && got <= 'z', "%q shifted by %d left lowercase", b, s)
				assert.Equal(t, byte(s), (got-'a'+AlphabetSize-(b-'a'))%AlphabetSize)
			default:
				assert.Equal(t, b, got)
			}
		}
	}
}
