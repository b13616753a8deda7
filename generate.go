package nanoid

import (
	"crypto/rand"
	"fmt"
	"io"
	"math"
	"math/bits"
)

const (
	// DefaultAlphabet is the 64-symbol URL-safe alphabet used when no
	// alphabet is supplied: digits, uppercase and lowercase Latin letters,
	// underscore, and hyphen.
	DefaultAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz-"

	// DefaultSize is the number of symbols in a generated NanoID when no
	// size is supplied. 21 symbols over the default alphabet cover a
	// keyspace comparable to UUID v4.
	DefaultSize = 21

	// MinAlphabetSize is the smallest alphabet the generator accepts.
	// A single-symbol alphabet makes the sampling mask degenerate.
	MinAlphabetSize = 2

	// MaxAlphabetSize is the largest alphabet the generator accepts.
	// Candidate indices come from single masked random bytes, which can
	// address at most 256 symbols.
	MaxAlphabetSize = 256
)

// Generate produces a string of exactly size symbols, each drawn
// independently and uniformly from alphabet, using random bytes read
// from random.
//
// It uses masked rejection sampling: each random byte is masked down to
// the smallest bit width that covers the alphabet, and masked values
// beyond the last alphabet index are discarded instead of reduced
// modulo the alphabet length. Rejected bytes contribute nothing, so
// every symbol stays equally likely even when the alphabet length is
// not a power of two.
//
// Alphabet symbols are counted in runes, so multi-byte alphabets work;
// the alphabet must contain between MinAlphabetSize and MaxAlphabetSize
// symbols. A size of zero returns the empty string without reading any
// random bytes. The random source must be cryptographically secure when
// the identifiers need to resist guessing.
func Generate(random io.Reader, size int, alphabet string) (string, error) {
	symbols := []rune(alphabet)

	if len(symbols) < MinAlphabetSize {
		return "", fmt.Errorf("nanoid: alphabet must contain at least %d symbols, got %d", MinAlphabetSize, len(symbols))
	}
	if len(symbols) > MaxAlphabetSize {
		return "", fmt.Errorf("nanoid: alphabet must contain at most %d symbols, got %d", MaxAlphabetSize, len(symbols))
	}
	if size < 0 {
		return "", fmt.Errorf("nanoid: size must not be negative, got %d", size)
	}
	if size == 0 {
		return "", nil
	}

	// mask is the smallest all-ones bitmask covering every alphabet index,
	// so a masked byte is uniform over [0, mask].
	mask := 2<<(bits.Len(uint(len(symbols)-1))-1) - 1

	// step is the number of random bytes drawn per batch. The 1.6 factor
	// keeps the expected number of batches near one despite rejections.
	step := int(math.Ceil(1.6 * float64(mask) * float64(size) / float64(len(symbols))))

	id := make([]rune, 0, size)
	buf := make([]byte, step)

	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return "", fmt.Errorf("nanoid: failed to read random bytes: %w", err)
		}

		for _, b := range buf {
			idx := int(b) & mask
			if idx >= len(symbols) {
				continue
			}

			id = append(id, symbols[idx])
			if len(id) == size {
				return string(id), nil
			}
		}
	}
}

// New generates a NanoID with the default size and alphabet using the
// process-wide secure random source.
func New() (NanoID, error) {
	return NewWithRandom(rand.Reader, DefaultSize, DefaultAlphabet)
}

// NewWithSize generates a NanoID of the given size using the default
// alphabet and the process-wide secure random source.
func NewWithSize(size int) (NanoID, error) {
	return NewWithRandom(rand.Reader, size, DefaultAlphabet)
}

// NewWithAlphabet generates a NanoID of the given size drawn from the
// given alphabet using the process-wide secure random source.
func NewWithAlphabet(size int, alphabet string) (NanoID, error) {
	return NewWithRandom(rand.Reader, size, alphabet)
}

// NewWithRandom generates a NanoID of the given size drawn from the
// given alphabet, reading random bytes from random. Callers sharing a
// custom source across goroutines are responsible for that source's
// thread safety; the default source used by the other constructors is
// safe for concurrent use.
func NewWithRandom(random io.Reader, size int, alphabet string) (NanoID, error) {
	s, err := Generate(random, size, alphabet)
	if err != nil {
		return NanoID{}, err
	}

	return NanoID{b: s}, nil
}

// Must returns id if err is nil and panics otherwise. Use it to wrap
// constructor calls when generation cannot reasonably fail:
//
//	id := nanoid.Must(nanoid.New())
func Must(id NanoID, err error) NanoID {
	if err != nil {
		panic(err)
	}
	return id
}
