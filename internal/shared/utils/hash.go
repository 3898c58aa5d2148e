package utils

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// HashAlgorithm represents the hashing algorithm to use
type HashAlgorithm string

const (
	SHA256     HashAlgorithm = "sha256"
	SHA512     HashAlgorithm = "sha512"
	SHA3_256   HashAlgorithm = "sha3-256"
	BLAKE2b256 HashAlgorithm = "blake2b-256"
)

// Algorithms lists the supported digest algorithms
func Algorithms() []HashAlgorithm {
	return []HashAlgorithm{SHA256, SHA512, SHA3_256, BLAKE2b256}
}

// ParseHashAlgorithm validates an algorithm name, case-insensitively
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	candidate := HashAlgorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, alg := range Algorithms() {
		if candidate == alg {
			return alg, nil
		}
	}
	return "", fmt.Errorf("unsupported hash algorithm: %q", name)
}

// Hasher produces hex digests of byte streams
type Hasher struct {
	algorithm HashAlgorithm
}

// NewHasher creates a new hasher with the specified algorithm
func NewHasher(algorithm HashAlgorithm) *Hasher {
	return &Hasher{
		algorithm: algorithm,
	}
}

// DefaultHasher returns a hasher with the default algorithm
func DefaultHasher() *Hasher {
	return NewHasher(SHA256)
}

// Algorithm returns the configured algorithm
func (h *Hasher) Algorithm() HashAlgorithm {
	return h.algorithm
}

// New returns a fresh stateful accumulator
func (h *Hasher) New() hash.Hash {
	switch h.algorithm {
	case SHA512:
		return sha512.New()
	case SHA3_256:
		return sha3.New256()
	case BLAKE2b256:
		// Only fails for keys longer than 64 bytes
		d, _ := blake2b.New256(nil)
		return d
	default:
		return sha256.New()
	}
}

// HashReader streams r through the accumulator and returns the hex digest
// along with the number of bytes consumed
func (h *Hasher) HashReader(r io.Reader) (string, int64, error) {
	d := h.New()
	n, err := io.Copy(d, r)
	if err != nil {
		return "", n, fmt.Errorf("failed to read input: %w", err)
	}
	return hex.EncodeToString(d.Sum(nil)), n, nil
}
