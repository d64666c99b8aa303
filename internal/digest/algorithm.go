// Package digest maps algorithm names to hash engines and computes content digests.
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// ErrUnsupportedAlgorithm is returned when an algorithm name is not recognized.
var ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

// Algorithm identifies a supported digest algorithm.
type Algorithm int

// Supported algorithms.
const (
	SHA256 Algorithm = iota
	SHA224
	SHA384
	SHA512
	SHA3_256
	SHA3_512
	BLAKE2b256
	BLAKE2b512
	BLAKE3
)

// Default is used when no algorithm is given.
const Default = SHA256

var names = map[Algorithm]string{
	SHA224:     "sha224",
	SHA256:     "sha256",
	SHA384:     "sha384",
	SHA512:     "sha512",
	SHA3_256:   "sha3-256",
	SHA3_512:   "sha3-512",
	BLAKE2b256: "blake2b-256",
	BLAKE2b512: "blake2b-512",
	BLAKE3:     "blake3",
}

// Algorithms returns every supported algorithm in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{SHA224, SHA256, SHA384, SHA512, SHA3_256, SHA3_512, BLAKE2b256, BLAKE2b512, BLAKE3}
}

// Parse resolves a name to an Algorithm. Matching is exact and case-sensitive;
// the empty string selects the default.
func Parse(name string) (Algorithm, error) {
	if name == "" {
		return Default, nil
	}

	for alg, n := range names {
		if n == name {
			return alg, nil
		}
	}

	return 0, fmt.Errorf("%w %s", ErrUnsupportedAlgorithm, name)
}

// String returns the command-line name of the algorithm.
func (a Algorithm) String() string {
	if n, ok := names[a]; ok {
		return n
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Size returns the digest length in bytes.
func (a Algorithm) Size() int {
	switch a {
	case SHA224:
		return sha256.Size224
	case SHA256, SHA3_256, BLAKE2b256, BLAKE3:
		return 32
	case SHA384:
		return sha512.Size384
	case SHA512, SHA3_512, BLAKE2b512:
		return 64
	default:
		return 0
	}
}

// HexLen returns the length of the lowercase hex encoding of a digest.
func (a Algorithm) HexLen() int {
	return 2 * a.Size()
}

// New returns a fresh hash engine for the algorithm.
func (a Algorithm) New() (hash.Hash, error) {
	switch a {
	case SHA224:
		return sha256.New224(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA384:
		return sha512.New384(), nil
	case SHA512:
		return sha512.New(), nil
	case SHA3_256:
		return sha3.New256(), nil
	case SHA3_512:
		return sha3.New512(), nil
	case BLAKE2b256:
		// A nil key never fails.
		return blake2b.New256(nil)
	case BLAKE2b512:
		return blake2b.New512(nil)
	case BLAKE3:
		return blake3.New(), nil
	default:
		return nil, fmt.Errorf("%w %s", ErrUnsupportedAlgorithm, a)
	}
}
