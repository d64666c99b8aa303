package digest

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"os"
)

// ErrDigest indicates that a file could not be read for hashing.
var ErrDigest = errors.New("error calculating digest")

// FileHasher computes digests with a single engine that is reset between files.
type FileHasher struct {
	alg  Algorithm
	hash hash.Hash
}

// NewFileHasher creates a file hasher for the given algorithm.
func NewFileHasher(alg Algorithm) (*FileHasher, error) {
	h, err := alg.New()
	if err != nil {
		return nil, err
	}

	return &FileHasher{alg: alg, hash: h}, nil
}

// Algorithm returns the algorithm the hasher was built with.
func (h *FileHasher) Algorithm() Algorithm {
	return h.alg
}

// HashFile reads the whole file into memory and returns its lowercase hex digest.
func (h *FileHasher) HashFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("%w for %s: %w", ErrDigest, filePath, unwrapPathError(err))
	}

	return h.HashContent(content), nil
}

// HashFiles hashes files in order and stops at the first failure.
func (h *FileHasher) HashFiles(filePaths []string) ([]string, error) {
	digests := make([]string, 0, len(filePaths))

	for _, filePath := range filePaths {
		d, err := h.HashFile(filePath)
		if err != nil {
			return nil, err
		}

		digests = append(digests, d)
	}

	return digests, nil
}

// HashContent returns the lowercase hex digest of content.
func (h *FileHasher) HashContent(content []byte) string {
	h.hash.Reset()
	h.hash.Write(content)
	sum := h.hash.Sum(nil)
	h.hash.Reset()

	return hex.EncodeToString(sum)
}

// unwrapPathError drops the *os.PathError wrapper so the path is not repeated.
func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}

	return err
}
