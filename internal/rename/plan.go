// Package rename derives content-addressed file names and applies them.
package rename

import (
	"path/filepath"
	"strings"
)

// Plan describes the rename computed for one input file.
type Plan struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
	Digest      string `json:"digest" yaml:"digest"`
	Algorithm   string `json:"algorithm" yaml:"algorithm"`
}

// Unchanged reports whether the file already carries its content name.
func (p Plan) Unchanged() bool {
	return filepath.Clean(p.Source) == filepath.Clean(p.Destination)
}

// NewPlan builds the plan for path given its hex digest.
func NewPlan(path, digestHex, algorithm string) Plan {
	return Plan{
		Source:      path,
		Destination: DestinationPath(path, digestHex),
		Digest:      digestHex,
		Algorithm:   algorithm,
	}
}

// Extension returns the single trailing suffix of the base name, without the dot.
// A base name whose only dot is the leading one (".bashrc") has no extension.
// A trailing dot yields an empty but present extension.
func Extension(path string) (string, bool) {
	base := filepath.Base(path)
	if base == ".." {
		return "", false
	}

	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return "", false
	}

	return base[i+1:], true
}

// NewName returns the content-addressed file name for path.
func NewName(path, digestHex string) string {
	if ext, ok := Extension(path); ok {
		return digestHex + "." + ext
	}

	return digestHex
}

// DestinationPath replaces the final component of path with its content name.
func DestinationPath(path, digestHex string) string {
	return filepath.Join(filepath.Dir(path), NewName(path, digestHex))
}
