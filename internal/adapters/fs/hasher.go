package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Hasher provides the content hashing behind the staleness check.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashFile computes the XXHash of a file's content.
func (h *Hasher) HashFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return hasher.Sum64(), nil
}

// HashInputs computes a single hash covering the target name, the
// dependency paths, and their contents. A dependency that is not a
// stat-able file (e.g. an executable resolved via PATH) contributes its
// name only.
func (h *Hasher) HashInputs(output string, deps []string) (string, error) {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(output)
	_, _ = hasher.Write([]byte{0})

	for _, dep := range deps {
		_, _ = hasher.WriteString(dep)
		_, _ = hasher.Write([]byte{0})

		info, err := os.Stat(dep)
		if err != nil || info.IsDir() {
			continue
		}
		sum, err := h.HashFile(dep)
		if err != nil {
			return "", err
		}
		if err := binary.Write(hasher, binary.LittleEndian, sum); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
