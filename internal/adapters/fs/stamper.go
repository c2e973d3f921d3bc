package fs

import (
	"os"
	"time"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Stamper = (*Stamper)(nil)

// Stamper implements the staleness collaborator backed by the build-info
// store: a target is current when its output exists on disk and the stored
// input hash matches the current dependency set.
type Stamper struct {
	hasher *Hasher
	store  ports.BuildInfoStore
}

// NewStamper creates a Stamper.
func NewStamper(hasher *Hasher, store ports.BuildInfoStore) *Stamper {
	return &Stamper{hasher: hasher, store: store}
}

// NeedsRebuild reports whether output must be rebuilt from deps. Any
// trouble determining staleness (unreadable inputs, corrupt store) counts
// as stale: rebuilding is always safe.
func (s *Stamper) NeedsRebuild(output string, deps []string) bool {
	if _, err := os.Stat(output); err != nil {
		return true
	}
	hash, err := s.hasher.HashInputs(output, deps)
	if err != nil {
		return true
	}
	info, err := s.store.Get(output)
	if err != nil || info == nil {
		return true
	}
	return info.InputHash != hash
}

// RecordStamp marks output as freshly built from deps. The output file's
// timestamp is refreshed here and nowhere else; a target whose output file
// does not exist still gets its input hash recorded.
func (s *Stamper) RecordStamp(output string, deps []string) error {
	hash, err := s.hasher.HashInputs(output, deps)
	if err != nil {
		return err
	}

	now := time.Now()
	if _, statErr := os.Stat(output); statErr == nil {
		if err := os.Chtimes(output, now, now); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to stamp output"), "output", output)
		}
	}

	return s.store.Put(domain.BuildInfo{
		Target:    output,
		InputHash: hash,
		Timestamp: now,
	})
}
