package ports

import "go.trai.ch/forge/internal/core/domain"

// BuildInfoStore persists the per-target build records backing the
// staleness check.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// Get retrieves the build info for a target output name.
	// Returns nil, nil if not found.
	Get(target string) (*domain.BuildInfo, error)

	// Put stores the build info.
	Put(info domain.BuildInfo) error
}
