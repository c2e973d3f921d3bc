package ports

import "go.trai.ch/forge/internal/core/domain"

// Lister evaluates a directory listing spec into the current set of
// matching files, in listing order.
//
//go:generate go run go.uber.org/mock/mockgen -source=lister.go -destination=mocks/mock_lister.go -package=mocks
type Lister interface {
	Evaluate(spec domain.ListingSpec) ([]string, error)
}
