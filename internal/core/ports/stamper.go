package ports

// Stamper is the staleness collaborator: it decides whether a target's
// output is out of date relative to its dependencies, and records a fresh
// stamp after a genuinely successful build.
//
//go:generate go run go.uber.org/mock/mockgen -source=stamper.go -destination=mocks/mock_stamper.go -package=mocks
type Stamper interface {
	// NeedsRebuild reports whether output must be rebuilt from deps.
	NeedsRebuild(output string, deps []string) bool

	// RecordStamp marks output as freshly built from deps. The output
	// file's timestamp is refreshed only here.
	RecordStamp(output string, deps []string) error
}
