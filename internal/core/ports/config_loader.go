package ports

import "go.trai.ch/forge/internal/core/domain"

// ConfigLoader reads a build file into options and target specs.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	Load(path string) (*domain.BuildFile, error)
}
