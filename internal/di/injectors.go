//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"github.com/pbaille/blueprint/internal/api"
	"github.com/pbaille/blueprint/internal/archive"
	"github.com/pbaille/blueprint/internal/providers"
	"github.com/pbaille/blueprint/internal/structures"
	"github.com/pbaille/blueprint/internal/submission"
)

var baseSet = wire.NewSet(
	providers.NewConfigProvider,
	provideLogger,
	provideRegisterer,
	providers.NewMetricsProvider,
	provideStore,
)

func InitServer(cfg *structures.CliFlags) (*api.Server, func(), error) {

	wire.Build(
		baseSet,
		providers.NewCacheProvider,
		submission.NewService,
		api.New,
	)

	return nil, nil, nil
}

func InitRuntime(cfg *structures.CliFlags) (*Runtime, func(), error) {

	wire.Build(
		baseSet,
		submission.NewService,
		wire.Struct(new(Runtime), "*"),
	)

	return nil, nil, nil
}

func InitExporter(cfg *structures.CliFlags) (*archive.Exporter, func(), error) {

	wire.Build(
		providers.NewConfigProvider,
		provideLogger,
		provideStore,
		provideReader,
		archive.NewZstdCompressor,
		archive.NewExporter,
	)

	return nil, nil, nil
}
