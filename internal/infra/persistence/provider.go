// Package persistence selects the record store implementation from configuration.
package persistence

import (
	"log/slog"

	"go.uber.org/fx"

	"learnhub/config"
	"learnhub/internal/domain/constants"
	"learnhub/internal/domain/repository"
	"learnhub/internal/errors"
	"learnhub/internal/infra/persistence/mongodb"
	"learnhub/internal/infra/persistence/postgres"
)

// StoreParams holds dependencies for the record store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of repositories backed by the configured store.
type Repositories struct {
	fx.Out

	Users         repository.UserRepository
	Categories    repository.CategoryRepository
	SubCategories repository.SubCategoryRepository
	Lessons       repository.LessonRepository
}

// NewRepositories connects to the store named by store.driver and builds its repositories.
func NewRepositories(params StoreParams) (Repositories, error) {
	driver := params.Config.Store.Driver
	logger := params.Logger

	switch driver {
	case "", constants.StoreDriverMongo:
		db, err := mongodb.New(mongodb.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		logger.Info("Using MongoDB record store", slog.String("database", params.Config.Mongo.Database))

		return Repositories{
			Users:         mongodb.NewUserRepository(db),
			Categories:    mongodb.NewCategoryRepository(db),
			SubCategories: mongodb.NewSubCategoryRepository(db),
			Lessons:       mongodb.NewLessonRepository(db),
		}, nil

	case constants.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		logger.Info("Using PostgreSQL record store")

		return Repositories{
			Users:         postgres.NewUserRepository(db),
			Categories:    postgres.NewCategoryRepository(db),
			SubCategories: postgres.NewSubCategoryRepository(db),
			Lessons:       postgres.NewLessonRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown store driver: %s", driver)
	}
}

// Module provides the record store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
