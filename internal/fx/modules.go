package fx

import (
	"database/sql"

	"kidquest-tracker/internal/api"
	"kidquest-tracker/internal/config"
	"kidquest-tracker/internal/database"
	"kidquest-tracker/internal/logger"
	"kidquest-tracker/internal/repository"
	"kidquest-tracker/internal/server"
	"kidquest-tracker/internal/service"
	"kidquest-tracker/internal/storage"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvideKV(db *sql.DB, log zerolog.Logger) storage.KV {
	return storage.NewSQLite(db, log)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	fx.Provide(ProvideKV),
	// repos
	fx.Provide(repository.NewResultStore),
	fx.Provide(repository.NewProfileStore),
	// api client
	fx.Provide(api.NewContentClient),
	// svc
	fx.Provide(service.NewProgressService),
	fx.Provide(service.NewContentService),
	// server
	fx.Provide(server.NewTrackerServer),
)
