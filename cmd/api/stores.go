package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Hashimp6/broperty/internal/config"
	"github.com/Hashimp6/broperty/internal/database"
	"github.com/Hashimp6/broperty/internal/database/migration"
	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/repository"
	"github.com/Hashimp6/broperty/internal/repository/memory"
	mongorepo "github.com/Hashimp6/broperty/internal/repository/mongo"
	"github.com/Hashimp6/broperty/internal/repository/postgres"
)

// stores bundles the repositories of the selected STORE_DRIVER.
type stores struct {
	properties repository.PropertyRepository
	showings   repository.ShowingRepository
	users      repository.UserRepository
	health     database.Pinger
	close      func()
}

func openStores(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) (*stores, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := migration.EnsureMigrated(ctx, db, log); err != nil {
			db.Close()
			return nil, err
		}
		return &stores{
			properties: postgres.NewPropertyPostgres(db),
			showings:   postgres.NewShowingPostgres(db),
			users:      postgres.NewUserPostgres(db),
			health:     db,
			close:      func() { db.Close() },
		}, nil

	case config.StoreMongo:
		db, err := database.NewMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
			_ = db.Client().Disconnect(context.Background())
			return nil, err
		}
		log.Info("mongo_indexes_ensured", zap.String("database", cfg.Mongo.Database))
		return &stores{
			properties: mongorepo.NewPropertyMongo(db),
			showings:   mongorepo.NewShowingMongo(db),
			users:      mongorepo.NewUserMongo(db),
			health:     database.MongoPinger(db),
			close:      func() { _ = db.Client().Disconnect(context.Background()) },
		}, nil

	case config.StoreMemory:
		var users []model.User
		var props []model.Property
		if cfg.SeedFile != "" {
			seed, err := memory.LoadSeed(cfg.SeedFile)
			if err != nil {
				return nil, err
			}
			users, props = seed.Users, seed.Properties
		}
		log.Info("memory_store_loaded", zap.Int("users", len(users)), zap.Int("properties", len(props)))
		return &stores{
			properties: memory.NewPropertyMemory(props...),
			showings:   memory.NewShowingMemory(),
			users:      memory.NewUserMemory(users...),
			health:     database.PingFunc(func(context.Context) error { return nil }),
			close:      func() {},
		}, nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}
