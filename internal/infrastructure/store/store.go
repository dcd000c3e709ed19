// Package store opens the configured database and exposes the receipt repositories.
package store

import (
	"context"
	"fmt"

	"github.com/sangkips/receipt-api/internal/config"
	"github.com/sangkips/receipt-api/internal/infrastructure/database"
	"github.com/sangkips/receipt-api/internal/infrastructure/repository"
	"github.com/sangkips/receipt-api/internal/infrastructure/repository/sqlite"
	domainRepo "github.com/sangkips/receipt-api/internal/domain/repository"
	"go.uber.org/zap"
)

// Store bundles the repositories of one database connection
type Store struct {
	Customers domainRepo.CustomerRepository
	Products  domainRepo.ProductRepository
	Driver    string

	close func() error
}

// Close releases the underlying connection
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open connects to the database named by cfg.Driver, migrates it and optionally seeds it
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Store, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres, "":
		return openPostgres(cfg, log)
	case config.DriverSQLite:
		return openSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("store: unsupported database driver %q", cfg.Database.Driver)
	}
}

func openPostgres(cfg *config.Config, log *zap.Logger) (*Store, error) {
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug, log)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	if err := database.AutoMigrate(db, log); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	if cfg.Database.Seed {
		if err := database.SeedDefaultData(db, log); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	return &Store{
		Customers: repository.NewCustomerRepository(db),
		Products:  repository.NewProductRepository(db),
		Driver:    config.DriverPostgres,
		close:     sqlDB.Close,
	}, nil
}

func openSQLite(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Store, error) {
	db, err := database.OpenSQLite(cfg.Database.SQLitePath, log)
	if err != nil {
		return nil, err
	}
	if cfg.Database.Seed {
		if err := database.SeedSQLite(ctx, db, log); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &Store{
		Customers: sqlite.NewCustomerRepository(db),
		Products:  sqlite.NewProductRepository(db),
		Driver:    config.DriverSQLite,
		close:     db.Close,
	}, nil
}
