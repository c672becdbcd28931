// Package postgres contains the concrete implementation of the persistence
// layer using GORM and PostgreSQL. The service talks to two independent
// stores: the read-only recipe catalog and the account store it owns.
package postgres

import (
	"context"
	"embed"
	"log/slog"

	"tastebook/config"
	"tastebook/internal/domain/lifecycle"
	"tastebook/internal/errors"

	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
	pgDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrations embed.FS

// RecipeDB is the handle to the recipe catalog store.
type RecipeDB struct {
	*gorm.DB
}

// AccountDB is the handle to the account store.
type AccountDB struct {
	*gorm.DB
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRecipeDB opens the recipe catalog connection. The catalog is reference
// data populated offline; this service never writes to it.
func NewRecipeDB(params Params) (*RecipeDB, error) {
	db, err := open(params, params.Config.RecipeDB, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open recipe store")
	}

	return &RecipeDB{DB: db}, nil
}

// NewAccountDB opens the account store connection and migrates its schema on
// startup, which installs the unique username index closing the duplicate
// registration race at the storage layer.
func NewAccountDB(params Params) (*AccountDB, error) {
	db, err := open(params, params.Config.AccountDB, migrateAccountStore)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open account store")
	}

	return &AccountDB{DB: db}, nil
}

// open creates one GORM handle with pool settings and fx lifecycle hooks.
// onStart, when set, runs after the startup ping.
func open(params Params, conn *config.DBConn, onStart func(context.Context, *gorm.DB) error) (*gorm.DB, error) {
	db, err := gorm.Open(pgDriver.Open(conn.DSN()), &gorm.Config{
		// Read handlers issue single statements; no implicit transactions.
		SkipDefaultTransaction: true,
		// Translate driver errors into gorm sentinel errors (duplicated key etc).
		TranslateError: true,
		Logger:         newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if conn.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conn.MaxOpenConns)
	}
	if conn.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conn.MaxIdleConns)
	}
	if conn.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(conn.ConnMaxLifetime)
	}

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if onStart != nil {
				return onStart(ctx, db)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// migrateAccountStore brings the account store schema up to date through the
// embedded goose migrations.
func migrateAccountStore(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get account store sql.DB")
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		return errors.Wrap(err, "failed to migrate account store")
	}

	return nil
}
