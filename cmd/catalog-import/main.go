// Command catalog-import loads the JSON country catalog into PostgreSQL.
// Countries missing from the file are disabled, not deleted.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/ozdilmelih/FlagGame/internal/config"
	"github.com/ozdilmelih/FlagGame/internal/infra/postgres"
	pgrepo "github.com/ozdilmelih/FlagGame/internal/infra/postgres/repository"
	"github.com/ozdilmelih/FlagGame/internal/logger"
	"github.com/ozdilmelih/FlagGame/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	path := flag.String("file", cfg.CountriesJSONPath, "path to the countries JSON file")
	flag.Parse()

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fileRepo, err := repository.NewCountryRepository(*path)
	if err != nil {
		lg.Fatal("failed to read catalog", zap.String("path", *path), zap.Error(err))
	}
	countries, err := fileRepo.GetAll(ctx)
	if err != nil {
		lg.Fatal("failed to read catalog", zap.Error(err))
	}

	dsn, err := cfg.DB.DSN()
	if err != nil {
		lg.Fatal("DATABASE_URL is required", zap.Error(err))
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		lg.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	repo := pgrepo.NewCountryRepository(pool)
	err = postgres.NewTransactor(pool).WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return repo.ReplaceAll(ctx, tx, countries)
	})
	if err != nil {
		lg.Fatal("failed to import catalog", zap.Error(err))
	}

	lg.Info("catalog imported", zap.Int("countries", len(countries)))
}
