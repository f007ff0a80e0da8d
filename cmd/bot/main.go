package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ozdilmelih/FlagGame/internal/config"
	"github.com/ozdilmelih/FlagGame/internal/delivery/telegram"
	"github.com/ozdilmelih/FlagGame/internal/infra/postgres"
	pgrepo "github.com/ozdilmelih/FlagGame/internal/infra/postgres/repository"
	"github.com/ozdilmelih/FlagGame/internal/logger"
	"github.com/ozdilmelih/FlagGame/internal/repository"
	"github.com/ozdilmelih/FlagGame/internal/service"
	"github.com/ozdilmelih/FlagGame/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil {
		lg.Fatal("bot stopped with error", zap.Error(err))
	}

	lg.Info("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}
	defer bot.StopReceivingUpdates()

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "play",
			Description: "Start a new game",
		},
		{
			Command:     "score",
			Description: "Show the current score",
		},
		{
			Command:     "help",
			Description: "Help",
		},
	}

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	bot.Debug = cfg.Env != "production"
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	countries, closeCatalog, err := openCatalog(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer closeCatalog()

	sessions := storage.NewSessionStorage()
	gameService := service.NewGameService(
		countries,
		sessions,
		lg,
		service.WithRoundSize(cfg.Quiz.RoundSize),
	)
	janitor := service.NewSessionJanitor(sessions, lg, cfg.Sessions.IdleTTL, cfg.Sessions.CleanupSchedule)

	handler := telegram.NewHandler(
		bot,
		lg,
		gameService,
		telegram.NewPalette(cfg.UI.BadgeColor, cfg.UI.WrongColor),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		janitor.Start(gctx)
		return nil
	})

	g.Go(func() error {
		err := handler.Run(gctx)
		if errors.Is(err, context.Canceled) {
			lg.Info("shutdown signal received")
			return nil
		}
		return err
	})

	return g.Wait()
}

// openCatalog picks the country source: PostgreSQL when a database URL is set,
// the JSON file otherwise.
func openCatalog(ctx context.Context, cfg *config.Config, lg *zap.Logger) (service.CountryRepository, func(), error) {
	if !cfg.DB.Enabled() {
		repo, err := repository.NewCountryRepository(cfg.CountriesJSONPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load countries from %s: %w", cfg.CountriesJSONPath, err)
		}
		lg.Info("country catalog loaded from file", zap.String("path", cfg.CountriesJSONPath))
		return repo, func() {}, nil
	}

	dsn, err := cfg.DB.DSN()
	if err != nil {
		return nil, nil, err
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}
	lg.Info("country catalog served from postgres")

	return pgrepo.NewCountryRepository(pool), pool.Close, nil
}
