package main

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/log"

	"github.com/CaueSilva/bank-account-api/infra"
	"github.com/CaueSilva/bank-account-api/infra/logging"
	infrarepo "github.com/CaueSilva/bank-account-api/infra/repository"
	"github.com/CaueSilva/bank-account-api/pkg/config"
	"github.com/CaueSilva/bank-account-api/pkg/service"
	"github.com/CaueSilva/bank-account-api/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(slog.Default())
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	logger := logging.New(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infrarepo.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}

	uow := infrarepo.NewUoW(db)
	app := webapi.New(webapi.Services{
		Holder:      service.NewHolderService(uow, logger),
		Account:     service.NewAccountService(uow, logger),
		Transaction: service.NewTransactionService(uow, logger),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	return app.Listen(addr)
}
