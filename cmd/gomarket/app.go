package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agamariel/gomarket/internal/cli"
	"github.com/agamariel/gomarket/internal/config"
	"github.com/agamariel/gomarket/internal/services"
	"github.com/agamariel/gomarket/internal/storage"
	"go.uber.org/zap"
)

// App структура для управления приложением и его зависимостями.
type App struct {
	cfg    *config.Config
	logger *zap.Logger

	userStorage    *storage.FileUserStorage
	productStorage *storage.FileProductStorage
	cli            *cli.CLI
}

// NewApp создаёт и инициализирует новое приложение.
func NewApp(cfg *config.Config) (*App, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	app := &App{
		cfg:    cfg,
		logger: logger,
	}

	if err := app.initDependencies(); err != nil {
		return nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	return app, nil
}

// initDependencies инициализирует все зависимости приложения (storage, services, cli).
// Хранилище каталога открывается после хранилища пользователей: при загрузке
// товаров ссылки на продавцов разрешаются по уже загруженным пользователям.
func (app *App) initDependencies() error {
	// Storage layer
	userStorage, err := storage.OpenFileUserStorage(app.cfg.UsersFile, app.logger)
	if err != nil {
		return err
	}
	productStorage, err := storage.OpenFileProductStorage(app.cfg.ProductsFile, userStorage, app.logger)
	if err != nil {
		return err
	}
	app.userStorage = userStorage
	app.productStorage = productStorage

	// Service layer
	userService := services.NewUserService(userStorage, app.logger)
	marketService := services.NewMarketService(userStorage, productStorage, app.logger)

	// Интерактивное меню
	app.cli = cli.New(userService, marketService, app.cfg.SellerCode, os.Stdin, os.Stdout)

	return nil
}

// Run запускает интерактивное меню и блокируется до выхода пользователя.
func (app *App) Run(ctx context.Context) error {
	app.logger.Info("marketplace started",
		zap.String("users_file", app.cfg.UsersFile),
		zap.String("products_file", app.cfg.ProductsFile))

	return app.cli.Run(ctx)
}

// Close корректно завершает работу приложения.
func (app *App) Close() {
	_ = app.logger.Sync()
}
