package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"sweetshop/internal/config"
	"sweetshop/internal/handler"
	"sweetshop/internal/infra/db"
	"sweetshop/internal/infra/memstore"
	infraRepo "sweetshop/internal/infra/repository"
	"sweetshop/internal/metrics"
	repo "sweetshop/internal/repository"
	"sweetshop/internal/server"
	"sweetshop/internal/usecase"

	"github.com/joho/godotenv"
)

// 使うrepository一式
type repos struct {
	items      repo.ItemRepository
	inventory  repo.InventoryRepository
	categories repo.CategoryRepository
}

func newLogger(cfg config.Config) *slog.Logger {
	if cfg.IsProd() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func openRepos(cfg config.Config, log *slog.Logger) (repos, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		log.Warn("using in-memory store, data is lost on restart")
		s := memstore.New()
		return repos{items: s.Items(), inventory: s.Inventory(), categories: s.Categories()}, nil
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		return repos{}, err
	}
	if err := db.Migrate(gormDB); err != nil {
		return repos{}, err
	}
	log.Info("database connected and migrated")

	return repos{
		items:      infraRepo.NewItemGormRepository(gormDB),
		inventory:  infraRepo.NewInventoryGormRepository(gormDB),
		categories: infraRepo.NewCategoryGormRepository(gormDB),
	}, nil
}

func run() error {
	//.envはあれば読む
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	slog.SetDefault(log)

	r, err := openRepos(cfg, log)
	if err != nil {
		return err
	}

	//メトリクス
	var (
		rec         usecase.Recorder
		metricsHTTP http.Handler
	)
	if cfg.MetricsEnabled {
		m := metrics.New()
		rec = m
		metricsHTTP = m.Handler()
	}

	//Usecase生成
	categoryUC := usecase.NewCategoryUsecase(r.categories, r.items, rec, log)
	stockUC := usecase.NewStockUsecase(r.items, r.inventory, rec, log)
	itemUC := usecase.NewItemUsecase(r.items, categoryUC, log)

	//Handler生成
	itemH := handler.NewItemHandler(itemUC, stockUC)
	categoryH := handler.NewCategoryHandler(categoryUC)

	//Server起動
	e := server.New(cfg, log, itemH, categoryH, metricsHTTP)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("server starting", "addr", cfg.Addr(), "env", cfg.GoEnv, "store", cfg.StoreDriver)
	return server.Start(ctx, e, cfg.Addr())
}

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
