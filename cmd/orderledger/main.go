package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"order-ledger/config"
	"order-ledger/internal/catalog"
	"order-ledger/internal/cli"
	"order-ledger/internal/logger"
	"order-ledger/internal/repository"
	"order-ledger/internal/service"
	"order-ledger/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Environment.Name == "development"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.L()

	ordersStore := store.NewCSVStore(cfg.Data.OrdersPath(), store.OrderFields)
	itemsStore := store.NewCSVStore(cfg.Data.ItemsPath(), store.ItemFields)
	productsStore := store.NewCSVStore(cfg.Data.ProductsPath(), store.ProductFields)

	// The products file is maintained externally and is not created here.
	if err := store.Ensure(ordersStore, itemsStore); err != nil {
		log.Fatal("failed to prepare data files", zap.Error(err))
	}

	repo := repository.New(ordersStore, itemsStore)
	cat := catalog.NewCSVProvider(productsStore)

	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	svc := service.NewOrderService(repo, cat, prompter, log)

	menu := cli.NewMenu(svc, prompter, log)
	log.Info("order ledger started", zap.String("data_dir", cfg.Data.Dir))
	if err := menu.Run(); err != nil {
		log.Fatal("menu loop failed", zap.Error(err))
	}
	log.Info("order ledger stopped")
}
