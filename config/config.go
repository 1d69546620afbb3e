package config

import (
	"path/filepath"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Environment Environment
	Data        Data `envPrefix:"DATA_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

// Data locates the CSV files backing the ledger.
type Data struct {
	Dir          string `env:"DIR" envDefault:"."`
	OrdersFile   string `env:"ORDERS_FILE" envDefault:"orders.csv"`
	ItemsFile    string `env:"ITEMS_FILE" envDefault:"order_items.csv"`
	ProductsFile string `env:"PRODUCTS_FILE" envDefault:"products.csv"`
}

func (d Data) OrdersPath() string   { return filepath.Join(d.Dir, d.OrdersFile) }
func (d Data) ItemsPath() string    { return filepath.Join(d.Dir, d.ItemsFile) }
func (d Data) ProductsPath() string { return filepath.Join(d.Dir, d.ProductsFile) }

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
