package config

import (
	"log"

	"github.com/spf13/viper"
)

// CatalogItem is one glass type in the configured catalog.
type CatalogItem struct {
	Name      string `mapstructure:"name"`
	BasePrice int64  `mapstructure:"base_price"`
}

// defaultCatalog is the stock list of a small glass-cutting shop. Prices are
// rupiah per square meter.
var defaultCatalog = []CatalogItem{
	{Name: "Kaca Polos 3MM", BasePrice: 120000},
	{Name: "Kaca Polos 5MM", BasePrice: 190000},
	{Name: "Kaca Polos 8MM", BasePrice: 320000},
	{Name: "Kaca Riben 3MM", BasePrice: 135000},
	{Name: "Kaca Riben 5MM", BasePrice: 205000},
	{Name: "Kaca Es 3MM", BasePrice: 140000},
	{Name: "Cermin 3MM", BasePrice: 250000},
	{Name: "Cermin 5MM", BasePrice: 350000},
}

// LoadCatalog returns the product catalog, either from the YAML file named
// by CATALOG_FILE or the built-in defaults. The catalog is fixed for the
// lifetime of the process.
func LoadCatalog() []CatalogItem {
	path := viper.GetString("CATALOG_FILE")
	if path == "" {
		return defaultCatalog
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: catalog file %s not readable, using built-in catalog: %v", path, err)
		return defaultCatalog
	}

	var items []CatalogItem
	if err := v.UnmarshalKey("products", &items); err != nil || len(items) == 0 {
		log.Printf("Warning: catalog file %s has no products, using built-in catalog", path)
		return defaultCatalog
	}
	return items
}
