package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var loadedProducts = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "zaristore_catalog_products",
	Help: "Number of products in the loaded catalog",
})

// LoadFile reads a JSON array of products from disk.
func LoadFile(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer file.Close()
	var products []Product
	if err := json.NewDecoder(file).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	loadedProducts.Set(float64(len(products)))
	return New(products), nil
}
