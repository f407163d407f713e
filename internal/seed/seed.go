package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/safar/retail-chain/internal/chain"
	"github.com/safar/retail-chain/internal/models"
	"github.com/safar/retail-chain/internal/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultFixture []byte

type Fixture struct {
	Products []ProductFixture `yaml:"products"`
	Stores   []StoreFixture   `yaml:"stores"`
}

type ProductFixture struct {
	ID    int64  `yaml:"id"`
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

type StoreFixture struct {
	ID        int64         `yaml:"id"`
	Name      string        `yaml:"name"`
	Opens     string        `yaml:"opens"`
	Closes    string        `yaml:"closes"`
	OpenDays  []string      `yaml:"open_days"`
	BaseStock int           `yaml:"base_stock"`
	Sales     []SaleFixture `yaml:"sales"`
}

type SaleFixture struct {
	ProductID int64 `yaml:"product_id"`
	Quantity  int   `yaml:"quantity"`
}

// Load reads a fixture from path, or the embedded default when path is empty.
func Load(path string) (*Fixture, error) {
	data := defaultFixture
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixture: %w", err)
		}
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

func (f *Fixture) Catalog() ([]*models.Product, error) {
	catalog := make([]*models.Product, 0, len(f.Products))
	for _, p := range f.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, fmt.Errorf("product %d price: %w", p.ID, err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("product %d price: must not be negative", p.ID)
		}
		catalog = append(catalog, models.NewProduct(p.ID, p.Name, price))
	}
	return catalog, nil
}

// Build creates the chain described by the fixture. Every store stocks the
// whole catalog and replays its listed sales; any rejected sale or duplicate
// store fails the build.
func (f *Fixture) Build(logger *zap.Logger) (*chain.Chain, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	catalog, err := f.Catalog()
	if err != nil {
		return nil, err
	}

	c := chain.New(logger)
	for _, sf := range f.Stores {
		opens, err := models.ParseClock(sf.Opens)
		if err != nil {
			return nil, fmt.Errorf("store %d opens: %w", sf.ID, err)
		}
		closes, err := models.ParseClock(sf.Closes)
		if err != nil {
			return nil, fmt.Errorf("store %d closes: %w", sf.ID, err)
		}
		if !opens.Before(closes) {
			return nil, fmt.Errorf("store %d: opens at %s, not before closing at %s", sf.ID, opens, closes)
		}

		s := store.New(store.Config{
			ID:        sf.ID,
			Name:      sf.Name,
			OpensAt:   opens,
			ClosesAt:  closes,
			OpenDays:  sf.OpenDays,
			BaseStock: sf.BaseStock,
		}, catalog, logger)

		for _, sale := range sf.Sales {
			if _, err := s.RegisterSale(sale.ProductID, sale.Quantity); err != nil {
				return nil, fmt.Errorf("store %d sale of product %d: %w", sf.ID, sale.ProductID, err)
			}
		}

		if err := c.AddStore(s); err != nil {
			return nil, fmt.Errorf("store %d: %w", sf.ID, err)
		}
	}

	logger.Info("Chain loaded",
		zap.Int("products", len(catalog)),
		zap.Int("stores", c.Len()),
	)
	return c, nil
}
