package store

import (
	"fmt"
	"slices"

	"github.com/safar/retail-chain/internal/models"
	"github.com/safar/retail-chain/internal/retailerr"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Config struct {
	ID        int64
	Name      string
	OpensAt   models.Clock
	ClosesAt  models.Clock
	OpenDays  []string
	BaseStock int
}

// Store is a single shop of the chain. The inventory is fixed at construction;
// only the sales history grows. Store is not safe for concurrent use.
type Store struct {
	id       int64
	name     string
	opensAt  models.Clock
	closesAt models.Clock
	openDays []string

	inventory []models.StockEntry
	sales     []models.Sale

	log *zap.Logger
}

// New creates a store stocking every catalog product with cfg.BaseStock units.
func New(cfg Config, catalog []*models.Product, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	inventory := make([]models.StockEntry, 0, len(catalog))
	for _, p := range catalog {
		inventory = append(inventory, models.StockEntry{Product: p, Quantity: cfg.BaseStock})
	}

	return &Store{
		id:        cfg.ID,
		name:      cfg.Name,
		opensAt:   cfg.OpensAt,
		closesAt:  cfg.ClosesAt,
		openDays:  slices.Clone(cfg.OpenDays),
		inventory: inventory,
		log:       logger.With(zap.Int64("store_id", cfg.ID)),
	}
}

func (s *Store) ID() int64              { return s.id }
func (s *Store) Name() string           { return s.name }
func (s *Store) OpensAt() models.Clock  { return s.opensAt }
func (s *Store) ClosesAt() models.Clock { return s.closesAt }
func (s *Store) OpenDays() []string     { return slices.Clone(s.openDays) }

// Sales returns a copy of the sales history in registration order.
func (s *Store) Sales() []models.Sale {
	return slices.Clone(s.sales)
}

// IsOpen reports whether the store is open on day at the given time. Both the
// opening and the closing minute count as closed.
func (s *Store) IsOpen(at models.Clock, day string) bool {
	return at.After(s.opensAt) && at.Before(s.closesAt) && slices.Contains(s.openDays, day)
}

func (s *Store) String() string {
	return fmt.Sprintf("%s (%d)", s.name, s.id)
}

func (s *Store) findEntry(productID int64) (models.StockEntry, bool) {
	for _, e := range s.inventory {
		if e.Product.ID == productID {
			return e, true
		}
	}
	return models.StockEntry{}, false
}

// Stock returns the available quantity of a product.
func (s *Store) Stock(productID int64) (int, error) {
	entry, ok := s.findEntry(productID)
	if !ok {
		return 0, s.reject(fmt.Errorf("%w: id %d", retailerr.ErrProductNotFound, productID))
	}
	return entry.Quantity, nil
}

// RegisterSale records the sale of quantity units of a product and returns its
// revenue. The sale goes through only when the stock is strictly greater than
// the requested quantity. Stock is checked, never consumed.
func (s *Store) RegisterSale(productID int64, quantity int) (decimal.Decimal, error) {
	if productID < 0 || quantity <= 0 {
		return decimal.Zero, s.reject(fmt.Errorf("%w: product id must be >= 0 and quantity > 0 (id %d, quantity %d)",
			retailerr.ErrInvalidArgument, productID, quantity))
	}

	entry, ok := s.findEntry(productID)
	if !ok {
		return decimal.Zero, s.reject(fmt.Errorf("%w: id %d", retailerr.ErrProductNotFound, productID))
	}

	if entry.Quantity <= quantity {
		return decimal.Zero, s.reject(fmt.Errorf("%w: current stock %d, requested %d",
			retailerr.ErrInsufficientStock, entry.Quantity, quantity))
	}

	sale := models.Sale{
		ID:   len(s.sales) + 1,
		Item: models.StockEntry{Product: entry.Product, Quantity: quantity},
	}
	s.sales = append(s.sales, sale)

	total := sale.Total()
	s.log.Debug("Sale registered",
		zap.Int("sale_id", sale.ID),
		zap.Int64("product_id", productID),
		zap.Int("quantity", quantity),
		zap.Stringer("total", total),
	)
	return total, nil
}

func (s *Store) SoldQuantity(productID int64) (int, error) {
	if productID < 0 {
		return 0, s.reject(fmt.Errorf("%w: product id must be >= 0 (id %d)", retailerr.ErrInvalidArgument, productID))
	}

	var qty int
	for _, sale := range s.sales {
		if sale.ProductID() == productID {
			qty += sale.Quantity()
		}
	}
	return qty, nil
}

func (s *Store) SoldRevenue(productID int64) (decimal.Decimal, error) {
	if productID < 0 {
		return decimal.Zero, s.reject(fmt.Errorf("%w: product id must be >= 0 (id %d)", retailerr.ErrInvalidArgument, productID))
	}

	total := decimal.Zero
	for _, sale := range s.sales {
		if sale.ProductID() == productID {
			total = total.Add(sale.Total())
		}
	}
	return total, nil
}

// TotalRevenue sums every sale in the history.
func (s *Store) TotalRevenue() decimal.Decimal {
	if len(s.sales) == 0 {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, sale := range s.sales {
		total = total.Add(sale.Total())
	}
	return total
}

func (s *Store) reject(err error) error {
	s.log.Warn("Store operation rejected",
		zap.String("error_code", retailerr.Code(err)),
		zap.Error(err),
	)
	return err
}
