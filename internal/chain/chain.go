package chain

import (
	"fmt"
	"slices"

	"github.com/safar/retail-chain/internal/retailerr"
	"github.com/safar/retail-chain/internal/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Chain groups stores in insertion order and answers cross-store queries.
// Store ids are unique within a chain. Chain is not safe for concurrent use.
type Chain struct {
	stores []*store.Store
	log    *zap.Logger
}

func New(logger *zap.Logger) *Chain {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chain{log: logger}
}

func (c *Chain) AddStore(s *store.Store) error {
	if s == nil {
		return c.reject(fmt.Errorf("%w: nil store", retailerr.ErrInvalidArgument))
	}
	if _, ok := c.Store(s.ID()); ok {
		return c.reject(fmt.Errorf("%w: %d", retailerr.ErrDuplicateStoreID, s.ID()))
	}

	c.stores = append(c.stores, s)
	c.log.Debug("Store added", zap.Int64("store_id", s.ID()), zap.String("name", s.Name()))
	return nil
}

// Store looks up a store by id.
func (c *Chain) Store(id int64) (*store.Store, bool) {
	for _, s := range c.stores {
		if s.ID() == id {
			return s, true
		}
	}
	return nil, false
}

// Stores returns the stores in insertion order.
func (c *Chain) Stores() []*store.Store {
	return slices.Clone(c.stores)
}

func (c *Chain) Len() int {
	return len(c.stores)
}

// SoldQuantityForStore returns 0 without error for an unknown store.
func (c *Chain) SoldQuantityForStore(storeID, productID int64) (int, error) {
	s, ok := c.Store(storeID)
	if !ok {
		return 0, nil
	}
	return s.SoldQuantity(productID)
}

// SoldRevenueForStore returns 0 without error for an unknown store.
func (c *Chain) SoldRevenueForStore(storeID, productID int64) (decimal.Decimal, error) {
	s, ok := c.Store(storeID)
	if !ok {
		return decimal.Zero, nil
	}
	return s.SoldRevenue(productID)
}

// TotalRevenueForStore returns 0 for an unknown store.
func (c *Chain) TotalRevenueForStore(storeID int64) decimal.Decimal {
	s, ok := c.Store(storeID)
	if !ok {
		return decimal.Zero
	}
	return s.TotalRevenue()
}

func (c *Chain) TotalRevenue() (decimal.Decimal, error) {
	if len(c.stores) == 0 {
		return decimal.Zero, c.reject(retailerr.ErrEmptyChain)
	}

	total := decimal.Zero
	for _, s := range c.stores {
		total = total.Add(s.TotalRevenue())
	}
	return total, nil
}

func (c *Chain) reject(err error) error {
	c.log.Warn("Chain operation rejected",
		zap.String("error_code", retailerr.Code(err)),
		zap.Error(err),
	)
	return err
}
