package chain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/safar/retail-chain/internal/models"
	"github.com/safar/retail-chain/internal/retailerr"
	"github.com/safar/retail-chain/internal/store"
	"github.com/shopspring/decimal"
)

const TopProductsLimit = 5

// ProductTally is the chain-wide sold quantity of one product.
type ProductTally struct {
	Product  *models.Product
	Quantity int
}

// FormatAmount renders a monetary amount as "$1234.50".
func FormatAmount(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// OpenStoresAt returns the stores open on day at the given time, in chain order.
func (c *Chain) OpenStoresAt(at models.Clock, day string) []*store.Store {
	var open []*store.Store
	for _, s := range c.stores {
		if s.IsOpen(at, day) {
			open = append(open, s)
		}
	}
	return open
}

// OpenStores lists the open stores as "Name (ID)" separated by ", ".
func (c *Chain) OpenStores(at models.Clock, day string) string {
	open := c.OpenStoresAt(at, day)

	names := make([]string, 0, len(open))
	for _, s := range open {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}

// TopStore returns the store with the highest total revenue. On ties the
// store added first wins.
func (c *Chain) TopStore() (*store.Store, decimal.Decimal, error) {
	if len(c.stores) == 0 {
		return nil, decimal.Zero, c.reject(retailerr.ErrEmptyChain)
	}

	best := c.stores[0]
	bestRevenue := best.TotalRevenue()
	for _, s := range c.stores[1:] {
		if revenue := s.TotalRevenue(); revenue.GreaterThan(bestRevenue) {
			best, bestRevenue = s, revenue
		}
	}
	return best, bestRevenue, nil
}

func (c *Chain) TopStoreByRevenue() (string, error) {
	s, revenue, err := c.TopStore()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s. Total revenue: %s", s, FormatAmount(revenue)), nil
}

// TopProducts tallies sold quantities per product id across every store and
// returns up to limit entries, highest quantity first. Products with equal
// quantities keep the order in which they were first sold.
func (c *Chain) TopProducts(limit int) []ProductTally {
	var tallies []*ProductTally
	byID := make(map[int64]*ProductTally)

	for _, s := range c.stores {
		for _, sale := range s.Sales() {
			t, ok := byID[sale.ProductID()]
			if !ok {
				t = &ProductTally{Product: sale.Item.Product}
				byID[sale.ProductID()] = t
				tallies = append(tallies, t)
			}
			t.Quantity += sale.Quantity()
		}
	}

	slices.SortStableFunc(tallies, func(a, b *ProductTally) int {
		return b.Quantity - a.Quantity
	})

	if limit < 0 {
		limit = 0
	}
	out := make([]ProductTally, 0, min(limit, len(tallies)))
	for _, t := range tallies[:min(limit, len(tallies))] {
		out = append(out, *t)
	}
	return out
}

// TopProductsByQuantity lists the five best sellers as "Name: qty" separated
// by " - ". It is empty when nothing has been sold.
func (c *Chain) TopProductsByQuantity() string {
	top := c.TopProducts(TopProductsLimit)

	parts := make([]string, 0, len(top))
	for _, t := range top {
		parts = append(parts, fmt.Sprintf("%s: %d", t.Product.Name, t.Quantity))
	}
	return strings.Join(parts, " - ")
}
