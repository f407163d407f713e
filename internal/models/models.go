package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. It is shared by pointer between the catalog,
// store inventories and sale snapshots and must not be modified once built.
type Product struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func NewProduct(id int64, name string, price decimal.Decimal) *Product {
	return &Product{ID: id, Name: name, Price: price}
}

// StockEntry associates a product with a quantity. Stores use it as a live
// inventory row; sales keep a copy as the snapshot of what was sold.
type StockEntry struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}

func (e StockEntry) LineTotal() decimal.Decimal {
	return e.Product.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

type Sale struct {
	ID   int        `json:"id"`
	Item StockEntry `json:"item"`
}

func (s Sale) ProductID() int64 {
	return s.Item.Product.ID
}

func (s Sale) Quantity() int {
	return s.Item.Quantity
}

func (s Sale) Total() decimal.Decimal {
	return s.Item.LineTotal()
}

const clockLayout = "15:04"

// Clock is a time of day with minute resolution.
type Clock int

func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// ParseClock accepts "H:mm" and "HH:mm".
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return NewClock(t.Hour(), t.Minute()), nil
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) Before(other Clock) bool { return c < other }
func (c Clock) After(other Clock) bool  { return c > other }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}
