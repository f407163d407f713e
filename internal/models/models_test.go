package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockEntryLineTotal(t *testing.T) {
	ball := NewProduct(3, "Ball", decimal.RequireFromString("34.7"))
	plate := NewProduct(7, "Plate", decimal.RequireFromString("13.2"))

	assert.True(t, StockEntry{Product: ball, Quantity: 4}.LineTotal().Equal(decimal.RequireFromString("138.8")))
	assert.True(t, StockEntry{Product: plate, Quantity: 5}.LineTotal().Equal(decimal.NewFromInt(66)))
	assert.True(t, StockEntry{Product: plate, Quantity: 0}.LineTotal().IsZero())
}

func TestSaleAccessors(t *testing.T) {
	p := NewProduct(16, "Scooter", decimal.NewFromInt(100))
	sale := Sale{ID: 1, Item: StockEntry{Product: p, Quantity: 2}}

	assert.Equal(t, int64(16), sale.ProductID())
	assert.Equal(t, 2, sale.Quantity())
	assert.True(t, sale.Total().Equal(decimal.NewFromInt(200)))
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want Clock
	}{
		{"8:00", NewClock(8, 0)},
		{"08:30", NewClock(8, 30)},
		{"20:05", NewClock(20, 5)},
		{"0:00", NewClock(0, 0)},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "25:00", "8", "8:60", "noon"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestClockOrdering(t *testing.T) {
	open := NewClock(8, 0)
	closes := NewClock(20, 0)

	assert.True(t, NewClock(8, 1).After(open))
	assert.False(t, open.After(open))
	assert.True(t, NewClock(19, 59).Before(closes))
	assert.False(t, closes.Before(closes))
	assert.Equal(t, "08:00", open.String())
	assert.Equal(t, 20, closes.Hour())
	assert.Equal(t, 0, closes.Minute())
}
