package market

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	// ErrSymbolNotFound is returned when a symbol was never seeded or set.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrInvalidPrice is returned for a non-positive price. The book is
	// left untouched.
	ErrInvalidPrice = errors.New("price must be positive")
)

// PriceReader is the read-only view of the price book handed to
// consumers that must never write, such as the valuation path.
type PriceReader interface {
	Price(symbol string) (float64, error)
	AllPrices() map[string]float64
	LastUpdate() time.Time
}

// PriceBook holds the current base price per symbol. It is the only
// mutable state in the system; all other components are pure
// calculators over it. Safe for concurrent use.
type PriceBook struct {
	mu         sync.RWMutex
	prices     map[string]float64
	lastUpdate time.Time
}

// NewPriceBook seeds a book from a symbol -> price map. The seed is
// copied, so the caller keeps ownership of its map. Seeding happens
// exactly once, here; there is no lazy re-seeding later.
func NewPriceBook(seed map[string]float64) *PriceBook {
	prices := make(map[string]float64, len(seed))
	for sym, p := range seed {
		prices[sym] = p
	}
	return &PriceBook{
		prices:     prices,
		lastUpdate: time.Now(),
	}
}

// Price returns the current base price for symbol, or
// ErrSymbolNotFound. Callers never receive a silent default.
func (b *PriceBook) Price(symbol string) (float64, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	p, ok := b.prices[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
	}
	return p, nil
}

// SetPrice overwrites the base price for symbol and refreshes the
// book-wide last-update stamp. A non-positive price fails with
// ErrInvalidPrice before any mutation.
func (b *PriceBook) SetPrice(symbol string, price float64) error {
	if price <= 0 {
		return fmt.Errorf("%w: %s got %v", ErrInvalidPrice, symbol, price)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.prices[symbol] = price
	b.lastUpdate = time.Now()
	return nil
}

// AllPrices returns a copy of the full symbol -> price table.
// Mutating the result never affects the book.
func (b *PriceBook) AllPrices() map[string]float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[string]float64, len(b.prices))
	for sym, p := range b.prices {
		out[sym] = p
	}
	return out
}

// LastUpdate reports when any price last changed. It starts at
// construction time and moves forward on every successful SetPrice;
// the stamp is book-wide, not per symbol.
func (b *PriceBook) LastUpdate() time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastUpdate
}
