package journal

import "time"

// PriceUpdate records one successful price write.
type PriceUpdate struct {
	ID       string
	Symbol   string
	OldPrice float64 // zero when the symbol had no prior price
	NewPrice float64
	Time     time.Time
}

// OrderCheck records one order-limit evaluation and its verdict.
type OrderCheck struct {
	ID                string
	Symbol            string
	Quantity          float64
	Price             float64
	OrderValue        float64
	OverLimit         bool
	InsufficientFunds bool
	Time              time.Time
}

// Journal is the audit trail for price updates and order checks.
type Journal interface {
	RecordPriceUpdate(u PriceUpdate) error
	RecordOrderCheck(c OrderCheck) error
	Close() error
}

// Nop discards everything. Used when journaling is configured off.
type Nop struct{}

func (Nop) RecordPriceUpdate(PriceUpdate) error { return nil }
func (Nop) RecordOrderCheck(OrderCheck) error   { return nil }
func (Nop) Close() error                        { return nil }
