package valuation

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidBasePrice is returned when AdjustedPrice is handed a
	// non-positive base price.
	ErrInvalidBasePrice = errors.New("base price must be positive")

	// ErrUnknownAgeBracket is returned for an age bracket missing from
	// the table. Unlike grades, age has no permissive fallback.
	ErrUnknownAgeBracket = errors.New("unknown age bracket")

	// ErrUnknownSignatureTag is returned for a signature tag missing
	// from the table.
	ErrUnknownSignatureTag = errors.New("unknown signature tag")
)

// SpreadParams parameterize the market-maker spread curve. Higher
// prices get proportionally tighter spreads via exponential decay,
// bounded so the spread never vanishes nor runs away at low prices.
type SpreadParams struct {
	Base  float64 // spread at price zero, before rounding
	Decay float64 // price scale of the decay, in CC
	Min   float64 // floor after rounding
	Max   float64 // cap after rounding
	Tick  float64 // increment the raw spread is rounded to
}

// DefaultSpreadParams returns the stock spread curve.
func DefaultSpreadParams() SpreadParams {
	return SpreadParams{
		Base:  0.05,
		Decay: 10000,
		Min:   0.001,
		Max:   0.05,
		Tick:  0.01,
	}
}

// Engine computes adjusted fair values and synthetic spreads. It holds
// only immutable tables: every method is pure, performs no I/O and is
// safe to call from any number of goroutines.
type Engine struct {
	tables Tables
	spread SpreadParams
}

// NewEngine builds an engine over the given tables and spread curve.
func NewEngine(tables Tables, spread SpreadParams) *Engine {
	return &Engine{tables: tables, spread: spread}
}

// NewDefaultEngine builds an engine over the stock tables.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultTables(), DefaultSpreadParams())
}

// GradeMultiplier looks up the multiplier for a grade, falling back to
// the RAW multiplier for any unknown key.
func (e *Engine) GradeMultiplier(g Grade) float64 {
	if m, ok := e.tables.Grade[g]; ok {
		return m
	}
	return e.tables.Grade[GradeRaw]
}

// AgeMultiplier looks up the multiplier for an age bracket. Unknown
// brackets fail rather than defaulting; a valuation must not silently
// price an era it has no table entry for.
func (e *Engine) AgeMultiplier(age AgeBracket) (float64, error) {
	m, ok := e.tables.Age[age]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAgeBracket, age)
	}
	return m, nil
}

// SignatureMultiplier looks up the multiplier for a single tag.
// Unknown tags fail, same policy as age brackets.
func (e *Engine) SignatureMultiplier(tag SignatureTag) (float64, error) {
	m, ok := e.tables.Signature[tag]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSignatureTag, tag)
	}
	return m, nil
}

// AdjustedPrice compounds the grade, age and signature multipliers
// onto a base price:
//
//	adjusted = base * grade * age * product(signature tags)
//
// Tags are applied in the order supplied. The result carries no
// rounding; callers format for display.
func (e *Engine) AdjustedPrice(base float64, g Grade, age AgeBracket, sigs []SignatureTag) (float64, error) {
	if base <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidBasePrice, base)
	}

	ageMult, err := e.AgeMultiplier(age)
	if err != nil {
		return 0, err
	}

	adjusted := base * e.GradeMultiplier(g) * ageMult
	for _, tag := range sigs {
		m, err := e.SignatureMultiplier(tag)
		if err != nil {
			return 0, err
		}
		adjusted *= m
	}
	return adjusted, nil
}

// Spread returns the market-maker spread for a price, as a fraction of
// price. The raw exponential decay is rounded to the tick first and
// clamped last, so the floor survives the rounding.
func (e *Engine) Spread(price float64) float64 {
	raw := e.spread.Base * math.Exp(-price/e.spread.Decay)
	rounded := math.Round(raw/e.spread.Tick) * e.spread.Tick

	if rounded < e.spread.Min {
		return e.spread.Min
	}
	if rounded > e.spread.Max {
		return e.spread.Max
	}
	return rounded
}

// Quote pairs an adjusted price with the bid/ask implied by the spread
// at that price.
type Quote struct {
	Base     float64
	Adjusted float64
	Spread   float64
	Bid      float64
	Ask      float64
}

// QuoteFor computes the full quote for a base price and attributes.
func (e *Engine) QuoteFor(base float64, g Grade, age AgeBracket, sigs []SignatureTag) (Quote, error) {
	adjusted, err := e.AdjustedPrice(base, g, age, sigs)
	if err != nil {
		return Quote{}, err
	}

	spread := e.Spread(adjusted)
	half := adjusted * spread / 2
	return Quote{
		Base:     base,
		Adjusted: adjusted,
		Spread:   spread,
		Bid:      adjusted - half,
		Ask:      adjusted + half,
	}, nil
}
