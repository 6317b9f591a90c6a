package risk

import "fmt"

// Order is a proposed trade. It lives only for the duration of a
// check; nothing here persists it.
type Order struct {
	Symbol   string
	Quantity float64
	Price    float64
}

// Value is the notional order value in CC.
func (o Order) Value() float64 {
	return o.Quantity * o.Price
}

// Violation names one limit condition an order trips.
type Violation struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// Decision reports the outcome of a limit check. The two conditions
// are independent and both surfaced when both hold; Violations keeps
// them in reporting order, over-limit first. A Decision never blocks
// anything itself — enforcement belongs to the caller.
type Decision struct {
	OrderValue        float64     `json:"order_value"`
	OverLimit         bool        `json:"over_limit"`
	InsufficientFunds bool        `json:"insufficient_funds"`
	Violations        []Violation `json:"violations,omitempty"`
}

// Allowed reports whether the order tripped no condition.
func (d Decision) Allowed() bool {
	return len(d.Violations) == 0
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
}

// CheckOrder evaluates a proposed order against the static limits and
// the caller's available balance.
func CheckOrder(o Order, limits OrderLimits, availableBalance float64) Decision {
	d := Decision{OrderValue: o.Value()}

	if o.Quantity > limits.MaxOrderSize {
		d.OverLimit = true
		d.add("ORDER_OVER_LIMIT",
			fmt.Sprintf("quantity %.0f exceeds max order size %.0f CC",
				o.Quantity, limits.MaxOrderSize))
	}
	if d.OrderValue > availableBalance {
		d.InsufficientFunds = true
		d.add("INSUFFICIENT_FUNDS",
			fmt.Sprintf("order value %.2f CC exceeds available balance %.2f CC",
				d.OrderValue, availableBalance))
	}

	return d
}
