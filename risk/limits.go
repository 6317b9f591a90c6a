package risk

// OrderLimits is the static limit record every proposed order is
// checked against. All sizes are denominated in CC. Loaded once at
// startup, never mutated at runtime.
type OrderLimits struct {
	MinOrderSize      float64 `json:"min_order_size" yaml:"min_order_size"`
	MaxOrderSize      float64 `json:"max_order_size" yaml:"max_order_size"`
	MaxLeverage       float64 `json:"max_leverage" yaml:"max_leverage"`
	MarginRequirement float64 `json:"margin_requirement" yaml:"margin_requirement"`
	MaxPositionSize   float64 `json:"max_position_size" yaml:"max_position_size"`
	DailyVolumeLimit  float64 `json:"daily_volume_limit" yaml:"daily_volume_limit"`
}

// DefaultLimits returns the platform's stock limit record.
func DefaultLimits() OrderLimits {
	return OrderLimits{
		MinOrderSize:      100,
		MaxOrderSize:      1_000_000,
		MaxLeverage:       5,
		MarginRequirement: 0.5,
		MaxPositionSize:   10_000_000,
		DailyVolumeLimit:  50_000_000,
	}
}
