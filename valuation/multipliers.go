package valuation

// Grade is a condition rating following the 0.5-10.0 scale of
// third-party grading services, or GradeRaw for ungraded copies.
type Grade string

// GradeRaw is the fallback grade. Any grade key missing from the table
// values at the raw multiplier; this permissiveness is deliberate and
// applies to grades only.
const GradeRaw Grade = "RAW"

// AgeBracket is the historical era an issue was published in.
type AgeBracket string

const (
	AgeGolden AgeBracket = "golden"
	AgeSilver AgeBracket = "silver"
	AgeBronze AgeBracket = "bronze"
	AgeCopper AgeBracket = "copper"
	AgeModern AgeBracket = "modern"
)

// SignatureTag marks signature provenance on a copy. Tags compound
// multiplicatively, so a witnessed signature by a deceased creator
// carries both premiums.
type SignatureTag string

const (
	SigVerified  SignatureTag = "VERIFIED"
	SigWitnessed SignatureTag = "WITNESSED"
	SigRemark    SignatureTag = "REMARK"
	SigDeceased  SignatureTag = "DECEASED"
	SigHistoric  SignatureTag = "HISTORIC"
)

// Tables holds the three multiplier tables the engine composes. The
// defaults below are tuning parameters, not business rules; every
// value can be overridden from configuration.
type Tables struct {
	Grade     map[Grade]float64
	Age       map[AgeBracket]float64
	Signature map[SignatureTag]float64
}

// DefaultTables returns the stock multiplier tables.
//
// Grade multipliers stay within [0.10, 5.00]. Age multipliers decrease
// monotonically from golden (oldest, highest premium) down to modern
// (base 1.00). Signature multipliers are all >= 1.0.
func DefaultTables() Tables {
	return Tables{
		Grade: map[Grade]float64{
			"10.0":   5.00,
			"9.9":    3.50,
			"9.8":    2.00,
			"9.6":    1.60,
			"9.4":    1.40,
			"9.2":    1.25,
			"9.0":    1.15,
			"8.5":    1.00,
			"8.0":    0.90,
			"7.5":    0.80,
			"7.0":    0.70,
			"6.5":    0.62,
			"6.0":    0.55,
			"5.5":    0.48,
			"5.0":    0.42,
			"4.5":    0.38,
			"4.0":    0.34,
			"3.5":    0.30,
			"3.0":    0.26,
			"2.5":    0.22,
			"2.0":    0.18,
			"1.5":    0.14,
			"1.0":    0.10,
			GradeRaw: 0.30,
		},
		Age: map[AgeBracket]float64{
			AgeGolden: 2.00,
			AgeSilver: 1.50,
			AgeBronze: 1.30,
			AgeCopper: 1.15,
			AgeModern: 1.00,
		},
		Signature: map[SignatureTag]float64{
			SigVerified:  1.50,
			SigWitnessed: 1.40,
			SigRemark:    1.25,
			SigDeceased:  1.75,
			SigHistoric:  2.00,
		},
	}
}
