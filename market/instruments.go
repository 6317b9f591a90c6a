package market

// Category classifies a tradable instrument on the platform.
type Category string

const (
	CategoryComic     Category = "comic"
	CategoryCreator   Category = "creator"
	CategoryPublisher Category = "publisher"
	CategoryOption    Category = "option"
	CategoryFund      Category = "fund"
)

// InstrumentMeta describes one listed instrument. BasePrice is the
// unadjusted reference price in CC before any grade/age/signature
// multipliers are applied.
type InstrumentMeta struct {
	Symbol    string
	Name      string
	Category  Category
	BasePrice float64
}

// Instruments is the static catalog the price book is seeded from.
// Symbols are uppercase alphanumeric, at most nine characters.
var Instruments = map[string]InstrumentMeta{
	// Key comic issues
	"ASM300": {
		Symbol:    "ASM300",
		Name:      "Amazing Spider-Man #300",
		Category:  CategoryComic,
		BasePrice: 2500,
	},
	"AF15": {
		Symbol:    "AF15",
		Name:      "Amazing Fantasy #15",
		Category:  CategoryComic,
		BasePrice: 185000,
	},
	"HULK181": {
		Symbol:    "HULK181",
		Name:      "Incredible Hulk #181",
		Category:  CategoryComic,
		BasePrice: 12000,
	},
	"XM1": {
		Symbol:    "XM1",
		Name:      "X-Men #1",
		Category:  CategoryComic,
		BasePrice: 45000,
	},
	"BATM404": {
		Symbol:    "BATM404",
		Name:      "Batman #404",
		Category:  CategoryComic,
		BasePrice: 350,
	},

	// Creator stocks
	"TMCS": {
		Symbol:    "TMCS",
		Name:      "Todd McFarlane Creator Stock",
		Category:  CategoryCreator,
		BasePrice: 185.5,
	},
	"JLES": {
		Symbol:    "JLES",
		Name:      "Jim Lee Creator Stock",
		Category:  CategoryCreator,
		BasePrice: 210.25,
	},
	"DCAS": {
		Symbol:    "DCAS",
		Name:      "Donny Cates Creator Stock",
		Category:  CategoryCreator,
		BasePrice: 95.75,
	},

	// Publisher bonds
	"MRVLB": {
		Symbol:    "MRVLB",
		Name:      "Marvel Entertainment Bond",
		Category:  CategoryPublisher,
		BasePrice: 1000,
	},
	"DCCB": {
		Symbol:    "DCCB",
		Name:      "DC Comics Bond",
		Category:  CategoryPublisher,
		BasePrice: 985.5,
	},
	"IMGCB": {
		Symbol:    "IMGCB",
		Name:      "Image Comics Bond",
		Category:  CategoryPublisher,
		BasePrice: 920,
	},

	// Options
	"ASM300C": {
		Symbol:    "ASM300C",
		Name:      "ASM300 Call Option",
		Category:  CategoryOption,
		BasePrice: 125,
	},
	"AF15P": {
		Symbol:    "AF15P",
		Name:      "AF15 Put Option",
		Category:  CategoryOption,
		BasePrice: 4200,
	},

	// Funds
	"SILVERFND": {
		Symbol:    "SILVERFND",
		Name:      "Silver Age Index Fund",
		Category:  CategoryFund,
		BasePrice: 5400,
	},
	"KEYSFND": {
		Symbol:    "KEYSFND",
		Name:      "Key Issues Fund",
		Category:  CategoryFund,
		BasePrice: 8750,
	},
}

// SeedPrices returns the symbol -> base price pairs used to seed a
// fresh PriceBook.
func SeedPrices() map[string]float64 {
	seed := make(map[string]float64, len(Instruments))
	for sym, meta := range Instruments {
		seed[sym] = meta.BasePrice
	}
	return seed
}
