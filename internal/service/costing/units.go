package costing

// Conversion describes how a small unit rolls up into a larger display unit
// once a quantity reaches Threshold (e.g. 1000 ml -> 1 l).
type Conversion struct {
	// To is the larger unit label.
	To string
	// Threshold is the quantity of the small unit at which display switches.
	Threshold float64
	// Factor divides the raw quantity to produce the converted quantity.
	Factor float64
}

// DefaultConversions is the fixed lookup table for kitchen measures.
// Threshold and Factor are the same value for every entry today; they are
// kept separate so a future entry can convert before reaching a full unit.
var DefaultConversions = map[string]Conversion{
	"ml":   {To: "l", Threshold: 1000, Factor: 1000},
	"g":    {To: "kg", Threshold: 1000, Factor: 1000},
	"tsp":  {To: "tbsp", Threshold: 3, Factor: 3},
	"tbsp": {To: "cup", Threshold: 16, Factor: 16},
}

// FallbackUnit is the generic label used when an ingredient has no unit.
const FallbackUnit = "unit"
