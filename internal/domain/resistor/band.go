package resistor

// Multiplier values with a band color. Zero maps to Black, matching the
// four-band table this package implements.
const (
	MultiplierZero        = 0.0
	MultiplierTen         = 10.0
	MultiplierHundred     = 100.0
	MultiplierThousand    = 1000.0
	MultiplierTenThousand = 10000.0
	MultiplierHundredK    = 100000.0
	MultiplierMillion     = 1000000.0
	MultiplierTenMillion  = 10000000.0
	MultiplierHundredM    = 100000000.0
	MultiplierBillion     = 1000000000.0
	MultiplierTenth       = 0.1
)

// Tolerance percentages with a band color.
const (
	ToleranceOne       = 1.0
	ToleranceTwo       = 2.0
	ToleranceHalf      = 0.5
	ToleranceQuarter   = 0.25
	ToleranceTenth     = 0.1
	ToleranceTwentieth = 0.05
	ToleranceFive      = 5.0
	ToleranceTen       = 10.0
)

// bandEntry associates an exact band value with its color.
type bandEntry struct {
	value float64
	color Color
}

var multiplierBands = []bandEntry{
	{MultiplierZero, Black},
	{MultiplierTen, Brown},
	{MultiplierHundred, Red},
	{MultiplierThousand, Orange},
	{MultiplierTenThousand, Yellow},
	{MultiplierHundredK, Green},
	{MultiplierMillion, Blue},
	{MultiplierTenMillion, Violet},
	{MultiplierHundredM, Gray},
	{MultiplierBillion, White},
	{MultiplierTenth, Gold},
}

var toleranceBands = []bandEntry{
	{ToleranceOne, Brown},
	{ToleranceTwo, Red},
	{ToleranceHalf, Green},
	{ToleranceQuarter, Blue},
	{ToleranceTenth, Violet},
	{ToleranceTwentieth, Gray},
	{ToleranceFive, Gold},
	{ToleranceTen, Silver},
}

// MultiplierColor returns the band color for a multiplier, or Silver when the
// value is not exactly one of the Multiplier constants.
func MultiplierColor(multiplier float64) Color {
	return lookupBand(multiplierBands, multiplier, Silver)
}

// ToleranceColor returns the band color for a tolerance percentage, or None when
// the value is not exactly one of the Tolerance constants.
func ToleranceColor(tolerance float64) Color {
	return lookupBand(toleranceBands, tolerance, None)
}

// lookupBand compares with exact float equality; computed values that are off by
// one ulp fall through to the fallback.
func lookupBand(entries []bandEntry, value float64, fallback Color) Color {
	for _, e := range entries {
		if e.value == value {
			return e.color
		}
	}
	return fallback
}

// Bands holds the four band colors of a resistor, in reading order.
type Bands struct {
	First      Color `json:"first" yaml:"first"`
	Second     Color `json:"second" yaml:"second"`
	Multiplier Color `json:"multiplier" yaml:"multiplier"`
	Tolerance  Color `json:"tolerance" yaml:"tolerance"`
}

// Slice returns the colors in reading order.
func (b Bands) Slice() []Color {
	return []Color{b.First, b.Second, b.Multiplier, b.Tolerance}
}
