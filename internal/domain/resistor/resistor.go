// Package resistor models four-band resistors: the color code derived from a
// nominal value, multiplier and tolerance, and a simulated actual resistance
// sampled within the tolerance window.
//
// Every query is total. Values outside the color tables map to a fallback color
// (White, Silver or None) instead of producing an error.
package resistor

import (
	"github.com/alphonsa-01/resistors/internal/domain/shared/random"
)

const (
	// toleranceDivisor converts a tolerance percentage to a fraction.
	toleranceDivisor = 100.0
	// digitBase is used to extract the two significant digits.
	digitBase = 10
)

// Resistor is an immutable value object describing a four-band resistor.
// The zero value is a resistor with all fields set to zero.
type Resistor struct {
	nominalResistance float64
	multiplier        float64
	tolerance         float64
}

// New creates a Resistor. No validation is performed; any value is accepted and
// band lookups fall back for values outside the color tables.
func New(nominalResistance, multiplier, tolerance float64) Resistor {
	return Resistor{
		nominalResistance: nominalResistance,
		multiplier:        multiplier,
		tolerance:         tolerance,
	}
}

// NominalResistance returns the value encoded by the two digit bands.
func (r Resistor) NominalResistance() float64 {
	return r.nominalResistance
}

// Multiplier returns the power-of-ten scale factor.
func (r Resistor) Multiplier() float64 {
	return r.multiplier
}

// Tolerance returns the tolerance percentage.
func (r Resistor) Tolerance() float64 {
	return r.tolerance
}

// ToleranceWindow returns the lowest and highest nominal value allowed by the
// tolerance, before the multiplier is applied.
func (r Resistor) ToleranceWindow() (low, high float64) {
	deviation := r.nominalResistance * (r.tolerance / toleranceDivisor)
	return r.nominalResistance - deviation, r.nominalResistance + deviation
}

// ActualResistance samples a simulated real-world resistance using the
// process-wide random source. Successive calls may return different values.
func (r Resistor) ActualResistance() float64 {
	return r.ActualResistanceFrom(random.Default())
}

// ActualResistanceFrom samples a simulated resistance from src.
//
// The sample is low + k, where k is a whole number drawn uniformly from
// [0, int(high-low)], scaled by the multiplier. Achievable values are therefore
// spaced by the multiplier and always lie inside the tolerance window.
func (r Resistor) ActualResistanceFrom(src random.Source) float64 {
	low, high := r.ToleranceWindow()
	offset := src.Intn(int(high-low) + 1)
	return (low + float64(offset)) * r.multiplier
}

// FirstBand returns the color of the first significant digit, int(n/10) mod 10.
// Nominal values below 10 yield Black.
func (r Resistor) FirstBand() Color {
	return DigitColor(int(r.nominalResistance/digitBase) % digitBase)
}

// SecondBand returns the color of the second significant digit, int(n) mod 10.
func (r Resistor) SecondBand() Color {
	return DigitColor(int(r.nominalResistance) % digitBase)
}

// MultiplierBand returns the color of the multiplier band.
func (r Resistor) MultiplierBand() Color {
	return MultiplierColor(r.multiplier)
}

// ToleranceBand returns the color of the tolerance band.
func (r Resistor) ToleranceBand() Color {
	return ToleranceColor(r.tolerance)
}

// Bands returns all four band colors.
func (r Resistor) Bands() Bands {
	return Bands{
		First:      r.FirstBand(),
		Second:     r.SecondBand(),
		Multiplier: r.MultiplierBand(),
		Tolerance:  r.ToleranceBand(),
	}
}

// DemoCatalog returns the fixed set of resistors used by the demonstration report.
func DemoCatalog() []Resistor {
	return []Resistor{
		New(62.0, MultiplierHundred, ToleranceFive),
		New(48.0, MultiplierTenth, ToleranceHalf),
		New(12.0, MultiplierThousand, ToleranceTwentieth),
		New(75.0, MultiplierTen, ToleranceTwo),
		New(93.0, MultiplierMillion, ToleranceTwentieth),
		New(50.0, MultiplierTenThousand, ToleranceTen),
		New(24.0, MultiplierTen, ToleranceQuarter),
		New(27.0, MultiplierTenth, ToleranceOne),
		New(83.0, MultiplierHundred, ToleranceFive),
		New(35.0, MultiplierTen, ToleranceTenth),
	}
}
