package resistor

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/alphonsa-01/resistors/internal/domain/shared/random"
	"github.com/shopspring/decimal"
)

// ResistanceUnit is the unit label printed after a resistance value.
const ResistanceUnit = "Ohm"

// Reading is one observation of a resistor: a sampled actual resistance together
// with the band colors.
type Reading struct {
	Resistor         Resistor
	ActualResistance float64
	Bands            Bands
}

// Read samples the resistor with the process-wide random source.
func (r Resistor) Read() Reading {
	return r.ReadFrom(random.Default())
}

// ReadFrom samples the resistor with src.
func (r Resistor) ReadFrom(src random.Source) Reading {
	return Reading{
		Resistor:         r,
		ActualResistance: r.ActualResistanceFrom(src),
		Bands:            r.Bands(),
	}
}

// FormattedResistance returns the actual resistance with exactly two decimals.
func (rd Reading) FormattedResistance() string {
	return FormatResistance(rd.ActualResistance)
}

// bandLabels are the text report labels, in the order of Bands.Slice.
var bandLabels = [...]string{"First Band", "Second Band", "Multiplier", "Tolerance"}

// WriteText writes the five-line text report.
func (rd Reading) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Actual resistance- %s %s\n", rd.FormattedResistance(), ResistanceUnit); err != nil {
		return err
	}
	for i, color := range rd.Bands.Slice() {
		if _, err := fmt.Fprintf(w, "%s- %s\n", bandLabels[i], color); err != nil {
			return err
		}
	}
	return nil
}

// Print writes the text report for a fresh reading to w, or to standard output
// when w is nil. Write failures are ignored.
func (r Resistor) Print(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	_ = r.Read().WriteText(w)
}

// exactFloatExponent is small enough for NewFromFloatWithExponent to keep every
// binary digit of a float64.
const exactFloatExponent = -1074

// FormatResistance renders v in fixed-point notation with two decimals.
// Rounding applies to the exact binary value, half to even, so 1.005 (stored as
// 1.00499...) renders as "1.00".
func FormatResistance(v float64) string {
	// decimal cannot represent NaN or infinities
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return decimal.NewFromFloatWithExponent(v, exactFloatExponent).RoundBank(2).StringFixed(2)
}
