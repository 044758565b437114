package resistor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitColor(t *testing.T) {
	expected := []Color{Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Gray, White}
	for digit, color := range expected {
		assert.Equal(t, color, DigitColor(digit), "digit %d", digit)
	}

	assert.Equal(t, White, DigitColor(10))
	assert.Equal(t, White, DigitColor(-1))
}

func TestMultiplierColor(t *testing.T) {
	tests := []struct {
		name       string
		multiplier float64
		expected   Color
	}{
		{"zero", MultiplierZero, Black},
		{"ten", MultiplierTen, Brown},
		{"hundred", MultiplierHundred, Red},
		{"thousand", MultiplierThousand, Orange},
		{"ten thousand", MultiplierTenThousand, Yellow},
		{"hundred thousand", MultiplierHundredK, Green},
		{"million", MultiplierMillion, Blue},
		{"ten million", MultiplierTenMillion, Violet},
		{"hundred million", MultiplierHundredM, Gray},
		{"billion", MultiplierBillion, White},
		{"tenth", MultiplierTenth, Gold},
		{"one is not in the table", 1, Silver},
		{"pi", 3.14, Silver},
		{"negative", -10, Silver},
		{"nan", math.NaN(), Silver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MultiplierColor(tt.multiplier))
		})
	}
}

func TestMultiplierColor_ExactMatchOnly(t *testing.T) {
	assert.Equal(t, Orange, MultiplierColor(math.Pow(10, 3)))
	assert.Equal(t, Silver, MultiplierColor(math.Nextafter(MultiplierTenth, 1)))
	assert.Equal(t, Silver, MultiplierColor(math.Nextafter(MultiplierThousand, 0)))
}

func TestToleranceColor(t *testing.T) {
	tests := []struct {
		name      string
		tolerance float64
		expected  Color
	}{
		{"one", ToleranceOne, Brown},
		{"two", ToleranceTwo, Red},
		{"half", ToleranceHalf, Green},
		{"quarter", ToleranceQuarter, Blue},
		{"tenth", ToleranceTenth, Violet},
		{"twentieth", ToleranceTwentieth, Gray},
		{"five", ToleranceFive, Gold},
		{"ten", ToleranceTen, Silver},
		{"seven", 7, None},
		{"twenty", 20, None},
		{"zero", 0, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToleranceColor(tt.tolerance))
		})
	}
}

func TestBands_Slice(t *testing.T) {
	b := Bands{First: Red, Second: Violet, Multiplier: Gold, Tolerance: Brown}
	assert.Equal(t, []Color{Red, Violet, Gold, Brown}, b.Slice())
}

func TestColor_String(t *testing.T) {
	assert.Equal(t, "Violet", Violet.String())
	assert.Equal(t, "None", None.String())
}
