package resistor

// Color is the name of a resistor band color.
type Color string

// Band colors
const (
	Black  Color = "Black"
	Brown  Color = "Brown"
	Red    Color = "Red"
	Orange Color = "Orange"
	Yellow Color = "Yellow"
	Green  Color = "Green"
	Blue   Color = "Blue"
	Violet Color = "Violet"
	Gray   Color = "Gray"
	White  Color = "White"
	Gold   Color = "Gold"
	Silver Color = "Silver"

	// None marks a tolerance that has no band color.
	None Color = "None"
)

// String returns the color name.
func (c Color) String() string {
	return string(c)
}

// digitColors maps the significant digits 0-8. Any other digit is White.
var digitColors = [...]Color{
	Black,
	Brown,
	Red,
	Orange,
	Yellow,
	Green,
	Blue,
	Violet,
	Gray,
}

// DigitColor returns the band color encoding a significant digit.
// Digits outside 0-8 (including negative remainders) map to White.
func DigitColor(digit int) Color {
	if digit < 0 || digit >= len(digitColors) {
		return White
	}
	return digitColors[digit]
}
