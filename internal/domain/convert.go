package domain

const (
	lbToKg = 0.453592
	inToCm = 2.54
)

// PoundsToKilograms converts a weight in pounds to kilograms.
func PoundsToKilograms(lbs float64) float64 {
	return lbs * lbToKg
}

// InchesToCentimeters converts a height in inches to centimeters.
func InchesToCentimeters(in float64) float64 {
	return in * inToCm
}
