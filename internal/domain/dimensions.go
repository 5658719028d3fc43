package domain

// Immutable physical envelope of a load, supplied per assessment.
// Linear dimensions are in feet, weight in pounds.
type LoadDimensions struct {
	HeightFt  float64
	WidthFt   float64
	LengthFt  float64
	WeightLbs int
}
