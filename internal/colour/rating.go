package colour

// Rating is a WCAG compliance band for a contrast ratio.
type Rating string

const (
	RatingAAA     Rating = "AAA"
	RatingAA      Rating = "AA"
	RatingAALarge Rating = "AA-large"
	RatingFail    Rating = "Fail"
)

// Minimum ratios for each band. Boundaries are inclusive.
const (
	ThresholdAAA     = 7.0
	ThresholdAA      = 4.5
	ThresholdAALarge = 3.0
)

// Rate maps a contrast ratio to its compliance band.
func Rate(ratio float64) Rating {
	switch {
	case ratio >= ThresholdAAA:
		return RatingAAA
	case ratio >= ThresholdAA:
		return RatingAA
	case ratio >= ThresholdAALarge:
		return RatingAALarge
	default:
		return RatingFail
	}
}

// Meets reports whether r is at least as strong as minimum.
func (r Rating) Meets(minimum Rating) bool {
	return r.rank() >= minimum.rank()
}

// MinRatio returns the lowest ratio that earns r.
func (r Rating) MinRatio() float64 {
	switch r {
	case RatingAAA:
		return ThresholdAAA
	case RatingAA:
		return ThresholdAA
	case RatingAALarge:
		return ThresholdAALarge
	default:
		return 1
	}
}

// String returns the rating label.
func (r Rating) String() string {
	return string(r)
}

func (r Rating) rank() int {
	switch r {
	case RatingAAA:
		return 3
	case RatingAA:
		return 2
	case RatingAALarge:
		return 1
	default:
		return 0
	}
}
