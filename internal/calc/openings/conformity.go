package openings

import (
	"fmt"
	"math"
)

// tolerance absorbs rounding in percent -> area -> percent round trips so
// an opening area of exactly MaxAllowedArea stays conformant.
const tolerance = 1e-9

// OpeningPercent returns openingArea as a percentage of totalArea.
func OpeningPercent(totalArea, openingArea float64) (float64, error) {
	if totalArea == 0 {
		return 0, fmt.Errorf("%w: total facade area is zero", ErrDivisionByZero)
	}
	if !finite(totalArea, openingArea) || totalArea < 0 || openingArea < 0 {
		return 0, fmt.Errorf("%w: facade %g m², openings %g m²", ErrInvalidGeometry, totalArea, openingArea)
	}
	return openingArea / totalArea * 100, nil
}

// IsConformant reports whether the unprotected openings stay within the
// maximum percentage. Equality is conformant.
func IsConformant(totalArea, openingArea, maxPercent float64) (bool, error) {
	pct, err := OpeningPercent(totalArea, openingArea)
	if err != nil {
		return false, err
	}
	return pct <= maxPercent+tolerance*math.Max(1, math.Abs(maxPercent)), nil
}

// MaxAllowedArea is the largest unprotected opening area permitted on the facade.
func MaxAllowedArea(totalArea, maxPercent float64) float64 {
	return totalArea * maxPercent / 100
}
