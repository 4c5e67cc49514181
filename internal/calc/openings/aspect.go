package openings

import (
	"fmt"
	"math"
)

// Category is the facade length-to-height ratio bucket used by tables B and C.
type Category string

const (
	// CategoryNone keys the rows of tables without aspect-ratio columns (D, E).
	CategoryNone Category = ""
	Narrow       Category = "narrow" // < 3:1
	Mid          Category = "mid"    // 3:1 to 10:1
	Wide         Category = "wide"   // > 10:1
)

var Categories = []Category{Narrow, Mid, Wide}

// Label returns the column heading as printed in the code tables.
func (c Category) Label() string {
	switch c {
	case Narrow:
		return "< 3:1"
	case Mid:
		return "3:1 à 10:1"
	case Wide:
		return "> 10:1"
	}
	return ""
}

func (c Category) Valid() bool {
	return c == Narrow || c == Mid || c == Wide
}

// AspectRatio returns width / height.
func AspectRatio(width, height float64) (float64, error) {
	if !finite(width, height) || height <= 0 || width <= 0 {
		return 0, fmt.Errorf("%w: facade %gx%g m", ErrInvalidGeometry, width, height)
	}
	return width / height, nil
}

// Classify buckets the facade L/H ratio. Both bounds of the mid range are
// inclusive.
func Classify(width, height float64) (Category, error) {
	ratio, err := AspectRatio(width, height)
	if err != nil {
		return CategoryNone, err
	}
	switch {
	case ratio < 3:
		return Narrow, nil
	case ratio <= 10:
		return Mid, nil
	default:
		return Wide, nil
	}
}

// DetermineAspectRatioCategory returns the printed label of the facade category.
func DetermineAspectRatioCategory(width, height float64) (string, error) {
	c, err := Classify(width, height)
	if err != nil {
		return "", err
	}
	return c.Label(), nil
}

// finite reports whether every value is a real number.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
