package openings

import (
	"fmt"
	"sort"
)

// Bracket returns the adjacent breakpoints lo <= v <= hi of an ascending
// slice. Values outside the range clamp to the first or last breakpoint and
// an exact hit returns lo == hi == v. breakpoints must not be empty.
func Bracket(breakpoints []float64, v float64) (lo, hi float64) {
	i, j := bracketIndex(breakpoints, v)
	return breakpoints[i], breakpoints[j]
}

func bracketIndex(breakpoints []float64, v float64) (lo, hi int) {
	n := len(breakpoints)
	i := sort.SearchFloat64s(breakpoints, v)
	switch {
	case i < n && breakpoints[i] == v:
		return i, i
	case i == 0:
		return 0, 0
	case i == n:
		return n - 1, n - 1
	default:
		return i - 1, i
	}
}

// lerp interpolates linearly at x between (x0, y0) and (x1, y1).
// A degenerate interval yields y0.
func lerp(x, x0, x1, y0, y1 float64) float64 {
	if x0 == x1 {
		return y0
	}
	return y0 + (x-x0)/(x1-x0)*(y1-y0)
}

// along interpolates a row at a limiting distance, clamped to the row's
// tabulated range.
func (r Row) along(distance float64) (float64, error) {
	if len(r.Points) == 0 {
		return 0, fmt.Errorf("%w: area %g has no distances", ErrMalformedTable, r.Area)
	}
	i, j := bracketIndex(r.Distances(), distance)
	lo, hi := r.Points[i], r.Points[j]
	return lerp(distance, lo.Distance, hi.Distance, lo.Percent, hi.Percent), nil
}

// Interpolate returns the maximum percentage of unprotected openings for an
// exposing building face area and limiting distance. The area is bracketed
// between two rows, each row is interpolated along distance, and the two
// results are interpolated along area. Both axes clamp at the edges of the
// table; nothing is extrapolated. The category is ignored for tables D and E.
//
// area and distance must be non-negative.
func (t *Table) Interpolate(cat Category, area, distance float64) (float64, error) {
	rows, err := t.Rows(cat)
	if err != nil {
		return 0, err
	}
	i, j := bracketIndex(rowAreas(rows), area)
	lo, hi := rows[i], rows[j]

	pLo, err := lo.along(distance)
	if err != nil {
		return 0, fmt.Errorf("table %s: %w", t.Code, err)
	}
	pHi, err := hi.along(distance)
	if err != nil {
		return 0, fmt.Errorf("table %s: %w", t.Code, err)
	}
	return lerp(area, lo.Area, hi.Area, pLo, pHi), nil
}
