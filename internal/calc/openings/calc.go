package openings

import (
	"fmt"
)

type Input struct {
	WidthM      float64 `json:"width_m"`
	HeightM     float64 `json:"height_m"`
	DistanceM   float64 `json:"distance_m"`
	Group       string  `json:"group"`
	Division    int     `json:"division"`
	Sprinklered bool    `json:"sprinklered"`
	// AreaM2 is the exposing building face area; 0 means width x height.
	AreaM2 float64 `json:"area_m2"`
	// OpeningsM2 is the actual unprotected opening area, checked when set.
	OpeningsM2 *float64 `json:"openings_m2,omitempty"`
}

type Result struct {
	Table         TableCode `json:"table"`
	Category      string    `json:"category,omitempty"`
	AspectRatio   float64   `json:"aspect_ratio"`
	AreaM2        float64   `json:"area_m2"`
	MaxPercent    float64   `json:"max_percent"`
	MaxOpeningsM2 float64   `json:"max_openings_m2"`
	Checked       bool      `json:"checked"`
	ActualPercent float64   `json:"actual_percent,omitempty"`
	OK            bool      `json:"ok"`
	Notes         string    `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	return DefaultStore().Calculate(in)
}

// Calculate selects the reference table, interpolates the maximum percentage
// of unprotected openings and, when OpeningsM2 is set, checks conformity.
func (s *Store) Calculate(in Input) (Result, error) {
	if !finite(in.DistanceM, in.AreaM2) || in.DistanceM < 0 || in.AreaM2 < 0 {
		return Result{}, fmt.Errorf("%w: distance %g m, area %g m²", ErrInvalidGeometry, in.DistanceM, in.AreaM2)
	}
	ratio, err := AspectRatio(in.WidthM, in.HeightM)
	if err != nil {
		return Result{}, err
	}
	group, err := ParseGroup(in.Group)
	if err != nil {
		return Result{}, err
	}
	code, err := SelectTable(group, in.Division, in.Sprinklered)
	if err != nil {
		return Result{}, err
	}
	table, err := s.Table(code)
	if err != nil {
		return Result{}, err
	}

	area := in.AreaM2
	if area == 0 {
		area = in.WidthM * in.HeightM
	}

	res := Result{
		Table:       code,
		AspectRatio: ratio,
		AreaM2:      area,
		Notes:       table.Title,
	}
	cat := CategoryNone
	if code.Categorized() {
		cat, err = Classify(in.WidthM, in.HeightM)
		if err != nil {
			return Result{}, err
		}
		res.Category = cat.Label()
	}

	res.MaxPercent, err = table.Interpolate(cat, area, in.DistanceM)
	if err != nil {
		return Result{}, err
	}
	res.MaxOpeningsM2 = MaxAllowedArea(area, res.MaxPercent)

	if in.OpeningsM2 != nil {
		res.Checked = true
		res.ActualPercent, err = OpeningPercent(area, *in.OpeningsM2)
		if err != nil {
			return Result{}, err
		}
		res.OK, err = IsConformant(area, *in.OpeningsM2, res.MaxPercent)
		if err != nil {
			return Result{}, err
		}
	}
	return res, nil
}

// CalculatePercentage returns the maximum percentage of unprotected openings.
// A nil area is derived from width and height.
func CalculatePercentage(width, height, distance float64, group Group, division int, sprinklered bool, area *float64) (float64, error) {
	in := Input{
		WidthM:      width,
		HeightM:     height,
		DistanceM:   distance,
		Group:       string(group),
		Division:    division,
		Sprinklered: sprinklered,
	}
	if area != nil {
		if !finite(*area) || *area <= 0 {
			return 0, fmt.Errorf("%w: area %g m²", ErrInvalidGeometry, *area)
		}
		in.AreaM2 = *area
	}
	res, err := Calculate(in)
	if err != nil {
		return 0, err
	}
	return res.MaxPercent, nil
}
