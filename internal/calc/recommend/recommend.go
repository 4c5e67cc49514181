package recommend

import (
	"fmt"

	openings "Facade/internal/calc/openings"
)

type Input struct {
	// Facade.DistanceM and Facade.OpeningsM2 are ignored.
	Facade     openings.Input `json:"facade"`
	OpeningsM2 float64        `json:"openings_m2"`
}

type Result struct {
	RequiredDistanceM float64            `json:"required_distance_m"`
	RequiredPercent   float64            `json:"required_percent"`
	Table             openings.TableCode `json:"table"`
	Category          string             `json:"category,omitempty"`
	Notes             string             `json:"notes"`
}

const (
	// resolution of the returned distance, in metres
	resolution = 1e-4
	// every table reaches 100 % well before this distance
	maxDistanceM = 1000.0
)

// LimitingDistance finds the smallest limiting distance at which the facade
// may carry OpeningsM2 of unprotected openings. The maximum percentage never
// decreases with distance, so the answer is found by bisection.
func LimitingDistance(s *openings.Store, in Input) (Result, error) {
	facade := in.Facade
	facade.OpeningsM2 = nil
	facade.DistanceM = 0
	base, err := s.Calculate(facade)
	if err != nil {
		return Result{}, err
	}
	required, err := openings.OpeningPercent(base.AreaM2, in.OpeningsM2)
	if err != nil {
		return Result{}, err
	}
	if required > 100 {
		return Result{}, fmt.Errorf("%w: %g m² of openings on a %g m² facade", openings.ErrInvalidGeometry, in.OpeningsM2, base.AreaM2)
	}

	res := Result{
		RequiredPercent: required,
		Table:           base.Table,
		Category:        base.Category,
		Notes:           base.Notes,
	}
	if base.MaxPercent >= required {
		return res, nil
	}

	percentAt := func(d float64) (float64, error) {
		f := facade
		f.DistanceM = d
		r, err := s.Calculate(f)
		return r.MaxPercent, err
	}

	lo, hi := 0.0, 1.0
	for {
		p, err := percentAt(hi)
		if err != nil {
			return Result{}, err
		}
		if p >= required {
			break
		}
		lo, hi = hi, hi*2
		if hi > maxDistanceM {
			return Result{}, fmt.Errorf("table %s never reaches %.2f%%", base.Table, required)
		}
	}
	for hi-lo > resolution {
		mid := (lo + hi) / 2
		p, err := percentAt(mid)
		if err != nil {
			return Result{}, err
		}
		if p >= required {
			hi = mid
		} else {
			lo = mid
		}
	}
	res.RequiredDistanceM = hi
	return res, nil
}
