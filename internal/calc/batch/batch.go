package batch

import (
	"fmt"

	openings "Facade/internal/calc/openings"
)

type Input struct {
	Items []openings.Input `json:"items"`
}

// Item is the outcome for one facade. Error is set instead of Result when the
// facade could not be evaluated.
type Item struct {
	Index  int              `json:"index"`
	Result *openings.Result `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

type Result struct {
	Results    []Item `json:"results"`
	Failed     int    `json:"failed"`
	NonConform int    `json:"non_conform"`
}

// Calculate evaluates every facade. A bad facade does not stop the batch.
func Calculate(s *openings.Store, in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]Item, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := s.Calculate(item)
		if err != nil {
			out.Failed++
			out.Results = append(out.Results, Item{Index: i, Error: err.Error()})
			continue
		}
		if res.Checked && !res.OK {
			out.NonConform++
		}
		out.Results = append(out.Results, Item{Index: i, Result: &res})
	}
	return out, nil
}
