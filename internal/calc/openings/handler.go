package openings

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

type Handler struct {
	Store *Store
}

func (h *Handler) store() *Store {
	if h.Store == nil {
		return DefaultStore()
	}
	return h.Store
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := h.store().Calculate(input)
	if err != nil {
		WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

type tableInfo struct {
	Code       TableCode            `json:"code"`
	Title      string               `json:"title"`
	Categories map[string][]float64 `json:"areas"`
}

// Tables lists the reference tables and their area breakpoints.
func (h *Handler) Tables(w http.ResponseWriter, r *http.Request) {
	out := make([]tableInfo, 0, len(TableCodes))
	for _, code := range TableCodes {
		t, err := h.store().Table(code)
		if err != nil {
			WriteError(w, err)
			return
		}
		info := tableInfo{Code: code, Title: t.Title, Categories: map[string][]float64{}}
		cats := []Category{CategoryNone}
		if code.Categorized() {
			cats = Categories
		}
		for _, c := range cats {
			areas, err := t.Areas(c)
			if err != nil {
				WriteError(w, err)
				return
			}
			key := c.Label()
			if key == "" {
				key = "all"
			}
			info.Categories[key] = areas
		}
		out = append(out, info)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// WriteError maps calculation errors to HTTP status codes. Caller mistakes
// are 400; broken reference data is 500.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidGeometry),
		errors.Is(err, ErrUnknownSelector),
		errors.Is(err, ErrDivisionByZero):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("calculation error: %v", err)
		http.Error(w, "Calculation error", http.StatusInternalServerError)
	}
}
