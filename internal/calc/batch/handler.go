package batch

import (
	"encoding/json"
	"net/http"

	openings "Facade/internal/calc/openings"
)

type Handler struct {
	Store *openings.Store
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	store := h.Store
	if store == nil {
		store = openings.DefaultStore()
	}
	res, err := Calculate(store, input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
