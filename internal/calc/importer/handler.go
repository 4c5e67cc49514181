package importer

import (
	"encoding/json"
	"log"
	"net/http"

	batch "Facade/internal/calc/batch"
	openings "Facade/internal/calc/openings"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct {
	Store *openings.Store
}

type ImportResult struct {
	Count   int          `json:"count"`
	Batch   batch.Result `json:"batch"`
	Skipped []RowError   `json:"skipped,omitempty"`
}

func (h *Handler) Facades(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	inputs, skipped, err := ReadFacades(file)
	if err != nil {
		log.Printf("import: %v", err)
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	store := h.Store
	if store == nil {
		store = openings.DefaultStore()
	}
	res, err := batch.Calculate(store, batch.Input{Items: inputs})
	if err != nil {
		http.Error(w, "No valid rows", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(inputs), Batch: res, Skipped: skipped})
}
