package report

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	openings "Facade/internal/calc/openings"
)

type Handler struct {
	Store  *openings.Store
	Locale string
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	store := h.Store
	if store == nil {
		store = openings.DefaultStore()
	}
	res, err := store.Calculate(input.Input)
	if err != nil {
		openings.WriteError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := Render(&buf, input, res, NewFormatter(h.Locale), time.Now()); err != nil {
		log.Printf("report: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"openings.pdf\"")
	w.Write(buf.Bytes())
}
