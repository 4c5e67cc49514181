package report

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	openings "Facade/internal/calc/openings"
)

func TestFormatterNumber(t *testing.T) {
	tests := []struct {
		locale string
		v      float64
		want   string
	}{
		{"en-CA", 89.09498, "89.09"},
		{"fr-CA", 89.09498, "89,09"},
		{"en-CA", 36, "36.00"},
		{"not a locale", 4.5, "4,50"},
	}
	for _, tt := range tests {
		if got := NewFormatter(tt.locale).Number(tt.v); got != tt.want {
			t.Errorf("Number(%s, %v) = %q, want %q", tt.locale, tt.v, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	openingsM2 := 157.34
	in := Input{
		Input: openings.Input{
			WidthM: 26.551, HeightM: 10.830, DistanceM: 17.48,
			Group: "A", Division: 2, AreaM2: 287.55, OpeningsM2: &openingsM2,
		},
		Project: "Gymnase",
		Author:  "Bureau d'études",
		Notes:   "Compartiment A, façade nord.",
	}
	res, err := openings.Calculate(in.Input)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Render(&buf, in, res, NewFormatter("fr-CA"), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output is not a PDF: %q", buf.Bytes()[:8])
	}
}

func TestHandler(t *testing.T) {
	h := &Handler{Locale: "fr-CA"}
	body := `{"width_m": 10, "height_m": 5, "distance_m": 3, "group": "A", "sprinklered": true, "project": "Test"}`
	rec := httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/api/openings/report", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}

	rec = httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/api/openings/report", strings.NewReader(`{"width_m": 10, "height_m": 5, "group": "W"}`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad group status = %d, want 400", rec.Code)
	}
}
