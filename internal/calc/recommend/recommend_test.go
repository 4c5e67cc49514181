package recommend

import (
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openings "Facade/internal/calc/openings"
)

func TestLimitingDistance(t *testing.T) {
	s := openings.DefaultStore()
	facade := openings.Input{WidthM: 10, HeightM: 5, Group: "A", Sprinklered: true}

	// table D, 50 m²: 36 % at 3 m, 56 % at 4 m; 46 % needs 3.5 m
	res, err := LimitingDistance(s, Input{Facade: facade, OpeningsM2: 23})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.RequiredDistanceM-3.5) > 1e-3 {
		t.Errorf("distance = %v, want 3.5", res.RequiredDistanceM)
	}
	if res.Table != openings.TableD || math.Abs(res.RequiredPercent-46) > 1e-9 {
		t.Errorf("table = %s percent = %v", res.Table, res.RequiredPercent)
	}

	// the recommended distance must be enough
	facade.DistanceM = res.RequiredDistanceM
	o := 23.0
	facade.OpeningsM2 = &o
	check, err := s.Calculate(facade)
	if err != nil {
		t.Fatal(err)
	}
	if !check.OK {
		t.Errorf("facade at recommended distance not conformant: %+v", check)
	}
}

func TestLimitingDistanceFullyGlazed(t *testing.T) {
	// table B narrow, 287.55 m²: the 250 row saturates at 18 m but the
	// 350 row reads 99 % at 20 m and 100 % only at 25 m
	res, err := LimitingDistance(openings.DefaultStore(), Input{
		Facade:     openings.Input{WidthM: 26.551, HeightM: 10.830, AreaM2: 287.55, Group: "A", Division: 2},
		OpeningsM2: 287.55,
	})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.RequiredDistanceM-25) > 1e-3 {
		t.Errorf("distance = %v, want 25", res.RequiredDistanceM)
	}
}

func TestLimitingDistanceNoOpenings(t *testing.T) {
	res, err := LimitingDistance(openings.DefaultStore(), Input{
		Facade: openings.Input{WidthM: 10, HeightM: 5, Group: "E"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.RequiredDistanceM != 0 {
		t.Errorf("distance = %v, want 0", res.RequiredDistanceM)
	}
}

func TestLimitingDistanceErrors(t *testing.T) {
	s := openings.DefaultStore()
	facade := openings.Input{WidthM: 10, HeightM: 5, Group: "A"}
	if _, err := LimitingDistance(s, Input{Facade: facade, OpeningsM2: 60}); !errors.Is(err, openings.ErrInvalidGeometry) {
		t.Errorf("openings > facade err = %v", err)
	}
	if _, err := LimitingDistance(s, Input{Facade: facade, OpeningsM2: -1}); !errors.Is(err, openings.ErrInvalidGeometry) {
		t.Errorf("negative openings err = %v", err)
	}
	facade.Group = "K"
	if _, err := LimitingDistance(s, Input{Facade: facade, OpeningsM2: 1}); !errors.Is(err, openings.ErrUnknownSelector) {
		t.Errorf("bad group err = %v", err)
	}
}

func TestHandler(t *testing.T) {
	body := `{"facade": {"width_m": 10, "height_m": 5, "group": "A", "sprinklered": true}, "openings_m2": 23}`
	rec := httptest.NewRecorder()
	(&Handler{}).Distance(rec, httptest.NewRequest(http.MethodPost, "/api/openings/recommend", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"table":"D"`) {
		t.Errorf("body = %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	(&Handler{}).Distance(rec, httptest.NewRequest(http.MethodPost, "/api/openings/recommend", strings.NewReader(`{"facade": {"width_m": 10, "height_m": 5, "group": "A"}, "openings_m2": 80}`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
