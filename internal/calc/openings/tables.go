package openings

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/tables.yaml
var tablesYAML []byte

// Point is one tabulated (limiting distance, max percent) pair.
type Point struct {
	Distance float64 `json:"distance_m"`
	Percent  float64 `json:"percent"`
}

// Row holds the points tabulated for one exposing building face area,
// sorted by distance.
type Row struct {
	Area   float64 `json:"area_m2"`
	Points []Point `json:"points"`
}

func (r Row) Distances() []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.Distance
	}
	return out
}

// Table is a reference table. Tables D and E keep their rows under
// CategoryNone.
type Table struct {
	Code  TableCode
	Title string
	rows  map[Category][]Row
}

// Rows returns the rows for a category, sorted by area. The category is
// ignored for tables without aspect-ratio columns.
func (t *Table) Rows(cat Category) ([]Row, error) {
	if !t.Code.Categorized() {
		cat = CategoryNone
	}
	rows, ok := t.rows[cat]
	if !ok || len(rows) == 0 {
		return nil, fmt.Errorf("%w: table %s has no rows for category %q", ErrMalformedTable, t.Code, cat)
	}
	return rows, nil
}

// Areas returns the area breakpoints of a category, ascending.
func (t *Table) Areas(cat Category) ([]float64, error) {
	rows, err := t.Rows(cat)
	if err != nil {
		return nil, err
	}
	return rowAreas(rows), nil
}

func rowAreas(rows []Row) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.Area
	}
	return out
}

// Store holds the four reference tables. It is read-only once loaded and
// safe for concurrent use.
type Store struct {
	tables map[TableCode]*Table
}

func (s *Store) Table(code TableCode) (*Table, error) {
	t, ok := s.tables[code]
	if !ok {
		return nil, fmt.Errorf("%w: table %q", ErrUnknownSelector, code)
	}
	return t, nil
}

var defaultStore = mustLoad(tablesYAML)

// DefaultStore returns the store built from the embedded NBC tables.
func DefaultStore() *Store {
	return defaultStore
}

func mustLoad(data []byte) *Store {
	s, err := ParseStore(data)
	if err != nil {
		panic(err)
	}
	return s
}

type tablesDoc struct {
	Tables map[TableCode]tableDoc `yaml:"tables"`
}

type tableDoc struct {
	Title      string                          `yaml:"title"`
	Categories map[Category]map[float64]rowDoc `yaml:"categories"`
	Rows       map[float64]rowDoc              `yaml:"rows"`
}

// distance -> percent
type rowDoc map[float64]float64

func LoadStore(r io.Reader) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading tables: %w", err)
	}
	return ParseStore(data)
}

func LoadStoreFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tables file: %w", err)
	}
	return ParseStore(data)
}

// ParseStore decodes the YAML tables document and checks every table
// invariant. All four table codes must be present.
func ParseStore(data []byte) (*Store, error) {
	var doc tablesDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing tables YAML: %v", ErrMalformedTable, err)
	}

	s := &Store{tables: make(map[TableCode]*Table, len(TableCodes))}
	for _, code := range TableCodes {
		td, ok := doc.Tables[code]
		if !ok {
			return nil, fmt.Errorf("%w: table %s missing", ErrMalformedTable, code)
		}
		t, err := buildTable(code, td)
		if err != nil {
			return nil, err
		}
		s.tables[code] = t
	}
	return s, nil
}

func buildTable(code TableCode, td tableDoc) (*Table, error) {
	t := &Table{Code: code, Title: td.Title, rows: map[Category][]Row{}}

	if !code.Categorized() {
		if len(td.Categories) > 0 {
			return nil, fmt.Errorf("%w: table %s has no aspect-ratio columns", ErrMalformedTable, code)
		}
		rows, err := buildRows(code, CategoryNone, td.Rows)
		if err != nil {
			return nil, err
		}
		t.rows[CategoryNone] = rows
		return t, nil
	}

	if len(td.Rows) > 0 {
		return nil, fmt.Errorf("%w: table %s rows must be grouped by category", ErrMalformedTable, code)
	}
	var areas []float64
	for _, cat := range Categories {
		rows, err := buildRows(code, cat, td.Categories[cat])
		if err != nil {
			return nil, err
		}
		got := rowAreas(rows)
		if areas == nil {
			areas = got
		} else if !slices.Equal(areas, got) {
			return nil, fmt.Errorf("%w: table %s category %s area breakpoints differ", ErrMalformedTable, code, cat)
		}
		t.rows[cat] = rows
	}
	for cat := range td.Categories {
		if !cat.Valid() {
			return nil, fmt.Errorf("%w: table %s unknown category %q", ErrMalformedTable, code, cat)
		}
	}
	return t, nil
}

func buildRows(code TableCode, cat Category, docs map[float64]rowDoc) ([]Row, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: table %s category %q has no rows", ErrMalformedTable, code, cat)
	}
	rows := make([]Row, 0, len(docs))
	for area, rd := range docs {
		if area <= 0 {
			return nil, fmt.Errorf("%w: table %s area %g", ErrMalformedTable, code, area)
		}
		row, err := buildRow(area, rd)
		if err != nil {
			return nil, fmt.Errorf("table %s category %q: %w", code, cat, err)
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Area < rows[j].Area })
	return rows, nil
}

// buildRow sorts the points by distance and enforces monotonic saturation:
// percentages never decrease and the last one is exactly 100.
func buildRow(area float64, rd rowDoc) (Row, error) {
	if len(rd) == 0 {
		return Row{}, fmt.Errorf("%w: area %g has no distances", ErrMalformedTable, area)
	}
	row := Row{Area: area, Points: make([]Point, 0, len(rd))}
	for d, p := range rd {
		if d < 0 || p < 0 || p > 100 {
			return Row{}, fmt.Errorf("%w: area %g point (%g, %g)", ErrMalformedTable, area, d, p)
		}
		row.Points = append(row.Points, Point{Distance: d, Percent: p})
	}
	sort.Slice(row.Points, func(i, j int) bool { return row.Points[i].Distance < row.Points[j].Distance })

	for i := 1; i < len(row.Points); i++ {
		if row.Points[i].Percent < row.Points[i-1].Percent {
			return Row{}, fmt.Errorf("%w: area %g percent decreases at %g m", ErrMalformedTable, area, row.Points[i].Distance)
		}
	}
	if last := row.Points[len(row.Points)-1]; last.Percent != 100 {
		return Row{}, fmt.Errorf("%w: area %g does not reach 100%% (ends at %g)", ErrMalformedTable, area, last.Percent)
	}
	return row, nil
}
