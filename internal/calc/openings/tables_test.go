package openings

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const categorizedTable = `
    title: %s
    categories:
      narrow: {10: {0: 0, 2: 40, 3: 100}, 20: {0: 0, 2: 30, 4: 100}}
      mid: {10: {0: 0, 2: 45, 3: 100}, 20: {0: 0, 2: 35, 4: 100}}
      wide: {10: {0: 0, 2: 50, 3: 100}, 20: {0: 0, 2: 40, 4: 100}}
`

const plainTable = `
    title: %s
    rows:
      10: {0: 0, 1.5: 20, 3: 100}
      15: {0: 0, 1.5: 10, 4: 100}
`

func tablesDocument(tables map[string]string) string {
	var b strings.Builder
	b.WriteString("tables:\n")
	for _, code := range []string{"B", "C", "D", "E"} {
		body, ok := tables[code]
		if !ok {
			continue
		}
		b.WriteString("  " + code + ":")
		b.WriteString(strings.Replace(body, "%s", "table "+code, 1))
	}
	return b.String()
}

func validTables() map[string]string {
	return map[string]string{
		"B": categorizedTable,
		"C": categorizedTable,
		"D": plainTable,
		"E": plainTable,
	}
}

func TestParseStore(t *testing.T) {
	s, err := ParseStore([]byte(tablesDocument(validTables())))
	if err != nil {
		t.Fatalf("ParseStore failed: %v", err)
	}
	tbl, err := s.Table(TableD)
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Title != "table D" {
		t.Errorf("title = %q, want %q", tbl.Title, "table D")
	}
	got, err := tbl.Interpolate(CategoryNone, 12.5, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	if got != 15 {
		t.Errorf("D(12.5, 1.5) = %v, want 15", got)
	}

	b, _ := s.Table(TableB)
	rows, err := b.Rows(Wide)
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].Area != 10 || rows[1].Area != 20 {
		t.Errorf("rows not sorted by area: %v, %v", rows[0].Area, rows[1].Area)
	}
	if d := rows[1].Distances(); len(d) != 3 || d[0] != 0 || d[1] != 2 || d[2] != 4 {
		t.Errorf("distances = %v, want [0 2 4]", d)
	}
}

func TestParseStoreMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m map[string]string)
	}{
		{"missing table", func(m map[string]string) { delete(m, "E") }},
		{"decreasing percent", func(m map[string]string) {
			m["D"] = strings.Replace(plainTable, "{0: 0, 1.5: 20", "{0: 30, 1.5: 20", 1)
		}},
		{"percent above 100", func(m map[string]string) {
			m["E"] = strings.Replace(plainTable, "1.5: 10", "1.5: 110", 1)
		}},
		{"no saturation", func(m map[string]string) {
			m["D"] = strings.Replace(plainTable, "3: 100", "3: 90", 1)
		}},
		{"empty row", func(m map[string]string) {
			m["E"] = strings.Replace(plainTable, "15: {0: 0, 1.5: 10, 4: 100}", "15: {}", 1)
		}},
		{"missing category", func(m map[string]string) {
			m["C"] = strings.Replace(categorizedTable, "      wide: {10: {0: 0, 2: 50, 3: 100}, 20: {0: 0, 2: 40, 4: 100}}\n", "", 1)
		}},
		{"category areas differ", func(m map[string]string) {
			m["B"] = strings.Replace(categorizedTable, "wide: {10:", "wide: {12:", 1)
		}},
		{"unknown category", func(m map[string]string) {
			m["B"] = categorizedTable + "      huge: {10: {0: 0, 2: 100}}\n"
		}},
		{"categories on plain table", func(m map[string]string) { m["D"] = categorizedTable }},
		{"rows on categorized table", func(m map[string]string) { m["C"] = plainTable }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validTables()
			tt.mutate(m)
			_, err := ParseStore([]byte(tablesDocument(m)))
			if !errors.Is(err, ErrMalformedTable) {
				t.Errorf("err = %v, want ErrMalformedTable", err)
			}
		})
	}

	if _, err := ParseStore([]byte("tables: [")); !errors.Is(err, ErrMalformedTable) {
		t.Errorf("bad YAML err = %v, want ErrMalformedTable", err)
	}
}

func TestLoadStoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	if err := os.WriteFile(path, []byte(tablesDocument(validTables())), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStoreFile(path); err != nil {
		t.Fatalf("LoadStoreFile failed: %v", err)
	}
	if _, err := LoadStoreFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	s, err := LoadStore(bytes.NewReader(tablesYAML))
	if err != nil {
		t.Fatalf("LoadStore(embedded) failed: %v", err)
	}
	a, _ := s.Table(TableC)
	b, _ := DefaultStore().Table(TableC)
	x, _ := a.Interpolate(Narrow, 420, 12.3)
	y, _ := b.Interpolate(Narrow, 420, 12.3)
	if x != y {
		t.Errorf("reloaded store = %v, default store = %v", x, y)
	}
}
