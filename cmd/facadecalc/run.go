package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	openings "Facade/internal/calc/openings"
)

type calcFlags struct {
	width, height, distance float64
	group                   string
	division                int
	sprinklered             bool
	area                    float64
}

func (c calcFlags) input() openings.Input {
	return openings.Input{
		WidthM:      c.width,
		HeightM:     c.height,
		DistanceM:   c.distance,
		Group:       c.group,
		Division:    c.division,
		Sprinklered: c.sprinklered,
		AreaM2:      c.area,
	}
}

func loadStore(path string) (*openings.Store, error) {
	if path == "" {
		return openings.DefaultStore(), nil
	}
	return openings.LoadStoreFile(path)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printResult(w io.Writer, res openings.Result) {
	fmt.Fprintf(w, "%s\n", res.Notes)
	if res.Category != "" {
		fmt.Fprintf(w, "  L/H ratio:      %.3f (%s)\n", res.AspectRatio, res.Category)
	}
	fmt.Fprintf(w, "  Face area:      %.2f m²\n", res.AreaM2)
	fmt.Fprintf(w, "  Max openings:   %.2f %% (%.2f m²)\n", res.MaxPercent, res.MaxOpeningsM2)
	if res.Checked {
		verdict := "NOT CONFORMING"
		if res.OK {
			verdict = "CONFORMING"
		}
		fmt.Fprintf(w, "  Actual:         %.2f %%\n", res.ActualPercent)
		fmt.Fprintf(w, "Result: %s\n", verdict)
	}
}

func runCheck(w io.Writer, total, openingsM2, maxPercent float64) error {
	pct, err := openings.OpeningPercent(total, openingsM2)
	if err != nil {
		return err
	}
	ok, err := openings.IsConformant(total, openingsM2, maxPercent)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Openings: %.2f %% of %.2f m² (max %.2f %%, %.2f m²)\n",
		pct, total, maxPercent, openings.MaxAllowedArea(total, maxPercent))
	if ok {
		fmt.Fprintln(w, "Result: CONFORMING")
	} else {
		fmt.Fprintln(w, "Result: NOT CONFORMING")
	}
	return nil
}

func listTables(w io.Writer, store *openings.Store) error {
	for _, code := range openings.TableCodes {
		t, err := store.Table(code)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s  %s\n", code, t.Title)
	}
	return nil
}

func printTable(w io.Writer, store *openings.Store, code string) error {
	t, err := store.Table(openings.TableCode(strings.ToUpper(strings.TrimSpace(code))))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, t.Title)

	cats := []openings.Category{openings.CategoryNone}
	if t.Code.Categorized() {
		cats = openings.Categories
	}
	for _, cat := range cats {
		rows, err := t.Rows(cat)
		if err != nil {
			return err
		}
		if cat != openings.CategoryNone {
			fmt.Fprintf(w, "\nL/H %s\n", cat.Label())
		}
		for _, row := range rows {
			points := make([]string, len(row.Points))
			for i, p := range row.Points {
				points[i] = fmt.Sprintf("%g:%g", p.Distance, p.Percent)
			}
			fmt.Fprintf(w, "  %6g m²  %s\n", row.Area, strings.Join(points, " "))
		}
	}
	return nil
}
