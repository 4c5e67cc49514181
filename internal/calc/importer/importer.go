package importer

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	openings "Facade/internal/calc/openings"
	"github.com/xuri/excelize/v2"
)

// RowError reports a spreadsheet row that could not be read. Row is 1-based
// as shown by spreadsheet software.
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ReadFacades reads facades from the first sheet of an xlsx workbook. The
// first row is a header; columns are
// width, height, distance, group, division, sprinklered, area, openings
// with the last two optional.
func ReadFacades(r io.Reader) ([]openings.Input, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	// raw values keep the decimals a cell number format would hide
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	var inputs []openings.Input
	var skipped []RowError
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		in, err := parseFacadeRow(row)
		if err != nil {
			skipped = append(skipped, RowError{Row: i + 1, Error: err.Error()})
			continue
		}
		inputs = append(inputs, in)
	}
	return inputs, skipped, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseFacadeRow(row []string) (openings.Input, error) {
	if len(row) < 6 {
		return openings.Input{}, fmt.Errorf("expected at least 6 columns, got %d", len(row))
	}
	width, err := toFloat(row[0])
	if err != nil {
		return openings.Input{}, fmt.Errorf("width: %w", err)
	}
	height, err := toFloat(row[1])
	if err != nil {
		return openings.Input{}, fmt.Errorf("height: %w", err)
	}
	distance, err := toFloat(row[2])
	if err != nil {
		return openings.Input{}, fmt.Errorf("distance: %w", err)
	}
	division := 0
	if s := strings.TrimSpace(row[4]); s != "" {
		division, err = strconv.Atoi(s)
		if err != nil {
			return openings.Input{}, fmt.Errorf("division: %w", err)
		}
	}
	sprinklered, err := toBool(row[5])
	if err != nil {
		return openings.Input{}, fmt.Errorf("sprinklered: %w", err)
	}

	in := openings.Input{
		WidthM:      width,
		HeightM:     height,
		DistanceM:   distance,
		Group:       strings.TrimSpace(row[3]),
		Division:    division,
		Sprinklered: sprinklered,
	}
	if len(row) > 6 && strings.TrimSpace(row[6]) != "" {
		if in.AreaM2, err = toFloat(row[6]); err != nil {
			return openings.Input{}, fmt.Errorf("area: %w", err)
		}
	}
	if len(row) > 7 && strings.TrimSpace(row[7]) != "" {
		o, err := toFloat(row[7])
		if err != nil {
			return openings.Input{}, fmt.Errorf("openings: %w", err)
		}
		in.OpeningsM2 = &o
	}
	return in, nil
}

// toFloat accepts a decimal comma. NaN and infinities are rejected.
func toFloat(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

func toBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "oui", "o", "x":
		return true, nil
	case "0", "false", "no", "n", "non", "":
		return false, nil
	}
	return false, fmt.Errorf("unrecognised value %q", s)
}
