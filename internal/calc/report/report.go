package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	openings "Facade/internal/calc/openings"
	"github.com/phpdave11/gofpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type Input struct {
	openings.Input
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

// Formatter prints numbers for one locale.
type Formatter struct {
	p *message.Printer
}

// NewFormatter falls back to Canadian French for an unparsable tag.
func NewFormatter(locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.CanadianFrench
	}
	return Formatter{p: message.NewPrinter(tag)}
}

// Number formats v with two decimals. Non-breaking spaces used as group
// separators are printed as plain spaces, the PDF core fonts lack them.
func (f Formatter) Number(v float64) string {
	s := f.p.Sprint(number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	return strings.NewReplacer("\u00a0", " ", "\u202f", " ").Replace(s)
}

// Render writes a one-page result sheet for a calculated facade.
func Render(w io.Writer, in Input, res openings.Result, f Formatter, date time.Time) error {
	if in.Title == "" {
		in.Title = "Unprotected openings"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(in.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", in.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", in.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", date.Format("2006-01-02")))
	pdf.Ln(10)

	sprinklered := "no"
	if in.Sprinklered {
		sprinklered = "yes"
	}
	rows := [][2]string{
		{"Facade (L x H)", fmt.Sprintf("%s x %s m", f.Number(in.WidthM), f.Number(in.HeightM))},
		{"Exposing building face area", f.Number(res.AreaM2) + " m²"},
		{"Limiting distance", f.Number(in.DistanceM) + " m"},
		{"Occupancy", fmt.Sprintf("group %s, division %d", strings.ToUpper(in.Group), in.Division)},
		{"Sprinklered", sprinklered},
		{"Table", res.Notes},
	}
	if res.Category != "" {
		rows = append(rows, [2]string{"L/H ratio", fmt.Sprintf("%s (%s)", f.Number(res.AspectRatio), res.Category)})
	}
	rows = append(rows,
		[2]string{"Max. unprotected openings", f.Number(res.MaxPercent) + " %"},
		[2]string{"Max. unprotected opening area", f.Number(res.MaxOpeningsM2) + " m²"},
	)
	if res.Checked {
		verdict := "NOT CONFORMING"
		if res.OK {
			verdict = "CONFORMING"
		}
		rows = append(rows,
			[2]string{"Actual unprotected openings", f.Number(res.ActualPercent) + " %"},
			[2]string{"Verdict", verdict},
		)
	}

	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(75, 7, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, tr(row[1]), "1", 1, "L", false, 0, "")
	}

	if in.Notes != "" {
		pdf.Ln(6)
		pdf.MultiCell(0, 6, tr(in.Notes), "", "L", false)
	}
	return pdf.Output(w)
}
