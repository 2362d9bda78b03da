package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
)

var pdfColWidths = []float64{22, 24, 26, 26, 32, 28, 32}

// WritePDF renders the report document: a preamble with location, range
// description, generation timestamp and day count, then one table row per day.
func WritePDF(w io.Writer, days []models.DayRecord, location string, year int, generatedAt time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Historial de Clima - %s", location)), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Período consultado: año %d", year)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Generado: "+generatedAt.Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Días incluidos: %d", len(days))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(52, 152, 219)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range columnHeaders {
		pdf.CellFormat(pdfColWidths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	fill := false
	for _, d := range days {
		pdf.SetFillColor(240, 240, 240)
		for i, cell := range row(d) {
			pdf.CellFormat(pdfColWidths[i], 6, tr(cell), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
