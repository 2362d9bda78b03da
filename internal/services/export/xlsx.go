package export

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
)

const sheetName = "Historial"

// WriteXLSX renders the spreadsheet report: bold header row, one row per day,
// columns sized to their widest cell.
func WriteXLSX(w io.Writer, days []models.DayRecord, location string, year int) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	f.SetDocProps(&excelize.DocProperties{
		Title:   fmt.Sprintf("Historial de Clima - %s", location),
		Subject: fmt.Sprintf("Año %d", year),
	})

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"3498DB"}},
	})
	if err != nil {
		return err
	}

	widths := make([]int, len(columnHeaders))
	for col, h := range columnHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
		widths[col] = utf8.RuneCountInString(h)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(columnHeaders), 1)
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, d := range days {
		for col, cell := range row(d) {
			name, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheetName, name, cell); err != nil {
				return err
			}
			if n := utf8.RuneCountInString(cell); n > widths[col] {
				widths[col] = n
			}
		}
	}

	for col, width := range widths {
		name, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(sheetName, name, name, float64(width)+2); err != nil {
			return err
		}
	}

	return f.Write(w)
}
