package export

import (
	"encoding/csv"
	"io"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
)

// utf8BOM precedes the semicolon variant so locale-sensitive spreadsheet
// imports pick the right encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVVariant selects delimiter and encoding of the delimited-text report.
type CSVVariant int

const (
	// CSVComma is plain comma-separated UTF-8.
	CSVComma CSVVariant = iota
	// CSVSemicolonBOM is semicolon-separated UTF-8 with a byte order mark.
	CSVSemicolonBOM
)

// WriteCSV streams the header row and one row per day to w.
func WriteCSV(w io.Writer, days []models.DayRecord, variant CSVVariant) error {
	if variant == CSVSemicolonBOM {
		if _, err := w.Write(utf8BOM); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(w)
	if variant == CSVSemicolonBOM {
		cw.Comma = ';'
	}

	if err := cw.Write(columnHeaders); err != nil {
		return err
	}
	for _, d := range days {
		if err := cw.Write(row(d)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
