// Package export renders a filtered day-record sequence into the three
// downloadable report formats.
package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
)

// filenamePrefix is the fixed first token of every report file name.
const filenamePrefix = "Clima"

// columnHeaders are the user-facing labels shared by all three formats.
var columnHeaders = []string{
	"Fecha",
	"Día",
	"Temp. Máx (°C)",
	"Temp. Mín (°C)",
	"Precipitación (mm)",
	"Viento (km/h)",
	"Condición",
}

// Filename builds Clima_<Location>_<YYYYMMDD>.<ext> from the generation date,
// not from the data's date range.
func Filename(location, ext string, generatedAt time.Time) string {
	return fmt.Sprintf("%s_%s_%s.%s", filenamePrefix, location, generatedAt.Format("20060102"), ext)
}

// row flattens a record into the shared column order.
func row(d models.DayRecord) []string {
	return []string{
		d.Date,
		d.Weekday,
		numOrND(d.TMax),
		numOrND(d.TMin),
		numOrND(d.PrecipMM),
		numOrND(d.WindKMH),
		d.Condition,
	}
}

func numOrND(v *float64) string {
	if v == nil {
		return "N/D"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}
