package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
)

const dateLayout = "2006-01-02"

// dailyFields is the comma list of columns requested from the archive.
const dailyFields = "temperature_2m_max,temperature_2m_min,precipitation_sum,wind_speed_10m_max,weathercode"

// cloudPlaceholder: the daily archive carries no cloud column, the UI shows a
// fixed value instead.
const cloudPlaceholder = 50

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// archiveResponse mirrors the columnar daily payload: parallel arrays keyed by
// field name, aligned by index with the time array.
type archiveResponse struct {
	Daily struct {
		Time        []string   `json:"time"`
		TMax        []*float64 `json:"temperature_2m_max"`
		TMin        []*float64 `json:"temperature_2m_min"`
		Precip      []*float64 `json:"precipitation_sum"`
		Wind        []*float64 `json:"wind_speed_10m_max"`
		WeatherCode []*int     `json:"weathercode"`
	} `json:"daily"`
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ArchiveClient fetches finalized daily history from the Open-Meteo archive.
type ArchiveClient struct {
	baseURL string
	client  HTTPClient
	logger  *log.Logger
}

func NewArchiveClient(baseURL string, httpClient HTTPClient, logger *log.Logger) *ArchiveClient {
	return &ArchiveClient{baseURL: baseURL, client: httpClient, logger: logger}
}

func (c *ArchiveClient) Fetch(ctx context.Context, lat, lon float64, start, end time.Time) ([]models.DayRecord, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%g", lat))
	values.Set("longitude", fmt.Sprintf("%g", lon))
	values.Set("start_date", start.Format(dateLayout))
	values.Set("end_date", end.Format(dateLayout))
	values.Set("daily", dailyFields)
	values.Set("temperature_unit", "celsius")
	values.Set("wind_speed_unit", "kmh")
	values.Set("precipitation_unit", "mm")
	values.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &models.UpstreamConnectionError{Err: err}
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Println("failed to close response body:", err)
		}
	}(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return nil, &models.UpstreamHTTPError{Status: resp.StatusCode, Body: string(body)}
	}

	var raw archiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrDecode, err)
	}

	return zipDaily(raw), nil
}

// zipDaily joins the parallel arrays positionally. Columns shorter than the
// time array yield absent values at the missing indices.
func zipDaily(raw archiveResponse) []models.DayRecord {
	d := raw.Daily
	days := make([]models.DayRecord, 0, len(d.Time))
	for i, date := range d.Time {
		rec := models.DayRecord{
			Date:      date,
			Weekday:   weekdayName(date),
			TMax:      floatAt(d.TMax, i),
			TMin:      floatAt(d.TMin, i),
			PrecipMM:  floatAt(d.Precip, i),
			WindKMH:   floatAt(d.Wind, i),
			CloudPct:  cloudPlaceholder,
			Condition: MapCondition(intAt(d.WeatherCode, i)),
		}
		days = append(days, rec)
	}
	return days
}

func floatAt(col []*float64, i int) *float64 {
	if i >= len(col) {
		return nil
	}
	return col[i]
}

func intAt(col []*int, i int) *int {
	if i >= len(col) {
		return nil
	}
	return col[i]
}

func weekdayName(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return weekdayNames[t.Weekday()]
}
