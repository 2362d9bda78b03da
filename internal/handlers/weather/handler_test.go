package weather_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	handler "github.com/soportesistemas80-alt/historial-clima-tiendas/internal/handlers/weather"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/locations"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/repository"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) FetchYear(ctx context.Context, lat, lon float64, year int) ([]models.DayRecord, error) {
	args := m.Called(ctx, lat, lon, year)
	days, _ := args.Get(0).([]models.DayRecord)
	return days, args.Error(1)
}

type mockGeocoder struct {
	mock.Mock
}

func (m *mockGeocoder) Geocode(ctx context.Context, text string) (float64, float64, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(float64), args.Get(1).(float64), args.Error(2)
}

func f(v float64) *float64 { return &v }

func setup(t *testing.T) (*gin.Engine, *mockService, *mockGeocoder, *repository.MemoryHistoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &mockService{}
	geo := &mockGeocoder{}
	history := repository.NewMemoryHistoryRepository()
	h := handler.NewHandler(svc, geo, locations.NewRegistry(), history)

	router := gin.New()
	router.GET("/api/locations", h.GetLocations)
	router.GET("/api/weather", h.GetWeather)
	return router, svc, geo, history
}

func get(router *gin.Engine, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetLocations(t *testing.T) {
	router, _, _, _ := setup(t)

	w := get(router, "/api/locations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var groups []locations.Group
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &groups))
	require.Len(t, groups, 2)
	assert.Equal(t, "Shopping", groups[0].Prefix)
	assert.Equal(t, "Templo", groups[1].Prefix)
}

func TestGetWeather_MissingYear(t *testing.T) {
	router, _, _, _ := setup(t)

	w := get(router, "/api/weather?location=Templo+5", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetWeather_NoSearchInput(t *testing.T) {
	router, _, _, _ := setup(t)

	w := get(router, "/api/weather?year=2024", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetWeather_UnknownLocation(t *testing.T) {
	router, svc, _, _ := setup(t)

	w := get(router, "/api/weather?location=Bodega+9&year=2024", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.AssertNotCalled(t, "FetchYear")
}

func TestGetWeather_AddressInLocationField(t *testing.T) {
	router, svc, _, _ := setup(t)

	w := get(router, "/api/weather?location="+url.QueryEscape("Calle 5 # 38-25")+"&year=2024", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.AssertNotCalled(t, "FetchYear")
}

func TestGetWeather_SingleWordAddress(t *testing.T) {
	router, svc, geo, _ := setup(t)

	w := get(router, "/api/weather?address=Cali&year=2024", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	geo.AssertNotCalled(t, "Geocode")
	svc.AssertNotCalled(t, "FetchYear")
}

func TestGetWeather_KnownLocation(t *testing.T) {
	router, svc, _, _ := setup(t)

	days := []models.DayRecord{{Date: "2024-06-01", Weekday: "Sábado", TMax: f(30), Condition: "Clear"}}
	svc.On("FetchYear", mock.Anything, 3.4290, -76.5366, 2024).Return(days, nil).Once()

	w := get(router, "/api/weather?location=Templo+5&year=2024", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Location string             `json:"location"`
		Year     int                `json:"year"`
		Days     []models.DayRecord `json:"days"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Templo 5", body.Location)
	assert.Equal(t, 2024, body.Year)
	require.Len(t, body.Days, 1)

	svc.AssertExpectations(t)
}

func TestGetWeather_FilterApplied(t *testing.T) {
	router, svc, _, _ := setup(t)

	days := []models.DayRecord{
		{Date: "2024-06-01", TMax: f(30), Condition: "Clear"},
		{Date: "2024-06-02", TMax: f(20), Condition: "Clear"},
	}
	svc.On("FetchYear", mock.Anything, 3.4290, -76.5366, 2024).Return(days, nil).Once()

	w := get(router, "/api/weather?location=Templo+5&year=2024&min_tmax=25", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Days []models.DayRecord `json:"days"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Days, 1)
	assert.Equal(t, "2024-06-01", body.Days[0].Date)
}

func TestGetWeather_GeocodedAddress(t *testing.T) {
	router, svc, geo, _ := setup(t)

	geo.On("Geocode", mock.Anything, "Calle 5 # 38-25").Return(3.42, -76.54, nil).Once()
	svc.On("FetchYear", mock.Anything, 3.42, -76.54, 2023).Return([]models.DayRecord{}, nil).Once()

	w := get(router, "/api/weather?address="+url.QueryEscape("Calle 5 # 38-25")+"&year=2023", nil)
	require.Equal(t, http.StatusOK, w.Code)

	geo.AssertExpectations(t)
	svc.AssertExpectations(t)
}

func TestGetWeather_Coordinates(t *testing.T) {
	router, svc, _, _ := setup(t)

	svc.On("FetchYear", mock.Anything, 3.5, -76.5, 2024).Return([]models.DayRecord{}, nil).Once()

	w := get(router, "/api/weather?lat=3.5&lon=-76.5&year=2024", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Location string `json:"location"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "3.5, -76.5", body.Location)
}

func TestGetWeather_UpstreamFailure(t *testing.T) {
	router, svc, _, _ := setup(t)

	svc.On("FetchYear", mock.Anything, 3.4290, -76.5366, 2024).
		Return(nil, &models.UpstreamHTTPError{Status: http.StatusTooManyRequests, Body: "rate limited"}).Once()

	w := get(router, "/api/weather?location=Templo+5&year=2024", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetWeather_RecordsSessionHistory(t *testing.T) {
	router, svc, _, history := setup(t)

	svc.On("FetchYear", mock.Anything, 3.4290, -76.5366, 2024).Return([]models.DayRecord{}, nil).Once()

	header := http.Header{}
	header.Set("X-Session-ID", "s1")
	w := get(router, "/api/weather?location=Templo+5&year=2024", header)
	require.Equal(t, http.StatusOK, w.Code)

	entries, err := history.List(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Templo 5", entries[0].Query)
	assert.Equal(t, 2024, entries[0].Year)
}

func TestGetWeather_NoSessionNoHistory(t *testing.T) {
	router, svc, _, history := setup(t)

	svc.On("FetchYear", mock.Anything, 3.4290, -76.5366, 2024).Return([]models.DayRecord{}, nil).Once()

	w := get(router, "/api/weather?location=Templo+5&year=2024", nil)
	require.Equal(t, http.StatusOK, w.Code)

	entries, err := history.List(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
