package weather

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(ctx context.Context, lat, lon float64, start, end time.Time) ([]models.DayRecord, error) {
	args := m.Called(ctx, lat, lon, start, end)
	days, _ := args.Get(0).([]models.DayRecord)
	return days, args.Error(1)
}

func fixedService(t *testing.T, now time.Time) (*Service, *mockFetcher) {
	t.Helper()
	m := &mockFetcher{}
	svc := NewService(log.New(io.Discard, "", 0), m)
	svc.now = func() time.Time { return now }
	return svc, m
}

func TestService_Range_PastYear(t *testing.T) {
	svc, _ := fixedService(t, time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC))

	start, end, err := svc.Range(2023)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), end)
}

func TestService_Range_CurrentYearLagged(t *testing.T) {
	svc, _ := fixedService(t, time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC))

	start, end, err := svc.Range(2026)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC), end)
}

func TestService_Range_YearOutOfBounds(t *testing.T) {
	svc, _ := fixedService(t, time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC))

	cases := []int{2014, 1999, 2027}
	for _, year := range cases {
		_, _, err := svc.Range(year)

		var rangeErr *models.InvalidDateRangeError
		require.ErrorAs(t, err, &rangeErr, "year %d", year)
	}
}

func TestService_Range_EarlyJanuary(t *testing.T) {
	// Four days into the year the lagged end lands in the previous year, so
	// there is nothing queryable yet.
	svc, _ := fixedService(t, time.Date(2026, time.January, 4, 12, 0, 0, 0, time.UTC))

	_, _, err := svc.Range(2026)

	var rangeErr *models.InvalidDateRangeError
	require.ErrorAs(t, err, &rangeErr)
}

func TestService_FetchYear_DelegatesRange(t *testing.T) {
	svc, m := fixedService(t, time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC))

	want := []models.DayRecord{{Date: "2024-01-01", Weekday: "Lunes"}}
	m.On("Fetch", mock.Anything, 3.45, -76.53,
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
	).Return(want, nil).Once()

	days, err := svc.FetchYear(context.Background(), 3.45, -76.53, 2024)
	require.NoError(t, err)
	assert.Equal(t, want, days)

	m.AssertExpectations(t)
}

func TestService_FetchYear_InvalidYearSkipsFetch(t *testing.T) {
	svc, m := fixedService(t, time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC))

	_, err := svc.FetchYear(context.Background(), 3.45, -76.53, 2014)
	require.Error(t, err)

	m.AssertNotCalled(t, "Fetch")
}
