package weather

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
)

const (
	// minYear is the earliest year the archive is queried for.
	minYear = 2015

	// archiveLagDays: the archive only carries finalized data up to five days
	// before the present.
	archiveLagDays = 5
)

type client interface {
	Fetch(ctx context.Context, lat, lon float64, start, end time.Time) ([]models.DayRecord, error)
}

// Service computes the queryable date range for a year and delegates the
// actual fetch to the archive client.
type Service struct {
	logger *log.Logger
	client client
	now    func() time.Time
}

func NewService(logger *log.Logger, c client) *Service {
	return &Service{logger: logger, client: c, now: time.Now}
}

// FetchYear returns the day records for one location and year.
func (s *Service) FetchYear(ctx context.Context, lat, lon float64, year int) ([]models.DayRecord, error) {
	start, end, err := s.rangeFor(year)
	if err != nil {
		return nil, err
	}

	days, err := s.client.Fetch(ctx, lat, lon, start, end)
	if err != nil {
		s.logger.Printf("archive fetch failed for (%g, %g) year %d: %v", lat, lon, year, err)
		return nil, err
	}
	return days, nil
}

// Range reports the currently queryable window for a year without fetching.
func (s *Service) Range(year int) (time.Time, time.Time, error) {
	return s.rangeFor(year)
}

// rangeFor computes [Jan 1, min(Dec 31, today-5d)] for the given year. The
// min rule keeps past years at Dec 31 and the current year at today minus
// the archive lag.
func (s *Service) rangeFor(year int) (time.Time, time.Time, error) {
	now := s.now()
	if year < minYear || year > now.Year() {
		return time.Time{}, time.Time{}, &models.InvalidDateRangeError{
			Reason: fmt.Sprintf("year %d outside [%d, %d]", year, minYear, now.Year()),
		}
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	lagged := now.UTC().AddDate(0, 0, -archiveLagDays)
	lagged = time.Date(lagged.Year(), lagged.Month(), lagged.Day(), 0, 0, 0, 0, time.UTC)
	if lagged.Before(end) {
		end = lagged
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, &models.InvalidDateRangeError{
			Reason: fmt.Sprintf("start %s after end %s", start.Format(dateLayout), end.Format(dateLayout)),
		}
	}
	return start, end, nil
}
