package ranking

import (
	"context"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
)

// maxWorkers bounds the concurrent archive fetches in one sweep.
const maxWorkers = 4

type weatherFetcher interface {
	FetchYear(ctx context.Context, lat, lon float64, year int) ([]models.DayRecord, error)
	Range(year int) (time.Time, time.Time, error)
}

// Aggregator runs ranking sweeps: one archive fetch per registered location,
// averaged max temperatures, warmest first.
type Aggregator struct {
	logger  *log.Logger
	fetcher weatherFetcher
}

func NewAggregator(logger *log.Logger, fetcher weatherFetcher) *Aggregator {
	return &Aggregator{logger: logger, fetcher: fetcher}
}

// Rank fetches every location for the given year and orders them by mean max
// temperature, descending; locations with no data sort last. One location's
// failure never aborts the sweep. Entries are written into slots indexed by
// registry position, so the result is identical regardless of which fetch
// finishes first.
func (a *Aggregator) Rank(ctx context.Context, locs []models.Location, year int) (models.Ranking, error) {
	start, end, err := a.fetcher.Range(year)
	if err != nil {
		return models.Ranking{}, err
	}

	entries := make([]models.RankingEntry, len(locs))

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxWorkers)
	for i, loc := range locs {
		wg.Add(1)
		go func(i int, loc models.Location) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			entries[i] = models.RankingEntry{Location: loc.Name, Lat: loc.Lat, Lon: loc.Lon}

			days, err := a.fetcher.FetchYear(ctx, loc.Lat, loc.Lon, year)
			if err != nil {
				a.logger.Printf("ranking: skipping %s: %v", loc.Name, err)
				return
			}
			entries[i].MeanTMax = meanTMax(days)
		}(i, loc)
	}
	wg.Wait()

	sort.SliceStable(entries, func(i, j int) bool {
		return keyOf(entries[i]) > keyOf(entries[j])
	})

	return models.Ranking{
		Entries:   entries,
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	}, nil
}

// meanTMax averages the present max temperatures, rounded to 2 decimals.
// Nil when no day carries one.
func meanTMax(days []models.DayRecord) *float64 {
	var sum float64
	var n int
	for _, d := range days {
		if d.TMax != nil {
			sum += *d.TMax
			n++
		}
	}
	if n == 0 {
		return nil
	}
	mean := math.Round(sum/float64(n)*100) / 100
	return &mean
}

// keyOf treats a missing mean as negative infinity so it sorts last.
func keyOf(e models.RankingEntry) float64 {
	if e.MeanTMax == nil {
		return math.Inf(-1)
	}
	return *e.MeanTMax
}
