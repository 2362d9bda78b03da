// Package sweeper runs the scheduled ranking sweep: once per schedule tick it
// ranks every registered store for the current year and logs the board.
package sweeper

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
)

// sweepTimeout bounds one full pass over the registry.
const sweepTimeout = 5 * time.Minute

type Ranker interface {
	Rank(ctx context.Context, locs []models.Location, year int) (models.Ranking, error)
}

type Sweeper struct {
	ranker Ranker
	locs   []models.Location
	logger zerolog.Logger
	cron   *cron.Cron
}

func New(ranker Ranker, locs []models.Location, logger zerolog.Logger) *Sweeper {
	return &Sweeper{
		ranker: ranker,
		locs:   locs,
		logger: logger,
		cron:   cron.New(),
	}
}

// Start schedules the sweep with the given cron spec. An empty spec disables
// the job.
func (s *Sweeper) Start(spec string) error {
	if spec == "" {
		s.logger.Info().Msg("ranking sweep disabled")
		return nil
	}
	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info().Str("spec", spec).Msg("ranking sweep scheduled")
	return nil
}

func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Sweeper) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	year := time.Now().Year()
	board, err := s.ranker.Rank(ctx, s.locs, year)
	if err != nil {
		s.logger.Error().Err(err).Int("year", year).Msg("ranking sweep failed")
		return
	}

	s.logger.Info().
		Str("start", board.StartDate).
		Str("end", board.EndDate).
		Msg("ranking sweep finished")
	for i, entry := range board.Entries {
		event := s.logger.Info().Int("rank", i+1).Str("location", entry.Location)
		if entry.MeanTMax == nil {
			event.Msg("no data")
			continue
		}
		event.Float64("mean_tmax", *entry.MeanTMax).Msg("ranked")
	}
}
