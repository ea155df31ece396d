package metrics

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// StatsSource provides functions to retrieve current counts for gauge metrics.
// Nil functions are skipped.
type StatsSource struct {
	Loaded          func() bool
	PlantCount      func() int
	SoilEntries     func() int
	MoistureEntries func() int
}

// StartCollector periodically updates gauge metrics until ctx is cancelled.
// It blocks, so callers run it in its own goroutine (or errgroup).
func StartCollector(ctx context.Context, src StatsSource, interval time.Duration) error {
	// Do an initial collection immediately
	collect(src)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info().Dur("interval", interval).Msg("Metrics collector started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			collect(src)
		}
	}
}

func collect(src StatsSource) {
	if src.Loaded != nil {
		if src.Loaded() {
			DatasetLoaded.Set(1)
		} else {
			DatasetLoaded.Set(0)
		}
	}
	if src.PlantCount != nil {
		DatasetPlants.Set(float64(src.PlantCount()))
	}
	if src.SoilEntries != nil {
		DatasetLookupEntries.WithLabelValues("soil").Set(float64(src.SoilEntries()))
	}
	if src.MoistureEntries != nil {
		DatasetLookupEntries.WithLabelValues("moisture").Set(float64(src.MoistureEntries()))
	}
}
