package jobs

import (
	"context"
	"time"

	"tavolo/infras/otel"
	hoursService "tavolo/internal/domains/hours/service"
	"tavolo/shared/constant"

	"github.com/rs/zerolog/log"
)

const horizonInterval = 24 * time.Hour

// HorizonExtender keeps the opening-hours calendar generated ahead of time:
// once a day it appends the dates that have rolled into the configured
// horizon, derived from the weekly defaults.
type HorizonExtender struct {
	hours hoursService.Hours
	otel  otel.Otel
}

func NewHorizonExtender(hours hoursService.Hours, otel otel.Otel) *HorizonExtender {
	return &HorizonExtender{
		hours: hours,
		otel:  otel,
	}
}

// Run blocks until the context is cancelled; callers start it in its own
// goroutine. The first extension runs immediately so a fresh deployment
// starts with a populated calendar.
func (j *HorizonExtender) Run(ctx context.Context) {
	j.extend(ctx)

	ticker := time.NewTicker(horizonInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Horizon extender stopped.")

			return
		case <-ticker.C:
			j.extend(ctx)
		}
	}
}

func (j *HorizonExtender) extend(ctx context.Context) {
	ctx, scope := j.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+".ExtendHorizon")
	defer scope.End()

	created, err := j.hours.ExtendHorizon(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to extend opening hours horizon")

		return
	}

	if created > 0 {
		log.Info().Int("created", created).Msg("Extended opening hours horizon.")
	}
}
