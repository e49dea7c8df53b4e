package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/usecase"
)

const (
	positionsUpdaterName = "positions-updater"
	positionsRunHour     = 5
)

// PositionsUpdater обновляет "небо сейчас" в кэше, каждый день в 05:00 по Мадриду
type PositionsUpdater struct {
	astroService usecase.IAstroService
	log          *slog.Logger
	location     *time.Location
	now          func() time.Time
}

// NewPositionsUpdater создаёт новую джобу для обновления позиций планет
func NewPositionsUpdater(astroService usecase.IAstroService, log *slog.Logger) *PositionsUpdater {
	location, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		log.Warn("Europe/Madrid timezone not available, using UTC", "error", err)
		location = time.UTC
	}

	return &PositionsUpdater{
		astroService: astroService,
		log:          log,
		location:     location,
		now:          time.Now,
	}
}

func (j *PositionsUpdater) Name() string {
	return positionsUpdaterName
}

// NextRun ближайшие 05:00 строго после now
func (j *PositionsUpdater) NextRun(now time.Time) time.Time {
	local := now.In(j.location)

	next := time.Date(local.Year(), local.Month(), local.Day(), positionsRunHour, 0, 0, 0, j.location)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, positionsRunHour, 0, 0, 0, j.location)
	}
	return next
}

// Run выполняет обновление текущих позиций планет в кэше
func (j *PositionsUpdater) Run(ctx context.Context) error {
	return j.astroService.UpdateCachedPositions(ctx, j.now().In(j.location))
}
