package archive

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Scheduler dispara el archivado el día 1 de cada mes a la 01:00 local.
// El guard de instancia única vive en el use case (JobLock), no aquí: varios
// schedulers pueden despertar a la vez y solo uno ejecuta.
type Scheduler struct {
	uc *MonthlyArchiveUseCase
}

// NewScheduler construye el scheduler del job mensual.
func NewScheduler(uc *MonthlyArchiveUseCase) *Scheduler {
	return &Scheduler{uc: uc}
}

// Start bloquea hasta que ctx se cancele. Pensado para correr en su propia
// goroutine desde main.
func (s *Scheduler) Start(ctx context.Context) {
	for {
		next := nextRun(time.Now())
		log.Info().Time("next_run", next).Msg("archivado mensual programado")

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			// El error ya quedó registrado y medido; la próxima corrida reprocesa.
			_ = s.uc.Run(ctx, time.Now())
		}
	}
}

// nextRun calcula el próximo 1° de mes a la 01:00 estrictamente posterior a t.
func nextRun(t time.Time) time.Time {
	run := time.Date(t.Year(), t.Month(), 1, 1, 0, 0, 0, t.Location())
	if !run.After(t) {
		run = run.AddDate(0, 1, 0)
	}
	return run
}
