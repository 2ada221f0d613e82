package archive

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
	"github.com/tu-usuario/stock-ledger/pkg/metrics"
)

// TxRunner ejecuta el archivado dentro de una transacción: el insert de
// resúmenes y el borrado por retención se confirman o revierten juntos.
type TxRunner interface {
	RunArchive(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		sumRepo repository.SummaryRepository,
	) error) error
}

// JobLock garantiza que solo una instancia del deployment ejecute el job a la
// vez. Acquire devuelve ok=false si otra instancia tiene el lock.
type JobLock interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), ok bool, err error)
}

const (
	lockKey = "stock-ledger:monthly-archive"
	lockTTL = 15 * time.Minute
)

// MonthlyArchiveUseCase job mensual de archivado: agrega los movimientos del
// mes recién terminado en resúmenes mensuales y borra las entradas del libro
// que superan la ventana de retención.
type MonthlyArchiveUseCase struct {
	txRunner        TxRunner
	lock            JobLock
	retentionMonths int
}

// NewMonthlyArchiveUseCase construye el job. retentionMonths define la ventana
// de retención del libro (12 = un año).
func NewMonthlyArchiveUseCase(txRunner TxRunner, lock JobLock, retentionMonths int) *MonthlyArchiveUseCase {
	if retentionMonths <= 0 {
		retentionMonths = 12
	}
	return &MonthlyArchiveUseCase{txRunner: txRunner, lock: lock, retentionMonths: retentionMonths}
}

// Run ejecuta una pasada del archivado para el mes anterior a now.
// Los errores se registran y se devuelven al caller para código de salida o
// métricas; la siguiente ejecución programada reprocesa desde cero.
// Un resumen ya existente para el período hace fallar toda la pasada con
// domain.ErrConflict (fail-fast: nunca se duplican totales históricos).
func (uc *MonthlyArchiveUseCase) Run(ctx context.Context, now time.Time) error {
	release, ok, err := uc.lock.Acquire(ctx, lockKey, lockTTL)
	if err != nil {
		metrics.ArchiveRuns.WithLabelValues("error").Inc()
		log.Error().Err(err).Msg("adquirir lock de archivado")
		return err
	}
	if !ok {
		metrics.ArchiveRuns.WithLabelValues("skipped").Inc()
		log.Warn().Msg("archivado mensual omitido: otra instancia tiene el lock")
		return nil
	}
	defer release()

	// Mes recién terminado: ventana [inicio del mes anterior, inicio de este mes).
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	monthEnd := monthStart.AddDate(0, 1, 0)
	cutoff := now.AddDate(0, -uc.retentionMonths, 0)

	log.Info().
		Int("year", monthStart.Year()).
		Int("month", int(monthStart.Month())).
		Msg("iniciando archivado mensual de movimientos")

	var summarized int
	var deleted int64

	err = uc.txRunner.RunArchive(ctx, func(
		movRepo repository.MovementRepository,
		sumRepo repository.SummaryRepository,
	) error {
		rollups, err := movRepo.SummarizeRange(ctx, monthStart, monthEnd)
		if err != nil {
			return err
		}

		if len(rollups) > 0 {
			summaries := make([]*entity.MonthlySummary, 0, len(rollups))
			for _, r := range rollups {
				summaries = append(summaries, &entity.MonthlySummary{
					ItemID:                 r.ItemID,
					BranchID:               r.BranchID,
					Year:                   monthStart.Year(),
					Month:                  int(monthStart.Month()),
					TotalInboundBundles:    r.TotalInboundBundles,
					TotalInboundUnits:      r.TotalInboundUnits,
					TotalSaleBundles:       r.TotalSaleBundles,
					TotalSaleUnits:         r.TotalSaleUnits,
					TotalAdjustmentBundles: r.TotalAdjustmentBundles,
					TotalAdjustmentUnits:   r.TotalAdjustmentUnits,
				})
			}
			if err := sumRepo.CreateBatch(ctx, summaries); err != nil {
				return err
			}
			summarized = len(summaries)
		}

		deleted, err = movRepo.DeleteOlderThan(ctx, cutoff)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			metrics.ArchiveRuns.WithLabelValues("conflict").Inc()
			log.Error().
				Int("year", monthStart.Year()).
				Int("month", int(monthStart.Month())).
				Msg("el período ya fue archivado; transacción revertida")
			return err
		}
		metrics.ArchiveRuns.WithLabelValues("error").Inc()
		log.Error().Err(err).Msg("archivado mensual fallido; transacción revertida")
		return err
	}

	metrics.ArchiveRuns.WithLabelValues("ok").Inc()
	metrics.ArchivedMovementsDeleted.Add(float64(deleted))
	log.Info().
		Int("summaries", summarized).
		Int64("deleted_movements", deleted).
		Msg("archivado mensual completado")
	return nil
}
