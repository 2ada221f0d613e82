package repository

import (
	"context"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// SummaryRepository define el puerto de persistencia de los resúmenes mensuales.
type SummaryRepository interface {
	// CreateBatch inserta los resúmenes de un período. Si ya existe un resumen
	// para algún (item, branch, año, mes) devuelve domain.ErrConflict.
	CreateBatch(ctx context.Context, summaries []*entity.MonthlySummary) error
	ListForItem(ctx context.Context, itemID, branchID int64) ([]*entity.MonthlySummary, error)
}
