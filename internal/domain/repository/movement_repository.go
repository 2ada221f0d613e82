package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// MonthlyRollup resultado agregado de un mes de movimientos para un par
// item/branch, con las ventas ya invertidas a magnitud positiva.
type MonthlyRollup struct {
	ItemID                 int64
	BranchID               int64
	TotalInboundBundles    int
	TotalInboundUnits      int
	TotalSaleBundles       int
	TotalSaleUnits         int
	TotalAdjustmentBundles int
	TotalAdjustmentUnits   int
}

// MovementRepository define el puerto de persistencia del libro de movimientos.
// Las entradas son append-only: no hay Update; Delete solo existe como regla
// de retención del job de archivado.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	// ListForItemInBranch pagina los movimientos de un artículo en una
	// sucursal, más recientes primero. Devuelve la página y el total.
	ListForItemInBranch(ctx context.Context, branchID, itemID int64, page, limit int) ([]*entity.Movement, int, error)
	// SummarizeRange agrega los movimientos con timestamp en [from, to).
	SummarizeRange(ctx context.Context, from, to time.Time) ([]MonthlyRollup, error)
	// DeleteOlderThan borra las entradas anteriores al corte de retención.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
