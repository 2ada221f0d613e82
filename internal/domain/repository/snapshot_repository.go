package repository

import (
	"context"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// BranchStockRow fila del listado de stock de una sucursal (snapshot + artículo).
type BranchStockRow struct {
	Snapshot entity.StockSnapshot
	ItemName string
	ItemSKU  *string
}

// SnapshotRepository define el puerto para consultar/actualizar el snapshot
// de stock por artículo+sucursal. Usado dentro de transacciones.
type SnapshotRepository interface {
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Devuelve nil, nil si el par item/branch aún no tiene snapshot.
	GetForUpdate(ctx context.Context, itemID, branchID int64) (*entity.StockSnapshot, error)
	Upsert(ctx context.Context, snapshot *entity.StockSnapshot) error
	ListByBranch(ctx context.Context, branchID int64) ([]BranchStockRow, error)
}
