package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo implementación de SnapshotRepository sobre PostgreSQL
// (usable con pool o tx).
type SnapshotRepo struct {
	q Querier
}

// NewSnapshotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSnapshotRepository(q Querier) *SnapshotRepo {
	return &SnapshotRepo{q: q}
}

// GetForUpdate obtiene el snapshot y bloquea la fila (SELECT FOR UPDATE) para
// serializar ajustes concurrentes al mismo par item/branch.
// Devuelve nil, nil si el par aún no tiene snapshot.
func (r *SnapshotRepo) GetForUpdate(ctx context.Context, itemID, branchID int64) (*entity.StockSnapshot, error) {
	const query = `
		SELECT id, item_id, branch_id, bundle_quantity, unit_quantity, last_updated
		FROM stock_snapshots WHERE item_id = $1 AND branch_id = $2
		FOR UPDATE`
	var s entity.StockSnapshot
	err := r.q.QueryRow(ctx, query, itemID, branchID).Scan(
		&s.ID, &s.ItemID, &s.BranchID, &s.BundleQuantity, &s.UnitQuantity, &s.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza las cantidades del snapshot (por item y sucursal).
func (r *SnapshotRepo) Upsert(ctx context.Context, snapshot *entity.StockSnapshot) error {
	const query = `
		INSERT INTO stock_snapshots (item_id, branch_id, bundle_quantity, unit_quantity, last_updated)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (item_id, branch_id)
		DO UPDATE SET bundle_quantity = EXCLUDED.bundle_quantity,
		              unit_quantity   = EXCLUDED.unit_quantity,
		              last_updated    = EXCLUDED.last_updated
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		snapshot.ItemID, snapshot.BranchID, snapshot.BundleQuantity, snapshot.UnitQuantity, snapshot.LastUpdated,
	).Scan(&snapshot.ID)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// ListByBranch lista los snapshots de una sucursal con datos del artículo,
// ordenados por nombre de artículo.
func (r *SnapshotRepo) ListByBranch(ctx context.Context, branchID int64) ([]repository.BranchStockRow, error) {
	const query = `
		SELECT s.id, s.item_id, s.branch_id, s.bundle_quantity, s.unit_quantity, s.last_updated,
		       i.name, i.sku
		FROM stock_snapshots s
		JOIN items i ON i.id = s.item_id
		WHERE s.branch_id = $1
		ORDER BY i.name ASC`
	rows, err := r.q.Query(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("list snapshots by branch: %w", err)
	}
	defer rows.Close()

	var list []repository.BranchStockRow
	for rows.Next() {
		var row repository.BranchStockRow
		if err := rows.Scan(
			&row.Snapshot.ID, &row.Snapshot.ItemID, &row.Snapshot.BranchID,
			&row.Snapshot.BundleQuantity, &row.Snapshot.UnitQuantity, &row.Snapshot.LastUpdated,
			&row.ItemName, &row.ItemSKU,
		); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
