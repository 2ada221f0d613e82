package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste una entrada del libro.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	const query = `
		INSERT INTO stock_movements
			(transaction_id, item_id, branch_id, user_id, movement_type, bundle_change, unit_change, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		movement.TransactionID, movement.ItemID, movement.BranchID, movement.UserID,
		movement.Type, movement.BundleChange, movement.UnitChange, movement.Note, movement.Timestamp,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListForItemInBranch pagina los movimientos de un artículo en una sucursal,
// más recientes primero, con el autor resuelto por LEFT JOIN (vínculo débil:
// la entrada sobrevive al usuario).
func (r *MovementRepo) ListForItemInBranch(ctx context.Context, branchID, itemID int64, page, limit int) ([]*entity.Movement, int, error) {
	const countQuery = `
		SELECT COUNT(*) FROM stock_movements
		WHERE branch_id = $1 AND item_id = $2`
	var total int
	if err := r.q.QueryRow(ctx, countQuery, branchID, itemID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	const query = `
		SELECT m.id, m.transaction_id, m.item_id, m.branch_id, m.user_id,
		       m.movement_type, m.bundle_change, m.unit_change, m.note, m.created_at,
		       u.name, u.lastname
		FROM stock_movements m
		LEFT JOIN users u ON u.id = m.user_id
		WHERE m.branch_id = $1 AND m.item_id = $2
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, branchID, itemID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(
			&m.ID, &m.TransactionID, &m.ItemID, &m.BranchID, &m.UserID,
			&m.Type, &m.BundleChange, &m.UnitChange, &m.Note, &m.Timestamp,
			&m.UserName, &m.UserLastname,
		); err != nil {
			return nil, 0, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, total, rows.Err()
}

// SummarizeRange agrega los movimientos con timestamp en [from, to) por par
// item/branch. Las ventas (guardadas negativas en el libro) se invierten a
// magnitud positiva; los ajustes conservan su signo.
func (r *MovementRepo) SummarizeRange(ctx context.Context, from, to time.Time) ([]repository.MonthlyRollup, error) {
	const query = `
		SELECT item_id, branch_id,
		       COALESCE(SUM(CASE WHEN movement_type = 'INBOUND'    THEN bundle_change ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN movement_type = 'INBOUND'    THEN unit_change   ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN movement_type = 'SALE'       THEN bundle_change ELSE 0 END), 0) * -1,
		       COALESCE(SUM(CASE WHEN movement_type = 'SALE'       THEN unit_change   ELSE 0 END), 0) * -1,
		       COALESCE(SUM(CASE WHEN movement_type = 'ADJUSTMENT' THEN bundle_change ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN movement_type = 'ADJUSTMENT' THEN unit_change   ELSE 0 END), 0)
		FROM stock_movements
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY item_id, branch_id`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("summarize movements: %w", err)
	}
	defer rows.Close()

	var rollups []repository.MonthlyRollup
	for rows.Next() {
		var ru repository.MonthlyRollup
		if err := rows.Scan(
			&ru.ItemID, &ru.BranchID,
			&ru.TotalInboundBundles, &ru.TotalInboundUnits,
			&ru.TotalSaleBundles, &ru.TotalSaleUnits,
			&ru.TotalAdjustmentBundles, &ru.TotalAdjustmentUnits,
		); err != nil {
			return nil, fmt.Errorf("scan rollup: %w", err)
		}
		rollups = append(rollups, ru)
	}
	return rollups, rows.Err()
}

// DeleteOlderThan borra las entradas anteriores al corte de retención y
// devuelve cuántas se eliminaron.
func (r *MovementRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM stock_movements WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old movements: %w", err)
	}
	return tag.RowsAffected(), nil
}
