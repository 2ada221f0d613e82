package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var _ repository.SummaryRepository = (*SummaryRepo)(nil)

// SummaryRepo implementación de SummaryRepository sobre PostgreSQL
// (usable con pool o tx).
type SummaryRepo struct {
	q Querier
}

// NewSummaryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSummaryRepository(q Querier) *SummaryRepo {
	return &SummaryRepo{q: q}
}

// CreateBatch inserta los resúmenes de un período. La violación del unique
// (item, branch, año, mes) se mapea a domain.ErrConflict: un período ya
// archivado hace fallar la pasada completa en vez de duplicar totales.
func (r *SummaryRepo) CreateBatch(ctx context.Context, summaries []*entity.MonthlySummary) error {
	const query = `
		INSERT INTO monthly_inventory_summary
			(item_id, branch_id, summary_year, summary_month,
			 total_inbound_bundles, total_inbound_units,
			 total_sale_bundles, total_sale_units,
			 total_adjustment_bundles, total_adjustment_units)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, s := range summaries {
		_, err := r.q.Exec(ctx, query,
			s.ItemID, s.BranchID, s.Year, s.Month,
			s.TotalInboundBundles, s.TotalInboundUnits,
			s.TotalSaleBundles, s.TotalSaleUnits,
			s.TotalAdjustmentBundles, s.TotalAdjustmentUnits,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrConflict
			}
			return fmt.Errorf("insert monthly summary: %w", err)
		}
	}
	return nil
}

// ListForItem lista los resúmenes históricos de un artículo en una sucursal,
// más recientes primero.
func (r *SummaryRepo) ListForItem(ctx context.Context, itemID, branchID int64) ([]*entity.MonthlySummary, error) {
	const query = `
		SELECT id, item_id, branch_id, summary_year, summary_month,
		       total_inbound_bundles, total_inbound_units,
		       total_sale_bundles, total_sale_units,
		       total_adjustment_bundles, total_adjustment_units,
		       created_at
		FROM monthly_inventory_summary
		WHERE item_id = $1 AND branch_id = $2
		ORDER BY summary_year DESC, summary_month DESC`
	rows, err := r.q.Query(ctx, query, itemID, branchID)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer rows.Close()

	var list []*entity.MonthlySummary
	for rows.Next() {
		var s entity.MonthlySummary
		if err := rows.Scan(
			&s.ID, &s.ItemID, &s.BranchID, &s.Year, &s.Month,
			&s.TotalInboundBundles, &s.TotalInboundUnits,
			&s.TotalSaleBundles, &s.TotalSaleUnits,
			&s.TotalAdjustmentBundles, &s.TotalAdjustmentUnits,
			&s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
