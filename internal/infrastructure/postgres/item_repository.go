package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo consulta de artículos sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// GetForCompany obtiene un artículo de la empresa indicada. Devuelve nil, nil
// si no existe o pertenece a otra empresa.
func (r *ItemRepo) GetForCompany(ctx context.Context, itemID, companyID int64) (*entity.Item, error) {
	const query = `
		SELECT id, company_id, name, sku, description, units_per_bundle, created_at
		FROM items WHERE id = $1 AND company_id = $2`
	var i entity.Item
	err := r.q.QueryRow(ctx, query, itemID, companyID).Scan(
		&i.ID, &i.CompanyID, &i.Name, &i.SKU, &i.Description, &i.UnitsPerBundle, &i.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}
