package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo consulta de sucursales sobre PostgreSQL (usable con pool o tx).
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

// GetForCompany obtiene una sucursal de la empresa indicada. Devuelve nil, nil
// si no existe o pertenece a otra empresa.
func (r *BranchRepo) GetForCompany(ctx context.Context, branchID, companyID int64) (*entity.Branch, error) {
	const query = `
		SELECT id, company_id, name, address, created_at
		FROM branches WHERE id = $1 AND company_id = $2`
	var b entity.Branch
	err := r.q.QueryRow(ctx, query, branchID, companyID).Scan(
		&b.ID, &b.CompanyID, &b.Name, &b.Address, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return &b, nil
}
