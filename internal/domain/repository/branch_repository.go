package repository

import (
	"context"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// BranchRepository define el puerto de consulta de sucursales (solo lectura;
// el CRUD vive en otro servicio).
type BranchRepository interface {
	// GetForCompany devuelve nil, nil si la sucursal no existe o pertenece a
	// otra empresa: ambos casos son indistinguibles para el caller.
	GetForCompany(ctx context.Context, branchID, companyID int64) (*entity.Branch, error)
}
