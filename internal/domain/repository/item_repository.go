package repository

import (
	"context"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// ItemRepository define el puerto de consulta de artículos (solo lectura).
type ItemRepository interface {
	// GetForCompany devuelve nil, nil si el artículo no existe o pertenece a
	// otra empresa.
	GetForCompany(ctx context.Context, itemID, companyID int64) (*entity.Item, error)
}
