package inventory

import (
	"context"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad del motor de ajustes:
// snapshot y entrada del libro se confirman o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		branchRepo repository.BranchRepository,
		itemRepo repository.ItemRepository,
		snapRepo repository.SnapshotRepository,
		movRepo repository.MovementRepository,
	) error) error
}

// Dispatcher puerto de entrega de notificaciones push. La entrega real es de
// un servicio externo; aquí solo se entrega el payload ya armado. Se invoca
// siempre después del commit: un fallo de entrega nunca revierte un ajuste.
type Dispatcher interface {
	Dispatch(ctx context.Context, notification dto.PushNotification)
}

// Actor contexto ya autenticado y autorizado que recibe el motor.
// BranchID distinto de nil restringe al actor a esa sucursal.
type Actor struct {
	UserID    int64
	CompanyID int64
	BranchID  *int64
}

// RestrictedTo indica si el actor está limitado a una sucursal distinta de la pedida.
func (a Actor) RestrictedTo(branchID int64) bool {
	return a.BranchID != nil && *a.BranchID != branchID
}
