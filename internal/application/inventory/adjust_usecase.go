package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
	"github.com/tu-usuario/stock-ledger/internal/domain/stock"
	"github.com/tu-usuario/stock-ledger/pkg/metrics"
)

// AdjustStockUseCase es el motor transaccional de ajustes de stock: valida el
// cambio solicitado, muta el snapshot, agrega la entrada al libro de
// movimientos (todo en una transacción) y evalúa la alerta de stock bajo
// después del commit.
type AdjustStockUseCase struct {
	txRunner   TxRunner
	userRepo   repository.UserRepository
	dispatcher Dispatcher
	threshold  int
}

// NewAdjustStockUseCase construye el motor. threshold es el umbral de stock
// bajo en unidades base.
func NewAdjustStockUseCase(
	txRunner TxRunner,
	userRepo repository.UserRepository,
	dispatcher Dispatcher,
	threshold int,
) *AdjustStockUseCase {
	return &AdjustStockUseCase{
		txRunner:   txRunner,
		userRepo:   userRepo,
		dispatcher: dispatcher,
		threshold:  threshold,
	}
}

// AdjustInput entrada de un ajuste de stock. BundleChange/UnitChange valen 0
// si la request los omite.
type AdjustInput struct {
	BranchID     int64
	ItemID       int64
	BundleChange int
	UnitChange   int
	Type         string
	Note         string
}

// pendingAlert datos capturados dentro de la transacción para armar la
// notificación una vez confirmada.
type pendingAlert struct {
	itemID     int64
	branchID   int64
	itemName   string
	branchName string
	bundles    int
	units      int
}

// Adjust ejecuta un ajuste de stock como transacción única:
//  1. resuelve sucursal y artículo dentro de la empresa del actor,
//  2. verifica el alcance de sucursal del actor,
//  3. bloquea (o crea) el snapshot del par item/branch,
//  4. aplica el delta en unidades base y re-normaliza con división euclidiana,
//  5. persiste snapshot y entrada del libro.
//
// Cualquier fallo revierte snapshot y libro juntos. La notificación de stock
// bajo se despacha después del commit y nunca afecta el resultado.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, actor Actor, in AdjustInput) (*entity.StockSnapshot, error) {
	if !entity.IsValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	txID := uuid.New().String()

	var result *entity.StockSnapshot
	var alert *pendingAlert

	err := uc.txRunner.Run(ctx, func(
		branchRepo repository.BranchRepository,
		itemRepo repository.ItemRepository,
		snapRepo repository.SnapshotRepository,
		movRepo repository.MovementRepository,
	) error {
		branch, err := branchRepo.GetForCompany(ctx, in.BranchID, actor.CompanyID)
		if err != nil {
			return err
		}
		if branch == nil {
			return domain.ErrNotFound
		}
		if actor.RestrictedTo(in.BranchID) {
			return domain.ErrForbidden
		}

		item, err := itemRepo.GetForCompany(ctx, in.ItemID, actor.CompanyID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		// Bloquea la fila del snapshot (SELECT FOR UPDATE): los ajustes al
		// mismo par item/branch quedan serializados.
		snap, err := snapRepo.GetForUpdate(ctx, in.ItemID, in.BranchID)
		if err != nil {
			return err
		}
		if snap == nil {
			// No se puede vender de un stock que nunca existió.
			if in.Type == entity.MovementTypeSALE {
				return domain.ErrInvalidOperation
			}
			snap = &entity.StockSnapshot{ItemID: in.ItemID, BranchID: in.BranchID}
		}

		sign := 1
		if in.Type == entity.MovementTypeSALE {
			sign = -1
		}

		prevTotal := stock.TotalBaseUnits(snap.BundleQuantity, snap.UnitQuantity, item.UnitsPerBundle)
		delta := stock.SignedDelta(in.BundleChange, in.UnitChange, item.UnitsPerBundle, sign)

		// Solo una entrada puede establecer saldo partiendo de un total que
		// quedaría negativo.
		if in.Type != entity.MovementTypeINBOUND && prevTotal+delta < 0 {
			return domain.ErrInsufficientStock
		}

		newTotal := prevTotal + delta
		snap.BundleQuantity, snap.UnitQuantity = stock.Normalize(newTotal, item.UnitsPerBundle)
		snap.LastUpdated = now
		if err := snapRepo.Upsert(ctx, snap); err != nil {
			return err
		}

		userID := actor.UserID
		mov := &entity.Movement{
			TransactionID: txID,
			ItemID:        in.ItemID,
			BranchID:      in.BranchID,
			UserID:        &userID,
			Type:          in.Type,
			BundleChange:  in.BundleChange * sign,
			UnitChange:    in.UnitChange * sign,
			Timestamp:     now,
		}
		if in.Note != "" {
			note := in.Note
			mov.Note = &note
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}

		if stock.ShouldAlert(prevTotal, newTotal, in.Type, uc.threshold) {
			alert = &pendingAlert{
				itemID:     item.ID,
				branchID:   branch.ID,
				itemName:   item.Name,
				branchName: branch.Name,
				bundles:    snap.BundleQuantity,
				units:      snap.UnitQuantity,
			}
		}

		result = snap
		return nil
	})
	if err != nil {
		metrics.Adjustments.WithLabelValues(in.Type, "rejected").Inc()
		return nil, err
	}

	metrics.Adjustments.WithLabelValues(in.Type, "committed").Inc()

	if alert != nil {
		// Fuera de la transacción y en best-effort: una notificación caída o
		// duplicada es aceptable, un ajuste revertido por ella no.
		go uc.notifyLowStock(context.WithoutCancel(ctx), actor.CompanyID, alert)
	}
	return result, nil
}

// notifyLowStock resuelve los managers de la empresa y entrega la alerta al
// despachador externo.
func (uc *AdjustStockUseCase) notifyLowStock(ctx context.Context, companyID int64, a *pendingAlert) {
	tokens, err := uc.userRepo.ListManagerPushTokens(ctx, companyID)
	if err != nil {
		log.Error().Err(err).Int64("company_id", companyID).Msg("resolver destinatarios de alerta")
		return
	}
	if len(tokens) == 0 {
		return
	}

	metrics.LowStockAlerts.Inc()
	uc.dispatcher.Dispatch(ctx, dto.PushNotification{
		RecipientTokens: tokens,
		Title:           fmt.Sprintf("Stock bajo: %s", a.itemName),
		Body: fmt.Sprintf("Quedan %d bulto(s) y %d unidad(es) de %s en %s.",
			a.bundles, a.units, a.itemName, a.branchName),
		Data: dto.PushNotifData{ItemID: a.itemID, BranchID: a.branchID},
	})
}
