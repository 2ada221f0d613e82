package inventory

import (
	"context"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// StockQueryUseCase consultas de solo lectura: stock actual de una sucursal y
// páginas del libro de movimientos. No requieren transacción.
type StockQueryUseCase struct {
	branchRepo repository.BranchRepository
	snapRepo   repository.SnapshotRepository
	movRepo    repository.MovementRepository
	sumRepo    repository.SummaryRepository
}

// NewStockQueryUseCase construye el caso de uso de consulta.
func NewStockQueryUseCase(
	branchRepo repository.BranchRepository,
	snapRepo repository.SnapshotRepository,
	movRepo repository.MovementRepository,
	sumRepo repository.SummaryRepository,
) *StockQueryUseCase {
	return &StockQueryUseCase{branchRepo: branchRepo, snapRepo: snapRepo, movRepo: movRepo, sumRepo: sumRepo}
}

// GetBranchStock lista los snapshots de una sucursal ordenados por nombre de
// artículo, con las mismas reglas de alcance que los ajustes.
func (uc *StockQueryUseCase) GetBranchStock(ctx context.Context, actor Actor, branchID int64) ([]dto.BranchStockDTO, error) {
	if actor.RestrictedTo(branchID) {
		return nil, domain.ErrForbidden
	}
	branch, err := uc.branchRepo.GetForCompany(ctx, branchID, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}

	rows, err := uc.snapRepo.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchStockDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.BranchStockDTO{
			ItemID:         r.Snapshot.ItemID,
			ItemName:       r.ItemName,
			SKU:            r.ItemSKU,
			BundleQuantity: r.Snapshot.BundleQuantity,
			UnitQuantity:   r.Snapshot.UnitQuantity,
			LastUpdated:    r.Snapshot.LastUpdated,
		})
	}
	return out, nil
}

// GetMovements devuelve una página del libro de movimientos de un artículo en
// una sucursal, más recientes primero.
func (uc *StockQueryUseCase) GetMovements(
	ctx context.Context,
	actor Actor,
	branchID, itemID int64,
	page dto.PageRequest,
) (*dto.MovementPageResponse, error) {
	page.DefaultPage()

	if actor.RestrictedTo(branchID) {
		return nil, domain.ErrForbidden
	}
	branch, err := uc.branchRepo.GetForCompany(ctx, branchID, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}

	movements, total, err := uc.movRepo.ListForItemInBranch(ctx, branchID, itemID, page.Page, page.Limit)
	if err != nil {
		return nil, err
	}

	data := make([]dto.MovementDTO, 0, len(movements))
	for _, m := range movements {
		d := dto.MovementDTO{
			MovementID:   m.ID,
			MovementType: m.Type,
			BundleChange: m.BundleChange,
			UnitChange:   m.UnitChange,
			Note:         m.Note,
			Timestamp:    m.Timestamp,
		}
		if m.UserID != nil {
			d.User = &dto.MovementUserDTO{UserID: *m.UserID}
			if m.UserName != nil {
				d.User.Name = *m.UserName
			}
			if m.UserLastname != nil {
				d.User.Lastname = *m.UserLastname
			}
		}
		data = append(data, d)
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + page.Limit - 1) / page.Limit
	}
	return &dto.MovementPageResponse{
		Data:       data,
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: totalPages,
	}, nil
}

// GetMonthlySummaries devuelve los totales mensuales archivados de un artículo
// en una sucursal, más recientes primero.
func (uc *StockQueryUseCase) GetMonthlySummaries(ctx context.Context, actor Actor, branchID, itemID int64) ([]dto.MonthlySummaryDTO, error) {
	if actor.RestrictedTo(branchID) {
		return nil, domain.ErrForbidden
	}
	branch, err := uc.branchRepo.GetForCompany(ctx, branchID, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}

	summaries, err := uc.sumRepo.ListForItem(ctx, itemID, branchID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MonthlySummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, dto.MonthlySummaryDTO{
			Year:                   s.Year,
			Month:                  s.Month,
			TotalInboundBundles:    s.TotalInboundBundles,
			TotalInboundUnits:      s.TotalInboundUnits,
			TotalSaleBundles:       s.TotalSaleBundles,
			TotalSaleUnits:         s.TotalSaleUnits,
			TotalAdjustmentBundles: s.TotalAdjustmentBundles,
			TotalAdjustmentUnits:   s.TotalAdjustmentUnits,
		})
	}
	return out, nil
}
