package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

type fakeSummaryRepo struct{ summaries []*entity.MonthlySummary }

func (r fakeSummaryRepo) CreateBatch(context.Context, []*entity.MonthlySummary) error { return nil }

func (r fakeSummaryRepo) ListForItem(context.Context, int64, int64) ([]*entity.MonthlySummary, error) {
	return r.summaries, nil
}

func setupQuery(t *testing.T) (*fakeStore, *inventory.StockQueryUseCase) {
	t.Helper()
	return setupQueryWithSummaries(t, nil)
}

func setupQueryWithSummaries(t *testing.T, summaries []*entity.MonthlySummary) (*fakeStore, *inventory.StockQueryUseCase) {
	t.Helper()
	store := newFakeStore()
	store.branches[branchID] = &entity.Branch{ID: branchID, CompanyID: companyID, Name: "Sucursal Centro"}
	store.items[itemID] = &entity.Item{ID: itemID, CompanyID: companyID, Name: "Gaseosa 350ml", UnitsPerBundle: 12}

	uc := inventory.NewStockQueryUseCase(fakeBranchRepo{store}, fakeSnapshotRepo{store}, fakeMovementRepo{store}, fakeSummaryRepo{summaries: summaries})
	return store, uc
}

func TestGetBranchStock_Lista(t *testing.T) {
	store, uc := setupQuery(t)
	setSnapshot(store, 3, 5)

	rows, err := uc.GetBranchStock(context.Background(), actorSinRestriccion(), branchID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, itemID, rows[0].ItemID)
	assert.Equal(t, 3, rows[0].BundleQuantity)
	assert.Equal(t, 5, rows[0].UnitQuantity)
}

func TestGetBranchStock_SucursalAjena_NotFound(t *testing.T) {
	store, uc := setupQuery(t)
	store.branches[branchID].CompanyID = 99

	_, err := uc.GetBranchStock(context.Background(), actorSinRestriccion(), branchID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetBranchStock_ActorRestringido_Forbidden(t *testing.T) {
	_, uc := setupQuery(t)

	otra := int64(99)
	actor := inventory.Actor{UserID: userID, CompanyID: companyID, BranchID: &otra}
	_, err := uc.GetBranchStock(context.Background(), actor, branchID)
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetMovements_PaginaYTotales(t *testing.T) {
	store, uc := setupQuery(t)
	for i := 0; i < 5; i++ {
		store.movements = append(store.movements, &entity.Movement{
			ID: int64(i + 1), ItemID: itemID, BranchID: branchID,
			Type: entity.MovementTypeSALE, UnitChange: -1,
			Timestamp: time.Now(),
		})
	}

	page, err := uc.GetMovements(context.Background(), actorSinRestriccion(), branchID, itemID, dto.PageRequest{Page: 1, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Data, 2)
	assert.Equal(t, int64(5), page.Data[0].MovementID, "más recientes primero")
}

func TestGetMovements_DefaultsDePaginacion(t *testing.T) {
	_, uc := setupQuery(t)

	page, err := uc.GetMovements(context.Background(), actorSinRestriccion(), branchID, itemID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Data)
}

func TestGetMonthlySummaries_Lista(t *testing.T) {
	_, uc := setupQueryWithSummaries(t, []*entity.MonthlySummary{
		{ItemID: itemID, BranchID: branchID, Year: 2026, Month: 2, TotalSaleUnits: 4},
	})

	list, err := uc.GetMonthlySummaries(context.Background(), actorSinRestriccion(), branchID, itemID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2026, list[0].Year)
	assert.Equal(t, 2, list[0].Month)
	assert.Equal(t, 4, list[0].TotalSaleUnits)
}

func TestGetMonthlySummaries_SucursalAjena_NotFound(t *testing.T) {
	store, uc := setupQuery(t)
	store.branches[branchID].CompanyID = 99

	_, err := uc.GetMonthlySummaries(context.Background(), actorSinRestriccion(), branchID, itemID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetMovements_ActorRestringido_Forbidden(t *testing.T) {
	_, uc := setupQuery(t)

	otra := int64(99)
	actor := inventory.Actor{UserID: userID, CompanyID: companyID, BranchID: &otra}
	_, err := uc.GetMovements(context.Background(), actor, branchID, itemID, dto.PageRequest{})
	require.ErrorIs(t, err, domain.ErrForbidden)
}
