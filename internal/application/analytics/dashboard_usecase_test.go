package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/analytics"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeMedicineRepo struct {
	repository.MedicineRepository
	meds    []*entity.Medicine
	listErr error
}

func (f *fakeMedicineRepo) ListAll(_ context.Context) ([]*entity.Medicine, error) {
	return f.meds, f.listErr
}

type fakeSaleRepo struct {
	repository.SaleRepository
	total     decimal.Decimal
	totalErr  error
	recent    []*entity.Sale
	recentErr error
	gotLimit  int
}

func (f *fakeSaleRepo) TotalAmount(_ context.Context) (decimal.Decimal, error) {
	return f.total, f.totalErr
}

func (f *fakeSaleRepo) ListRecent(_ context.Context, limit int) ([]*entity.Sale, error) {
	f.gotLimit = limit
	return f.recent, f.recentErr
}

func precio(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGetDashboard_ValorDeInventario(t *testing.T) {
	medRepo := &fakeMedicineRepo{meds: []*entity.Medicine{
		{ID: "m1", CurrentStock: 10, UnitPrice: precio("2.00")},
		{ID: "m2", CurrentStock: 0, UnitPrice: precio("5.00")},
	}}
	saleRepo := &fakeSaleRepo{total: precio("35.50")}

	uc := analytics.NewDashboardUseCase(medRepo, saleRepo)
	out, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.True(t, out.TotalInventoryValue.Equal(precio("20.00")),
		"10*2.00 + 0*5.00 = 20.00, obtuvo %s", out.TotalInventoryValue)
	assert.True(t, out.TotalSalesValue.Equal(precio("35.50")))
	assert.Equal(t, 2, out.LowStockCount, "ambos tienen stock <= 10")
}

func TestGetDashboard_VencePronto_ExcluyeVencidos(t *testing.T) {
	now := time.Now()
	medRepo := &fakeMedicineRepo{meds: []*entity.Medicine{
		{ID: "m1", CurrentStock: 50, UnitPrice: precio("1"), Batches: []entity.Batch{
			{BatchNumber: "A", Quantity: 5, ExpiryDate: now.AddDate(0, 0, 10)},  // cuenta
			{BatchNumber: "B", Quantity: 5, ExpiryDate: now.AddDate(0, 0, 20)},  // fuera de ventana
			{BatchNumber: "C", Quantity: 5, ExpiryDate: now.AddDate(0, 0, -2)},  // vencido: NO cuenta
		}},
	}}
	saleRepo := &fakeSaleRepo{total: decimal.Zero}

	uc := analytics.NewDashboardUseCase(medRepo, saleRepo)
	out, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, out.ExpiringSoonCount,
		"el dashboard cuenta solo 0 <= días <= 15; los vencidos quedan fuera")
}

func TestGetDashboard_VentasRecientes(t *testing.T) {
	medRepo := &fakeMedicineRepo{}
	saleRepo := &fakeSaleRepo{
		total: precio("10"),
		recent: []*entity.Sale{
			{ID: "s1", TotalAmount: precio("4"), UnitPrice: precio("4")},
			{ID: "s2", TotalAmount: precio("6"), UnitPrice: precio("6")},
		},
	}

	uc := analytics.NewDashboardUseCase(medRepo, saleRepo)
	out, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, saleRepo.gotLimit, "debe pedir exactamente las 10 más recientes")
	require.Len(t, out.RecentSales, 2)
	assert.Equal(t, "s1", out.RecentSales[0].ID)
}

func TestGetDashboard_DegradaSiElLibroNoEstaDisponible(t *testing.T) {
	medRepo := &fakeMedicineRepo{meds: []*entity.Medicine{
		{ID: "m1", CurrentStock: 10, UnitPrice: precio("2")},
	}}
	saleRepo := &fakeSaleRepo{
		totalErr:  domain.ErrUnavailable,
		recentErr: domain.ErrUnavailable,
	}

	uc := analytics.NewDashboardUseCase(medRepo, saleRepo)
	out, err := uc.GetDashboard(context.Background())
	require.NoError(t, err, "ErrUnavailable en ventas no debe tumbar el dashboard")

	assert.True(t, out.TotalSalesValue.IsZero())
	assert.Empty(t, out.RecentSales)
	assert.True(t, out.TotalInventoryValue.Equal(precio("20")),
		"las métricas de inventario se calculan igual")
}

func TestGetDashboard_OtroErrorDelLibroSePropaga(t *testing.T) {
	medRepo := &fakeMedicineRepo{}
	saleRepo := &fakeSaleRepo{totalErr: errors.New("query malformada")}

	uc := analytics.NewDashboardUseCase(medRepo, saleRepo)
	_, err := uc.GetDashboard(context.Background())
	assert.Error(t, err, "solo ErrUnavailable degrada; otros errores se propagan")
}

func TestGetDashboard_ErrorDeInventarioEsFatal(t *testing.T) {
	medRepo := &fakeMedicineRepo{listErr: errors.New("conexión perdida")}
	saleRepo := &fakeSaleRepo{}

	uc := analytics.NewDashboardUseCase(medRepo, saleRepo)
	_, err := uc.GetDashboard(context.Background())
	assert.Error(t, err, "sin inventario no hay dashboard")
}
