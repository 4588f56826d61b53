package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/sales"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: simulan la transacción con un solo medicamento
// ──────────────────────────────────────────────────────────────────────────────

type fakeMedicineRepo struct {
	repository.MedicineRepository
	med *entity.Medicine // nil = no existe

	updatedBatches []entity.Batch
	updatedStock   int
	updateCalled   bool
}

func (f *fakeMedicineRepo) GetForUpdate(_ context.Context, id string) (*entity.Medicine, error) {
	if f.med == nil || f.med.ID != id {
		return nil, nil
	}
	return f.med, nil
}

func (f *fakeMedicineRepo) UpdateBatches(_ context.Context, _ string, batches []entity.Batch, currentStock int, _ time.Time) error {
	f.updateCalled = true
	f.updatedBatches = batches
	f.updatedStock = currentStock
	return nil
}

type fakeSaleRepo struct {
	repository.SaleRepository
	created []*entity.Sale
}

func (f *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	f.created = append(f.created, sale)
	return nil
}

func (f *fakeSaleRepo) List(_ context.Context) ([]*entity.Sale, error) {
	return f.created, nil
}

// fakeTxRunner ejecuta el callback directamente, sin transacción real.
type fakeTxRunner struct {
	medRepo  *fakeMedicineRepo
	saleRepo *fakeSaleRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	medRepo repository.MedicineRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return fn(f.medRepo, f.saleRepo)
}

func precio(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func newUseCase(med *entity.Medicine) (*sales.RecordSaleUseCase, *fakeMedicineRepo, *fakeSaleRepo) {
	medRepo := &fakeMedicineRepo{med: med}
	saleRepo := &fakeSaleRepo{}
	runner := &fakeTxRunner{medRepo: medRepo, saleRepo: saleRepo}
	return sales.NewRecordSaleUseCase(runner, saleRepo), medRepo, saleRepo
}

func medicamentoDePrueba() *entity.Medicine {
	exp := time.Now().AddDate(1, 0, 0)
	return &entity.Medicine{
		ID:           "med-1",
		BrandName:    "Dolex",
		GenericName:  "Acetaminofén",
		CurrentStock: 10,
		UnitPrice:    precio("1500"),
		Batches: []entity.Batch{
			{BatchNumber: "A", Quantity: 5, ExpiryDate: exp},
			{BatchNumber: "B", Quantity: 5, ExpiryDate: exp},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecordSale
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_VentaExitosa(t *testing.T) {
	uc, medRepo, saleRepo := newUseCase(medicamentoDePrueba())

	out, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		MedicineID:    "med-1",
		Quantity:      7,
		PaymentMethod: entity.PaymentCard,
	})
	require.NoError(t, err)

	// Lotes consumidos en orden: A completo, B parcial
	require.True(t, medRepo.updateCalled)
	require.Len(t, medRepo.updatedBatches, 1)
	assert.Equal(t, "B", medRepo.updatedBatches[0].BatchNumber)
	assert.Equal(t, 3, medRepo.updatedBatches[0].Quantity)
	assert.Equal(t, 3, medRepo.updatedStock)

	// Venta anexada al libro
	require.Len(t, saleRepo.created, 1)
	venta := saleRepo.created[0]
	assert.Equal(t, 7, venta.Quantity)
	assert.True(t, venta.TotalAmount.Equal(precio("10500")), "7 * 1500 = 10500")
	require.NotNil(t, venta.BatchNumber)
	assert.Equal(t, "A", *venta.BatchNumber, "la atribución es el primer lote consumido")

	assert.Equal(t, venta.ID, out.ID)
	assert.Equal(t, entity.PaymentCard, out.PaymentMethod)
}

func TestRecordSale_MetodoDePagoPorDefecto(t *testing.T) {
	uc, _, _ := newUseCase(medicamentoDePrueba())

	out, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		MedicineID: "med-1",
		Quantity:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCash, out.PaymentMethod)
}

func TestRecordSale_MetodoDePagoInvalido(t *testing.T) {
	uc, medRepo, _ := newUseCase(medicamentoDePrueba())

	_, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		MedicineID:    "med-1",
		Quantity:      1,
		PaymentMethod: "trueque",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, medRepo.updateCalled, "no debe tocarse el inventario")
}

func TestRecordSale_CantidadNoPositiva(t *testing.T) {
	uc, _, _ := newUseCase(medicamentoDePrueba())

	_, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		MedicineID: "med-1",
		Quantity:   0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordSale_MedicamentoInexistente(t *testing.T) {
	uc, _, saleRepo := newUseCase(nil)

	_, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		MedicineID: "no-existe",
		Quantity:   1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, saleRepo.created)
}

func TestRecordSale_StockInsuficiente_NoRegistraVenta(t *testing.T) {
	uc, medRepo, saleRepo := newUseCase(medicamentoDePrueba())

	_, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		MedicineID: "med-1",
		Quantity:   11, // stock total es 10
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.False(t, medRepo.updateCalled, "los lotes quedan intactos")
	assert.Empty(t, saleRepo.created, "no se anexa nada al libro")
}

func TestRecordSale_AgotaElMedicamento(t *testing.T) {
	uc, medRepo, _ := newUseCase(medicamentoDePrueba())

	_, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		MedicineID: "med-1",
		Quantity:   10,
	})
	require.NoError(t, err)
	assert.Empty(t, medRepo.updatedBatches, "todos los lotes en cero desaparecen")
	assert.Equal(t, 0, medRepo.updatedStock)
}

func TestList_DevuelveElLibro(t *testing.T) {
	uc, _, _ := newUseCase(medicamentoDePrueba())

	_, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{MedicineID: "med-1", Quantity: 2})
	require.NoError(t, err)

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].Quantity)
}
