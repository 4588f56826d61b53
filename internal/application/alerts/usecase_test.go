package alerts_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/alerts"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

var hoy = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

func med(id string, stock int, batches ...entity.Batch) *entity.Medicine {
	return &entity.Medicine{
		ID:           id,
		BrandName:    "Marca-" + id,
		GenericName:  "Generico-" + id,
		Category:     "analgesico",
		CurrentStock: stock,
		Batches:      batches,
	}
}

func loteQueVenceEn(num string, dias int, qty int) entity.Batch {
	return entity.Batch{BatchNumber: num, Quantity: qty, ExpiryDate: hoy.AddDate(0, 0, dias)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación por vencimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildReport_VentanaDeVencimiento(t *testing.T) {
	meds := []*entity.Medicine{
		med("m1", 50,
			loteQueVenceEn("L15", 15, 10), // dentro de la ventana
			loteQueVenceEn("L16", 16, 10), // fuera: 16 > 15
			loteQueVenceEn("L0", 0, 5),    // vence hoy
			loteQueVenceEn("L-3", -3, 2),  // ya vencido: también entra
		),
	}

	report := alerts.BuildReport(meds, hoy)

	require.Len(t, report.ExpiringItems, 3, "15 días, hoy y vencido entran; 16 días no")
	nums := []string{}
	for _, e := range report.ExpiringItems {
		nums = append(nums, e.BatchNumber)
	}
	assert.NotContains(t, nums, "L16")
	assert.Contains(t, nums, "L-3", "los lotes vencidos aparecen con días negativos")
}

func TestBuildReport_OrdenAscendentePorDias(t *testing.T) {
	meds := []*entity.Medicine{
		med("m1", 50,
			loteQueVenceEn("L10", 10, 1),
			loteQueVenceEn("L-2", -2, 1),
			loteQueVenceEn("L3", 3, 1),
		),
	}

	report := alerts.BuildReport(meds, hoy)

	require.Len(t, report.ExpiringItems, 3)
	assert.Equal(t, "L-2", report.ExpiringItems[0].BatchNumber, "lo más urgente primero")
	assert.Equal(t, "L3", report.ExpiringItems[1].BatchNumber)
	assert.Equal(t, "L10", report.ExpiringItems[2].BatchNumber)
	assert.Equal(t, -2, report.ExpiringItems[0].DaysRemaining)
}

func TestBuildReport_EmpatesConservanOrdenOriginal(t *testing.T) {
	meds := []*entity.Medicine{
		med("m1", 50, loteQueVenceEn("primero", 5, 1)),
		med("m2", 50, loteQueVenceEn("segundo", 5, 1)),
	}

	report := alerts.BuildReport(meds, hoy)

	require.Len(t, report.ExpiringItems, 2)
	assert.Equal(t, "primero", report.ExpiringItems[0].BatchNumber)
	assert.Equal(t, "segundo", report.ExpiringItems[1].BatchNumber)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación por reposición
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildReport_UmbralDeReposicion(t *testing.T) {
	meds := []*entity.Medicine{
		med("m10", 10), // en el umbral: entra
		med("m11", 11), // sobre el umbral: no entra
		med("m0", 0),   // agotado
		med("m5", 5),
	}

	report := alerts.BuildReport(meds, hoy)

	require.Len(t, report.ReorderItems, 3)
	// Orden ascendente por stock
	assert.Equal(t, "m0", report.ReorderItems[0].MedicineID)
	assert.Equal(t, "m5", report.ReorderItems[1].MedicineID)
	assert.Equal(t, "m10", report.ReorderItems[2].MedicineID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resumen
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildReport_Resumen(t *testing.T) {
	meds := []*entity.Medicine{
		med("m1", 0,
			loteQueVenceEn("L3", 3, 1),   // crítico: exactamente en el límite
			loteQueVenceEn("L-1", -1, 1), // vencido: también crítico
			loteQueVenceEn("L4", 4, 1),   // en ventana pero no crítico
			loteQueVenceEn("L10", 10, 1),
		),
		med("m2", 4),
	}

	report := alerts.BuildReport(meds, hoy)

	assert.Equal(t, 4, report.Summary.TotalExpiring)
	assert.Equal(t, 2, report.Summary.TotalReorder)
	assert.Equal(t, 2, report.Summary.CriticalExpiry, "L3 y L-1 están en <= 3 días; L4 no")
	assert.Equal(t, 1, report.Summary.OutOfStock, "solo m1 tiene stock cero")
}

func TestBuildReport_SinMedicamentos(t *testing.T) {
	report := alerts.BuildReport(nil, hoy)

	assert.Empty(t, report.ExpiringItems)
	assert.Empty(t, report.ReorderItems)
	assert.Equal(t, 0, report.Summary.TotalExpiring)
	assert.Equal(t, 0, report.Summary.OutOfStock)
}

func TestBuildReport_EsDeterminista(t *testing.T) {
	meds := []*entity.Medicine{
		med("m1", 3, loteQueVenceEn("L1", 1, 5), loteQueVenceEn("L9", 9, 5)),
		med("m2", 20, loteQueVenceEn("L4", 4, 2)),
	}

	a := alerts.BuildReport(meds, hoy)
	b := alerts.BuildReport(meds, hoy)
	assert.Equal(t, a, b, "mismo estado y misma fecha deben producir el mismo reporte")
}
