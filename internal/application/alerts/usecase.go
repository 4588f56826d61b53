// Package alerts clasifica el riesgo operativo del inventario: medicamentos
// con stock bajo y lotes próximos a vencer (o ya vencidos).
package alerts

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// Umbrales fijos del negocio.
const (
	reorderThreshold   = 10 // stock <= 10 entra a reposición
	expiryWindowDays   = 15 // vence en <= 15 días (incluye vencidos: días negativos)
	criticalExpiryDays = 3
)

// UseCase calcula el reporte de alertas. Lectura pura: no muta nada y es
// seguro ejecutarlo en concurrencia con ventas (tolera snapshots levemente
// desactualizados).
type UseCase struct {
	medicineRepo repository.MedicineRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(medicineRepo repository.MedicineRepository) *UseCase {
	return &UseCase{medicineRepo: medicineRepo}
}

// GetAlerts carga todos los medicamentos y arma el reporte al día asOf.
// asOf en cero usa la hora actual.
func (uc *UseCase) GetAlerts(ctx context.Context, asOf time.Time) (*dto.AlertReportDTO, error) {
	if asOf.IsZero() {
		asOf = time.Now()
	}
	meds, err := uc.medicineRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return BuildReport(meds, asOf), nil
}

// BuildReport es la función pura del motor de alertas: dos llamadas con el
// mismo estado y la misma fecha producen reportes idénticos.
//
// Reglas: reposición para stock <= 10; vencimiento para lotes con
// daysRemaining = ceil((vencimiento - hoy) / 24h) <= 15, sin cota inferior
// (los ya vencidos aparecen con días negativos). ExpiringItems se ordena por
// días ascendente (lo más urgente primero), ReorderItems por stock
// ascendente; los empates conservan el orden original.
func BuildReport(meds []*entity.Medicine, today time.Time) *dto.AlertReportDTO {
	expiring := make([]dto.ExpiringItemDTO, 0)
	reorder := make([]dto.ReorderItemDTO, 0)

	for _, m := range meds {
		if m.CurrentStock <= reorderThreshold {
			reorder = append(reorder, dto.ReorderItemDTO{
				MedicineID:   m.ID,
				BrandName:    m.BrandName,
				GenericName:  m.GenericName,
				Category:     m.Category,
				CurrentStock: m.CurrentStock,
			})
		}
		for _, b := range m.Batches {
			days := inventory.DaysUntilExpiry(b.ExpiryDate, today)
			if days <= expiryWindowDays {
				expiring = append(expiring, dto.ExpiringItemDTO{
					MedicineID:    m.ID,
					BrandName:     m.BrandName,
					GenericName:   m.GenericName,
					Category:      m.Category,
					BatchNumber:   b.BatchNumber,
					Quantity:      b.Quantity,
					ExpiryDate:    b.ExpiryDate,
					DaysRemaining: days,
				})
			}
		}
	}

	sort.SliceStable(expiring, func(i, j int) bool {
		return expiring[i].DaysRemaining < expiring[j].DaysRemaining
	})
	sort.SliceStable(reorder, func(i, j int) bool {
		return reorder[i].CurrentStock < reorder[j].CurrentStock
	})

	summary := dto.AlertSummaryDTO{
		TotalExpiring: len(expiring),
		TotalReorder:  len(reorder),
	}
	for _, e := range expiring {
		if e.DaysRemaining <= criticalExpiryDays {
			summary.CriticalExpiry++
		}
	}
	for _, r := range reorder {
		if r.CurrentStock == 0 {
			summary.OutOfStock++
		}
	}

	return &dto.AlertReportDTO{
		ExpiringItems: expiring,
		ReorderItems:  reorder,
		Summary:       summary,
	}
}
