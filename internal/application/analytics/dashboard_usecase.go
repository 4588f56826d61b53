// Package analytics contiene el caso de uso del dashboard de la farmacia:
// métricas de portafolio derivadas del inventario y del libro de ventas.
package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

const (
	recentSalesLimit = 10
	// Ventana de "vence pronto" del dashboard: 0..15 días. A diferencia de
	// las alertas, los lotes ya vencidos NO cuentan aquí; la asimetría es
	// comportamiento observado del negocio y se conserva.
	expiringSoonWindowDays = 15
)

// DashboardUseCase calcula las métricas del dashboard. Lecturas puras, sin
// bloqueos: puede correr en concurrencia con ventas y con las alertas.
type DashboardUseCase struct {
	medicineRepo repository.MedicineRepository
	saleRepo     repository.SaleRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(medicineRepo repository.MedicineRepository, saleRepo repository.SaleRepository) *DashboardUseCase {
	return &DashboardUseCase{medicineRepo: medicineRepo, saleRepo: saleRepo}
}

// GetDashboard arma la respuesta completa. Las tres consultas (inventario,
// total de ventas, ventas recientes) corren en paralelo.
//
// Degradación: si el libro de ventas no está disponible
// (domain.ErrUnavailable), las métricas de ventas quedan en cero/vacío y el
// dashboard se responde igual; un inventario inaccesible sí es error.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	type medsResult struct {
		meds []*entity.Medicine
		err  error
	}
	type totalResult struct {
		total decimal.Decimal
		err   error
	}
	type recentResult struct {
		sales []*entity.Sale
		err   error
	}

	medsCh := make(chan medsResult, 1)
	totalCh := make(chan totalResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		meds, err := uc.medicineRepo.ListAll(ctx)
		medsCh <- medsResult{meds, err}
	}()
	go func() {
		total, err := uc.saleRepo.TotalAmount(ctx)
		totalCh <- totalResult{total, err}
	}()
	go func() {
		sales, err := uc.saleRepo.ListRecent(ctx, recentSalesLimit)
		recentCh <- recentResult{sales, err}
	}()

	meds := <-medsCh
	total := <-totalCh
	recent := <-recentCh

	if meds.err != nil {
		return nil, meds.err
	}

	out := &dto.DashboardResponse{
		TotalSalesValue: decimal.Zero,
		RecentSales:     []dto.SaleResponse{},
	}
	foldInventory(out, meds.meds, time.Now())

	if err := firstLedgerError(total.err, recent.err); err != nil {
		return nil, err
	}
	if total.err == nil {
		out.TotalSalesValue = total.total
	}
	if recent.err == nil {
		for _, s := range recent.sales {
			out.RecentSales = append(out.RecentSales, toSaleResponse(s))
		}
	}
	return out, nil
}

// foldInventory acumula valor total, conteo de stock bajo y lotes por vencer.
func foldInventory(out *dto.DashboardResponse, meds []*entity.Medicine, today time.Time) {
	totalValue := decimal.Zero
	for _, m := range meds {
		stock := decimal.NewFromInt(int64(m.CurrentStock))
		totalValue = totalValue.Add(stock.Mul(m.UnitPrice))
		if m.CurrentStock <= 10 {
			out.LowStockCount++
		}
		for _, b := range m.Batches {
			days := inventory.DaysUntilExpiry(b.ExpiryDate, today)
			if days >= 0 && days <= expiringSoonWindowDays {
				out.ExpiringSoonCount++
			}
		}
	}
	out.TotalInventoryValue = totalValue
}

// firstLedgerError deja pasar ErrUnavailable (degradación) y propaga
// cualquier otro fallo del libro de ventas.
func firstLedgerError(errs ...error) error {
	for _, err := range errs {
		if err != nil && !errors.Is(err, domain.ErrUnavailable) {
			return err
		}
	}
	return nil
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:            s.ID,
		MedicineID:    s.MedicineID,
		BrandName:     s.BrandName,
		GenericName:   s.GenericName,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		TotalAmount:   s.TotalAmount,
		BatchNumber:   s.BatchNumber,
		CustomerName:  s.CustomerName,
		PaymentMethod: s.PaymentMethod,
		Date:          s.Date,
	}
}
