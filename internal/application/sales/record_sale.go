// Package sales contiene los casos de uso del libro de ventas: registrar una
// venta (consumo transaccional de lotes) y generar su recibo.
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// RecordSaleUseCase registra ventas de forma transaccional: bloquea la fila
// del medicamento (SELECT FOR UPDATE), consume lotes en orden de ingreso,
// persiste lotes + stock derivado y anexa el evento al libro de ventas.
// Dos ventas concurrentes sobre el mismo medicamento se serializan en el
// bloqueo de fila; ninguna puede partir del mismo estado previo.
type RecordSaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository) *RecordSaleUseCase {
	return &RecordSaleUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// RecordSale ejecuta la venta. Errores terminales, sin reintentos internos:
// domain.ErrInvalidInput (cantidad no positiva, método de pago fuera del enum),
// domain.ErrNotFound (medicamento inexistente) y domain.ErrInsufficientStock
// (la cantidad excede el stock; los lotes quedan intactos).
func (uc *RecordSaleUseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if in.MedicineID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	method := in.PaymentMethod
	if method == "" {
		method = entity.PaymentCash
	}
	if !entity.IsValidPaymentMethod(method) {
		return nil, domain.ErrInvalidInput
	}

	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(
		medRepo repository.MedicineRepository,
		saleRepo repository.SaleRepository,
	) error {
		med, err := medRepo.GetForUpdate(ctx, in.MedicineID)
		if err != nil {
			return err
		}
		if med == nil {
			return domain.ErrNotFound
		}

		updated, consumed, err := inventory.Deplete(med.Batches, in.Quantity)
		if err != nil {
			return err
		}
		now := time.Now()
		newStock := inventory.TotalStock(updated)
		if err := medRepo.UpdateBatches(ctx, med.ID, updated, newStock, now); err != nil {
			return err
		}

		// Atribución de lote informativa: primer lote consumido. Si la venta
		// abarcó varios lotes, el dato queda incompleto a propósito.
		var batchNumber *string
		if len(consumed) > 0 {
			batchNumber = &consumed[0].BatchNumber
		}

		sale = &entity.Sale{
			ID:            uuid.New().String(),
			MedicineID:    med.ID,
			BrandName:     med.BrandName,
			GenericName:   med.GenericName,
			Quantity:      in.Quantity,
			UnitPrice:     med.UnitPrice,
			TotalAmount:   med.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
			BatchNumber:   batchNumber,
			CustomerName:  in.CustomerName,
			PaymentMethod: method,
			Date:          now,
			CreatedAt:     now,
		}
		return saleRepo.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List devuelve todo el libro de ventas, más recientes primero.
func (uc *RecordSaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSaleResponse(s))
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
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
