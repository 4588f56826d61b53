package sales

import (
	"context"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que leer los lotes, consumirlos,
// persistir el nuevo estado y anexar la venta sea una unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		medRepo repository.MedicineRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReceiptPDFGenerator genera el PDF del recibo de una venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, pharmacyName string) ([]byte, error)
}
