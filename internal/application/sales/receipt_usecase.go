package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// ReceiptUseCase genera el recibo PDF de una venta ya registrada.
type ReceiptUseCase struct {
	saleRepo     repository.SaleRepository
	generator    ReceiptPDFGenerator
	pharmacyName string
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(saleRepo repository.SaleRepository, generator ReceiptPDFGenerator, pharmacyName string) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, generator: generator, pharmacyName: pharmacyName}
}

// DownloadReceiptPDF recupera la venta y genera el PDF del recibo.
// Retorna (pdfBytes, filename, nil) o domain.ErrNotFound si la venta no existe.
func (uc *ReceiptUseCase) DownloadReceiptPDF(ctx context.Context, saleID string) ([]byte, string, error) {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}
	pdfBytes, err := uc.generator.GenerateReceiptPDF(ctx, sale, uc.pharmacyName)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generar PDF: %w", err)
	}
	filename := fmt.Sprintf("recibo-%s.pdf", sale.ID)
	return pdfBytes, filename, nil
}
