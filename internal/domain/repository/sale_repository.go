package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// SaleRepository define el puerto del libro de ventas (append-only: no hay
// Update ni Delete). Las lecturas pueden fallar con domain.ErrUnavailable si
// la conexión se pierde; el dashboard degrada a cero en ese caso.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context) ([]*entity.Sale, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Sale, error)
	TotalAmount(ctx context.Context) (decimal.Decimal, error)
}
