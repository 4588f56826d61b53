package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// MedicineFilter filtros del listado de medicamentos.
type MedicineFilter struct {
	Search   string // busca en brand_name y generic_name (case-insensitive)
	Category string // vacío = todas
	Limit    int
	Offset   int
}

// MedicineRepository define el puerto de persistencia para Medicine (DIP).
// GetForUpdate solo tiene sentido dentro de una transacción (bloqueo de fila).
type MedicineRepository interface {
	Create(ctx context.Context, med *entity.Medicine) error
	GetByID(ctx context.Context, id string) (*entity.Medicine, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Medicine, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Medicine, error)
	Update(ctx context.Context, med *entity.Medicine) error
	UpdateBatches(ctx context.Context, id string, batches []entity.Batch, currentStock int, updatedAt time.Time) error
	List(ctx context.Context, f MedicineFilter) ([]*entity.Medicine, int, error)
	ListAll(ctx context.Context) ([]*entity.Medicine, error)
	Categories(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
}
