package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// SupplierUseCase CRUD de proveedores (mapeo de campos, sin reglas de stock).
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create registra un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" || in.Phone == "" || in.City == "" || in.Country == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:                  uuid.New().String(),
		Name:                in.Name,
		ContactPerson:       in.ContactPerson,
		Phone:               in.Phone,
		Email:               in.Email,
		Address:             in.Address,
		City:                in.City,
		Country:             in.Country,
		LastDeliveryDate:    in.LastDeliveryDate,
		TotalStockDelivered: in.TotalStockDelivered,
		Notes:               in.Notes,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(s), nil
}

// List lista todos los proveedores (más recientes primero).
func (uc *SupplierUseCase) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

// Update reemplaza los datos del proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" || in.Phone == "" || in.City == "" || in.Country == "" {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.Name = in.Name
	s.ContactPerson = in.ContactPerson
	s.Phone = in.Phone
	s.Email = in.Email
	s.Address = in.Address
	s.City = in.City
	s.Country = in.Country
	s.LastDeliveryDate = in.LastDeliveryDate
	s.TotalStockDelivered = in.TotalStockDelivered
	s.Notes = in.Notes
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:                  s.ID,
		Name:                s.Name,
		ContactPerson:       s.ContactPerson,
		Phone:               s.Phone,
		Email:               s.Email,
		Address:             s.Address,
		City:                s.City,
		Country:             s.Country,
		LastDeliveryDate:    s.LastDeliveryDate,
		TotalStockDelivered: s.TotalStockDelivered,
		Notes:               s.Notes,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}
