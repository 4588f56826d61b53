package usecase

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

// TxRunner ejecuta una función dentro de una transacción de BD, con
// repositorios atados a esa tx. El ingreso de stock lo necesita para leer los
// lotes con bloqueo de fila y no pisar una venta concurrente.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		medRepo repository.MedicineRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// MedicineUseCase casos de uso CRUD e ingreso de stock para medicamentos.
// CurrentStock nunca lo aporta el caller: en create, update e ingreso se
// recalcula siempre como la suma de los lotes.
type MedicineUseCase struct {
	repo     repository.MedicineRepository
	txRunner TxRunner
}

// NewMedicineUseCase construye el caso de uso.
func NewMedicineUseCase(repo repository.MedicineRepository, txRunner TxRunner) *MedicineUseCase {
	return &MedicineUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un medicamento con sus lotes iniciales y el stock derivado.
func (uc *MedicineUseCase) Create(ctx context.Context, in dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	if err := validateMedicineInput(in); err != nil {
		return nil, err
	}
	batches, err := toBatches(in.Batches)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	med := &entity.Medicine{
		ID:           uuid.New().String(),
		BrandName:    in.BrandName,
		GenericName:  in.GenericName,
		Dosage:       in.Dosage,
		Category:     in.Category,
		CurrentStock: inventory.TotalStock(batches),
		UnitPrice:    *in.UnitPrice,
		BoxPrice:     *in.BoxPrice,
		UnitsPerBox:  in.UnitsPerBox,
		Barcode:      in.Barcode,
		Batches:      batches,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if med.UnitsPerBox == 0 {
		med.UnitsPerBox = 1
	}
	if err := uc.repo.Create(ctx, med); err != nil {
		return nil, err
	}
	return toMedicineResponse(med), nil
}

// GetByID obtiene un medicamento por ID.
func (uc *MedicineUseCase) GetByID(ctx context.Context, id string) (*dto.MedicineResponse, error) {
	med, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, domain.ErrNotFound
	}
	return toMedicineResponse(med), nil
}

// GetByBarcode busca por código de barras (único si está presente).
func (uc *MedicineUseCase) GetByBarcode(ctx context.Context, barcode string) (*dto.MedicineResponse, error) {
	if barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	med, err := uc.repo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, domain.ErrNotFound
	}
	return toMedicineResponse(med), nil
}

// Update reemplaza los campos y los lotes del medicamento (actualización
// completa). El stock se rederiva de los lotes recibidos; cualquier valor
// de stock que el caller crea estar enviando se ignora.
func (uc *MedicineUseCase) Update(ctx context.Context, id string, in dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	if err := validateMedicineInput(in); err != nil {
		return nil, err
	}
	batches, err := toBatches(in.Batches)
	if err != nil {
		return nil, err
	}
	med, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, domain.ErrNotFound
	}
	med.BrandName = in.BrandName
	med.GenericName = in.GenericName
	med.Dosage = in.Dosage
	med.Category = in.Category
	med.UnitPrice = *in.UnitPrice
	med.BoxPrice = *in.BoxPrice
	med.UnitsPerBox = in.UnitsPerBox
	if med.UnitsPerBox == 0 {
		med.UnitsPerBox = 1
	}
	med.Barcode = in.Barcode
	med.Batches = batches
	med.CurrentStock = inventory.TotalStock(batches)
	med.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, med); err != nil {
		return nil, err
	}
	return toMedicineResponse(med), nil
}

// AddBatches anexa lotes al final de la secuencia (ingreso de stock) y
// rederiva el stock. El orden de ingreso define la prioridad de consumo.
//
// El read-modify-write corre dentro de una transacción con bloqueo de fila
// (GetForUpdate), igual que la venta: un ingreso que leyera sin bloquear
// podría pisar una venta que comitea entre la lectura y la escritura y
// resucitar unidades ya vendidas.
func (uc *MedicineUseCase) AddBatches(ctx context.Context, id string, in dto.AddBatchesRequest) (*dto.MedicineResponse, error) {
	incoming, err := toBatches(in.Batches)
	if err != nil {
		return nil, err
	}
	if len(incoming) == 0 {
		return nil, domain.ErrInvalidInput
	}
	var med *entity.Medicine
	err = uc.txRunner.Run(ctx, func(
		medRepo repository.MedicineRepository,
		_ repository.SaleRepository,
	) error {
		med, err = medRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if med == nil {
			return domain.ErrNotFound
		}
		med.Batches = append(med.Batches, incoming...)
		med.CurrentStock = inventory.TotalStock(med.Batches)
		med.UpdatedAt = time.Now()
		return medRepo.UpdateBatches(ctx, med.ID, med.Batches, med.CurrentStock, med.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	return toMedicineResponse(med), nil
}

// List lista medicamentos con búsqueda por nombre, filtro de categoría y paginación.
func (uc *MedicineUseCase) List(ctx context.Context, f repository.MedicineFilter) (*dto.MedicineListResponse, error) {
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MedicineResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMedicineResponse(m))
	}
	return &dto.MedicineListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: total},
	}, nil
}

// Categories devuelve las categorías distintas existentes.
func (uc *MedicineUseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.repo.Categories(ctx)
}

// Delete elimina un medicamento (borrado físico, sin soft-delete).
// Las ventas que lo referencian se conservan: la referencia es débil.
func (uc *MedicineUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// validateMedicineInput valida el cuerpo en la frontera del modelo: campos
// requeridos presentes y numéricos bien formados. Un medicamento nunca debe
// poder construirse con un precio ausente.
func validateMedicineInput(in dto.CreateMedicineRequest) error {
	if in.BrandName == "" || in.GenericName == "" || in.Dosage == "" || in.Category == "" {
		return domain.ErrInvalidInput
	}
	if in.UnitPrice == nil || in.BoxPrice == nil {
		return domain.ErrInvalidInput
	}
	if in.UnitPrice.LessThan(decimal.Zero) || in.BoxPrice.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if in.UnitsPerBox < 0 {
		return domain.ErrInvalidInput
	}
	if in.Barcode != nil && *in.Barcode == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// toBatches valida y convierte los lotes del request. Cada lote requiere
// número, cantidad positiva y fecha de vencimiento.
func toBatches(in []dto.BatchDTO) ([]entity.Batch, error) {
	batches := make([]entity.Batch, 0, len(in))
	for _, b := range in {
		if b.BatchNumber == "" || b.Quantity <= 0 || b.ExpiryDate.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		batches = append(batches, entity.Batch{
			BatchNumber: b.BatchNumber,
			Quantity:    b.Quantity,
			ExpiryDate:  b.ExpiryDate,
		})
	}
	return batches, nil
}

func toBatchDTOs(batches []entity.Batch) []dto.BatchDTO {
	out := make([]dto.BatchDTO, 0, len(batches))
	for _, b := range batches {
		out = append(out, dto.BatchDTO{
			BatchNumber: b.BatchNumber,
			Quantity:    b.Quantity,
			ExpiryDate:  b.ExpiryDate,
		})
	}
	return out
}

func toMedicineResponse(m *entity.Medicine) *dto.MedicineResponse {
	if m == nil {
		return nil
	}
	return &dto.MedicineResponse{
		ID:           m.ID,
		BrandName:    m.BrandName,
		GenericName:  m.GenericName,
		Dosage:       m.Dosage,
		Category:     m.Category,
		CurrentStock: m.CurrentStock,
		UnitPrice:    m.UnitPrice,
		BoxPrice:     m.BoxPrice,
		UnitsPerBox:  m.UnitsPerBox,
		Barcode:      m.Barcode,
		Batches:      toBatchDTOs(m.Batches),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
