package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BatchDTO un lote dentro de un medicamento.
type BatchDTO struct {
	BatchNumber string    `json:"batch_number"`
	Quantity    int       `json:"quantity"`
	ExpiryDate  time.Time `json:"expiry_date"`
}

// CreateMedicineRequest body para POST /api/medicines. El stock NO se recibe:
// siempre se deriva de los lotes. Los precios son punteros para distinguir
// "campo ausente" de cero y rechazar cuerpos incompletos.
type CreateMedicineRequest struct {
	BrandName   string           `json:"brand_name"`
	GenericName string           `json:"generic_name"`
	Dosage      string           `json:"dosage"`
	Category    string           `json:"category"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	BoxPrice    *decimal.Decimal `json:"box_price"`
	UnitsPerBox int              `json:"units_per_box"`
	Barcode     *string          `json:"barcode,omitempty"`
	Batches     []BatchDTO       `json:"batches"`
}

// UpdateMedicineRequest body para PUT /api/medicines/{id}. Es una
// actualización completa: reemplaza campos y lotes, y el stock se rederiva.
type UpdateMedicineRequest = CreateMedicineRequest

// AddBatchesRequest body para POST /api/medicines/{id}/batches (ingreso de
// stock): los lotes se anexan al final de la secuencia existente.
type AddBatchesRequest struct {
	Batches []BatchDTO `json:"batches"`
}

// MedicineResponse representación de un medicamento en respuestas.
type MedicineResponse struct {
	ID           string          `json:"id"`
	BrandName    string          `json:"brand_name"`
	GenericName  string          `json:"generic_name"`
	Dosage       string          `json:"dosage"`
	Category     string          `json:"category"`
	CurrentStock int             `json:"current_stock"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	BoxPrice     decimal.Decimal `json:"box_price"`
	UnitsPerBox  int             `json:"units_per_box"`
	Barcode      *string         `json:"barcode,omitempty"`
	Batches      []BatchDTO      `json:"batches"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// MedicineListResponse respuesta del listado paginado.
type MedicineListResponse struct {
	Items []MedicineResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
