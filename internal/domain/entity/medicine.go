package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Batch es un lote fechado de stock de un medicamento. Pertenece a un único
// Medicine y no tiene identidad fuera de él. Un lote con cantidad 0 se
// considera eliminado y no se conserva en la secuencia.
//
// El orden de la secuencia de lotes es el orden de ingreso, no el de
// vencimiento; ese orden define la prioridad de consumo en las ventas.
type Batch struct {
	BatchNumber string    `json:"batchNumber"`
	Quantity    int       `json:"quantity"`
	ExpiryDate  time.Time `json:"expiryDate"`
}

// Medicine representa un SKU medicamento/dosis de la farmacia (raíz de agregado).
// CurrentStock es siempre derivado: tras cada mutación debe cumplirse
// CurrentStock == suma de las cantidades de sus lotes. Nunca lo fija el caller.
type Medicine struct {
	ID           string
	BrandName    string
	GenericName  string
	Dosage       string
	Category     string
	CurrentStock int
	UnitPrice    decimal.Decimal
	BoxPrice     decimal.Decimal
	UnitsPerBox  int
	Barcode      *string // único si está presente
	Batches      []Batch
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
