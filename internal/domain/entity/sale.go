package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en caja.
const (
	PaymentCash   = "Cash"
	PaymentCard   = "Card"
	PaymentMobile = "Mobile"
	PaymentCredit = "Credit"
)

// IsValidPaymentMethod indica si el método de pago pertenece al enum.
func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMobile, PaymentCredit:
		return true
	}
	return false
}

// Sale es un evento inmutable del libro de ventas (append-only).
// MedicineID es una referencia débil: eliminar el medicamento no borra la venta.
// BatchNumber es informativo (primer lote consumido); cuando la venta abarca
// varios lotes no identifica todo el consumo.
type Sale struct {
	ID            string
	MedicineID    string
	BrandName     string
	GenericName   string
	Quantity      int
	UnitPrice     decimal.Decimal
	TotalAmount   decimal.Decimal // UnitPrice * Quantity
	BatchNumber   *string
	CustomerName  *string
	PaymentMethod string
	Date          time.Time
	CreatedAt     time.Time
}
