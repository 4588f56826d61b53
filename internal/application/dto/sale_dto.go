package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest body para POST /api/sales.
type RecordSaleRequest struct {
	MedicineID    string  `json:"medicine_id"`
	Quantity      int     `json:"quantity"`
	CustomerName  *string `json:"customer_name,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"` // default Cash
}

// SaleResponse un evento del libro de ventas.
type SaleResponse struct {
	ID            string          `json:"id"`
	MedicineID    string          `json:"medicine_id"`
	BrandName     string          `json:"brand_name"`
	GenericName   string          `json:"generic_name"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	BatchNumber   *string         `json:"batch_number,omitempty"`
	CustomerName  *string         `json:"customer_name,omitempty"`
	PaymentMethod string          `json:"payment_method"`
	Date          time.Time       `json:"date"`
}
