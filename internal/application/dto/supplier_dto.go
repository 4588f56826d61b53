package dto

import "time"

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name                string     `json:"name"`
	ContactPerson       string     `json:"contact_person,omitempty"`
	Phone               string     `json:"phone"`
	Email               string     `json:"email,omitempty"`
	Address             string     `json:"address,omitempty"`
	City                string     `json:"city"`
	Country             string     `json:"country"`
	LastDeliveryDate    *time.Time `json:"last_delivery_date,omitempty"`
	TotalStockDelivered int        `json:"total_stock_delivered,omitempty"`
	Notes               string     `json:"notes,omitempty"`
}

// UpdateSupplierRequest body para PUT /api/suppliers/{id} (reemplazo completo).
type UpdateSupplierRequest = CreateSupplierRequest

// SupplierResponse representación de un proveedor.
type SupplierResponse struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	ContactPerson       string     `json:"contact_person,omitempty"`
	Phone               string     `json:"phone"`
	Email               string     `json:"email,omitempty"`
	Address             string     `json:"address,omitempty"`
	City                string     `json:"city"`
	Country             string     `json:"country"`
	LastDeliveryDate    *time.Time `json:"last_delivery_date,omitempty"`
	TotalStockDelivered int        `json:"total_stock_delivered"`
	Notes               string     `json:"notes,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
