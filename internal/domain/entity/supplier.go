package entity

import "time"

// Supplier proveedor de la farmacia (CRUD simple, sin reglas de negocio).
type Supplier struct {
	ID                  string
	Name                string
	ContactPerson       string
	Phone               string
	Email               string
	Address             string
	City                string
	Country             string
	LastDeliveryDate    *time.Time
	TotalStockDelivered int
	Notes               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
