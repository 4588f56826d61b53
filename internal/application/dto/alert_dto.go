package dto

import "time"

// ExpiringItemDTO un lote próximo a vencer (o ya vencido: días negativos).
type ExpiringItemDTO struct {
	MedicineID    string    `json:"medicine_id"`
	BrandName     string    `json:"brand_name"`
	GenericName   string    `json:"generic_name"`
	Category      string    `json:"category"`
	BatchNumber   string    `json:"batch_number"`
	Quantity      int       `json:"quantity"`
	ExpiryDate    time.Time `json:"expiry_date"`
	DaysRemaining int       `json:"days_remaining"`
}

// ReorderItemDTO un medicamento con stock en o bajo el umbral de reposición.
type ReorderItemDTO struct {
	MedicineID   string `json:"medicine_id"`
	BrandName    string `json:"brand_name"`
	GenericName  string `json:"generic_name"`
	Category     string `json:"category"`
	CurrentStock int    `json:"current_stock"`
}

// AlertSummaryDTO contadores derivados de las dos listas.
type AlertSummaryDTO struct {
	TotalExpiring  int `json:"total_expiring"`
	TotalReorder   int `json:"total_reorder"`
	CriticalExpiry int `json:"critical_expiry"` // vence en <= 3 días
	OutOfStock     int `json:"out_of_stock"`    // stock == 0
}

// AlertReportDTO respuesta de GET /api/alerts.
type AlertReportDTO struct {
	ExpiringItems []ExpiringItemDTO `json:"expiring_items"`
	ReorderItems  []ReorderItemDTO  `json:"reorder_items"`
	Summary       AlertSummaryDTO   `json:"summary"`
}
