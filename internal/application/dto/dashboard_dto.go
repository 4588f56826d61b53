package dto

import "github.com/shopspring/decimal"

// DashboardResponse respuesta de GET /api/dashboard.
//
// ExpiringSoonCount cuenta lotes con 0 <= días <= 15: a diferencia de las
// alertas, los lotes ya vencidos NO se cuentan aquí. La asimetría es
// comportamiento observado del negocio y se mantiene a propósito.
type DashboardResponse struct {
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"` // Σ stock * unit_price
	LowStockCount       int             `json:"low_stock_count"`
	ExpiringSoonCount   int             `json:"expiring_soon_count"`
	TotalSalesValue     decimal.Decimal `json:"total_sales_value"`
	RecentSales         []SaleResponse  `json:"recent_sales"` // 10 más recientes
}
