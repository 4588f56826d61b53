package inventory

import (
	"math"
	"time"
)

// DaysUntilExpiry devuelve ceil((expiry - today) / 24h). Un lote ya vencido
// produce un valor negativo; el día del vencimiento produce 0.
func DaysUntilExpiry(expiry, today time.Time) int {
	return int(math.Ceil(expiry.Sub(today).Hours() / 24))
}
