package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Farmacia-api/internal/domain/inventory"
)

func TestDaysUntilExpiry(t *testing.T) {
	hoy := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	casos := []struct {
		nombre string
		expiry time.Time
		want   int
	}{
		{"mismo instante", hoy, 0},
		{"vence mañana", hoy.AddDate(0, 0, 1), 1},
		{"vence en 15 días", hoy.AddDate(0, 0, 15), 15},
		{"vencido ayer", hoy.AddDate(0, 0, -1), -1},
		{"vencido hace una semana", hoy.AddDate(0, 0, -7), -7},
		{"fracción de día redondea hacia arriba", hoy.Add(time.Hour), 1},
		{"fracción negativa redondea hacia cero", hoy.Add(-time.Hour), 0},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.want, inventory.DaysUntilExpiry(c.expiry, hoy))
		})
	}
}
