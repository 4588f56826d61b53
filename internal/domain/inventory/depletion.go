// Package inventory contiene los servicios de dominio del libro de lotes:
// consumo FIFO de lotes en ventas y aritmética de vencimientos.
package inventory

import (
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// ConsumedLot registra cuánto se tomó de un lote durante una venta.
type ConsumedLot struct {
	BatchNumber string
	Quantity    int
}

// Deplete consume `qty` unidades de la secuencia de lotes en su orden de
// almacenamiento (FIFO por orden de ingreso, NO por fecha de vencimiento:
// el lote ingresado primero se agota primero aunque otro venza antes).
//
// Devuelve la nueva secuencia sin los lotes que quedaron en cero y la lista
// de lotes consumidos, en orden de consumo. La secuencia de entrada no se
// modifica; ante error se devuelve (nil, nil, err) y el caller conserva el
// estado previo intacto.
//
// Errores: domain.ErrInvalidInput si qty <= 0; domain.ErrInsufficientStock
// si qty excede el stock total de la secuencia.
func Deplete(batches []entity.Batch, qty int) ([]entity.Batch, []ConsumedLot, error) {
	if qty <= 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	if qty > TotalStock(batches) {
		return nil, nil, domain.ErrInsufficientStock
	}

	remaining := qty
	updated := make([]entity.Batch, 0, len(batches))
	consumed := make([]ConsumedLot, 0, 1)
	for _, b := range batches {
		if remaining == 0 {
			updated = append(updated, b)
			continue
		}
		take := b.Quantity
		if take > remaining {
			take = remaining
		}
		remaining -= take
		consumed = append(consumed, ConsumedLot{BatchNumber: b.BatchNumber, Quantity: take})
		if left := b.Quantity - take; left > 0 {
			b.Quantity = left
			updated = append(updated, b)
		}
		// lote en cero: se elimina de la secuencia
	}
	return updated, consumed, nil
}

// TotalStock suma las cantidades de todos los lotes. Es la definición
// canónica de CurrentStock: debe recalcularse con esta función tras cada
// mutación de la secuencia.
func TotalStock(batches []entity.Batch) int {
	total := 0
	for _, b := range batches {
		total += b.Quantity
	}
	return total
}
