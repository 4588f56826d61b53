package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del libro de ventas sobre PostgreSQL (usable con
// pool o tx). Solo inserta y lee: el libro es append-only. Los errores de
// conexión en lecturas se traducen a domain.ErrUnavailable para que el
// dashboard pueda degradar.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, medicine_id, brand_name, generic_name, quantity, unit_price, total_amount, batch_number, customer_name, payment_method, date, created_at`

// Create anexa una venta al libro.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.MedicineID, sale.BrandName, sale.GenericName,
		sale.Quantity, sale.UnitPrice, sale.TotalAmount,
		sale.BatchNumber, sale.CustomerName, sale.PaymentMethod,
		sale.Date, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id).Scan(
		&s.ID, &s.MedicineID, &s.BrandName, &s.GenericName,
		&s.Quantity, &s.UnitPrice, &s.TotalAmount,
		&s.BatchNumber, &s.CustomerName, &s.PaymentMethod,
		&s.Date, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapUnavailable(fmt.Errorf("get sale: %w", err))
	}
	return &s, nil
}

// List devuelve todas las ventas, más recientes primero.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	return r.query(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY date DESC`)
}

// ListRecent devuelve las `limit` ventas más recientes por fecha.
func (r *SaleRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Sale, error) {
	return r.query(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY date DESC LIMIT $1`, limit)
}

// TotalAmount suma total_amount sobre todo el libro (cero si está vacío).
func (r *SaleRepo) TotalAmount(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(total_amount), 0) FROM sales`).Scan(&total)
	if err != nil {
		return decimal.Zero, mapUnavailable(fmt.Errorf("sum sales: %w", err))
	}
	return total, nil
}

func (r *SaleRepo) query(ctx context.Context, sql string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapUnavailable(fmt.Errorf("list sales: %w", err))
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.MedicineID, &s.BrandName, &s.GenericName,
			&s.Quantity, &s.UnitPrice, &s.TotalAmount,
			&s.BatchNumber, &s.CustomerName, &s.PaymentMethod,
			&s.Date, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, mapUnavailable(rows.Err())
}
