package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.MedicineRepository = (*MedicineRepo)(nil)

// MedicineRepo implementación del puerto MedicineRepository sobre PostgreSQL
// (usable con pool o tx). Los lotes viven como arreglo JSONB en la fila del
// medicamento: el orden de ingreso se preserva y el bloqueo de fila cubre el
// agregado completo.
type MedicineRepo struct {
	q Querier
}

// NewMedicineRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMedicineRepository(q Querier) *MedicineRepo {
	return &MedicineRepo{q: q}
}

const medicineColumns = `id, brand_name, generic_name, dosage, category, current_stock, unit_price, box_price, units_per_box, barcode, batches, created_at, updated_at`

// Create persiste un medicamento nuevo con sus lotes.
func (r *MedicineRepo) Create(ctx context.Context, med *entity.Medicine) error {
	batches, err := json.Marshal(med.Batches)
	if err != nil {
		return fmt.Errorf("marshal batches: %w", err)
	}
	query := `
		INSERT INTO medicines (` + medicineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.q.Exec(ctx, query,
		med.ID, med.BrandName, med.GenericName, med.Dosage, med.Category,
		med.CurrentStock, med.UnitPrice, med.BoxPrice, med.UnitsPerBox,
		med.Barcode, batches, med.CreatedAt, med.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert medicine: %w", err)
	}
	return nil
}

// GetByID obtiene un medicamento por ID.
func (r *MedicineRepo) GetByID(ctx context.Context, id string) (*entity.Medicine, error) {
	row := r.q.QueryRow(ctx, `SELECT `+medicineColumns+` FROM medicines WHERE id = $1`, id)
	return scanMedicine(row)
}

// GetByBarcode obtiene un medicamento por código de barras.
func (r *MedicineRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.Medicine, error) {
	row := r.q.QueryRow(ctx, `SELECT `+medicineColumns+` FROM medicines WHERE barcode = $1`, barcode)
	return scanMedicine(row)
}

// GetForUpdate obtiene el medicamento bloqueando su fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción del TxRunner.
func (r *MedicineRepo) GetForUpdate(ctx context.Context, id string) (*entity.Medicine, error) {
	row := r.q.QueryRow(ctx, `SELECT `+medicineColumns+` FROM medicines WHERE id = $1 FOR UPDATE`, id)
	return scanMedicine(row)
}

// Update reemplaza todos los campos del medicamento (incluidos los lotes).
func (r *MedicineRepo) Update(ctx context.Context, med *entity.Medicine) error {
	batches, err := json.Marshal(med.Batches)
	if err != nil {
		return fmt.Errorf("marshal batches: %w", err)
	}
	query := `
		UPDATE medicines
		SET brand_name = $2, generic_name = $3, dosage = $4, category = $5,
		    current_stock = $6, unit_price = $7, box_price = $8, units_per_box = $9,
		    barcode = $10, batches = $11, updated_at = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		med.ID, med.BrandName, med.GenericName, med.Dosage, med.Category,
		med.CurrentStock, med.UnitPrice, med.BoxPrice, med.UnitsPerBox,
		med.Barcode, batches, med.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update medicine: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateBatches escribe solo lotes + stock derivado (venta o ingreso de stock).
func (r *MedicineRepo) UpdateBatches(ctx context.Context, id string, batches []entity.Batch, currentStock int, updatedAt time.Time) error {
	raw, err := json.Marshal(batches)
	if err != nil {
		return fmt.Errorf("marshal batches: %w", err)
	}
	cmd, err := r.q.Exec(ctx,
		`UPDATE medicines SET batches = $2, current_stock = $3, updated_at = $4 WHERE id = $1`,
		id, raw, currentStock, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update batches: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista medicamentos con búsqueda (brand/generic, case-insensitive),
// filtro de categoría y paginación. Devuelve también el total sin paginar.
func (r *MedicineRepo) List(ctx context.Context, f repository.MedicineFilter) ([]*entity.Medicine, int, error) {
	where := ""
	args := []any{}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where = fmt.Sprintf(" WHERE (brand_name ILIKE $%d OR generic_name ILIKE $%d)", len(args), len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		cond := fmt.Sprintf("category = $%d", len(args))
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM medicines`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count medicines: %w", err)
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`SELECT `+medicineColumns+` FROM medicines`+where+
		` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list medicines: %w", err)
	}
	defer rows.Close()

	list, err := collectMedicines(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListAll devuelve todos los medicamentos (alertas y dashboard).
func (r *MedicineRepo) ListAll(ctx context.Context) ([]*entity.Medicine, error) {
	rows, err := r.q.Query(ctx, `SELECT `+medicineColumns+` FROM medicines ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list all medicines: %w", err)
	}
	defer rows.Close()
	return collectMedicines(rows)
}

// Categories devuelve las categorías distintas, ordenadas.
func (r *MedicineRepo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT category FROM medicines ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Delete elimina un medicamento por ID (borrado físico).
func (r *MedicineRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM medicines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete medicine: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanMedicine(row pgx.Row) (*entity.Medicine, error) {
	var m entity.Medicine
	var batches []byte
	err := row.Scan(
		&m.ID, &m.BrandName, &m.GenericName, &m.Dosage, &m.Category,
		&m.CurrentStock, &m.UnitPrice, &m.BoxPrice, &m.UnitsPerBox,
		&m.Barcode, &batches, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medicine: %w", err)
	}
	if err := json.Unmarshal(batches, &m.Batches); err != nil {
		return nil, fmt.Errorf("unmarshal batches: %w", err)
	}
	return &m, nil
}

func collectMedicines(rows pgx.Rows) ([]*entity.Medicine, error) {
	var list []*entity.Medicine
	for rows.Next() {
		var m entity.Medicine
		var batches []byte
		if err := rows.Scan(
			&m.ID, &m.BrandName, &m.GenericName, &m.Dosage, &m.Category,
			&m.CurrentStock, &m.UnitPrice, &m.BoxPrice, &m.UnitsPerBox,
			&m.Barcode, &batches, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan medicine: %w", err)
		}
		if err := json.Unmarshal(batches, &m.Batches); err != nil {
			return nil, fmt.Errorf("unmarshal batches: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
