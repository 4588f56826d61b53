package postgres

import (
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Farmacia-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// mapUnavailable traduce fallos de conexión (clase 08, errores de red) a
// domain.ErrUnavailable para que los lectores puedan degradar; cualquier
// otro error se devuelve tal cual.
func mapUnavailable(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "08") {
		return domain.ErrUnavailable
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return domain.ErrUnavailable
	}
	return err
}
