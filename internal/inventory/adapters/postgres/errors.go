package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dejobratic/inventory/internal/inventory/ports"
	"github.com/jackc/pgx/v5/pgconn"
)

// classify tags driver errors with the ports error taxonomy.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 22: data exception, 23: integrity constraint violation.
		if strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23") {
			return fmt.Errorf("%w: %w", ports.ErrConstraintViolation, err)
		}
		return err
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %w", ports.ErrConnection, err)
	}

	return err
}
