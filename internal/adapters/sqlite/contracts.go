package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/fr0stylo/enms/internal/app/domain"
	"github.com/fr0stylo/enms/internal/app/ports"
	"github.com/fr0stylo/enms/internal/db/queries"
)

type storeDatabase interface {
	WithTx(ctx context.Context, fn func(*queries.Queries) error) error
}

func isConstraintViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}

func writeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if isConstraintViolation(err) {
		return fmt.Errorf("%s: %w: %v", op, ports.ErrIntegrityViolation, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func readErr(kind domain.Kind, name string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s %q", domain.ErrObjectNotFound, kind, name)
	}
	return fmt.Errorf("get %s %q: %w", kind, name, err)
}

func deleteErr(kind domain.Kind, name string, affected int64, err error) error {
	if err != nil {
		return writeErr(fmt.Sprintf("delete %s %q", kind, name), err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s %q", domain.ErrObjectNotFound, kind, name)
	}
	return nil
}
