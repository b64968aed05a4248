package sqlite

import (
	"context"
	"fmt"

	"github.com/fr0stylo/enms/internal/app/domain"
	"github.com/fr0stylo/enms/internal/app/ports"
	"github.com/fr0stylo/enms/internal/db"
	"github.com/fr0stylo/enms/internal/db/queries"
)

// Store implements ports.Store over the sqlc queries.
type Store struct {
	database storeDatabase
	q        *queries.Queries
	inTx     bool
}

// NewStore creates a store sharing the database handle.
func NewStore(database *db.Database) *Store {
	return &Store{database: database, q: database.Queries}
}

// WithTx runs fn in a transaction. Calls made on a transaction-bound store reuse it.
func (s *Store) WithTx(ctx context.Context, fn func(ports.Store) error) error {
	if s.inTx {
		return fn(s)
	}
	return s.database.WithTx(ctx, func(q *queries.Queries) error {
		return fn(&Store{database: s.database, q: q, inTx: true})
	})
}

// Count returns the number of stored objects of kind.
func (s *Store) Count(ctx context.Context, kind domain.Kind) (int64, error) {
	switch kind {
	case domain.KindUser:
		return s.q.CountUsers(ctx)
	case domain.KindPool:
		return s.q.CountPools(ctx)
	case domain.KindDevice:
		return s.q.CountDevices(ctx)
	case domain.KindLink:
		return s.q.CountLinks(ctx)
	case domain.KindService:
		return s.q.CountServices(ctx)
	case domain.KindWorkflow:
		return s.q.CountWorkflows(ctx)
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownObjectType, kind)
	}
}

var _ ports.Store = (*Store)(nil)
