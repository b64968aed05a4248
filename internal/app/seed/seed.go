package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fr0stylo/enms/internal/app/domain"
	"github.com/fr0stylo/enms/internal/app/ports"
	"github.com/fr0stylo/enms/internal/app/services"
)

// Config selects what the seeder loads.
type Config struct {
	TopologyPath   string
	CreateExamples bool
	AdminPassword  string
	// RestBaseURL is the address the example REST call service targets.
	RestBaseURL string
}

// Seeder loads the default users, pools, parameters, inventory and example workflows.
type Seeder struct {
	store  ports.Store
	open   ports.WorkbookOpener
	logger *slog.Logger
	cfg    Config
}

// New constructs a seeder.
func New(store ports.Store, open ports.WorkbookOpener, logger *slog.Logger, cfg Config) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin"
	}
	if cfg.RestBaseURL == "" {
		cfg.RestBaseURL = "http://127.0.0.1:5000"
	}
	return &Seeder{store: store, open: open, logger: logger, cfg: cfg}
}

type step struct {
	name string
	run  func(context.Context) error
}

// Run executes every seed step in order. Steps are idempotent, so Run may be
// repeated against a populated database.
func (s *Seeder) Run(ctx context.Context) error {
	steps := []step{
		{"users", s.CreateDefaultUsers},
		{"pools", s.CreateDefaultPools},
		{"parameters", s.CreateDefaultParameters},
		{"network topology", s.CreateDefaultNetworkTopology},
	}
	if s.cfg.CreateExamples {
		steps = append(steps, step{"workflows", s.CreateDefaultWorkflows})
	}

	for _, st := range steps {
		started := time.Now()
		if err := st.run(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", st.name, err)
		}
		s.logger.InfoContext(ctx, "seed step completed", "step", st.name, "duration", time.Since(started))
	}
	return nil
}

// CreateDefaultUsers creates the admin account.
func (s *Seeder) CreateDefaultUsers(ctx context.Context) error {
	return s.integrityRollback(ctx, "users", func(ctx context.Context, factory *services.Factory, _ ports.Store) error {
		_, err := factory.Create(ctx, domain.KindUser, map[string]any{
			"name":        "admin",
			"email":       "admin@admin.com",
			"password":    s.cfg.AdminPassword,
			"permissions": []string{"Admin"},
		})
		return err
	})
}

// CreateDefaultPools creates the three built-in pools.
func (s *Seeder) CreateDefaultPools(ctx context.Context) error {
	return s.integrityRollback(ctx, "pools", func(ctx context.Context, factory *services.Factory, _ ports.Store) error {
		for _, pool := range defaultPools {
			if _, err := factory.Create(ctx, domain.KindPool, pool); err != nil {
				return err
			}
		}
		return nil
	})
}

// CreateDefaultParameters inserts the parameters singleton once.
func (s *Seeder) CreateDefaultParameters(ctx context.Context) error {
	return s.integrityRollback(ctx, "parameters", func(ctx context.Context, _ *services.Factory, store ports.Store) error {
		return store.CreateParameters(ctx, domain.DefaultParameters())
	})
}

// CreateDefaultNetworkTopology loads devices then links from the topology
// workbook, one transaction per sheet. Missing sheets are skipped and a
// missing workbook skips the step.
func (s *Seeder) CreateDefaultNetworkTopology(ctx context.Context) error {
	if s.cfg.TopologyPath == "" || s.open == nil {
		return nil
	}
	book, err := s.open(s.cfg.TopologyPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.WarnContext(ctx, "topology workbook not found", "path", s.cfg.TopologyPath)
			return nil
		}
		return err
	}
	defer func() { _ = book.Close() }()

	for _, kind := range []domain.Kind{domain.KindDevice, domain.KindLink} {
		records, err := book.Records(sheetName(kind))
		if errors.Is(err, ports.ErrSheetNotFound) {
			s.logger.DebugContext(ctx, "topology sheet missing", "sheet", sheetName(kind))
			continue
		}
		if err != nil {
			return err
		}

		err = s.integrityRollback(ctx, "topology "+string(kind), func(ctx context.Context, factory *services.Factory, _ ports.Store) error {
			for _, record := range records {
				if _, err := factory.Create(ctx, kind, record); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "topology sheet loaded", "sheet", sheetName(kind), "rows", len(records))
	}
	return nil
}

func sheetName(kind domain.Kind) string {
	switch kind {
	case domain.KindDevice:
		return "Device"
	case domain.KindLink:
		return "Link"
	default:
		return string(kind)
	}
}

// integrityRollback runs fn in one transaction. A constraint violation rolls
// the transaction back and is logged instead of returned.
func (s *Seeder) integrityRollback(ctx context.Context, name string, fn func(context.Context, *services.Factory, ports.Store) error) error {
	err := s.store.WithTx(ctx, func(tx ports.Store) error {
		return fn(ctx, services.NewFactory(tx), tx)
	})
	if errors.Is(err, ports.ErrIntegrityViolation) {
		s.logger.InfoContext(ctx, "seed step rolled back", "step", name, "reason", err)
		return nil
	}
	return err
}
