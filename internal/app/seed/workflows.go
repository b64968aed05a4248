package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/fr0stylo/enms/internal/app/domain"
	"github.com/fr0stylo/enms/internal/app/ports"
	"github.com/fr0stylo/enms/internal/app/services"
)

// CreateDefaultWorkflows creates the default services and the example
// workflows. The Napalm workflow reuses the Netmiko validation services, so the
// order matters.
func (s *Seeder) CreateDefaultWorkflows(ctx context.Context) error {
	for _, create := range []func(context.Context) error{
		s.CreateDefaultServices,
		s.CreateNetmikoWorkflow,
		s.CreateNapalmWorkflow,
		s.CreatePayloadTransferWorkflow,
	} {
		if err := create(ctx); err != nil {
			return err
		}
	}
	return nil
}

// CreateDefaultServices creates Start, End and the BGP example.
func (s *Seeder) CreateDefaultServices(ctx context.Context) error {
	return s.integrityRollback(ctx, "services", func(ctx context.Context, factory *services.Factory, _ ports.Store) error {
		return s.createServices(ctx, factory, defaultServices())
	})
}

// CreateNetmikoWorkflow creates Netmiko_VRF_workflow and its services.
func (s *Seeder) CreateNetmikoWorkflow(ctx context.Context) error {
	return s.createWorkflow(ctx, netmikoWorkflow())
}

// CreateNapalmWorkflow creates Napalm_VRF_workflow and its services.
func (s *Seeder) CreateNapalmWorkflow(ctx context.Context) error {
	return s.createWorkflow(ctx, napalmWorkflow())
}

// CreatePayloadTransferWorkflow creates payload_transfer_workflow and its services.
func (s *Seeder) CreatePayloadTransferWorkflow(ctx context.Context) error {
	return s.createWorkflow(ctx, payloadTransferWorkflow(s.cfg.RestBaseURL, s.cfg.AdminPassword))
}

func (s *Seeder) createWorkflow(ctx context.Context, fixture workflowFixture) error {
	return s.integrityRollback(ctx, fixture.Name, func(ctx context.Context, factory *services.Factory, _ ports.Store) error {
		if err := s.createServices(ctx, factory, fixture.Services); err != nil {
			return err
		}

		created, err := factory.Create(ctx, domain.KindWorkflow, map[string]any{
			"name":             fixture.Name,
			"description":      fixture.Description,
			"vendor":           fixture.Vendor,
			"operating_system": fixture.OperatingSystem,
		})
		if err != nil {
			return err
		}
		workflow := created.(domain.Workflow)
		workflow.AddJobs(fixture.Members...)

		for _, edge := range fixture.Edges {
			if _, err := workflow.Connect(edge[0], edge[1], true); err != nil {
				return err
			}
		}
		for index, position := range fixture.Positions {
			if err := workflow.SetPosition(index, position[0]*10, position[1]*10); err != nil {
				return err
			}
		}
		if err := workflow.ValidateComplete(); err != nil {
			return err
		}
		if _, err := factory.SaveWorkflow(ctx, workflow); err != nil {
			return fmt.Errorf("save workflow %q: %w", fixture.Name, err)
		}
		return nil
	})
}

// createServices creates each fixture service. Services target the example
// device only when it is part of the inventory.
func (s *Seeder) createServices(ctx context.Context, factory *services.Factory, fixtures []map[string]any) error {
	targets, err := s.exampleTargets(ctx, factory)
	if err != nil {
		return err
	}
	for _, fixture := range fixtures {
		props := make(map[string]any, len(fixture)+1)
		for key, value := range fixture {
			props[key] = value
		}
		if _, ok := props["devices"]; ok {
			props["devices"] = targets
		}
		if _, err := factory.Create(ctx, domain.KindService, props); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) exampleTargets(ctx context.Context, factory *services.Factory) ([]string, error) {
	_, err := factory.Fetch(ctx, domain.KindDevice, exampleDevice)
	switch {
	case err == nil:
		return []string{exampleDevice}, nil
	case errors.Is(err, domain.ErrObjectNotFound):
		s.logger.WarnContext(ctx, "example device missing, services created without targets", "device", exampleDevice)
		return []string{}, nil
	default:
		return nil, err
	}
}
