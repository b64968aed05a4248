package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/fr0stylo/enms/internal/app/domain"
	"github.com/fr0stylo/enms/internal/db/queries"
)

// GetUser fetches a user by name.
func (s *Store) GetUser(ctx context.Context, name string) (domain.User, error) {
	row, err := s.q.GetUserByName(ctx, name)
	if err != nil {
		return domain.User{}, readErr(domain.KindUser, name, err)
	}
	return mapUser(row), nil
}

// ListUsers lists users ordered by name.
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.q.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapUser(row))
	}
	return out, nil
}

// SaveUser inserts or updates a user. A non-empty Password replaces the stored hash.
func (s *Store) SaveUser(ctx context.Context, user domain.User) (domain.User, error) {
	if user.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.User{}, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
		user.Password = ""
	}
	permissions, err := json.Marshal(nonNil(user.Permissions))
	if err != nil {
		return domain.User{}, err
	}

	if user.ID == 0 {
		row, err := s.q.CreateUser(ctx, queries.CreateUserParams{
			Name:         user.Name,
			Email:        user.Email,
			PasswordHash: user.PasswordHash,
			Permissions:  string(permissions),
		})
		if err != nil {
			return domain.User{}, writeErr("create user", err)
		}
		return mapUser(row), nil
	}
	err = s.q.UpdateUser(ctx, queries.UpdateUserParams{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Permissions:  string(permissions),
		ID:           user.ID,
	})
	if err != nil {
		return domain.User{}, writeErr("update user", err)
	}
	return user, nil
}

// DeleteUser removes a user by name.
func (s *Store) DeleteUser(ctx context.Context, name string) error {
	affected, err := s.q.DeleteUserByName(ctx, name)
	return deleteErr(domain.KindUser, name, affected, err)
}

// GetPool fetches a pool by name.
func (s *Store) GetPool(ctx context.Context, name string) (domain.Pool, error) {
	row, err := s.q.GetPoolByName(ctx, name)
	if err != nil {
		return domain.Pool{}, readErr(domain.KindPool, name, err)
	}
	return mapPool(row)
}

// ListPools lists pools ordered by name.
func (s *Store) ListPools(ctx context.Context) ([]domain.Pool, error) {
	rows, err := s.q.ListPools(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Pool, 0, len(rows))
	for _, row := range rows {
		pool, err := mapPool(row)
		if err != nil {
			return nil, err
		}
		out = append(out, pool)
	}
	return out, nil
}

// SavePool inserts or updates a pool.
func (s *Store) SavePool(ctx context.Context, pool domain.Pool) (domain.Pool, error) {
	filters, err := json.Marshal(pool.PoolFilters)
	if err != nil {
		return domain.Pool{}, err
	}
	if pool.ID == 0 {
		row, err := s.q.CreatePool(ctx, queries.CreatePoolParams{
			Name:        pool.Name,
			Description: pool.Description,
			Filters:     string(filters),
		})
		if err != nil {
			return domain.Pool{}, writeErr("create pool", err)
		}
		return mapPool(row)
	}
	if err := s.q.UpdatePool(ctx, queries.UpdatePoolParams{
		Description: pool.Description,
		Filters:     string(filters),
		ID:          pool.ID,
	}); err != nil {
		return domain.Pool{}, writeErr("update pool", err)
	}
	return pool, nil
}

// DeletePool removes a pool by name.
func (s *Store) DeletePool(ctx context.Context, name string) error {
	affected, err := s.q.DeletePoolByName(ctx, name)
	return deleteErr(domain.KindPool, name, affected, err)
}

// CreateParameters inserts the parameters singleton. A second insert violates
// the primary key.
func (s *Store) CreateParameters(ctx context.Context, params domain.Parameters) error {
	return writeErr("create parameters", s.q.CreateParameters(ctx, queries.CreateParametersParams{
		DefaultLongitude:  params.DefaultLongitude,
		DefaultLatitude:   params.DefaultLatitude,
		DefaultZoomLevel:  int64(params.DefaultZoomLevel),
		DefaultView:       params.DefaultView,
		ClusterScanSubnet: params.ClusterScanSubnet,
		ClusterScanPort:   int64(params.ClusterScanPort),
		MailSender:        params.MailSender,
		OpennmsRestApi:    params.OpenNMSRestAPI,
		OpennmsDevices:    params.OpenNMSDevices,
		OpennmsLogin:      params.OpenNMSLogin,
	}))
}

// GetParameters returns the parameters singleton.
func (s *Store) GetParameters(ctx context.Context) (domain.Parameters, error) {
	row, err := s.q.GetParameters(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Parameters{}, fmt.Errorf("%w: parameters", domain.ErrObjectNotFound)
		}
		return domain.Parameters{}, err
	}
	return domain.Parameters{
		DefaultLongitude:  row.DefaultLongitude,
		DefaultLatitude:   row.DefaultLatitude,
		DefaultZoomLevel:  int(row.DefaultZoomLevel),
		DefaultView:       row.DefaultView,
		ClusterScanSubnet: row.ClusterScanSubnet,
		ClusterScanPort:   int(row.ClusterScanPort),
		MailSender:        row.MailSender,
		OpenNMSRestAPI:    row.OpennmsRestApi,
		OpenNMSDevices:    row.OpennmsDevices,
		OpenNMSLogin:      row.OpennmsLogin,
	}, nil
}

// GetDevice fetches a device by name.
func (s *Store) GetDevice(ctx context.Context, name string) (domain.Device, error) {
	row, err := s.q.GetDeviceByName(ctx, name)
	if err != nil {
		return domain.Device{}, readErr(domain.KindDevice, name, err)
	}
	return mapDevice(row), nil
}

// ListDevices lists devices ordered by name.
func (s *Store) ListDevices(ctx context.Context) ([]domain.Device, error) {
	rows, err := s.q.ListDevices(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Device, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapDevice(row))
	}
	return out, nil
}

// SaveDevice inserts or updates a device.
func (s *Store) SaveDevice(ctx context.Context, device domain.Device) (domain.Device, error) {
	if device.ID == 0 {
		row, err := s.q.CreateDevice(ctx, queries.CreateDeviceParams{
			Name:            device.Name,
			Description:     device.Description,
			Subtype:         device.Subtype,
			Vendor:          device.Vendor,
			Model:           device.Model,
			OperatingSystem: device.OperatingSystem,
			OsVersion:       device.OSVersion,
			IpAddress:       device.IPAddress,
			Location:        device.Location,
			Longitude:       device.Longitude,
			Latitude:        device.Latitude,
			Username:        device.Username,
			Password:        device.Password,
			EnablePassword:  device.EnablePassword,
			Port:            int64(device.Port),
		})
		if err != nil {
			return domain.Device{}, writeErr("create device", err)
		}
		return mapDevice(row), nil
	}
	err := s.q.UpdateDevice(ctx, queries.UpdateDeviceParams{
		Description:     device.Description,
		Subtype:         device.Subtype,
		Vendor:          device.Vendor,
		Model:           device.Model,
		OperatingSystem: device.OperatingSystem,
		OsVersion:       device.OSVersion,
		IpAddress:       device.IPAddress,
		Location:        device.Location,
		Longitude:       device.Longitude,
		Latitude:        device.Latitude,
		Username:        device.Username,
		Password:        device.Password,
		EnablePassword:  device.EnablePassword,
		Port:            int64(device.Port),
		ID:              device.ID,
	})
	if err != nil {
		return domain.Device{}, writeErr("update device", err)
	}
	return device, nil
}

// DeleteDevice removes a device and, through cascades, its links.
func (s *Store) DeleteDevice(ctx context.Context, name string) error {
	affected, err := s.q.DeleteDeviceByName(ctx, name)
	return deleteErr(domain.KindDevice, name, affected, err)
}

// GetLink fetches a link by name.
func (s *Store) GetLink(ctx context.Context, name string) (domain.Link, error) {
	row, err := s.q.GetLinkByName(ctx, name)
	if err != nil {
		return domain.Link{}, readErr(domain.KindLink, name, err)
	}
	return mapLinkRow(queries.ListLinksRow(row)), nil
}

// ListLinks lists links ordered by name.
func (s *Store) ListLinks(ctx context.Context) ([]domain.Link, error) {
	rows, err := s.q.ListLinks(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Link, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapLinkRow(row))
	}
	return out, nil
}

// SaveLink inserts or updates a link. Endpoints are resolved by device name.
func (s *Store) SaveLink(ctx context.Context, link domain.Link) (domain.Link, error) {
	source, err := s.q.GetDeviceByName(ctx, link.Source)
	if err != nil {
		return domain.Link{}, fmt.Errorf("link %q source: %w", link.Name, readErr(domain.KindDevice, link.Source, err))
	}
	destination, err := s.q.GetDeviceByName(ctx, link.Destination)
	if err != nil {
		return domain.Link{}, fmt.Errorf("link %q destination: %w", link.Name, readErr(domain.KindDevice, link.Destination, err))
	}

	if link.ID == 0 {
		row, err := s.q.CreateLink(ctx, queries.CreateLinkParams{
			Name:          link.Name,
			Description:   link.Description,
			Subtype:       link.Subtype,
			Vendor:        link.Vendor,
			Model:         link.Model,
			Location:      link.Location,
			SourceID:      source.ID,
			DestinationID: destination.ID,
		})
		if err != nil {
			return domain.Link{}, writeErr("create link", err)
		}
		link.ID = row.ID
		return link, nil
	}
	err = s.q.UpdateLink(ctx, queries.UpdateLinkParams{
		Description:   link.Description,
		Subtype:       link.Subtype,
		Vendor:        link.Vendor,
		Model:         link.Model,
		Location:      link.Location,
		SourceID:      source.ID,
		DestinationID: destination.ID,
		ID:            link.ID,
	})
	if err != nil {
		return domain.Link{}, writeErr("update link", err)
	}
	return link, nil
}

// DeleteLink removes a link by name.
func (s *Store) DeleteLink(ctx context.Context, name string) error {
	affected, err := s.q.DeleteLinkByName(ctx, name)
	return deleteErr(domain.KindLink, name, affected, err)
}

func mapUser(row queries.User) domain.User {
	var permissions []string
	_ = json.Unmarshal([]byte(row.Permissions), &permissions)
	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Permissions:  permissions,
	}
}

func mapPool(row queries.Pool) (domain.Pool, error) {
	pool := domain.Pool{ID: row.ID, Name: row.Name, Description: row.Description}
	if row.Filters != "" {
		if err := json.Unmarshal([]byte(row.Filters), &pool.PoolFilters); err != nil {
			return domain.Pool{}, fmt.Errorf("decode pool %q filters: %w", row.Name, err)
		}
	}
	return pool, nil
}

func mapDevice(row queries.Device) domain.Device {
	return domain.Device{
		ID:              row.ID,
		Name:            row.Name,
		Description:     row.Description,
		Subtype:         row.Subtype,
		Vendor:          row.Vendor,
		Model:           row.Model,
		OperatingSystem: row.OperatingSystem,
		OSVersion:       row.OsVersion,
		IPAddress:       row.IpAddress,
		Location:        row.Location,
		Longitude:       row.Longitude,
		Latitude:        row.Latitude,
		Username:        row.Username,
		Password:        row.Password,
		EnablePassword:  row.EnablePassword,
		Port:            int(row.Port),
	}
}

func mapLinkRow(row queries.ListLinksRow) domain.Link {
	return domain.Link{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Subtype:     row.Subtype,
		Vendor:      row.Vendor,
		Model:       row.Model,
		Location:    row.Location,
		Source:      row.SourceName,
		Destination: row.DestinationName,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
