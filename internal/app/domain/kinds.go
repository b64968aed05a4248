package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrObjectNotFound is returned when no object of a kind carries the requested name.
	ErrObjectNotFound = errors.New("object not found")
	// ErrUnknownObjectType is returned for kinds outside the inventory and automation model.
	ErrUnknownObjectType = errors.New("unknown object type")
	// ErrNameRequired is returned when an object is created or updated without a name.
	ErrNameRequired = errors.New("name is required")
	// ErrInvalidWorkflow is returned when a workflow graph breaks its structural rules.
	ErrInvalidWorkflow = errors.New("invalid workflow")
)

// Kind identifies one object family handled by the factory.
type Kind string

const (
	// KindDevice is a network device.
	KindDevice Kind = "device"
	// KindLink is a link between two devices.
	KindLink Kind = "link"
	// KindPool is a filter-defined group of devices and links.
	KindPool Kind = "pool"
	// KindUser is an application user.
	KindUser Kind = "user"
	// KindService is a runnable job that is not a workflow.
	KindService Kind = "service"
	// KindWorkflow is a job composed of other jobs.
	KindWorkflow Kind = "workflow"
)

// Kinds lists every kind in seeding order.
var Kinds = []Kind{KindUser, KindPool, KindDevice, KindLink, KindService, KindWorkflow}

// ParseKind resolves a kind name case-insensitively.
func ParseKind(raw string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Kinds {
		if kind == known {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownObjectType, raw)
}

// IsInventory reports whether the kind is a device or a link.
func (k Kind) IsInventory() bool {
	return k == KindDevice || k == KindLink
}

// Object is any named, serializable model instance.
type Object interface {
	ObjectName() string
	Serialized() map[string]any
}
