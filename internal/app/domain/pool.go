package domain

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// PoolFilters are the per-property constraints of a pool. An empty value
// matches every object; a value with its regex flag set is a regular expression.
type PoolFilters struct {
	DeviceName                 string `mapstructure:"device_name" json:"device_name"`
	DeviceNameRegex            bool   `mapstructure:"device_name_regex" json:"device_name_regex"`
	DeviceDescription          string `mapstructure:"device_description" json:"device_description"`
	DeviceDescriptionRegex     bool   `mapstructure:"device_description_regex" json:"device_description_regex"`
	DeviceVendor               string `mapstructure:"device_vendor" json:"device_vendor"`
	DeviceVendorRegex          bool   `mapstructure:"device_vendor_regex" json:"device_vendor_regex"`
	DeviceModel                string `mapstructure:"device_model" json:"device_model"`
	DeviceModelRegex           bool   `mapstructure:"device_model_regex" json:"device_model_regex"`
	DeviceOperatingSystem      string `mapstructure:"device_operating_system" json:"device_operating_system"`
	DeviceOperatingSystemRegex bool   `mapstructure:"device_operating_system_regex" json:"device_operating_system_regex"`
	DeviceLocation             string `mapstructure:"device_location" json:"device_location"`
	DeviceLocationRegex        bool   `mapstructure:"device_location_regex" json:"device_location_regex"`
	LinkName                   string `mapstructure:"link_name" json:"link_name"`
	LinkNameRegex              bool   `mapstructure:"link_name_regex" json:"link_name_regex"`
	LinkDescription            string `mapstructure:"link_description" json:"link_description"`
	LinkDescriptionRegex       bool   `mapstructure:"link_description_regex" json:"link_description_regex"`
	LinkVendor                 string `mapstructure:"link_vendor" json:"link_vendor"`
	LinkVendorRegex            bool   `mapstructure:"link_vendor_regex" json:"link_vendor_regex"`
	LinkModel                  string `mapstructure:"link_model" json:"link_model"`
	LinkModelRegex             bool   `mapstructure:"link_model_regex" json:"link_model_regex"`
	LinkLocation               string `mapstructure:"link_location" json:"link_location"`
	LinkLocationRegex          bool   `mapstructure:"link_location_regex" json:"link_location_regex"`
}

// Pool groups devices and links through property filters.
type Pool struct {
	ID          int64  `mapstructure:"-"`
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	PoolFilters `mapstructure:",squash"`
}

// ObjectName implements Object.
func (p Pool) ObjectName() string { return p.Name }

// Serialized returns the pool with its filters flattened.
func (p Pool) Serialized() map[string]any {
	out := map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
	}
	for _, rule := range p.deviceRules(Device{}) {
		out[rule.key] = rule.pattern
		out[rule.key+"_regex"] = rule.regex
	}
	for _, rule := range p.linkRules(Link{}) {
		out[rule.key] = rule.pattern
		out[rule.key+"_regex"] = rule.regex
	}
	return out
}

type filterRule struct {
	key     string
	pattern string
	regex   bool
	value   string
}

func (p Pool) deviceRules(d Device) []filterRule {
	f := p.PoolFilters
	return []filterRule{
		{"device_name", f.DeviceName, f.DeviceNameRegex, d.Name},
		{"device_description", f.DeviceDescription, f.DeviceDescriptionRegex, d.Description},
		{"device_vendor", f.DeviceVendor, f.DeviceVendorRegex, d.Vendor},
		{"device_model", f.DeviceModel, f.DeviceModelRegex, d.Model},
		{"device_operating_system", f.DeviceOperatingSystem, f.DeviceOperatingSystemRegex, d.OperatingSystem},
		{"device_location", f.DeviceLocation, f.DeviceLocationRegex, d.Location},
	}
}

func (p Pool) linkRules(l Link) []filterRule {
	f := p.PoolFilters
	return []filterRule{
		{"link_name", f.LinkName, f.LinkNameRegex, l.Name},
		{"link_description", f.LinkDescription, f.LinkDescriptionRegex, l.Description},
		{"link_vendor", f.LinkVendor, f.LinkVendorRegex, l.Vendor},
		{"link_model", f.LinkModel, f.LinkModelRegex, l.Model},
		{"link_location", f.LinkLocation, f.LinkLocationRegex, l.Location},
	}
}

// MatchDevice reports whether every device filter accepts the device.
func (p Pool) MatchDevice(d Device) (bool, error) {
	return matchRules(p.deviceRules(d))
}

// MatchLink reports whether every link filter accepts the link.
func (p Pool) MatchLink(l Link) (bool, error) {
	return matchRules(p.linkRules(l))
}

func matchRules(rules []filterRule) (bool, error) {
	for _, rule := range rules {
		ok, err := MatchContent(rule.value, rule.pattern, rule.regex)
		if err != nil {
			return false, fmt.Errorf("filter %s: %w", rule.key, err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// MatchContent applies the pool and validation matching rule: a regular
// expression search when regex is set, substring containment otherwise.
// Patterns may use lookaround, so they are evaluated with a backtracking engine.
func MatchContent(value, pattern string, regex bool) (bool, error) {
	if !regex {
		return strings.Contains(value, pattern), nil
	}
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return false, fmt.Errorf("compile %q: %w", pattern, err)
	}
	return re.MatchString(value)
}
