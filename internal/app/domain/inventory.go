package domain

// Device is one managed network device.
type Device struct {
	ID              int64   `mapstructure:"-"`
	Name            string  `mapstructure:"name"`
	Description     string  `mapstructure:"description"`
	Subtype         string  `mapstructure:"subtype"`
	Vendor          string  `mapstructure:"vendor"`
	Model           string  `mapstructure:"model"`
	OperatingSystem string  `mapstructure:"operating_system"`
	OSVersion       string  `mapstructure:"os_version"`
	IPAddress       string  `mapstructure:"ip_address"`
	Location        string  `mapstructure:"location"`
	Longitude       float64 `mapstructure:"longitude"`
	Latitude        float64 `mapstructure:"latitude"`
	Username        string  `mapstructure:"username"`
	Password        string  `mapstructure:"password"`
	EnablePassword  string  `mapstructure:"enable_password"`
	Port            int     `mapstructure:"port"`
}

// NewDevice returns a device with the default management port.
func NewDevice() Device {
	return Device{Port: 22}
}

// ObjectName implements Object.
func (d Device) ObjectName() string { return d.Name }

// Serialized returns the public properties of the device. Credentials are omitted.
func (d Device) Serialized() map[string]any {
	return map[string]any{
		"id":               d.ID,
		"name":             d.Name,
		"description":      d.Description,
		"subtype":          d.Subtype,
		"vendor":           d.Vendor,
		"model":            d.Model,
		"operating_system": d.OperatingSystem,
		"os_version":       d.OSVersion,
		"ip_address":       d.IPAddress,
		"location":         d.Location,
		"longitude":        d.Longitude,
		"latitude":         d.Latitude,
		"username":         d.Username,
		"port":             d.Port,
	}
}

// Link connects a source device to a destination device.
type Link struct {
	ID          int64  `mapstructure:"-"`
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	Subtype     string `mapstructure:"subtype"`
	Vendor      string `mapstructure:"vendor"`
	Model       string `mapstructure:"model"`
	Location    string `mapstructure:"location"`
	Source      string `mapstructure:"source_name"`
	Destination string `mapstructure:"destination_name"`
}

// ObjectName implements Object.
func (l Link) ObjectName() string { return l.Name }

// Serialized returns the public properties of the link.
func (l Link) Serialized() map[string]any {
	return map[string]any{
		"id":               l.ID,
		"name":             l.Name,
		"description":      l.Description,
		"subtype":          l.Subtype,
		"vendor":           l.Vendor,
		"model":            l.Model,
		"location":         l.Location,
		"source_name":      l.Source,
		"destination_name": l.Destination,
	}
}

// User is an application account. Password carries plaintext input only and is
// never read back from storage.
type User struct {
	ID           int64    `mapstructure:"-"`
	Name         string   `mapstructure:"name"`
	Email        string   `mapstructure:"email"`
	Password     string   `mapstructure:"password"`
	PasswordHash string   `mapstructure:"-"`
	Permissions  []string `mapstructure:"permissions"`
}

// ObjectName implements Object.
func (u User) ObjectName() string { return u.Name }

// Serialized returns the public properties of the user.
func (u User) Serialized() map[string]any {
	permissions := u.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	return map[string]any{
		"id":          u.ID,
		"name":        u.Name,
		"email":       u.Email,
		"permissions": permissions,
	}
}

// Parameters holds the application-wide settings singleton.
type Parameters struct {
	DefaultLongitude  float64
	DefaultLatitude   float64
	DefaultZoomLevel  int
	DefaultView       string
	ClusterScanSubnet string
	ClusterScanPort   int
	MailSender        string
	OpenNMSRestAPI    string
	OpenNMSDevices    string
	OpenNMSLogin      string
}

// DefaultParameters returns the settings a fresh installation starts with.
func DefaultParameters() Parameters {
	return Parameters{
		DefaultLongitude:  -96.0,
		DefaultLatitude:   33.0,
		DefaultZoomLevel:  5,
		DefaultView:       "2D",
		ClusterScanSubnet: "192.168.105.0/24",
		ClusterScanPort:   5000,
		OpenNMSRestAPI:    "https://demo.opennms.org/opennms/rest",
		OpenNMSDevices:    "https://demo.opennms.org/opennms/rest/nodes",
		OpenNMSLogin:      "demo",
	}
}
