package keaconfig

import "encoding/json"

// Default lease database settings used by the Dhcp4 constructors.
const (
	DefaultLeaseDatabaseType    = "memfile"
	DefaultLeaseDatabasePersist = true
	DefaultLeaseDatabaseName    = "/var/lib/kea/dhcp4.leases"
)

// Represents the lease-database section. The Name holds a file path
// for the memfile backend or a database name for the SQL backends.
type LeaseDatabase struct {
	Type    string
	Persist bool
	Name    string
}

// Creates the lease database configuration.
func NewLeaseDatabase(databaseType string, persist bool, name string) LeaseDatabase {
	return LeaseDatabase{
		Type:    databaseType,
		Persist: persist,
		Name:    name,
	}
}

// Creates the persistent memfile lease database configuration.
func NewDefaultLeaseDatabase() LeaseDatabase {
	return NewLeaseDatabase(DefaultLeaseDatabaseType, DefaultLeaseDatabasePersist, DefaultLeaseDatabaseName)
}

// Checks if the configuration is unusable, i.e. if the type or the name
// is not specified.
func (d LeaseDatabase) IsEmpty() bool {
	return len(d.Type) == 0 || len(d.Name) == 0
}

// Converts the lease database configuration to its JSON form.
func (d LeaseDatabase) Serialize() Map {
	return Map{
		"type":    d.Type,
		"persist": d.Persist,
		"name":    d.Name,
	}
}

// Implements the json.Marshaler interface.
func (d LeaseDatabase) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Serialize())
}
