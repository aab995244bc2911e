package keaconfig

import (
	"encoding/json"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Represents Kea DHCPv4 configuration. The zero value holds no
// interfaces, an empty lease database and zero valid lifetime. A copy
// made by assignment shares the subnets and options with the original;
// use Clone to get an independent copy.
type Dhcp4 struct {
	// Default lease lifetime in seconds.
	ValidLifetime    uint64
	InterfacesConfig InterfacesConfig
	LeaseDatabase    LeaseDatabase
	Subnet4          Subnet4
	OptionData       OptionData
}

// Creates the DHCPv4 configuration with the default lease database.
// Subnets and options are added by the caller afterwards.
func NewDhcp4(validLifetime uint64, interfaces []string) *Dhcp4 {
	return NewDhcp4WithLeaseDatabase(validLifetime, interfaces, NewDefaultLeaseDatabase())
}

// Creates the DHCPv4 configuration with a custom lease database.
func NewDhcp4WithLeaseDatabase(validLifetime uint64, interfaces []string, leaseDatabase LeaseDatabase) *Dhcp4 {
	dhcp4 := &Dhcp4{
		ValidLifetime:    validLifetime,
		InterfacesConfig: NewInterfacesConfig(interfaces...),
		LeaseDatabase:    leaseDatabase,
	}
	if dhcp4.InterfacesConfig.IsEmpty() {
		log.Warn("Dhcp4 created with empty interfaces-config")
	}
	return dhcp4
}

// Returns a deep copy of the configuration. The copy can be modified
// without affecting the original.
func (d Dhcp4) Clone() *Dhcp4 {
	return &Dhcp4{
		ValidLifetime:    d.ValidLifetime,
		InterfacesConfig: NewInterfacesConfig(d.InterfacesConfig.Interfaces...),
		LeaseDatabase:    d.LeaseDatabase,
		Subnet4:          d.Subnet4.Clone(),
		OptionData:       d.OptionData.Clone(),
	}
}

// Converts the configuration to its JSON form. The valid-lifetime is
// always set. The interfaces-config, lease-database and subnet4 sections
// are added in this order, and the serialization stops at the first empty
// one. In that case the partial document is returned together with the
// IncompleteConfigError naming the empty section. The option-data is
// added only when it is non-empty; its absence doesn't make the document
// incomplete.
func (d Dhcp4) Serialize() (Map, error) {
	m := Map{
		"valid-lifetime": d.ValidLifetime,
	}

	if d.InterfacesConfig.IsEmpty() {
		return m, incomplete(SectionInterfacesConfig)
	}
	m[SectionInterfacesConfig] = d.InterfacesConfig.Serialize()

	if d.LeaseDatabase.IsEmpty() {
		return m, incomplete(SectionLeaseDatabase)
	}
	m[SectionLeaseDatabase] = d.LeaseDatabase.Serialize()

	if d.Subnet4.IsEmpty() {
		return m, incomplete(SectionSubnet4)
	}
	m[SectionSubnet4] = d.Subnet4.Serialize()

	if !d.OptionData.IsEmpty() {
		m["option-data"] = d.OptionData.Serialize()
	}
	return m, nil
}

// Implements the json.Marshaler interface. An incomplete configuration
// is marshalled as the partial document.
func (d Dhcp4) MarshalJSON() ([]byte, error) {
	m, _ := d.Serialize()
	serialized, err := json.Marshal(m)
	return serialized, errors.WithStack(err)
}

// Logs the empty section and returns the corresponding error.
func incomplete(section string) error {
	log.WithField("section", section).Warn("Configuration section is empty during serialization; remaining sections are skipped")
	return NewIncompleteConfigError(section)
}
