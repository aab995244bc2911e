package keaconfig

import "encoding/json"

// Represents the interfaces-config section, i.e. the network interfaces
// the server listens on.
type InterfacesConfig struct {
	Interfaces []string
}

// Creates the interfaces configuration from the interface names.
func NewInterfacesConfig(interfaces ...string) InterfacesConfig {
	return InterfacesConfig{
		Interfaces: append([]string{}, interfaces...),
	}
}

// Checks if no interfaces are configured.
func (i InterfacesConfig) IsEmpty() bool {
	return len(i.Interfaces) == 0
}

// Converts the interfaces configuration to its JSON form. The interfaces
// list is never null.
func (i InterfacesConfig) Serialize() Map {
	return Map{
		"interfaces": append([]string{}, i.Interfaces...),
	}
}

// Implements the json.Marshaler interface.
func (i InterfacesConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.Serialize())
}
