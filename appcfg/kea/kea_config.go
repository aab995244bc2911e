package keaconfig

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Root name for DHCPv4.
const RootNameDHCPv4 string = "Dhcp4"

// Valid lifetime of the default configuration.
const DefaultValidLifetime uint64 = 4000

// Interfaces of the default configuration.
var defaultInterfaces = []string{"aaa", "bbb"}

// A serialized configuration object.
type Map map[string]any

// Represents the top-level Kea configuration holding the DHCPv4 server
// configuration under the Dhcp4 key.
type Config struct {
	Dhcp4 *Dhcp4
}

// Creates the configuration wrapping the DHCPv4 configuration.
func NewConfig(dhcp4 *Dhcp4) *Config {
	return &Config{
		Dhcp4: dhcp4,
	}
}

// Creates the configuration with the default valid lifetime, the default
// interfaces and the default lease database.
func NewDefaultConfig() *Config {
	return NewConfig(NewDhcp4(DefaultValidLifetime, defaultInterfaces))
}

// Converts the configuration to its JSON form. If the DHCPv4 configuration
// is incomplete, the partial document is returned with the error.
func (c Config) Serialize() (Map, error) {
	dhcp4 := c.Dhcp4
	if dhcp4 == nil {
		dhcp4 = &Dhcp4{}
	}
	m, err := dhcp4.Serialize()
	return Map{
		RootNameDHCPv4: m,
	}, err
}

// Implements the json.Marshaler interface. An incomplete configuration
// is marshalled as the partial document.
func (c Config) MarshalJSON() ([]byte, error) {
	m, _ := c.Serialize()
	serialized, err := json.Marshal(m)
	return serialized, errors.WithStack(err)
}

// Returns a deep copy of the configuration.
func (c Config) Clone() *Config {
	if c.Dhcp4 == nil {
		return &Config{}
	}
	return NewConfig(c.Dhcp4.Clone())
}

// Renders the configuration as JSON indented with two spaces and
// terminated with a new line. The document is rendered even when it is
// incomplete; the IncompleteConfigError is returned along with it.
func (c Config) Render() ([]byte, error) {
	m, incompleteErr := c.Serialize()
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(m); err != nil {
		return nil, errors.Wrap(err, "failed to render the configuration")
	}
	return buffer.Bytes(), incompleteErr
}
