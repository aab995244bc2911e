package keaconfig

import (
	"fmt"

	"github.com/pkg/errors"
)

// Names of the Dhcp4 sections that must be non-empty for the generated
// configuration to be complete.
const (
	SectionInterfacesConfig = "interfaces-config"
	SectionLeaseDatabase    = "lease-database"
	SectionSubnet4          = "subnet4"
)

// An error returned when a mandatory Dhcp4 section is empty during
// serialization. The serialization stops at the empty section and the
// returned document is partial.
type IncompleteConfigError struct {
	Section string
}

// Create new instance of the IncompleteConfigError.
func NewIncompleteConfigError(section string) error {
	return &IncompleteConfigError{
		Section: section,
	}
}

// Returns error string.
func (e IncompleteConfigError) Error() string {
	return fmt.Sprintf("%s is empty", e.Section)
}

// Checks if the error (or any error it wraps) is an IncompleteConfigError.
func IsIncompleteConfigError(err error) bool {
	var incomplete *IncompleteConfigError
	return errors.As(err, &incomplete)
}
