package keaconfig

import (
	"encoding/json"

	keagenutil "isc.org/keagen/util"
)

// Represents a single IPv4 subnet definition and its pools.
type SubnetEntry struct {
	// Identifier allocated by the Subnet4.
	ID uint64
	// Subnet prefix, e.g. 192.0.2.0/24.
	Subnet string
	pools  poolSet
}

// Returns the subnet pools ordered by the range string.
func (e SubnetEntry) GetPools() []Pool {
	return e.pools.items()
}

// Returns a copy of the subnet that doesn't share the pools with the
// original.
func (e SubnetEntry) Clone() *SubnetEntry {
	return &SubnetEntry{
		ID:     e.ID,
		Subnet: e.Subnet,
		pools:  e.pools.clone(),
	}
}

// Converts the subnet to its JSON form.
func (e SubnetEntry) Serialize() Map {
	pools := []Map{}
	for _, pool := range e.pools.items() {
		pools = append(pools, pool.Serialize())
	}
	return Map{
		"id":     e.ID,
		"subnet": e.Subnet,
		"pools":  pools,
	}
}

// Implements the json.Marshaler interface.
func (e SubnetEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Serialize())
}

// Subnets and the identifier counter. They are kept together so that
// the copies of a Subnet4 never allocate the same identifier twice.
type subnetStore struct {
	lastID  uint64
	entries *keagenutil.OrderedMap[uint64, *SubnetEntry]
}

// Represents the subnet4 section. It allocates the subnet identifiers.
// The identifiers start at 1 and grow by one with each added subnet.
// They are never reused. The zero value is an empty section ready to use.
// Assigning a non-empty Subnet4 to another variable makes both refer to
// the same subnets; use Clone to get an independent copy.
type Subnet4 struct {
	store *subnetStore
}

// Adds a subnet and returns its identifier. The identifier must be used
// to add pools to the subnet.
func (s *Subnet4) AddConfig(subnet string) uint64 {
	if s.store == nil {
		s.store = &subnetStore{
			entries: keagenutil.NewOrderedMap[uint64, *SubnetEntry](),
		}
	}
	s.store.lastID++
	id := s.store.lastID
	s.store.entries.Set(id, &SubnetEntry{
		ID:     id,
		Subnet: subnet,
	})
	return id
}

// Adds a pool with the given bounds to the subnet with the given
// identifier. Adding the same pool twice is a no-op. It returns false
// if the subnet doesn't exist.
func (s *Subnet4) AddPoolForConfig(id uint64, low, high string) bool {
	entry, ok := s.GetConfig(id)
	if !ok {
		return false
	}
	entry.pools.insert(NewPool(low, high))
	return true
}

// Adds a pool specified as a prefix, e.g. 192.0.2.0/28, to the subnet
// with the given identifier. The prefix is converted to the range of
// addresses it covers. The boolean value has the same meaning as in
// AddPoolForConfig.
func (s *Subnet4) AddPoolFromPrefix(id uint64, prefix string) (bool, error) {
	low, high, err := keagenutil.ParsePoolPrefix(prefix)
	if err != nil {
		return false, err
	}
	return s.AddPoolForConfig(id, low, high), nil
}

// Returns the subnet with the given identifier.
func (s Subnet4) GetConfig(id uint64) (*SubnetEntry, bool) {
	if s.store == nil {
		return nil, false
	}
	return s.store.entries.Get(id)
}

// Returns all subnets in the ascending identifier order.
func (s Subnet4) GetConfigs() []*SubnetEntry {
	if s.store == nil {
		return []*SubnetEntry{}
	}
	// Identifiers are allocated in ascending order so the insertion
	// order is the identifier order.
	return s.store.entries.GetValues()
}

// Returns the number of subnets.
func (s Subnet4) Len() int {
	if s.store == nil {
		return 0
	}
	return s.store.entries.GetSize()
}

// Checks if there are no subnets.
func (s Subnet4) IsEmpty() bool {
	return s.Len() == 0
}

// Returns an independent copy of the subnets. The copy continues the
// identifier sequence of the original.
func (s Subnet4) Clone() Subnet4 {
	if s.store == nil {
		return Subnet4{}
	}
	store := &subnetStore{
		lastID:  s.store.lastID,
		entries: keagenutil.NewOrderedMap[uint64, *SubnetEntry](),
	}
	s.store.entries.ForEach(func(id uint64, entry *SubnetEntry) bool {
		store.entries.Set(id, entry.Clone())
		return true
	})
	return Subnet4{store: store}
}

// Converts the subnets to their JSON form, ordered by identifier.
func (s Subnet4) Serialize() []Map {
	subnets := []Map{}
	for _, entry := range s.GetConfigs() {
		subnets = append(subnets, entry.Serialize())
	}
	return subnets
}

// Implements the json.Marshaler interface.
func (s Subnet4) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Serialize())
}
