package keaconfig

import (
	"encoding/json"

	"github.com/google/btree"
)

// Degree of the b-trees holding the pools and the options.
const setDegree = 8

// Represents an address pool within a subnet.
type Pool struct {
	// Address range in the "<low> - <high>" form.
	Range string
}

// Creates a pool from its lower and upper bound. The bounds are not
// validated.
func NewPool(low, high string) Pool {
	return Pool{
		Range: low + " - " + high,
	}
}

// Converts the pool to its JSON form.
func (p Pool) Serialize() Map {
	return Map{
		"pool": p.Range,
	}
}

// Implements the json.Marshaler interface.
func (p Pool) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Serialize())
}

func poolLess(a, b Pool) bool {
	return a.Range < b.Range
}

// A set of pools ordered by the range string.
type poolSet struct {
	tree *btree.BTreeG[Pool]
}

// Inserts the pool unless the same range is already in the set.
func (s *poolSet) insert(pool Pool) {
	if s.tree == nil {
		s.tree = btree.NewG[Pool](setDegree, poolLess)
	}
	if !s.tree.Has(pool) {
		s.tree.ReplaceOrInsert(pool)
	}
}

func (s poolSet) len() int {
	if s.tree == nil {
		return 0
	}
	return s.tree.Len()
}

// Returns a set holding the same pools that can be modified independently.
func (s poolSet) clone() poolSet {
	if s.tree == nil {
		return poolSet{}
	}
	return poolSet{tree: s.tree.Clone()}
}

// Returns the pools in the ascending range order.
func (s poolSet) items() []Pool {
	pools := make([]Pool, 0, s.len())
	if s.tree != nil {
		s.tree.Ascend(func(pool Pool) bool {
			pools = append(pools, pool)
			return true
		})
	}
	return pools
}
