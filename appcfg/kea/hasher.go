package keaconfig

import keagenutil "isc.org/keagen/util"

// A constant that can be modified to influence the change of the
// hasher output. Bumping it changes the hashes of all configurations,
// even if their contents didn't change.
const hasherSequence int64 = 1

var _ keagenutil.Hasher = (*Hasher)(nil)

// A hasher used for Kea configuration hashing.
type Hasher struct {
	// Hasher sequence.
	seq int64
}

// Creates new hasher instance using the hasherSequence constant.
func NewHasher() *Hasher {
	return &Hasher{
		seq: hasherSequence,
	}
}

// Hashes the input values and returns the hash. It uses the Fnv128
// hashing technique.
func (h Hasher) Hash(input any) string {
	return keagenutil.Fnv128(h.seq, input)
}

// Returns the hash of the rendered configuration. Two configurations
// rendering to the same document have the same hash. An incomplete
// configuration is hashed as the partial document and the
// IncompleteConfigError is returned along with the hash.
func (c Config) Hash() (string, error) {
	rendered, err := c.Render()
	if rendered == nil {
		return "", err
	}
	return NewHasher().Hash(string(rendered)), err
}
