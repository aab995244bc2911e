package keagenutil

// An interface to a hasher generating a hash value from an input.
// The generated configurations are hashed so that an operator can tell
// whether two runs produced the same document.
type Hasher interface {
	Hash(input any) string
}
