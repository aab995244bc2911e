package keaconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test that the pool range is built from the bounds separated with a
// hyphen surrounded by single spaces.
func TestNewPool(t *testing.T) {
	require.Equal(t, "192.0.2.1 - 192.0.2.10", NewPool("192.0.2.1", "192.0.2.10").Range)
	// The bounds are taken literally.
	require.Equal(t, "a - b", NewPool("a", "b").Range)
	require.Equal(t, " - ", NewPool("", "").Range)
}

// Test converting a pool to JSON.
func TestPoolSerialize(t *testing.T) {
	pool := NewPool("192.0.2.1", "192.0.2.10")
	require.Equal(t, Map{"pool": "192.0.2.1 - 192.0.2.10"}, pool.Serialize())

	serialized, err := json.Marshal(pool)
	require.NoError(t, err)
	require.JSONEq(t, `{"pool": "192.0.2.1 - 192.0.2.10"}`, string(serialized))
}

// Test that the pool set removes duplicates and orders pools by range.
func TestPoolSet(t *testing.T) {
	var set poolSet
	require.Zero(t, set.len())
	require.Empty(t, set.items())

	set.insert(NewPool("192.0.2.50", "192.0.2.60"))
	set.insert(NewPool("192.0.2.10", "192.0.2.20"))
	set.insert(NewPool("192.0.2.50", "192.0.2.60"))

	require.Equal(t, 2, set.len())
	require.Equal(t, []Pool{
		{Range: "192.0.2.10 - 192.0.2.20"},
		{Range: "192.0.2.50 - 192.0.2.60"},
	}, set.items())
}

// Test that the pools are ordered by string comparison, not by address.
func TestPoolSetLexicographicOrder(t *testing.T) {
	var set poolSet
	set.insert(NewPool("192.0.2.9", "192.0.2.9"))
	set.insert(NewPool("192.0.2.10", "192.0.2.10"))

	pools := set.items()
	require.Len(t, pools, 2)
	require.Equal(t, "192.0.2.10 - 192.0.2.10", pools[0].Range)
	require.Equal(t, "192.0.2.9 - 192.0.2.9", pools[1].Range)
}
