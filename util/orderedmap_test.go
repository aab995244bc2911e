package keagenutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	keagenutil "isc.org/keagen/util"
)

// Test that a new ordered map is empty.
func TestNewOrderedMap(t *testing.T) {
	// Arrange & Act
	orderedMap := keagenutil.NewOrderedMap[uint64, string]()

	// Assert
	require.NotNil(t, orderedMap)
	require.Zero(t, orderedMap.GetSize())
	require.Empty(t, orderedMap.GetKeys())
	require.Empty(t, orderedMap.GetValues())
}

// Test that the keys keep the order in which they were first set.
func TestOrderedMapSetKeepsInsertionOrder(t *testing.T) {
	// Arrange
	orderedMap := keagenutil.NewOrderedMap[uint64, string]()

	// Act
	orderedMap.Set(3, "c")
	orderedMap.Set(1, "a")
	orderedMap.Set(2, "b")

	// Assert
	require.Equal(t, []uint64{3, 1, 2}, orderedMap.GetKeys())
	require.Equal(t, []string{"c", "a", "b"}, orderedMap.GetValues())
}

// Test that overwriting a key replaces the value but not the position.
func TestOrderedMapSetExisting(t *testing.T) {
	// Arrange
	orderedMap := keagenutil.NewOrderedMap[string, int]()
	orderedMap.Set("key0", 0)
	orderedMap.Set("key1", 1)

	// Act
	orderedMap.Set("key0", 42)

	// Assert
	require.EqualValues(t, 2, orderedMap.GetSize())
	require.Equal(t, []string{"key0", "key1"}, orderedMap.GetKeys())
	value, ok := orderedMap.Get("key0")
	require.True(t, ok)
	require.Equal(t, 42, value)
}

// Test getting values and checking key presence.
func TestOrderedMapGetAndHas(t *testing.T) {
	// Arrange
	orderedMap := keagenutil.NewOrderedMap[string, int]()
	orderedMap.Set("key0", 0)

	// Act
	value, ok := orderedMap.Get("key0")
	_, missingOk := orderedMap.Get("key1")

	// Assert
	require.True(t, ok)
	require.Zero(t, value)
	require.False(t, missingOk)
	require.True(t, orderedMap.Has("key0"))
	require.False(t, orderedMap.Has("key1"))
}

// Test that the iteration can be stopped by returning false.
func TestOrderedMapForEachStop(t *testing.T) {
	// Arrange
	orderedMap := keagenutil.NewOrderedMap[string, int]()
	orderedMap.Set("key0", 0)
	orderedMap.Set("key1", 1)
	orderedMap.Set("key2", 2)
	var visited []string

	// Act
	orderedMap.ForEach(func(key string, value int) bool {
		visited = append(visited, key)
		return value < 1
	})

	// Assert
	require.Equal(t, []string{"key0", "key1"}, visited)
}
