package keagenutil

// A map that remembers the order in which its keys were first set.
//
// The zero value is not usable; create instances with NewOrderedMap.
// Iterate with the callback function:
//
//	m.ForEach(func(key TKey, value TValue) bool {
//		// Do something with the key and value.
//		return true
//	})
//
// or over the values slice returned by GetValues.
type OrderedMap[TKey comparable, TValue any] struct {
	keys []TKey
	data map[TKey]TValue
}

// Creates a new instance of the ordered map.
func NewOrderedMap[TKey comparable, TValue any]() *OrderedMap[TKey, TValue] {
	return &OrderedMap[TKey, TValue]{
		keys: make([]TKey, 0),
		data: make(map[TKey]TValue),
	}
}

// Sets the value for the given key. A new key is appended at the end of
// the order. Setting an existing key replaces the value and keeps the
// key position.
func (m *OrderedMap[TKey, TValue]) Set(key TKey, value TValue) {
	if _, ok := m.data[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.data[key] = value
}

// Gets the value for the given key. If the key does not exist, the second
// return value is false.
func (m *OrderedMap[TKey, TValue]) Get(key TKey) (TValue, bool) {
	value, ok := m.data[key]
	return value, ok
}

// Checks if the key exists in the map.
func (m *OrderedMap[TKey, TValue]) Has(key TKey) bool {
	_, ok := m.data[key]
	return ok
}

// Returns the keys in insertion order.
func (m *OrderedMap[TKey, TValue]) GetKeys() []TKey {
	return m.keys
}

// Returns the values in key insertion order.
func (m *OrderedMap[TKey, TValue]) GetValues() []TValue {
	values := make([]TValue, 0, len(m.keys))
	for _, key := range m.keys {
		values = append(values, m.data[key])
	}
	return values
}

// Returns the number of entries.
func (m *OrderedMap[TKey, TValue]) GetSize() int {
	return len(m.keys)
}

// Iterates over the entries in insertion order. The iteration stops when
// the callback returns false.
func (m *OrderedMap[TKey, TValue]) ForEach(callback func(TKey, TValue) bool) {
	for _, key := range m.keys {
		if !callback(key, m.data[key]) {
			break
		}
	}
}
