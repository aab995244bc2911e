package keaconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test adding options and checking if the option data is empty.
func TestOptionDataAddOption(t *testing.T) {
	var options OptionData
	require.True(t, options.IsEmpty())
	require.Empty(t, options.GetOptions())

	options.AddOption("routers", "192.0.2.1", false)
	options.AddOptionAlways("domain-name-servers", "192.0.2.1, 192.0.2.2")

	require.False(t, options.IsEmpty())
	require.Equal(t, 2, options.Len())

	option, ok := options.GetOption("routers")
	require.True(t, ok)
	require.Equal(t, "192.0.2.1", option.Data)
	require.False(t, option.AlwaysSend)

	option, ok = options.GetOption("domain-name-servers")
	require.True(t, ok)
	require.True(t, option.AlwaysSend)

	_, ok = options.GetOption("domain-name")
	require.False(t, ok)
}

// Test that the first option added under a given name is retained.
func TestOptionDataFirstWriteWins(t *testing.T) {
	var options OptionData
	options.AddOption("routers", "192.0.2.1", false)
	options.AddOption("routers", "192.0.2.254", true)
	options.AddOptionAlways("routers", "192.0.2.253")

	require.Equal(t, 1, options.Len())
	require.Equal(t, []Option{
		{Name: "routers", Data: "192.0.2.1", AlwaysSend: false},
	}, options.GetOptions())
}

// Test that the options are ordered by name regardless of the insertion
// order.
func TestOptionDataOrder(t *testing.T) {
	names := []string{"routers", "domain-name-servers", "Zeta", "domain-name", "ntp-servers"}

	var forward OptionData
	for _, name := range names {
		forward.AddOption(name, name+"-data", false)
	}
	var backward OptionData
	for i := len(names) - 1; i >= 0; i-- {
		backward.AddOption(names[i], names[i]+"-data", false)
	}

	var ordered []string
	for _, option := range forward.GetOptions() {
		ordered = append(ordered, option.Name)
	}
	// Byte-wise comparison puts the upper case letters first.
	require.Equal(t, []string{"Zeta", "domain-name", "domain-name-servers", "ntp-servers", "routers"}, ordered)
	require.Equal(t, forward.Serialize(), backward.Serialize())
}

// Test converting the options to JSON.
func TestOptionDataSerialize(t *testing.T) {
	var options OptionData
	require.Equal(t, []Map{}, options.Serialize())

	options.AddOption("routers", "192.0.2.1", false)
	options.AddOptionAlways("domain-name-servers", "192.0.2.1, 192.0.2.2")

	require.Equal(t, []Map{
		{"name": "domain-name-servers", "data": "192.0.2.1, 192.0.2.2", "always-send": true},
		{"name": "routers", "data": "192.0.2.1", "always-send": false},
	}, options.Serialize())

	serialized, err := json.Marshal(&options)
	require.NoError(t, err)
	require.JSONEq(t, `[
		{"name": "domain-name-servers", "data": "192.0.2.1, 192.0.2.2", "always-send": true},
		{"name": "routers", "data": "192.0.2.1", "always-send": false}
	]`, string(serialized))
}

// Test converting a single option to JSON.
func TestOptionSerialize(t *testing.T) {
	serialized, err := json.Marshal(Option{Name: "domain-name", Data: "example.org"})
	require.NoError(t, err)
	require.JSONEq(t, `{"name": "domain-name", "data": "example.org", "always-send": false}`, string(serialized))
}

// Test that the options marshalled by value are serialized as a list.
func TestOptionDataMarshalValue(t *testing.T) {
	var options OptionData
	options.AddOption("routers", "192.0.2.1", false)

	serialized, err := json.Marshal(options)
	require.NoError(t, err)
	require.JSONEq(t, `[
		{"name": "routers", "data": "192.0.2.1", "always-send": false}
	]`, string(serialized))

	serialized, err = json.Marshal(OptionData{})
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(serialized))
}

// Test that the cloned options can be modified independently.
func TestOptionDataClone(t *testing.T) {
	var options OptionData
	require.True(t, options.Clone().IsEmpty())

	options.AddOption("routers", "192.0.2.1", false)
	cloned := options.Clone()
	cloned.AddOptionAlways("domain-name-servers", "192.0.2.2")
	options.AddOption("domain-name", "example.org", false)

	require.Equal(t, 2, options.Len())
	require.Equal(t, 2, cloned.Len())
	_, ok := options.GetOption("domain-name-servers")
	require.False(t, ok)
	_, ok = cloned.GetOption("domain-name")
	require.False(t, ok)
}
