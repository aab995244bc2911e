package keaconfig

import (
	"encoding/json"

	"github.com/google/btree"
)

// Represents a DHCP option in the format used by Kea (i.e., an item of the
// option-data list).
type Option struct {
	Name string
	Data string
	// Send the option even if the client didn't request it.
	AlwaysSend bool
}

// Converts the option to its JSON form.
func (o Option) Serialize() Map {
	return Map{
		"name":        o.Name,
		"data":        o.Data,
		"always-send": o.AlwaysSend,
	}
}

// Implements the json.Marshaler interface.
func (o Option) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Serialize())
}

func optionLess(a, b Option) bool {
	return a.Name < b.Name
}

// Represents the option-data section. The options are unique by name and
// ordered by name. The first option added under a given name wins; the
// later ones are ignored. The zero value is an empty section ready to use.
// Assigning a non-empty OptionData to another variable makes both refer
// to the same options; use Clone to get an independent copy.
type OptionData struct {
	options *btree.BTreeG[Option]
}

// Adds the option unless an option with the same name exists.
func (o *OptionData) AddOption(name, data string, alwaysSend bool) {
	if o.options == nil {
		o.options = btree.NewG[Option](setDegree, optionLess)
	}
	option := Option{
		Name:       name,
		Data:       data,
		AlwaysSend: alwaysSend,
	}
	if o.options.Has(option) {
		return
	}
	o.options.ReplaceOrInsert(option)
}

// Adds the option with the always-send flag set.
func (o *OptionData) AddOptionAlways(name, data string) {
	o.AddOption(name, data, true)
}

// Returns the option with the given name.
func (o OptionData) GetOption(name string) (Option, bool) {
	if o.options == nil {
		return Option{}, false
	}
	return o.options.Get(Option{Name: name})
}

// Returns the options ordered by name.
func (o OptionData) GetOptions() []Option {
	options := make([]Option, 0, o.Len())
	if o.options != nil {
		o.options.Ascend(func(option Option) bool {
			options = append(options, option)
			return true
		})
	}
	return options
}

// Returns an independent copy of the options.
func (o OptionData) Clone() OptionData {
	if o.options == nil {
		return OptionData{}
	}
	return OptionData{options: o.options.Clone()}
}

// Returns the number of options.
func (o OptionData) Len() int {
	if o.options == nil {
		return 0
	}
	return o.options.Len()
}

// Checks if no options were added.
func (o OptionData) IsEmpty() bool {
	return o.Len() == 0
}

// Converts the options to their JSON form, ordered by name.
func (o OptionData) Serialize() []Map {
	options := []Map{}
	for _, option := range o.GetOptions() {
		options = append(options, option.Serialize())
	}
	return options
}

// Implements the json.Marshaler interface.
func (o OptionData) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Serialize())
}
