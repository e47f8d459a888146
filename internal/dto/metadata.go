package dto

// Definition represents a machine definition document.
// It uses "mapstructure" tags to match the YAML/JSON keys.
type Definition struct {
	Name        string `json:"name" mapstructure:"name"`
	Description string `json:"description" mapstructure:"description"`

	// Default run configuration
	Steps  int   `json:"steps" mapstructure:"steps"`
	Inputs []any `json:"inputs" mapstructure:"inputs"`

	// Machine is the raw, not yet compiled, machine tree.
	Machine any `json:"machine" mapstructure:"machine"`
}

// CounterArgs are the arguments of a "counter" node.
type CounterArgs struct {
	Init any `json:"init" mapstructure:"init"`
	Step any `json:"step" mapstructure:"step"`
}
