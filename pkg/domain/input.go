package domain

// Input is the decoded request data handed to a generator.
// Sorting reads Array, the binary tree reads Values, the linked list reads
// Operation/Value/Position (and Values for init), the stack reads Values/Capacity.
// It uses "mapstructure" tags to match the JSON payload keys.
type Input struct {
	Array     []int  `json:"array,omitempty" mapstructure:"array"`
	Values    []int  `json:"values,omitempty" mapstructure:"values"`
	Operation string `json:"operation,omitempty" mapstructure:"operation"`
	Value     *int   `json:"value,omitempty" mapstructure:"value"`
	Position  *int   `json:"position,omitempty" mapstructure:"position"`
	Capacity  int    `json:"capacity,omitempty" mapstructure:"capacity"`

	// HasArray and HasValues record whether the keys were present at all,
	// so that a missing array can be told apart from an empty one.
	HasArray  bool `json:"-" mapstructure:"-"`
	HasValues bool `json:"-" mapstructure:"-"`
}
