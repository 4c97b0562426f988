package models

// ParsedIngredient is a single ingredient line split into structured
// fields. Original is always retained verbatim for audit and debugging,
// even when every structured field is empty.
type ParsedIngredient struct {
	Quantity    *float64 `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Unit        string   `json:"unit,omitempty" yaml:"unit,omitempty"`
	Name        string   `json:"name" yaml:"name"`
	Preparation string   `json:"preparation,omitempty" yaml:"preparation,omitempty"`
	Original    string   `json:"original_text" yaml:"original_text"`
}
