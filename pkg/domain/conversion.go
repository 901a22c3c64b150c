package domain

// Conversion is a request to express Value, measured in From, in To.
type Conversion struct {
	Category Category `json:"category"`
	Value    float64  `json:"value"`
	From     Unit     `json:"from"`
	To       Unit     `json:"to"`
}

// Result is a completed Conversion.
type Result struct {
	Conversion

	// Result is Value expressed in To.
	Result float64 `json:"result"`
}

// CategoryInfo describes a category for catalog listings.
type CategoryInfo struct {
	Category Category     `json:"category"`
	Kind     CategoryKind `json:"kind"`
	// BaseUnit is the unit every factor is relative to. Empty for affine categories.
	BaseUnit    Unit   `json:"baseUnit,omitempty"`
	Units       []Unit `json:"units"`
	DefaultUnit Unit   `json:"defaultUnit"`
	// Factors holds how many of each unit make one BaseUnit. Nil for affine categories.
	Factors map[Unit]float64 `json:"factors,omitempty"`
}
