package models

// Metraje is a floor-plan footprint shared by every local of that size.
type Metraje struct {
	ID        int64   `json:"id"`
	Area      string  `json:"area"`
	Perimetro string  `json:"perimetro"`
	Image     *string `json:"image,omitempty"`
}
