package models

// Product is a catalog record. The catalog ships compiled into the binary and
// is immutable for the lifetime of the process, so products are plain values
// rather than database rows.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	InStock     bool     `json:"inStock"`
	Colors      []string `json:"colors,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
}
