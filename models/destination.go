package models

// Destination is a bookable travel destination from the catalog.
// The booking engine treats destinations as read-only input.
type Destination struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Country     string   `bson:"country" json:"country"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Category    string   `bson:"category" json:"category"`
	Tags        []string `bson:"tags,omitempty" json:"tags,omitempty"`
	PriceMin    float64  `bson:"price_min" json:"priceMin"`
	PriceMax    float64  `bson:"price_max" json:"priceMax"`
	Rating      float64  `bson:"rating" json:"rating"`
	IsFeatured  bool     `bson:"is_featured" json:"isFeatured"`
}

// ReferencePrice returns the price used for complexity scoring:
// priceMax, falling back to priceMin, falling back to 0.
func (d *Destination) ReferencePrice() float64 {
	if d.PriceMax > 0 {
		return d.PriceMax
	}
	if d.PriceMin > 0 {
		return d.PriceMin
	}
	return 0
}
