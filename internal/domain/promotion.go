package domain

// Promotion is a read-only discount entry. Discount is either a percentage
// figure like "25%" or the literal "free_shipping". A non-empty Brand
// restricts the promotion to carts containing that brand.
type Promotion struct {
	Code        string `json:"code"`
	Discount    string `json:"discount"`
	Description string `json:"description"`
	Brand       string `json:"brand,omitempty"`
}
