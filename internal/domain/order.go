package domain

// Order is an immutable historical purchase record, looked up by ID.
type Order struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`
	Items        []string `json:"items"`
	Total        float64  `json:"total"`
	Status       string   `json:"status"`
	DeliveryDate string   `json:"delivery_date"`
	Address      string   `json:"address"`
}

// Store is one physical store location.
type Store struct {
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Hours    string   `json:"hours"`
	Phone    string   `json:"phone"`
	Features []string `json:"features,omitempty"`
}
