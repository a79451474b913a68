package domain

// ChatRequest is the request to send one chat turn.
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message" binding:"required"`
}

// ChatResponse is the reply for one chat turn.
type ChatResponse struct {
	SessionID   string        `json:"session_id"`
	Reply       string        `json:"reply"`
	Intent      Intent        `json:"intent"`
	Confidence  float64       `json:"confidence"`
	Corrections CorrectionMap `json:"corrections,omitempty"`
}

// Stats represents system statistics for the admin surface.
type Stats struct {
	ActiveSessions  int `json:"active_sessions"`
	TotalProducts   int `json:"total_products"`
	TotalOrders     int `json:"total_orders"`
	TotalPromotions int `json:"total_promotions"`
}
