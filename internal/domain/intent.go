package domain

// Intent is the closed-set label describing what the user wants from a turn.
type Intent string

const (
	IntentOrderTracking       Intent = "Order Tracking"
	IntentReturnRefund        Intent = "Return & Refund Policy"
	IntentReturnPolicy        Intent = "Return Policy"
	IntentProductAvailability Intent = "Product Availability"
	IntentStoreInfo           Intent = "Store Location/Hours"
	IntentGreeting            Intent = "General Greetings"
	IntentSizeInquiry         Intent = "Size Inquiry"
	IntentPromotions          Intent = "Promotions & Discounts"
	IntentShipping            Intent = "Shipping Information"
	IntentPayment             Intent = "Payment Options"
	IntentUnknown             Intent = "Unknown/Other"
	IntentMisunderstood       Intent = "Misunderstood"
	IntentOutOfScope          Intent = "Out_Of_Scope"
	IntentInappropriate       Intent = "Inappropriate"
	IntentShoppingCart        Intent = "Shopping_Cart"
	IntentRecommendation      Intent = "Recommendation"
)

// Prediction is a classified intent with its confidence in [0,1].
type Prediction struct {
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"`
}
