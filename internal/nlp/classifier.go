package nlp

import (
	"strings"

	"github.com/quickbasket/assistant/internal/domain"
)

// Predictor is the statistical fallback behind the rule cascade. It can be
// swapped or stubbed without touching the cascade.
type Predictor interface {
	Predict(text string) (domain.Intent, float64)
}

// defaultLowConfidence is the fallback score below which a prediction
// degrades to Misunderstood or Unknown/Other.
const defaultLowConfidence = 0.4

var (
	policyKeywords       = []string{"policy", "rules", "terms", "conditions"}
	refundKeywords       = []string{"refund", "return", "money back", "cancel", "exchange"}
	availabilityKeywords = []string{"in stock", "available", "have", "sell", "carry"}
	productKeywords      = []string{"nike", "adidas", "puma", "shoes", "sneakers", "air max", "ultraboost"}
	orderKeywords        = []string{"order", "tracking", "delivery", "package", "shipment"}
	storeKeywords        = []string{"store", "location", "address", "hours", "open"}
	greetingTokens       = []string{"hi", "hello", "hey", "greetings"}
	greetingPhrases      = []string{"good morning", "good afternoon", "good evening"}
	sizeKeywords         = []string{"size", "measurement", "fit", "sizing", "large", "small", "medium"}
	promoKeywords        = []string{"discount", "sale", "promotion", "offer", "deal", "coupon", "code", "% off"}
	shippingKeywords     = []string{"shipping", "delivery", "ship", "mail", "postage", "delivery time", "how long"}
	paymentKeywords      = []string{"pay", "payment", "credit card", "debit card", "paypal", "apple pay", "google pay"}
	recommendKeywords    = []string{"recommend", "suggest", "similar", "what should i"}
)

// Classifier resolves an intent with a strict-priority rule cascade and a
// statistical fallback. The first matching rule wins; rule confidences are
// fixed, not computed.
type Classifier struct {
	fallback  Predictor
	threshold float64
}

// NewClassifier creates a classifier over the given fallback predictor.
// A non-positive threshold falls back to the default.
func NewClassifier(fallback Predictor, threshold float64) *Classifier {
	if threshold <= 0 {
		threshold = defaultLowConfidence
	}
	return &Classifier{fallback: fallback, threshold: threshold}
}

// Classify runs the cascade against the typo-corrected lower-cased text and
// the entities extracted from it.
func (c *Classifier) Classify(corrected string, entities domain.EntitySet) domain.Prediction {
	text := strings.ToLower(corrected)

	if containsAny(text, policyKeywords) {
		if strings.Contains(text, "refund") || strings.Contains(text, "return") {
			return domain.Prediction{Intent: domain.IntentReturnPolicy, Confidence: 0.9}
		}
		return domain.Prediction{Intent: domain.IntentUnknown, Confidence: 0.8}
	}

	if containsAny(text, refundKeywords) {
		return domain.Prediction{Intent: domain.IntentReturnRefund, Confidence: 0.9}
	}

	// A detected brand or model entity stands in for an availability verb,
	// so bare product mentions ("nike shoes?") resolve here.
	if containsAny(text, availabilityKeywords) || entities.HasProduct() {
		if containsAny(text, productKeywords) || entities.HasProduct() {
			return domain.Prediction{Intent: domain.IntentProductAvailability, Confidence: 0.9}
		}
	}

	if containsAny(text, orderKeywords) {
		return domain.Prediction{Intent: domain.IntentOrderTracking, Confidence: 0.9}
	}

	if containsAny(text, storeKeywords) {
		return domain.Prediction{Intent: domain.IntentStoreInfo, Confidence: 0.9}
	}

	if isGreeting(text) {
		return domain.Prediction{Intent: domain.IntentGreeting, Confidence: 0.9}
	}

	if containsAny(text, sizeKeywords) {
		return domain.Prediction{Intent: domain.IntentSizeInquiry, Confidence: 0.9}
	}

	if containsAny(text, promoKeywords) {
		return domain.Prediction{Intent: domain.IntentPromotions, Confidence: 0.9}
	}

	if containsAny(text, shippingKeywords) && !strings.Contains(text, "order") {
		return domain.Prediction{Intent: domain.IntentShipping, Confidence: 0.9}
	}

	if containsAny(text, paymentKeywords) {
		return domain.Prediction{Intent: domain.IntentPayment, Confidence: 0.9}
	}

	if containsAny(text, recommendKeywords) {
		return domain.Prediction{Intent: domain.IntentRecommendation, Confidence: 0.9}
	}

	intent, confidence := c.fallback.Predict(text)
	if confidence < c.threshold {
		if len(strings.Fields(text)) < 3 {
			return domain.Prediction{Intent: domain.IntentMisunderstood, Confidence: 0.7}
		}
		return domain.Prediction{Intent: domain.IntentUnknown, Confidence: confidence}
	}
	return domain.Prediction{Intent: intent, Confidence: confidence}
}

// isGreeting reports whether the utterance starts with a greeting token.
func isGreeting(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	first := strings.Trim(fields[0], "!,.?")
	for _, token := range greetingTokens {
		if first == token {
			return true
		}
	}
	for _, phrase := range greetingPhrases {
		if strings.HasPrefix(text, phrase) {
			return true
		}
	}
	return false
}
