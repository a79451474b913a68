package nlp

import (
	"strings"

	"github.com/quickbasket/assistant/internal/domain"
)

var inappropriateKeywords = []string{
	"sex", "porn", "gambling", "drugs", "illegal", "hack", "crack", "steal",
	"offensive", "profanity", "explicit", "adult", "inappropriate", "xxx",
}

var outOfScopeTopics = []string{
	"politics", "religion", "medical", "healthcare", "prescription", "medicine",
	"legal advice", "attorney", "lawyer", "stocks", "investments", "counseling",
	"therapy", "psychology", "relationship", "dating", "mortgage", "loan",
	"insurance", "tax", "accounting", "unrelated",
}

var shoppingKeywords = []string{
	"shoe", "sneaker", "order", "delivery", "store", "purchase",
	"buy", "price", "cost", "return", "refund", "exchange",
	"size", "color", "brand", "nike", "adidas", "puma", "product",
}

// longUtteranceTokens is the length past which an utterance with no
// shopping vocabulary is treated as off-topic.
const longUtteranceTokens = 8

// SafetyFilter gates disallowed and off-topic input ahead of
// classification. Both gates evaluate the raw, pre-correction utterance so
// a misspelled surrounding sentence cannot mask a disallowed term.
type SafetyFilter struct{}

// NewSafetyFilter creates the filter with the fixed keyword lists.
func NewSafetyFilter() *SafetyFilter {
	return &SafetyFilter{}
}

// Check evaluates the inappropriate gate, then the out-of-scope gate.
// It returns the gate's verdict and true when either fires.
func (f *SafetyFilter) Check(text string) (domain.Prediction, bool) {
	lower := strings.ToLower(text)

	for _, keyword := range inappropriateKeywords {
		if strings.Contains(lower, keyword) {
			return domain.Prediction{Intent: domain.IntentInappropriate, Confidence: 0.95}, true
		}
	}

	for _, topic := range outOfScopeTopics {
		if strings.Contains(lower, topic) {
			return domain.Prediction{Intent: domain.IntentOutOfScope, Confidence: 0.9}, true
		}
	}

	if len(strings.Fields(lower)) > longUtteranceTokens && !containsAny(lower, shoppingKeywords) {
		return domain.Prediction{Intent: domain.IntentOutOfScope, Confidence: 0.9}, true
	}

	return domain.Prediction{}, false
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
