package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quickbasket/assistant/internal/domain"
)

type stubPredictor struct {
	intent     domain.Intent
	confidence float64
}

func (s *stubPredictor) Predict(string) (domain.Intent, float64) {
	return s.intent, s.confidence
}

func TestClassifierCascade(t *testing.T) {
	classifier := NewClassifier(&stubPredictor{intent: domain.IntentUnknown, confidence: 0.1}, 0.4)

	tests := []struct {
		name     string
		input    string
		entities domain.EntitySet
		intent   domain.Intent
	}{
		{
			name:   "return policy",
			input:  "what is your return policy",
			intent: domain.IntentReturnPolicy,
		},
		{
			name:   "policy without refund context",
			input:  "what are your terms",
			intent: domain.IntentUnknown,
		},
		{
			name:   "refund request",
			input:  "i want a refund",
			intent: domain.IntentReturnRefund,
		},
		{
			name:   "availability with product keyword",
			input:  "do you have nike shoes",
			intent: domain.IntentProductAvailability,
		},
		{
			name:     "entity stands in for availability phrasing",
			input:    "those gazelle ones please",
			entities: domain.EntitySet{Models: []string{"gazelle"}},
			intent:   domain.IntentProductAvailability,
		},
		{
			name:   "order tracking",
			input:  "where is my order",
			intent: domain.IntentOrderTracking,
		},
		{
			name:   "store info",
			input:  "what are your opening hours",
			intent: domain.IntentStoreInfo,
		},
		{
			name:   "greeting token first",
			input:  "hello, i need some help",
			intent: domain.IntentGreeting,
		},
		{
			name:   "greeting phrase",
			input:  "good morning to you",
			intent: domain.IntentGreeting,
		},
		{
			name:   "size inquiry",
			input:  "how does the sizing run",
			intent: domain.IntentSizeInquiry,
		},
		{
			name:   "promotions",
			input:  "any coupon for this week",
			intent: domain.IntentPromotions,
		},
		{
			name:   "shipping without order mention",
			input:  "how much is standard shipping",
			intent: domain.IntentShipping,
		},
		{
			name:   "payment",
			input:  "can i use paypal",
			intent: domain.IntentPayment,
		},
		{
			name:   "recommendation",
			input:  "what should i wear for running",
			intent: domain.IntentRecommendation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred := classifier.Classify(tt.input, tt.entities)
			assert.Equal(t, tt.intent, pred.Intent)
		})
	}
}

func TestClassifierGreetingMidSentenceIsNotGreeting(t *testing.T) {
	classifier := NewClassifier(&stubPredictor{intent: domain.IntentUnknown, confidence: 0.1}, 0.4)

	pred := classifier.Classify("i said hello to the staff yesterday", domain.EntitySet{})
	assert.NotEqual(t, domain.IntentGreeting, pred.Intent)
}

func TestClassifierFallback(t *testing.T) {
	t.Run("high confidence prediction is kept", func(t *testing.T) {
		classifier := NewClassifier(&stubPredictor{intent: domain.IntentPayment, confidence: 0.8}, 0.4)
		pred := classifier.Classify("something about billing maybe", domain.EntitySet{})
		assert.Equal(t, domain.IntentPayment, pred.Intent)
		assert.Equal(t, 0.8, pred.Confidence)
	})

	t.Run("low confidence short input degrades to misunderstood", func(t *testing.T) {
		classifier := NewClassifier(&stubPredictor{intent: domain.IntentPayment, confidence: 0.1}, 0.4)
		pred := classifier.Classify("blargh", domain.EntitySet{})
		assert.Equal(t, domain.IntentMisunderstood, pred.Intent)
		assert.Equal(t, 0.7, pred.Confidence)
	})

	t.Run("low confidence longer input degrades to unknown", func(t *testing.T) {
		classifier := NewClassifier(&stubPredictor{intent: domain.IntentPayment, confidence: 0.1}, 0.4)
		pred := classifier.Classify("please explain everything again slowly", domain.EntitySet{})
		assert.Equal(t, domain.IntentUnknown, pred.Intent)
		assert.Equal(t, 0.1, pred.Confidence)
	})
}
