package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBayesPredictor(t *testing.T) {
	predictor := NewBayesPredictor()
	require.NotNil(t, predictor)

	intent, confidence := predictor.Predict("what payment methods do you accept")
	assert.NotEmpty(t, intent)
	assert.GreaterOrEqual(t, confidence, 0.0)
	assert.LessOrEqual(t, confidence, 1.0)
}

func TestNgrams(t *testing.T) {
	tokens := ngrams("Do you ship internationally?")
	assert.Contains(t, tokens, "ship")
	assert.Contains(t, tokens, "internationally")
	assert.Contains(t, tokens, "you ship")
	assert.NotContains(t, tokens, "internationally?")
}

func TestNgramsEmpty(t *testing.T) {
	assert.Empty(t, ngrams(""))
	assert.Empty(t, ngrams("  ?!  "))
}
