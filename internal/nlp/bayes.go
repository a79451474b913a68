package nlp

import (
	"strings"

	"github.com/jbrukh/bayesian"

	"github.com/quickbasket/assistant/internal/domain"
)

// BayesPredictor is the default fallback: a multinomial naive-bayes model
// over a bag of unigrams and bigrams, trained on the embedded seed corpus.
type BayesPredictor struct {
	classifier *bayesian.Classifier
	classes    []bayesian.Class
}

// NewBayesPredictor trains a predictor from the seed corpus.
func NewBayesPredictor() *BayesPredictor {
	seen := make(map[bayesian.Class]bool)
	var classes []bayesian.Class
	for _, sample := range trainingSeed {
		class := bayesian.Class(sample.intent)
		if !seen[class] {
			seen[class] = true
			classes = append(classes, class)
		}
	}

	classifier := bayesian.NewClassifier(classes...)
	for _, sample := range trainingSeed {
		classifier.Learn(ngrams(sample.query), bayesian.Class(sample.intent))
	}

	return &BayesPredictor{classifier: classifier, classes: classes}
}

// Predict returns the most likely intent and its normalized probability.
func (p *BayesPredictor) Predict(text string) (domain.Intent, float64) {
	scores, idx, _ := p.classifier.ProbScores(ngrams(text))
	if idx < 0 || idx >= len(p.classes) {
		return domain.IntentUnknown, 0
	}
	return domain.Intent(p.classes[idx]), scores[idx]
}

// ngrams tokenizes text into lower-cased unigrams and bigrams.
func ngrams(text string) []string {
	words := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(words)*2)
	for i, word := range words {
		word = strings.Trim(word, "?!.,'\"")
		if word == "" {
			continue
		}
		tokens = append(tokens, word)
		if i+1 < len(words) {
			next := strings.Trim(words[i+1], "?!.,'\"")
			if next != "" {
				tokens = append(tokens, word+" "+next)
			}
		}
	}
	return tokens
}
