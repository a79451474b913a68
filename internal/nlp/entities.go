package nlp

import (
	"regexp"
	"sort"

	"github.com/quickbasket/assistant/internal/domain"
)

// Surface variants for brand and model detection. A canonical name is added
// to the entity set when any of its variants appears as a whole word.
var brandPatterns = map[string][]string{
	"nike":   {"nike"},
	"adidas": {"adidas"},
	"puma":   {"puma"},
	"jordan": {"jordan"},
}

var modelPatterns = map[string][]string{
	"air max":    {"air max", "airmax"},
	"ultraboost": {"ultraboost", "ultra boost"},
	"stan smith": {"stan smith"},
	"dunk":       {"dunk"},
	"react":      {"react"},
	"rs-x":       {"rs-x", "rs x"},
	"suede":      {"suede"},
	"gazelle":    {"gazelle"},
}

var colorVocabulary = []string{"black", "white", "red", "blue", "green", "yellow", "gray", "grey"}

// US shoe sizes 4-15, optionally half, optionally prefixed with "size".
var sizePattern = regexp.MustCompile(`\b(?:size\s+)?([4-9]|1[0-5])(\.5)?\b`)

type keywordMatcher struct {
	canonical string
	patterns  []*regexp.Regexp
}

func compileMatchers(vocab map[string][]string) []keywordMatcher {
	canonicals := make([]string, 0, len(vocab))
	for canonical := range vocab {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)

	matchers := make([]keywordMatcher, 0, len(vocab))
	for _, canonical := range canonicals {
		m := keywordMatcher{canonical: canonical}
		for _, v := range vocab[canonical] {
			m.patterns = append(m.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(v)+`\b`))
		}
		matchers = append(matchers, m)
	}
	return matchers
}

// Extractor recognizes brands, models, sizes, and colors in an utterance.
// It runs the typo corrector first and extracts from the corrected text.
type Extractor struct {
	corrector *Corrector
	brands    []keywordMatcher
	models    []keywordMatcher
	colors    []*regexp.Regexp
}

// NewExtractor creates an extractor with the fixed storefront vocabulary.
func NewExtractor(corrector *Corrector) *Extractor {
	e := &Extractor{
		corrector: corrector,
		brands:    compileMatchers(brandPatterns),
		models:    compileMatchers(modelPatterns),
	}
	for _, color := range colorVocabulary {
		e.colors = append(e.colors, regexp.MustCompile(`\b`+color+`\b`))
	}
	return e
}

// Extract returns the deduplicated entity set and the typo-corrected text.
func (e *Extractor) Extract(text string) (domain.EntitySet, string) {
	corrected, corrections := e.corrector.Correct(text)
	entities := domain.EntitySet{Corrections: corrections}

	for _, match := range sizePattern.FindAllStringSubmatch(corrected, -1) {
		size := match[1] + match[2]
		entities.Sizes = domain.AppendUnique(entities.Sizes, size)
	}

	for i, color := range colorVocabulary {
		if e.colors[i].MatchString(corrected) {
			entities.Colors = domain.AppendUnique(entities.Colors, color)
		}
	}

	for _, m := range e.brands {
		for _, p := range m.patterns {
			if p.MatchString(corrected) {
				entities.Brands = domain.AppendUnique(entities.Brands, m.canonical)
				break
			}
		}
	}

	for _, m := range e.models {
		for _, p := range m.patterns {
			if p.MatchString(corrected) {
				entities.Models = domain.AppendUnique(entities.Models, m.canonical)
				break
			}
		}
	}

	return entities, corrected
}
