package nlp

import (
	"strings"

	"github.com/quickbasket/assistant/internal/domain"
)

// typoCorrections maps each canonical term to its known misspellings. Every
// misspelling belongs to exactly one canonical entry, and no canonical term
// appears in any misspelling list, so correction is idempotent.
var typoCorrections = map[string][]string{
	// Brand typos
	"nike":   {"nik", "nikee", "niike", "nkie", "nke"},
	"adidas": {"adiddas", "addidas", "adidass", "adias", "addias", "adidias"},
	"puma":   {"pumma", "puuma", "pooma", "puna"},
	"jordan": {"jordon", "jordn", "jordans", "jordann"},

	// Model typos
	"air max":    {"airmax", "air maxs", "airmaks", "air macks"},
	"ultraboost": {"ultra boost", "ultra-boost", "ultrabost", "ultra bost", "ulttraboost"},
	"stan smith": {"stan smth", "stansmith", "stan smiths", "stan smyth"},

	// Generic terms
	"shoes":    {"shoe", "sheos", "shoess", "shose", "shoez"},
	"sneakers": {"sneaker", "sneakrs", "sneekers", "sneekrs", "snickers"},
	"return":   {"retrun", "retrn", "reutrn", "returnn"},
	"order":    {"odrer", "orde", "ordr", "orderr"},
	"shipping": {"shiping", "shippin", "shippping"},
	"delivery": {"delivry", "delevery", "deliverry", "delibery"},
	"discount": {"disscount", "discont", "disccount", "discunt"},
	"payment":  {"paymet", "payement", "paymnt", "payemtn"},
	"refund":   {"refudn", "refnd", "reefund"},
	"options":  {"opshuns", "optons", "opions"},
}

// Corrector canonicalizes known misspellings word by word.
type Corrector struct {
	lookup map[string]string
}

// NewCorrector builds the misspelling-to-canonical lookup.
func NewCorrector() *Corrector {
	lookup := make(map[string]string)
	for canonical, typos := range typoCorrections {
		for _, typo := range typos {
			lookup[typo] = canonical
		}
	}
	return &Corrector{lookup: lookup}
}

// Correct lower-cases the utterance, substitutes canonical terms for known
// misspellings, and reports the corrections made. Unknown words pass
// through unchanged.
func (c *Corrector) Correct(text string) (string, domain.CorrectionMap) {
	words := strings.Fields(strings.ToLower(text))
	corrected := make([]string, 0, len(words))
	corrections := make(domain.CorrectionMap)

	for _, word := range words {
		if canonical, ok := c.lookup[word]; ok {
			corrections[word] = canonical
			corrected = append(corrected, canonical)
			continue
		}
		corrected = append(corrected, word)
	}

	return strings.Join(corrected, " "), corrections
}
