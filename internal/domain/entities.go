package domain

// CorrectionMap maps a literal misspelled token to its canonical form.
type CorrectionMap map[string]string

// EntitySet holds the structured values recognized within one utterance.
// The slices are insertion-ordered and contain no duplicates.
type EntitySet struct {
	Brands      []string      `json:"brands,omitempty"`
	Models      []string      `json:"models,omitempty"`
	Sizes       []string      `json:"sizes,omitempty"`
	Colors      []string      `json:"colors,omitempty"`
	Corrections CorrectionMap `json:"corrections,omitempty"`
}

// HasProduct reports whether a brand or model was detected.
func (e EntitySet) HasProduct() bool {
	return len(e.Brands) > 0 || len(e.Models) > 0
}

// AppendUnique appends value to list unless it is already present.
func AppendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
