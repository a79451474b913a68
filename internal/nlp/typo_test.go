package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrectorCorrect(t *testing.T) {
	corrector := NewCorrector()

	tests := []struct {
		name        string
		input       string
		want        string
		corrections map[string]string
	}{
		{
			name:        "single misspelling",
			input:       "I want to retrun my shoes",
			want:        "i want to return my shoes",
			corrections: map[string]string{"retrun": "return"},
		},
		{
			name:  "multiple misspellings",
			input: "do you have nkie sneekers",
			want:  "do you have nike sneakers",
			corrections: map[string]string{
				"nkie":     "nike",
				"sneekers": "sneakers",
			},
		},
		{
			name:        "clean input passes through",
			input:       "where is my order",
			want:        "where is my order",
			corrections: map[string]string{},
		},
		{
			name:        "unknown words untouched",
			input:       "qwerty asdf zxcv",
			want:        "qwerty asdf zxcv",
			corrections: map[string]string{},
		},
		{
			name:        "lowercases everything",
			input:       "Do You Have ADIDAS",
			want:        "do you have adidas",
			corrections: map[string]string{},
		},
		{
			name:        "brand typo",
			input:       "addidas ultrabost please",
			want:        "adidas ultraboost please",
			corrections: map[string]string{"addidas": "adidas", "ultrabost": "ultraboost"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, corrections := corrector.Correct(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.corrections), len(corrections))
			for typo, canonical := range tt.corrections {
				assert.Equal(t, canonical, corrections[typo])
			}
		})
	}
}

func TestCorrectorIdempotent(t *testing.T) {
	corrector := NewCorrector()

	once, corrections := corrector.Correct("I want to retrun my odrer")
	assert.Len(t, corrections, 2)

	twice, corrections := corrector.Correct(once)
	assert.Equal(t, once, twice)
	assert.Empty(t, corrections)
}
