package service

import (
	"time"

	"github.com/quickbasket/assistant/internal/domain"
)

// repetitionThreshold is the number of prior consecutive turns with the
// same intent after which the next one is overridden.
const repetitionThreshold = 2

// ContextTracker accumulates mentioned entities and preferences across
// turns and applies the anti-repetition override.
type ContextTracker struct{}

// NewContextTracker creates a tracker.
func NewContextTracker() *ContextTracker {
	return &ContextTracker{}
}

// ResolveIntent applies the anti-repetition rule: once an intent has driven
// two responses, the next occurrence is overridden to Unknown/Other and the
// whole streak map is cleared.
func (t *ContextTracker) ResolveIntent(sess *domain.SessionContext, intent domain.Intent) domain.Intent {
	if sess.IntentStreak == nil {
		sess.IntentStreak = make(map[domain.Intent]int)
	}

	if sess.IntentStreak[intent] >= repetitionThreshold {
		sess.IntentStreak = make(map[domain.Intent]int)
		return domain.IntentUnknown
	}

	sess.IntentStreak[intent]++
	return intent
}

// Observe unions the turn's entities into the session's mentioned sets and
// standing preferences, and records the raw input.
func (t *ContextTracker) Observe(sess *domain.SessionContext, entities domain.EntitySet, utterance string) {
	for _, b := range entities.Brands {
		sess.MentionedBrands = domain.AppendUnique(sess.MentionedBrands, b)
		sess.Preferences.FavoriteBrands = domain.AppendUnique(sess.Preferences.FavoriteBrands, b)
	}
	for _, m := range entities.Models {
		sess.MentionedModels = domain.AppendUnique(sess.MentionedModels, m)
	}
	for _, size := range entities.Sizes {
		sess.MentionedSizes = domain.AppendUnique(sess.MentionedSizes, size)
		sess.Preferences.PreferredSizes = domain.AppendUnique(sess.Preferences.PreferredSizes, size)
	}
	for _, c := range entities.Colors {
		sess.MentionedColors = domain.AppendUnique(sess.MentionedColors, c)
		sess.Preferences.FavoriteColors = domain.AppendUnique(sess.Preferences.FavoriteColors, c)
	}

	sess.LastUserInput = utterance
	sess.UpdatedAt = time.Now()
}
