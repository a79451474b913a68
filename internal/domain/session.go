package domain

import "time"

// Preferences is the standing shopping profile accumulated across turns.
type Preferences struct {
	FavoriteBrands []string `json:"favorite_brands,omitempty"`
	FavoriteColors []string `json:"favorite_colors,omitempty"`
	PreferredSizes []string `json:"preferred_sizes,omitempty"`
	ViewedProducts []string `json:"viewed_products,omitempty"`
}

// Empty reports whether no preference or viewing history exists yet.
func (p Preferences) Empty() bool {
	return len(p.FavoriteBrands) == 0 && len(p.FavoriteColors) == 0 &&
		len(p.PreferredSizes) == 0 && len(p.ViewedProducts) == 0
}

// SessionContext is the per-conversation mutable state. It is exclusively
// owned by its session; turns within a session are strictly serialized.
type SessionContext struct {
	ID              string         `json:"id"`
	LastIntent      Intent         `json:"last_intent,omitempty"`
	IntentStreak    map[Intent]int `json:"intent_streak,omitempty"`
	MentionedBrands []string       `json:"mentioned_brands,omitempty"`
	MentionedModels []string       `json:"mentioned_models,omitempty"`
	MentionedSizes  []string       `json:"mentioned_sizes,omitempty"`
	MentionedColors []string       `json:"mentioned_colors,omitempty"`
	Preferences     Preferences    `json:"preferences"`
	Cart            ShoppingCart   `json:"cart"`
	LastUserInput   string         `json:"last_user_input,omitempty"`
	Greeted         bool           `json:"greeted"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// NewSessionContext creates an empty session context.
func NewSessionContext(id string) *SessionContext {
	now := time.Now()
	return &SessionContext{
		ID:           id,
		IntentStreak: make(map[Intent]int),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Reset clears all accumulated state, including the cart.
func (s *SessionContext) Reset() {
	id, created := s.ID, s.CreatedAt
	*s = *NewSessionContext(id)
	s.CreatedAt = created
}
