package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/quickbasket/assistant/internal/domain"
)

// popularProducts is the fixed backfill shortlist for personalized
// recommendations.
var popularProducts = []struct{ brand, model string }{
	{"nike", "Air Max"},
	{"adidas", "Ultraboost"},
	{"puma", "RS-X"},
}

// RecommendationService derives similar and personalized product
// suggestions from the catalog and session preferences.
type RecommendationService struct {
	catalog    domain.Catalog
	limit      int
	priceDelta float64
}

// NewRecommendationService creates a recommender capped at limit results
// and using priceDelta as the cross-brand price window.
func NewRecommendationService(catalog domain.Catalog, limit int, priceDelta float64) *RecommendationService {
	return &RecommendationService{catalog: catalog, limit: limit, priceDelta: priceDelta}
}

// SimilarTo proposes alternatives to the given product: other in-stock
// models of the same brand, then other brands' in-stock models within the
// price window, then the user's favorite brands. The result is
// deduplicated by (brand, model) and sorted ascending by price.
func (s *RecommendationService) SimilarTo(brand, model string, prefs domain.Preferences) []domain.Product {
	brandKey := strings.ToLower(brand)
	baseName, baseDetails, baseKnown := s.catalog.ResolveModel(brand, model)

	var picks []domain.Product
	seen := make(map[string]bool)

	add := func(b, m string, d domain.ProductDetails) bool {
		if len(picks) >= s.limit {
			return false
		}
		key := strings.ToLower(b) + "|" + strings.ToLower(m)
		if seen[key] {
			return true
		}
		seen[key] = true
		picks = append(picks, domain.Product{Brand: b, Model: m, Details: d})
		return true
	}
	if baseKnown {
		seen[brandKey+"|"+strings.ToLower(baseName)] = true
	}

	for _, m := range s.catalog.Models(brandKey) {
		d := s.catalog[brandKey][m]
		if d.InStock && !add(brandKey, m, d) {
			break
		}
	}

	if baseKnown {
		for _, b := range s.catalog.Brands() {
			if b == brandKey {
				continue
			}
			for _, m := range s.catalog.Models(b) {
				d := s.catalog[b][m]
				if !d.InStock {
					continue
				}
				if diff := d.Price - baseDetails.Price; diff >= -s.priceDelta && diff <= s.priceDelta {
					add(b, m, d)
				}
			}
		}
	}

	for _, fav := range prefs.FavoriteBrands {
		favKey := strings.ToLower(fav)
		for _, m := range s.catalog.Models(favKey) {
			if d := s.catalog[favKey][m]; d.InStock {
				add(favKey, m, d)
			}
		}
	}

	sort.Slice(picks, func(i, j int) bool { return picks[i].Details.Price < picks[j].Details.Price })
	return picks
}

// Personalized proposes in-stock models from the user's favorite brands
// that match at least one preferred size or favorite color (either is
// sufficient), backfilled from the popular shortlist.
func (s *RecommendationService) Personalized(prefs domain.Preferences) []domain.Product {
	var picks []domain.Product
	seen := make(map[string]bool)

	add := func(b, m string, d domain.ProductDetails) {
		key := strings.ToLower(b) + "|" + strings.ToLower(m)
		if seen[key] || len(picks) >= s.limit {
			return
		}
		seen[key] = true
		picks = append(picks, domain.Product{Brand: b, Model: m, Details: d})
	}

	for _, fav := range prefs.FavoriteBrands {
		favKey := strings.ToLower(fav)
		for _, m := range s.catalog.Models(favKey) {
			d := s.catalog[favKey][m]
			if d.InStock && matchesPreference(d, prefs) {
				add(favKey, m, d)
			}
		}
	}

	for _, p := range popularProducts {
		if d, ok := s.catalog[p.brand][p.model]; ok && d.InStock {
			add(p.brand, p.model, d)
		}
	}

	return picks
}

// matchesPreference reports whether the product offers any preferred size
// or any favorite color. With no stated preferences every product matches.
func matchesPreference(d domain.ProductDetails, prefs domain.Preferences) bool {
	if len(prefs.PreferredSizes) == 0 && len(prefs.FavoriteColors) == 0 {
		return true
	}
	for _, raw := range prefs.PreferredSizes {
		if size, err := strconv.ParseFloat(raw, 64); err == nil && d.HasSize(size) {
			return true
		}
	}
	for _, color := range prefs.FavoriteColors {
		if d.HasColor(color) {
			return true
		}
	}
	return false
}
