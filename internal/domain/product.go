package domain

import (
	"sort"
	"strconv"
	"strings"
)

// ProductDetails describes one catalog model.
type ProductDetails struct {
	Price       float64   `json:"price"`
	Sizes       []float64 `json:"sizes"`
	Colors      []string  `json:"colors"`
	InStock     bool      `json:"in_stock"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// HasSize reports whether size is in the model's size run.
func (d ProductDetails) HasSize(size float64) bool {
	for _, s := range d.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasColor reports whether color is offered for the model.
func (d ProductDetails) HasColor(color string) bool {
	for _, c := range d.Colors {
		if strings.EqualFold(c, color) {
			return true
		}
	}
	return false
}

// Catalog maps lower-cased brand to model name to details. It is read-only
// from the core's perspective.
type Catalog map[string]map[string]ProductDetails

// Brands returns the brand keys in sorted order.
func (c Catalog) Brands() []string {
	brands := make([]string, 0, len(c))
	for b := range c {
		brands = append(brands, b)
	}
	sort.Strings(brands)
	return brands
}

// Models returns the model names of a brand in sorted order.
func (c Catalog) Models(brand string) []string {
	models := make([]string, 0, len(c[strings.ToLower(brand)]))
	for m := range c[strings.ToLower(brand)] {
		models = append(models, m)
	}
	sort.Strings(models)
	return models
}

// ResolveModel finds the first catalog model of brand whose name contains
// the given substring, case-insensitively. The returned name is the
// catalog's canonical spelling.
func (c Catalog) ResolveModel(brand, model string) (string, ProductDetails, bool) {
	models, ok := c[strings.ToLower(brand)]
	if !ok {
		return "", ProductDetails{}, false
	}
	needle := strings.ToLower(model)
	for _, name := range c.Models(brand) {
		if strings.Contains(strings.ToLower(name), needle) {
			return name, models[name], true
		}
	}
	return "", ProductDetails{}, false
}

// Product pairs a catalog entry with its brand and model for listings.
type Product struct {
	Brand   string         `json:"brand"`
	Model   string         `json:"model"`
	Details ProductDetails `json:"details"`
}

// FormatSize renders a shoe size without a trailing .0 (10, 10.5).
func FormatSize(size float64) string {
	return strconv.FormatFloat(size, 'f', -1, 64)
}

// FormatSizes renders a size run as "7, 8, 9.5".
func FormatSizes(sizes []float64) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = FormatSize(s)
	}
	return strings.Join(parts, ", ")
}
