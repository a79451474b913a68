package service

import (
	"fmt"
	"strings"

	"github.com/quickbasket/assistant/internal/domain"
)

// CartService validates and mutates cart contents against the catalog.
type CartService struct {
	catalog       domain.Catalog
	promotions    []domain.Promotion
	maxPromotions int
}

// NewCartService creates a cart service over the given catalog and
// promotion list.
func NewCartService(catalog domain.Catalog, promotions []domain.Promotion, maxPromotions int) *CartService {
	return &CartService{catalog: catalog, promotions: promotions, maxPromotions: maxPromotions}
}

// Add resolves the product against the catalog and puts it in the cart.
// Omitted size (<= 0) or color default to the product's first listed
// option. An item matching an existing (brand, model, size, color) key has
// its quantity incremented instead of being duplicated.
func (s *CartService) Add(cart *domain.ShoppingCart, brand, model string, size float64, color string, quantity int) (string, error) {
	brandKey := strings.ToLower(brand)
	if _, ok := s.catalog[brandKey]; !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrBrandNotFound, brand)
	}
	if strings.TrimSpace(model) == "" {
		return "", fmt.Errorf("%w: no model given for %s", domain.ErrModelNotFound, titleCase(brand))
	}

	name, details, ok := s.catalog.ResolveModel(brand, model)
	if !ok {
		return "", fmt.Errorf("%w: %s %s", domain.ErrModelNotFound, titleCase(brand), model)
	}
	if !details.InStock {
		return "", fmt.Errorf("%w: %s %s", domain.ErrOutOfStock, titleCase(brand), name)
	}

	if size > 0 {
		if !details.HasSize(size) {
			return "", fmt.Errorf("%w: size %s of %s %s (available: %s)",
				domain.ErrSizeUnavailable, domain.FormatSize(size), titleCase(brand), name, domain.FormatSizes(details.Sizes))
		}
	} else if len(details.Sizes) > 0 {
		size = details.Sizes[0]
	}

	if color != "" {
		if !details.HasColor(color) {
			return "", fmt.Errorf("%w: %s %s in %s (available: %s)",
				domain.ErrColorUnavailable, titleCase(brand), name, color, strings.Join(details.Colors, ", "))
		}
	} else if len(details.Colors) > 0 {
		color = details.Colors[0]
	}

	if quantity < 1 {
		quantity = 1
	}

	displayBrand := titleCase(brandKey)
	for i := range cart.Items {
		if cart.Items[i].Matches(displayBrand, name, size, color) {
			cart.Items[i].Quantity += quantity
			cart.Items[i].LineTotal = cart.Items[i].UnitPrice * float64(cart.Items[i].Quantity)
			return fmt.Sprintf("Updated quantity of %s to %d.", cart.Items[i].Describe(), cart.Items[i].Quantity), nil
		}
	}

	item := domain.CartItem{
		Brand:     displayBrand,
		Model:     name,
		Size:      size,
		Color:     color,
		UnitPrice: details.Price,
		Quantity:  quantity,
		LineTotal: details.Price * float64(quantity),
	}
	cart.Items = append(cart.Items, item)
	return fmt.Sprintf("Added %s to your cart.", item.Describe()), nil
}

// Remove deletes the item at index and returns it for messaging.
func (s *CartService) Remove(cart *domain.ShoppingCart, index int) (domain.CartItem, error) {
	if index < 0 || index >= len(cart.Items) {
		return domain.CartItem{}, fmt.Errorf("%w: %d", domain.ErrInvalidIndex, index)
	}
	removed := cart.Items[index]
	cart.Items = append(cart.Items[:index], cart.Items[index+1:]...)
	return removed, nil
}

// UpdateQuantity sets the quantity of the item at index. A quantity of
// zero or less removes the item.
func (s *CartService) UpdateQuantity(cart *domain.ShoppingCart, index, quantity int) error {
	if quantity <= 0 {
		_, err := s.Remove(cart, index)
		return err
	}
	if index < 0 || index >= len(cart.Items) {
		return fmt.Errorf("%w: %d", domain.ErrInvalidIndex, index)
	}
	cart.Items[index].Quantity = quantity
	cart.Items[index].LineTotal = cart.Items[index].UnitPrice * float64(quantity)
	return nil
}

// ApplicablePromotions returns promotions with no brand restriction plus
// brand-restricted ones matching a cart item's brand, capped for display.
func (s *CartService) ApplicablePromotions(cart domain.ShoppingCart) []domain.Promotion {
	var applicable []domain.Promotion
	for _, promo := range s.promotions {
		if len(applicable) >= s.maxPromotions {
			break
		}
		if promo.Brand == "" {
			applicable = append(applicable, promo)
			continue
		}
		for _, item := range cart.Items {
			if strings.EqualFold(item.Brand, promo.Brand) {
				applicable = append(applicable, promo)
				break
			}
		}
	}
	return applicable
}

// titleCase upper-cases the first letter of each word ("air max" → "Air Max").
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
