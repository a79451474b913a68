package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbasket/assistant/internal/domain"
)

func testCatalog() domain.Catalog {
	return domain.Catalog{
		"nike": {
			"Air Max":  {Price: 120, Sizes: []float64{7, 8, 9, 10, 11}, Colors: []string{"black", "white", "red"}, InStock: true},
			"React":    {Price: 130, Sizes: []float64{8, 9, 10}, Colors: []string{"blue", "gray"}, InStock: true},
			"Dunk Low": {Price: 100, Sizes: []float64{7, 8, 9}, Colors: []string{"green", "yellow"}, InStock: false},
		},
		"adidas": {
			"Ultraboost": {Price: 180, Sizes: []float64{7, 8, 9, 10, 11, 12}, Colors: []string{"black", "white", "blue"}, InStock: true},
			"Stan Smith": {Price: 80, Sizes: []float64{8, 9, 10, 11}, Colors: []string{"white", "green"}, InStock: true},
		},
		"puma": {
			"RS-X": {Price: 110, Sizes: []float64{8, 9, 10, 11}, Colors: []string{"white", "black", "blue"}, InStock: true},
		},
	}
}

func testPromotions() []domain.Promotion {
	return []domain.Promotion{
		{Code: "WELCOME15", Discount: "15%", Description: "New members get 15% off"},
		{Code: "ADIRUN23", Discount: "25%", Description: "25% off all Adidas", Brand: "adidas"},
		{Code: "NIKEFLY10", Discount: "10%", Description: "10% off Nike running styles", Brand: "nike"},
		{Code: "SHIPFREE75", Discount: "free_shipping", Description: "Free shipping over $75"},
		{Code: "CLEAR40", Discount: "40%", Description: "Up to 40% off clearance"},
	}
}

func newTestCartService() *CartService {
	return NewCartService(testCatalog(), testPromotions(), 3)
}

func TestCartAdd(t *testing.T) {
	svc := newTestCartService()
	var cart domain.ShoppingCart

	msg, err := svc.Add(&cart, "nike", "air max", 0, "", 1)
	require.NoError(t, err)
	assert.Equal(t, "Added Nike Air Max (size 7, black) to your cart.", msg)

	require.Len(t, cart.Items, 1)
	item := cart.Items[0]
	assert.Equal(t, "Nike", item.Brand)
	assert.Equal(t, "Air Max", item.Model)
	assert.Equal(t, 7.0, item.Size)
	assert.Equal(t, "black", item.Color)
	assert.Equal(t, 120.0, item.UnitPrice)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 120.0, cart.Total())
}

func TestCartAddMergesMatchingItem(t *testing.T) {
	svc := newTestCartService()
	var cart domain.ShoppingCart

	_, err := svc.Add(&cart, "nike", "air max", 10, "white", 1)
	require.NoError(t, err)

	msg, err := svc.Add(&cart, "nike", "air max", 10, "white", 1)
	require.NoError(t, err)
	assert.Equal(t, "Updated quantity of Nike Air Max (size 10, white) to 2.", msg)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 240.0, cart.Items[0].LineTotal)
}

func TestCartAddDifferentSizeIsNewItem(t *testing.T) {
	svc := newTestCartService()
	var cart domain.ShoppingCart

	_, err := svc.Add(&cart, "nike", "air max", 9, "black", 1)
	require.NoError(t, err)
	_, err = svc.Add(&cart, "nike", "air max", 10, "black", 1)
	require.NoError(t, err)

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 240.0, cart.Total())
}

func TestCartAddErrors(t *testing.T) {
	svc := newTestCartService()

	tests := []struct {
		name    string
		brand   string
		model   string
		size    float64
		color   string
		wantErr error
	}{
		{"unknown brand", "reebok", "classic", 0, "", domain.ErrBrandNotFound},
		{"missing model", "nike", "", 0, "", domain.ErrModelNotFound},
		{"unknown model", "nike", "vaporfly", 0, "", domain.ErrModelNotFound},
		{"out of stock", "nike", "dunk", 0, "", domain.ErrOutOfStock},
		{"size not carried", "nike", "air max", 6, "", domain.ErrSizeUnavailable},
		{"color not offered", "nike", "air max", 0, "purple", domain.ErrColorUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cart domain.ShoppingCart
			_, err := svc.Add(&cart, tt.brand, tt.model, tt.size, tt.color, 1)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, cart.Items)
		})
	}
}

func TestCartRemove(t *testing.T) {
	svc := newTestCartService()
	var cart domain.ShoppingCart

	_, err := svc.Add(&cart, "puma", "rs-x", 0, "", 1)
	require.NoError(t, err)

	removed, err := svc.Remove(&cart, 0)
	require.NoError(t, err)
	assert.Equal(t, "RS-X", removed.Model)
	assert.True(t, cart.Empty())

	_, err = svc.Remove(&cart, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
}

func TestCartUpdateQuantity(t *testing.T) {
	svc := newTestCartService()
	var cart domain.ShoppingCart

	_, err := svc.Add(&cart, "adidas", "stan smith", 0, "", 1)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateQuantity(&cart, 0, 3))
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 240.0, cart.Items[0].LineTotal)

	require.NoError(t, svc.UpdateQuantity(&cart, 0, 0))
	assert.True(t, cart.Empty())

	assert.ErrorIs(t, svc.UpdateQuantity(&cart, 0, 2), domain.ErrInvalidIndex)
}

func TestApplicablePromotions(t *testing.T) {
	svc := newTestCartService()
	var cart domain.ShoppingCart

	_, err := svc.Add(&cart, "nike", "air max", 0, "", 1)
	require.NoError(t, err)

	promos := svc.ApplicablePromotions(cart)
	require.Len(t, promos, 3)
	assert.Equal(t, "WELCOME15", promos[0].Code)
	assert.Equal(t, "NIKEFLY10", promos[1].Code)
	assert.Equal(t, "SHIPFREE75", promos[2].Code)
}

func TestApplicablePromotionsEmptyCart(t *testing.T) {
	svc := newTestCartService()

	promos := svc.ApplicablePromotions(domain.ShoppingCart{})
	require.Len(t, promos, 3)
	for _, p := range promos {
		assert.Empty(t, p.Brand)
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Air Max", titleCase("air max"))
	assert.Equal(t, "Nike", titleCase("NIKE"))
	assert.Equal(t, "", titleCase(""))
}
