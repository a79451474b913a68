package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCartCommand(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		action CartAction
		desc   string
		ok     bool
	}{
		{"add to cart", "add nike air max to my cart", CartActionAdd, "nike air max", true},
		{"add without my", "Add Adidas Ultraboost size 9 to cart", CartActionAdd, "Adidas Ultraboost size 9", true},
		{"buy", "buy puma suede", CartActionAdd, "puma suede", true},
		{"purchase", "purchase some running shoes", CartActionAdd, "some running shoes", true},
		{"remove from cart", "remove nike air max from my cart", CartActionRemove, "nike air max", true},
		{"delete from cart", "delete the ultraboost from cart", CartActionRemove, "the ultraboost", true},
		{"view cart", "view my cart", CartActionView, "", true},
		{"show cart", "show cart", CartActionView, "", true},
		{"whats in cart", "what's in my cart?", CartActionView, "", true},
		{"clear cart", "clear my cart", CartActionClear, "", true},
		{"empty cart", "please empty cart", CartActionClear, "", true},
		{"checkout", "checkout", CartActionCheckout, "", true},
		{"check out", "I'd like to check out now", CartActionCheckout, "", true},
		{"plain question is not a command", "do you have nike shoes", CartActionAdd, "", false},
		{"order question is not a command", "where is my order", CartActionAdd, "", false},
		{"empty input", "", CartActionAdd, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := ParseCartCommand(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.action, cmd.Action)
				assert.Equal(t, tt.desc, cmd.Desc)
			}
		})
	}
}

func TestParseCartCommandRemoveBeatsAdd(t *testing.T) {
	cmd, ok := ParseCartCommand("remove the shoes i said to add from my cart")
	assert.True(t, ok)
	assert.Equal(t, CartActionRemove, cmd.Action)
}
