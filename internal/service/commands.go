package service

import (
	"regexp"
	"strings"
)

// CartAction is an imperative cart operation parsed from an utterance.
type CartAction int

const (
	CartActionAdd CartAction = iota
	CartActionView
	CartActionRemove
	CartActionClear
	CartActionCheckout
)

// CartCommand is a recognized cart instruction. Desc is the free-text
// product description for add/remove actions.
type CartCommand struct {
	Action CartAction
	Desc   string
}

// Cart command grammar. Recognized commands preempt the dialogue-intent
// pipeline for the turn.
var (
	removeFromCartPattern = regexp.MustCompile(`(?i)\b(?:remove|delete)\s+(.+?)\s+from\s+(?:my\s+)?cart\b`)
	clearCartPattern      = regexp.MustCompile(`(?i)\b(?:clear|empty)\s+(?:my\s+)?cart\b`)
	viewCartPattern       = regexp.MustCompile(`(?i)\b(?:view|show|check)\s+(?:my\s+)?cart\b|\bwhat'?s\s+in\s+(?:my\s+)?cart\b|\bdisplay\s+cart\b`)
	addToCartPattern      = regexp.MustCompile(`(?i)\badd\s+(.+?)\s+to\s+(?:my\s+)?cart\b`)
	checkoutPattern       = regexp.MustCompile(`(?i)\bcheck\s?out\b`)
	buyPattern            = regexp.MustCompile(`(?i)\b(?:buy|purchase|get)\s+(.+?)\s*$`)
)

// ParseCartCommand detects a cart command in the utterance. More specific
// patterns are tried before the generic buy/purchase/get form.
func ParseCartCommand(text string) (CartCommand, bool) {
	text = strings.TrimSpace(text)

	if m := removeFromCartPattern.FindStringSubmatch(text); m != nil {
		return CartCommand{Action: CartActionRemove, Desc: m[1]}, true
	}
	if clearCartPattern.MatchString(text) {
		return CartCommand{Action: CartActionClear}, true
	}
	if viewCartPattern.MatchString(text) {
		return CartCommand{Action: CartActionView}, true
	}
	if m := addToCartPattern.FindStringSubmatch(text); m != nil {
		return CartCommand{Action: CartActionAdd, Desc: m[1]}, true
	}
	if checkoutPattern.MatchString(text) {
		return CartCommand{Action: CartActionCheckout}, true
	}
	if m := buyPattern.FindStringSubmatch(text); m != nil {
		return CartCommand{Action: CartActionAdd, Desc: m[1]}, true
	}

	return CartCommand{}, false
}
