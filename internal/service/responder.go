package service

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/quickbasket/assistant/internal/domain"
)

// OrderLookup finds an order record by ID; a miss returns (nil, nil).
type OrderLookup interface {
	Get(id string) (*domain.Order, error)
}

// Order IDs look like ORD12345; a bare 5-digit token is coerced into that
// form.
var (
	orderIDPattern     = regexp.MustCompile(`(?i)\bord\d{5}\b`)
	bareOrderIDPattern = regexp.MustCompile(`\b\d{5}\b`)
)

// productContextKeywords locate a product mention for the {product}
// template slot.
var productContextKeywords = []string{"nike", "adidas", "puma", "jordan", "shoes", "sneakers"}

// Responder selects and fills the reply for a resolved intent.
type Responder struct {
	catalog      domain.Catalog
	orders       OrderLookup
	stores       []domain.Store
	recs         *RecommendationService
	rng          *rand.Rand
	welcomePromo string
}

// NewResponder creates a responder. The random source drives template and
// is injectable so tests can fix the sequence.
func NewResponder(catalog domain.Catalog, orders OrderLookup, stores []domain.Store,
	recs *RecommendationService, rng *rand.Rand, welcomePromo string) *Responder {
	return &Responder{
		catalog:      catalog,
		orders:       orders,
		stores:       stores,
		recs:         recs,
		rng:          rng,
		welcomePromo: welcomePromo,
	}
}

// Respond builds the reply for the resolved intent, filling template slots
// and applying intent-specific augmentation. It may record viewed products
// on the session.
func (r *Responder) Respond(sess *domain.SessionContext, pred domain.Prediction,
	entities domain.EntitySet, utterance string) string {
	intent := pred.Intent

	// The safety and misunderstanding intents never carry a correction
	// preamble or context phrasing.
	switch intent {
	case domain.IntentInappropriate, domain.IntentOutOfScope, domain.IntentMisunderstood:
		return r.pick(responseTemplates[intent])
	}

	var reply string
	switch intent {
	case domain.IntentOrderTracking:
		reply = r.orderTrackingReply(utterance)
	case domain.IntentProductAvailability:
		reply = r.availabilityReply(sess, entities, utterance)
	case domain.IntentStoreInfo:
		reply = r.storeReply()
	case domain.IntentGreeting:
		reply = r.greetingReply(sess)
	case domain.IntentRecommendation:
		reply = r.recommendationReply(sess)
	case domain.IntentUnknown:
		reply = r.unknownReply(sess)
	default:
		pool, ok := responseTemplates[intent]
		if !ok {
			pool = responseTemplates[domain.IntentUnknown]
		}
		reply = r.pick(pool)
	}

	if intent == domain.IntentOrderTracking || intent == domain.IntentReturnRefund {
		if n := len(sess.MentionedBrands); n > 0 {
			reply = fmt.Sprintf("Regarding your %s purchase: %s", titleCase(sess.MentionedBrands[n-1]), reply)
		}
	}

	if len(entities.Corrections) > 0 {
		reply = r.correctionPreamble(entities.Corrections) + " " + reply
	}

	return reply
}

// correctionPreamble renders a "did you mean" lead-in from the corrected
// terms, in sorted order for determinism.
func (r *Responder) correctionPreamble(corrections domain.CorrectionMap) string {
	terms := make([]string, 0, len(corrections))
	for _, canonical := range corrections {
		terms = append(terms, canonical)
	}
	sort.Strings(terms)

	template := r.pick(typoTemplates)
	return strings.ReplaceAll(template, "{corrected_term}", strings.Join(terms, ", "))
}

func (r *Responder) orderTrackingReply(utterance string) string {
	orderID := extractOrderID(utterance)
	if orderID == "" {
		return r.pick(responseTemplates[domain.IntentOrderTracking])
	}

	order, err := r.orders.Get(orderID)
	if err != nil || order == nil {
		return fmt.Sprintf("I couldn't find order %s in our system. Please verify the order number.", orderID)
	}

	reply := fmt.Sprintf("I found your order %s. Status: %s. ", order.ID, order.Status)
	if order.Status == "Delivered" {
		reply += fmt.Sprintf("It was delivered on %s.", order.DeliveryDate)
	} else {
		reply += fmt.Sprintf("Estimated delivery: %s.", order.DeliveryDate)
	}
	return reply
}

func (r *Responder) availabilityReply(sess *domain.SessionContext, entities domain.EntitySet, utterance string) string {
	switch {
	case len(entities.Brands) > 0 && len(entities.Models) > 0:
		return r.productReply(sess, entities)
	case len(entities.Brands) > 0:
		brand := entities.Brands[0]
		models := r.catalog.Models(brand)
		if len(models) > 0 {
			return fmt.Sprintf("We carry %s products. Available models: %s. Which one interests you?",
				titleCase(brand), strings.Join(models, ", "))
		}
		return fmt.Sprintf("I'll check if we have %s products. Which model are you looking for?", titleCase(brand))
	case len(entities.Models) > 0:
		return fmt.Sprintf("I can check if we have %s shoes. Which brand are you interested in?", entities.Models[0])
	}

	template := r.pick(responseTemplates[domain.IntentProductAvailability])
	product := productContext(utterance)
	if product == "" {
		product = "sneaker"
	}
	return strings.ReplaceAll(template, "{product}", titleCase(product))
}

// productReply reports stock, size and color availability, and price for a
// resolved brand+model, with recommendations appended.
func (r *Responder) productReply(sess *domain.SessionContext, entities domain.EntitySet) string {
	brand := entities.Brands[0]
	model := entities.Models[0]

	name, details, ok := r.catalog.ResolveModel(brand, model)
	if !ok {
		return fmt.Sprintf("I'll check if we have %s %s in stock. What size are you looking for?",
			titleCase(brand), model)
	}

	sess.Preferences.ViewedProducts = domain.AppendUnique(sess.Preferences.ViewedProducts,
		strings.ToLower(brand)+" "+name)

	if !details.InStock {
		reply := fmt.Sprintf("I'm sorry, %s %s shoes are currently out of stock.", titleCase(brand), name)
		if alternatives := r.recs.Personalized(sess.Preferences); len(alternatives) > 0 {
			reply += " Here are some alternatives you might like: " + formatProducts(alternatives) + "."
		}
		return reply
	}

	reply := fmt.Sprintf("Yes, we have %s %s shoes in stock. ", titleCase(brand), name)

	if len(entities.Sizes) > 0 {
		raw := entities.Sizes[0]
		if size, err := strconv.ParseFloat(raw, 64); err == nil && details.HasSize(size) {
			reply += fmt.Sprintf("Size %s is available. ", raw)
		} else {
			reply += fmt.Sprintf("Size %s is not in stock, but we have sizes %s. ", raw, domain.FormatSizes(details.Sizes))
		}
	} else {
		reply += fmt.Sprintf("Available sizes: %s. ", domain.FormatSizes(details.Sizes))
	}

	if len(entities.Colors) > 0 {
		color := entities.Colors[0]
		if details.HasColor(color) {
			reply += fmt.Sprintf("And yes, we have them in %s. ", color)
		} else {
			reply += fmt.Sprintf("We don't have them in %s, but they come in %s. ", color, strings.Join(details.Colors, ", "))
		}
	}

	reply += fmt.Sprintf("The price is $%s. Would you like to add it to your cart?", formatPrice(details.Price))

	if similar := r.recs.SimilarTo(brand, name, sess.Preferences); len(similar) > 0 {
		reply += " You might also like: " + formatProducts(similar) + "."
	}

	return reply
}

func (r *Responder) storeReply() string {
	if len(r.stores) == 0 {
		return r.pick(responseTemplates[domain.IntentStoreInfo])
	}
	store := r.stores[0]
	return fmt.Sprintf("Our %s is located at %s. Hours: %s. Phone: %s.",
		store.Name, store.Address, store.Hours, store.Phone)
}

func (r *Responder) greetingReply(sess *domain.SessionContext) string {
	reply := r.pick(responseTemplates[domain.IntentGreeting])
	if !sess.Greeted {
		sess.Greeted = true
		if r.welcomePromo != "" {
			reply += fmt.Sprintf(" Use code %s for a discount on your first purchase!", r.welcomePromo)
		}
	}
	if !sess.Preferences.Empty() {
		if picks := r.recs.Personalized(sess.Preferences); len(picks) > 0 {
			reply += " You might be interested in: " + formatProducts(picks) + "."
		}
	}
	return reply
}

func (r *Responder) recommendationReply(sess *domain.SessionContext) string {
	reply := r.pick(responseTemplates[domain.IntentRecommendation])
	if picks := r.recs.Personalized(sess.Preferences); len(picks) > 0 {
		return reply + " " + formatProducts(picks) + "."
	}
	return reply
}

func (r *Responder) unknownReply(sess *domain.SessionContext) string {
	reply := r.pick(responseTemplates[domain.IntentUnknown])
	if !sess.Preferences.Empty() {
		if picks := r.recs.Personalized(sess.Preferences); len(picks) > 0 {
			reply += " You might be interested in: " + formatProducts(picks) + "."
		}
	}
	return reply
}

func (r *Responder) pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[r.rng.Intn(len(pool))]
}

// extractOrderID finds an ORD\d{5} token, or coerces a bare 5-digit token.
func extractOrderID(text string) string {
	if m := orderIDPattern.FindString(text); m != "" {
		return strings.ToUpper(m)
	}
	if m := bareOrderIDPattern.FindString(text); m != "" {
		return "ORD" + m
	}
	return ""
}

// productContext returns the first product keyword in the utterance.
func productContext(text string) string {
	lower := strings.ToLower(text)
	for _, keyword := range productContextKeywords {
		if strings.Contains(lower, keyword) {
			return keyword
		}
	}
	return ""
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

func formatProducts(products []domain.Product) string {
	parts := make([]string, len(products))
	for i, p := range products {
		parts[i] = fmt.Sprintf("%s %s ($%s)", titleCase(p.Brand), p.Model, formatPrice(p.Details.Price))
	}
	return strings.Join(parts, ", ")
}
