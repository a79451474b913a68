package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/quickbasket/assistant/internal/domain"
	"github.com/quickbasket/assistant/internal/nlp"
)

// ChatService runs the per-turn dialogue pipeline: cart command check,
// safety gates, typo correction and entity extraction, intent
// classification, context update, and response generation.
type ChatService struct {
	logger     *zap.Logger
	extractor  *nlp.Extractor
	safety     *nlp.SafetyFilter
	classifier *nlp.Classifier
	tracker    *ContextTracker
	cart       *CartService
	responder  *Responder
}

// NewChatService creates the chat service.
func NewChatService(
	logger *zap.Logger,
	extractor *nlp.Extractor,
	safety *nlp.SafetyFilter,
	classifier *nlp.Classifier,
	tracker *ContextTracker,
	cart *CartService,
	responder *Responder,
) *ChatService {
	return &ChatService{
		logger:     logger,
		extractor:  extractor,
		safety:     safety,
		classifier: classifier,
		tracker:    tracker,
		cart:       cart,
		responder:  responder,
	}
}

// ProcessTurn handles one utterance and mutates the session in place.
// Malformed input never fails the turn; it degrades to Misunderstood.
func (s *ChatService) ProcessTurn(sess *domain.SessionContext, utterance string) *domain.ChatResponse {
	text := strings.TrimSpace(utterance)
	if text == "" {
		pred := domain.Prediction{Intent: domain.IntentMisunderstood, Confidence: 0.7}
		reply := s.responder.Respond(sess, pred, domain.EntitySet{}, text)
		return s.finish(sess, pred, domain.EntitySet{}, text, reply)
	}

	if cmd, ok := ParseCartCommand(text); ok {
		pred := domain.Prediction{Intent: domain.IntentShoppingCart, Confidence: 0.95}
		reply := s.handleCartCommand(sess, cmd)
		return s.finish(sess, pred, domain.EntitySet{}, text, reply)
	}

	if pred, hit := s.safety.Check(text); hit {
		reply := s.responder.Respond(sess, pred, domain.EntitySet{}, text)
		return s.finish(sess, pred, domain.EntitySet{}, text, reply)
	}

	entities, corrected := s.extractor.Extract(text)
	pred := s.classifier.Classify(corrected, entities)

	effective := s.tracker.ResolveIntent(sess, pred.Intent)
	if effective != pred.Intent {
		s.logger.Debug("intent overridden by anti-repetition",
			zap.String("session", sess.ID),
			zap.String("classified", string(pred.Intent)))
		pred = domain.Prediction{Intent: effective, Confidence: pred.Confidence}
	}

	s.tracker.Observe(sess, entities, text)
	reply := s.responder.Respond(sess, pred, entities, text)
	return s.finish(sess, pred, entities, text, reply)
}

func (s *ChatService) finish(sess *domain.SessionContext, pred domain.Prediction,
	entities domain.EntitySet, utterance, reply string) *domain.ChatResponse {
	sess.LastIntent = pred.Intent
	sess.LastUserInput = utterance

	s.logger.Info("turn processed",
		zap.String("session", sess.ID),
		zap.String("intent", string(pred.Intent)),
		zap.Float64("confidence", pred.Confidence))

	return &domain.ChatResponse{
		SessionID:   sess.ID,
		Reply:       reply,
		Intent:      pred.Intent,
		Confidence:  pred.Confidence,
		Corrections: entities.Corrections,
	}
}

// handleCartCommand executes a recognized cart command against the
// session's cart and builds the reply.
func (s *ChatService) handleCartCommand(sess *domain.SessionContext, cmd CartCommand) string {
	switch cmd.Action {
	case CartActionAdd:
		return s.addFromDescription(sess, cmd.Desc)
	case CartActionView:
		return s.viewCart(sess)
	case CartActionRemove:
		return s.removeFromDescription(sess, cmd.Desc)
	case CartActionClear:
		if sess.Cart.Empty() {
			return "Your cart is already empty."
		}
		sess.Cart.Items = nil
		return "Done! Your cart has been cleared."
	case CartActionCheckout:
		if sess.Cart.Empty() {
			return "Your cart is empty. Add something before checking out!"
		}
		total := sess.Cart.Total()
		sess.Cart.Items = nil
		return fmt.Sprintf("Your order total is $%s. Thank you for shopping with Quick Basket!", formatPrice(total))
	}
	return s.viewCart(sess)
}

// addFromDescription recovers brand/model/size/color from the free-text
// description and performs the add.
func (s *ChatService) addFromDescription(sess *domain.SessionContext, desc string) string {
	entities, _ := s.extractor.Extract(desc)

	var brand, model, color string
	var size float64
	if len(entities.Brands) > 0 {
		brand = entities.Brands[0]
	}
	if len(entities.Models) > 0 {
		model = entities.Models[0]
	}
	if len(entities.Sizes) > 0 {
		size, _ = strconv.ParseFloat(entities.Sizes[0], 64)
	}
	if len(entities.Colors) > 0 {
		color = entities.Colors[0]
	}

	s.tracker.Observe(sess, entities, desc)

	msg, err := s.cart.Add(&sess.Cart, brand, model, size, color, 1)
	if err != nil {
		return cartFailureMessage(err, s.cart.catalog, brand)
	}
	return fmt.Sprintf("%s Your cart total is $%s.", msg, formatPrice(sess.Cart.Total()))
}

// removeFromDescription matches the description against existing cart
// items by brand or model substring, first match only.
func (s *ChatService) removeFromDescription(sess *domain.SessionContext, desc string) string {
	needle := strings.ToLower(strings.TrimSpace(desc))
	for i, item := range sess.Cart.Items {
		if strings.Contains(needle, strings.ToLower(item.Brand)) ||
			strings.Contains(needle, strings.ToLower(item.Model)) {
			removed, err := s.cart.Remove(&sess.Cart, i)
			if err != nil {
				break
			}
			return fmt.Sprintf("Removed %s from your cart. Your cart total is $%s.",
				removed.Describe(), formatPrice(sess.Cart.Total()))
		}
	}
	return fmt.Sprintf("I couldn't find %q in your cart.", desc)
}

// viewCart renders the cart contents, total, and applicable promotions.
func (s *ChatService) viewCart(sess *domain.SessionContext) string {
	if sess.Cart.Empty() {
		return "Your cart is empty. Ask me about our Nike, Adidas, or Puma shoes to get started!"
	}

	var b strings.Builder
	b.WriteString("Here's what's in your cart:\n")
	for i, item := range sess.Cart.Items {
		fmt.Fprintf(&b, "%d. %s x%d - $%s\n", i+1, item.Describe(), item.Quantity, formatPrice(item.LineTotal))
	}
	fmt.Fprintf(&b, "Total: $%s", formatPrice(sess.Cart.Total()))

	if promos := s.cart.ApplicablePromotions(sess.Cart); len(promos) > 0 {
		b.WriteString("\nPromotions you can use:")
		for _, p := range promos {
			fmt.Fprintf(&b, "\n- %s: %s", p.Code, p.Description)
		}
	}

	return b.String()
}

// cartFailureMessage turns a cart sentinel error into a user-facing reply.
func cartFailureMessage(err error, catalog domain.Catalog, brand string) string {
	switch {
	case errors.Is(err, domain.ErrBrandNotFound):
		brands := make([]string, 0, len(catalog))
		for _, b := range catalog.Brands() {
			brands = append(brands, titleCase(b))
		}
		return fmt.Sprintf("I couldn't find that brand in our catalog. We carry %s.", strings.Join(brands, ", "))
	case errors.Is(err, domain.ErrModelNotFound):
		if models := catalog.Models(brand); len(models) > 0 {
			return fmt.Sprintf("I couldn't find that model. Available %s models: %s.",
				titleCase(brand), strings.Join(models, ", "))
		}
		return "I couldn't find that model in our catalog."
	case errors.Is(err, domain.ErrOutOfStock):
		return "I'm sorry, that product is currently out of stock."
	case errors.Is(err, domain.ErrSizeUnavailable), errors.Is(err, domain.ErrColorUnavailable):
		return fmt.Sprintf("I couldn't add that: %s.", err.Error())
	}
	return "I couldn't add that to your cart. Could you tell me the brand and model?"
}
