package nlp

import "github.com/quickbasket/assistant/internal/domain"

type trainingSample struct {
	query  string
	intent domain.Intent
}

// trainingSeed is the labeled corpus the fallback predictor is trained on.
// It is intentionally small; the rule cascade is the load-bearing logic.
var trainingSeed = []trainingSample{
	{"Where is my order?", domain.IntentOrderTracking},
	{"I want to return my shoes", domain.IntentReturnRefund},
	{"Do you have Nike shoes?", domain.IntentProductAvailability},
	{"Where is your store located?", domain.IntentStoreInfo},
	{"Hello", domain.IntentGreeting},
	{"What is your return policy?", domain.IntentReturnPolicy},
	{"I need help finding a product", domain.IntentUnknown},
	{"Can I exchange my order?", domain.IntentReturnRefund},
	{"What are your store hours?", domain.IntentStoreInfo},
	{"Do you ship internationally?", domain.IntentShipping},
	{"What sizes do you carry?", domain.IntentSizeInquiry},
	{"Do you have size 10?", domain.IntentSizeInquiry},
	{"Are there any discounts?", domain.IntentPromotions},
	{"Do you have any promotions?", domain.IntentPromotions},
	{"How much is shipping?", domain.IntentShipping},
	{"When will my order arrive?", domain.IntentOrderTracking},
	{"Do you accept PayPal?", domain.IntentPayment},
	{"What payment methods do you accept?", domain.IntentPayment},
	{"Can I use Apple Pay?", domain.IntentPayment},
	{"Do you have a sale going on?", domain.IntentPromotions},
	{"What's your biggest discount?", domain.IntentPromotions},
	{"How do I measure my shoe size?", domain.IntentSizeInquiry},
	{"How long does shipping take?", domain.IntentShipping},
	{"Do you have free shipping?", domain.IntentShipping},
	{"What's your cheapest shipping option?", domain.IntentShipping},
	{"What's your opinion on politics?", domain.IntentOutOfScope},
	{"Tell me a joke", domain.IntentOutOfScope},
	{"What do you think about the current president?", domain.IntentOutOfScope},
	{"Can you help me with my homework?", domain.IntentOutOfScope},
	{"Hey Siri", domain.IntentMisunderstood},
	{"How can I invest in stocks?", domain.IntentOutOfScope},
	{"How do I fix my sink?", domain.IntentOutOfScope},
	{"What's the meaning of life?", domain.IntentOutOfScope},
	{"Tell me something inappropriate", domain.IntentInappropriate},
	{"Adult content query", domain.IntentInappropriate},
	{"How can I cheat on my test?", domain.IntentInappropriate},
	{"Tell me how to hack someone's account", domain.IntentInappropriate},
	{"What do you know about illegal activities?", domain.IntentInappropriate},
	{"giberish text kdkjf", domain.IntentMisunderstood},
	{"asdf", domain.IntentMisunderstood},
	{"?????", domain.IntentMisunderstood},
	{"blah blah", domain.IntentMisunderstood},
	{"hmm", domain.IntentMisunderstood},
	{"I'm looking for nikee shoes", domain.IntentProductAvailability},
	{"Do you have addidas", domain.IntentProductAvailability},
	{"Gimme some jordanns", domain.IntentProductAvailability},
	{"I want to retrun my order", domain.IntentReturnRefund},
	{"Help with shiping", domain.IntentShipping},
	{"payment opshuns", domain.IntentPayment},
	{"Need a refudn", domain.IntentReturnRefund},
}
