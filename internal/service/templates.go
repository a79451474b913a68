package service

import "github.com/quickbasket/assistant/internal/domain"

// responseTemplates holds the reply pool per intent; one entry is chosen
// uniformly at random per turn.
var responseTemplates = map[domain.Intent][]string{
	domain.IntentOrderTracking: {
		"I can help you track your order. Could you provide your order ID?",
		"To track your order, I'll need your order ID. Could you share that?",
		"Please share your order number and I'll check its status right away.",
		"I'd be happy to help you track your package. What's your order number?",
		"Let me check where your order is. Can you provide the order ID?",
		"For order tracking, I'll need your order number please.",
		"I can locate your shipment with your order ID. Do you have it handy?",
		"To find your delivery status, please provide your order reference number.",
	},
	domain.IntentReturnRefund: {
		"I can help with your return. Could you please provide your order ID?",
		"I'll help you process your refund. Can you share your order number?",
		"To start the return process, I'll need your order details.",
		"Let's get your return started. What's the order number for the items you want to return?",
		"I can assist with processing your return. Which items would you like to return?",
		"For refund assistance, I'll need your order ID and which products you're returning.",
		"Returns are easy with us. Can you share your order number to begin?",
		"I'll guide you through our return process. First, do you have your order confirmation handy?",
	},
	domain.IntentReturnPolicy: {
		"Our return policy allows returns within 30 days of delivery. Items must be unused and in original packaging.",
		"You can return items within 30 days of delivery for a full refund. The item must be in its original condition.",
		"We offer a 30-day return window with full refunds. The product must be unused and in its original packaging.",
		"Quick Basket accepts returns within 30 days of purchase with receipt and original packaging.",
		"Our policy allows 30 days for returns with a valid receipt. Products should be unworn with tags attached.",
		"We have a customer-friendly 30-day return policy. Items should be in resalable condition with original packaging.",
		"Returns are accepted within a month of purchase if items are in original condition with all tags and packaging.",
		"You have 30 days to return products in their original condition. Online orders need the order confirmation number.",
	},
	domain.IntentProductAvailability: {
		"Let me check our inventory for {product} products. Which specific model are you interested in?",
		"We carry {product} products in our stores. What size are you looking for?",
		"Yes, we have {product} items available. Would you like to know about specific models?",
		"I can confirm we stock {product} items. Are you looking for a particular style or size?",
		"{product} is one of our popular brands. Which collection are you interested in?",
		"We have several {product} options in stock. What particular features are you looking for?",
		"Our {product} inventory is well-stocked. Do you have a specific model or color in mind?",
		"Quick Basket carries the latest {product} lines. Can I help you find a specific model?",
	},
	domain.IntentStoreInfo: {
		"We have stores in City Center, Metro Mall, and near Central Station. Our stores are open Monday-Saturday, 9 AM to 9 PM.",
		"Our main store is at 123 Main Street, Downtown. All our stores are open Monday-Saturday, 9 AM to 9 PM.",
		"Quick Basket has 3 locations. The City Center store is open 9 AM-9 PM (Mon-Sat) and 10 AM-6 PM (Sun).",
		"You can visit us at Metro Mall (10 AM-10 PM daily) or our City Center location (9 AM-9 PM weekdays).",
		"Our nearest store is at 456 Market Square in Metro Mall, open from 10 AM to 10 PM every day.",
		"Quick Basket Outlet near Central Station is open weekdays 9 AM-8 PM, but closed on Sundays.",
		"We have three convenient locations with varying hours. Which area are you closest to?",
		"Our flagship store in City Center features extended hours including Sunday shopping from 10 AM-6 PM.",
	},
	domain.IntentGreeting: {
		"Hello! How can I assist you today with sports footwear and apparel?",
		"Hi there! How may I help you with your shopping needs?",
		"Welcome to Quick Basket! I can help with products, orders, or store info.",
		"Good day! I'm your Quick Basket assistant. What brings you here today?",
		"Hey there! How can I make your shopping experience better today?",
		"Hello and welcome! I'm here to help with any Quick Basket questions you might have.",
		"Hi! I'm your virtual shopping assistant. What can I help you find today?",
		"Greetings! How can I assist with your footwear and sports apparel needs today?",
	},
	domain.IntentUnknown: {
		"I can help you with our sports footwear collection, including Nike, Adidas, and Puma. What would you like to know?",
		"I can assist you with product availability, orders, returns, and store information. What do you need help with?",
		"I'm here to help with your sports footwear and apparel needs. What specific information are you looking for?",
		"I specialize in helping with orders, product info, returns, and store locations. How can I assist you?",
		"I'd be happy to help with any questions about our products, shipping, returns or store locations.",
		"Quick Basket offers a wide range of athletic footwear. Can you tell me more about what you're looking for?",
		"I can provide information on our shoes, delivery options, or return policies. What are you interested in?",
		"I'm your Quick Basket assistant. I can check stock, help with orders, or find store information for you.",
	},
	domain.IntentSizeInquiry: {
		"We carry US sizes 4-15 in most styles. Some premium models may have a more limited size range.",
		"Most of our shoes come in US sizes 4-15, including half sizes. Which size are you looking for?",
		"Our size range typically spans from US 4 to 15. Do you know your size in US measurements?",
		"We offer a comprehensive size range from 4 to 15 US. Would you like information on how to measure your foot?",
		"Our shoes typically come in sizes 4-15 US. Some specialty performance models might have different sizing.",
	},
	domain.IntentPromotions: {
		"We currently have a buy-one-get-one 50% off promotion on selected running shoes.",
		"This week we're offering 25% off all Adidas products with code ADIRUN23.",
		"New members get 15% off their first purchase when they sign up for our loyalty program.",
		"Our seasonal clearance has up to 40% off on last season's styles.",
		"Check our website's promotion section for current deals, including our weekend flash sales.",
	},
	domain.IntentShipping: {
		"Standard shipping takes 3-5 business days and costs $5.99. Orders over $75 ship free.",
		"We offer express shipping (1-2 days) for $12.99 and standard shipping (3-5 days) for $5.99.",
		"Orders placed before 2 PM usually ship same day. Free shipping on orders over $75.",
		"Domestic shipping takes 3-5 business days. International shipping is available to select countries.",
		"We ship to all 50 states and over 25 countries. Delivery times vary by location.",
	},
	domain.IntentPayment: {
		"We accept all major credit cards, PayPal, Apple Pay, and Google Pay.",
		"You can pay with credit/debit cards, PayPal, or our store gift cards.",
		"We support major credit cards, digital wallets, and payment plans through Affirm.",
		"Payment options include credit cards, PayPal, Shop Pay, and interest-free installments.",
		"We accept Visa, Mastercard, American Express, Discover, and various digital payment methods.",
	},
	domain.IntentMisunderstood: {
		"I'm not sure I understood that. Could you rephrase your question about our footwear or services?",
		"I didn't quite catch that. Can you ask your question about our products or services differently?",
		"I'm still learning and didn't understand your question. Could you try asking in a different way?",
		"I'm having trouble understanding your request. Could you be more specific about what you need?",
		"I apologize, but I'm not sure what you're asking. Could you clarify what you'd like to know about our products or services?",
	},
	domain.IntentOutOfScope: {
		"I'm specialized in helping with Quick Basket's products and services. For questions outside of that scope, you might want to try a general search engine.",
		"That's beyond my expertise as a Quick Basket assistant. I can help with our products, orders, returns, and store information.",
		"I'm focused on helping with Quick Basket shopping needs. I'm not able to assist with that specific request.",
		"I can only provide information related to Quick Basket products and services. Could I help you with something in that area?",
		"As a Quick Basket shopping assistant, I'm not able to help with that. Is there something related to our footwear or apparel I can assist with?",
	},
	domain.IntentInappropriate: {
		"I'm here to help with Quick Basket shopping inquiries. Let's keep our conversation focused on our products and services.",
		"I'd be happy to assist with any product or service questions you have about Quick Basket offerings.",
		"Let's focus on how I can help you with your shopping needs at Quick Basket.",
		"I'm designed to assist with shopping at Quick Basket. What products or services can I help you with today?",
		"My purpose is to help with your Quick Basket shopping experience. What footwear or apparel information can I provide?",
	},
	domain.IntentRecommendation: {
		"Happy to suggest something! Based on what you've looked at, here are a few picks.",
		"Here are some styles I think you'd like.",
		"Let me pick out a few options for you.",
		"Based on your preferences, these might be a good fit.",
	},
}

// typoTemplates preface a reply when corrections were applied.
var typoTemplates = []string{
	"I think you're asking about {corrected_term}. Is that right?",
	"Did you mean {corrected_term}? Let me help you with that.",
	"I understand you're interested in {corrected_term}. Here's what I can tell you.",
	"Assuming you meant {corrected_term}, I can provide the following information.",
	"I believe you're looking for information about {corrected_term}. Let me assist you with that.",
}
