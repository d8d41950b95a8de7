package chat

import (
	"strings"
	"time"
)

// Opening hours: 10:00 AM to 9:30 PM. The gate works on whole hours, so any
// request at hour 22 or later is already closed.
const (
	OpenHour  = 10
	CloseHour = 22
)

const (
	ClosedReply = "Sorry, Spice Kitchen is currently closed. Our opening hours are 10:00 AM – 9:30 PM. Please come back later!"

	ErrorReply = "Sorry, I encountered an error. Please try again later!"

	defaultReply = "Thank you for your interest in Spice Kitchen! I can help you with Today's Menu, Catering & Availability, Delivery Status, or Coming Soon features. How can I assist you?"
)

// Rule pairs a set of trigger keywords with a canned reply. Rules are
// evaluated top to bottom and the first match wins.
type Rule struct {
	Keywords []string
	Reply    string
}

var rules = []Rule{
	{
		Keywords: []string{"menu", "today"},
		Reply:    "Our today's menu includes delicious Thali, Sweets, Achar, and special Catering options. Visit our menu page to explore all items and place your order!",
	},
	{
		Keywords: []string{"catering", "availability"},
		Reply:    "We offer special catering services for events and parties. Our catering is available for any area via Porter delivery. Contact us on WhatsApp: +91-9310153299 for catering inquiries!",
	},
	{
		Keywords: []string{"delivery", "status"},
		Reply:    "We deliver to any area using Porter. For delivery updates, please check WhatsApp for order confirmation and estimated delivery time.",
	},
	{
		Keywords: []string{"coming soon"},
		Reply:    "Great question! We have exciting new features coming soon. Stay tuned for updates!",
	},
}

// Respond is a pure function of the message text and the current time. Outside
// opening hours the closed reply wins regardless of content.
func Respond(message string, now time.Time) string {
	hour := now.Hour()
	if hour < OpenHour || hour >= CloseHour {
		return ClosedReply
	}

	lower := strings.ToLower(message)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Reply
			}
		}
	}

	return defaultReply
}
