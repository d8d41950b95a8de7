package checkout

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spicekitchen/backend/internal/cart"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrEmptyAddress = errors.New("delivery address is required")
)

// BuildMessage renders the order text sent to the restaurant's WhatsApp: one
// line per cart line, the total, then the address block.
func BuildMessage(c *cart.Cart, address string) string {
	var b strings.Builder
	b.WriteString("*New Order from Spice Kitchen website* 🍛\n\n")
	for _, l := range c.Lines() {
		fmt.Fprintf(&b, "• %d x %s (₹%d)\n", l.Quantity, l.Item.Name, l.Item.Price*int64(l.Quantity))
	}
	fmt.Fprintf(&b, "\n*Total Amount: ₹%d*\n\n", c.TotalAmount())
	fmt.Fprintf(&b, "📍 *Delivery Address:*\n%s\n\n", address)
	b.WriteString("Delivery via Porter to any area. Please confirm my order!")
	return b.String()
}

// BuildOrderLink composes the wa.me deep link for the given cart and address.
// It never touches the cart: clearing after a handoff is left to the caller,
// who may need the user to re-confirm.
func BuildOrderLink(c *cart.Cart, address, number string) (string, error) {
	if strings.TrimSpace(address) == "" {
		return "", ErrEmptyAddress
	}
	if c.TotalItems() == 0 {
		return "", ErrEmptyCart
	}

	message := BuildMessage(c, address)
	return "https://wa.me/" + number + "?text=" + encodeComponent(message), nil
}

// encodeComponent percent-encodes like the browsers' encodeURIComponent:
// spaces become %20, not '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
