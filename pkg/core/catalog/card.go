package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
)

// ExcerptLength is the number of description characters shown on a card
const ExcerptLength = 90

// Card is the display model of one product on the public page
type Card struct {
	ID          string
	Title       string
	ImageURL    string
	Category    string
	Price       string // formatted without currency sign, empty when unset or zero
	Excerpt     string
	RedirectURL string
}

// Excerpt shortens s to ExcerptLength characters and appends "..." when it
// was longer. Length is counted in runes.
func Excerpt(s string) string {
	r := []rune(s)
	if len(r) <= ExcerptLength {
		return s
	}
	return string(r[:ExcerptLength]) + "..."
}

// FormatPrice renders a price the way the catalog shows it, e.g. 49.99 or 120.
func FormatPrice(price *float64) string {
	if price == nil {
		return ""
	}
	return strconv.FormatFloat(*price, 'f', -1, 64)
}

// RedirectURL is the backend endpoint that counts a click and forwards the
// browser to the product's affiliate link.
func RedirectURL(apiBase, id string) string {
	return strings.TrimRight(apiBase, "/") + "/api/products/" + url.PathEscape(id) + "/redirect"
}

// HasPrice reports whether a card shows price. Zero counts as unset.
func HasPrice(price *float64) bool {
	return price != nil && *price != 0
}

// NewCard shapes p for rendering. link builds the "View Deal" target.
func NewCard(p domain.Product, link func(id string) string) Card {
	card := Card{
		ID:          p.ID,
		Title:       p.Title,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		Excerpt:     Excerpt(p.Description),
		RedirectURL: link(p.ID),
	}
	if HasPrice(p.Price) {
		card.Price = FormatPrice(p.Price)
	}
	return card
}

// NewCards shapes every product in order.
func NewCards(products []domain.Product, link func(id string) string) []Card {
	cards := make([]Card, 0, len(products))
	for _, p := range products {
		cards = append(cards, NewCard(p, link))
	}
	return cards
}
