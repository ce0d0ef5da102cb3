// Package whatsapp builds wa.me deep links for the contact widget.
package whatsapp

import (
	"net/url"
	"strings"

	"mazee-site/internal/i18n"
	"mazee-site/internal/model"
)

// BaseURL is the WhatsApp click-to-chat endpoint.
const BaseURL = "https://wa.me/"

// Phone is a reachable WhatsApp number.
type Phone struct {
	Value   string
	Display string
}

// DefaultPhones lists the sales numbers shown in the widget.
var DefaultPhones = []Phone{
	{Value: "995514107878", Display: "+995 514 107 878"},
	{Value: "995598505522", Display: "+995 598 505 522"},
}

// Book looks phones up by number or display form.
type Book struct {
	phones []Phone
}

// NewBook returns a phone book over phones.
func NewBook(phones []Phone) *Book {
	return &Book{phones: phones}
}

// Phones returns the numbers in display order.
func (b *Book) Phones() []Phone {
	return b.phones
}

// Default returns the first number.
func (b *Book) Default() Phone {
	if len(b.phones) == 0 {
		return Phone{}
	}
	return b.phones[0]
}

// Find matches phone against the display form first, then the number.
func (b *Book) Find(phone string) (Phone, bool) {
	phone = strings.TrimSpace(phone)
	for _, p := range b.phones {
		if p.Display == phone {
			return p, true
		}
	}
	for _, p := range b.phones {
		if p.Value == phone {
			return p, true
		}
	}
	return Phone{}, false
}

// Compose validates the widget input and returns the deep link.
func (b *Book) Compose(phone, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", model.ErrEmptyMessage
	}
	p, ok := b.Find(phone)
	if !ok {
		return "", model.ErrUnknownPhone
	}
	return URL(p.Value, message), nil
}

// URL returns https://wa.me/<number>?text=<message>.
func URL(number, message string) string {
	return BaseURL + number + "?text=" + EncodeURIComponent(message)
}

var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s the way browsers do for a URI component:
// everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ) is percent-encoded and
// spaces become %20.
func EncodeURIComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// DefaultMessage is the prefilled widget message.
func DefaultMessage(t i18n.Translator) string {
	return t.T("whatsapp.defaultMessage")
}

// ProductMessage is the prefilled message for a product enquiry.
func ProductMessage(t i18n.Translator, productName string) string {
	return t.T("whatsapp.productMessage", "product", productName)
}

// QuickReplies returns the one-tap message suggestions.
func QuickReplies(t i18n.Translator) []string {
	return t.List("whatsapp.quickReplies")
}
