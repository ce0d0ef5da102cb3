package handler

import (
	"errors"
	"net/http"
	"strings"

	"mazee-site/internal/i18n"
	"mazee-site/internal/model"
	"mazee-site/internal/service"
	"mazee-site/internal/whatsapp"

	"github.com/rs/zerolog"
)

// ContactHandler turns the WhatsApp widget form into a wa.me redirect.
type ContactHandler struct {
	products service.ProductService
	book     *whatsapp.Book
	bundle   *i18n.Bundle
	logger   zerolog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(products service.ProductService, book *whatsapp.Book, bundle *i18n.Bundle, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		products: products,
		book:     book,
		bundle:   bundle,
		logger:   logger.With().Str("handler", "contact").Logger(),
	}
}

// WhatsApp handles GET and POST /contact/whatsapp requests. The phone
// defaults to the first number; a product id switches the default message
// to the product enquiry. A blank message is only filled in for GET links,
// a submitted form must carry one.
func (h *ContactHandler) WhatsApp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	tr := h.bundle.Translator(i18n.FromContext(r.Context()))

	phone := strings.TrimSpace(r.Form.Get("phone"))
	if phone == "" {
		phone = h.book.Default().Value
	}

	message := r.Form.Get("message")
	if productID := r.Form.Get("product"); productID != "" {
		product, err := h.product(r, productID)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		if strings.TrimSpace(message) == "" {
			message = whatsapp.ProductMessage(tr, product.Name)
		}
	}
	if r.Method == http.MethodGet && strings.TrimSpace(message) == "" {
		message = whatsapp.DefaultMessage(tr)
	}

	link, err := h.book.Compose(phone, message)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.logger.Debug().Str("phone", phone).Msg("redirecting to whatsapp")
	http.Redirect(w, r, link, http.StatusSeeOther)
}

func (h *ContactHandler) product(r *http.Request, value string) (*model.Product, error) {
	id, err := parseID(value)
	if err != nil {
		return nil, err
	}
	return h.products.GetByID(r.Context(), i18n.FromContext(r.Context()), id)
}

// fail answers with a plain-text error; the widget is a browser form.
func (h *ContactHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	message := http.StatusText(status)
	var de *model.DomainError
	if errors.As(err, &de) {
		message = de.Message
	}

	h.logger.Warn().Err(err).Int("status", status).Str("path", r.URL.Path).Msg("contact request rejected")
	http.Error(w, message, status)
}
