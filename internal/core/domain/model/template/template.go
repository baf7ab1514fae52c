package template

import (
	"errors"
	"strings"

	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
)

// Key identifies one of the notification messages staff can customise.
type Key string

const (
	ReservationConfirmation Key = "res_confirmation"
	ReservationCancellation Key = "res_cancellation"
	OrderPreparing          Key = "ord_preparing"
	OrderDelivering         Key = "ord_delivering"
	OrderCompleted          Key = "ord_completed"
)

// Keys lists every template key in display order.
func Keys() []Key {
	return []Key{
		ReservationConfirmation,
		ReservationCancellation,
		OrderPreparing,
		OrderDelivering,
		OrderCompleted,
	}
}

// KeyFromString converts a raw string into a Key.
func KeyFromString(value string) (Key, error) {
	for _, key := range Keys() {
		if value == string(key) {
			return key, nil
		}
	}
	return "", errs.NewValueIsInvalidError("templateKey")
}

var (
	// ErrTemplateIsNotConstructed is returned when a Template was not
	// created through NewTemplate.
	ErrTemplateIsNotConstructed = errors.New("Template must be created via NewTemplate constructor")

	// ErrTemplateTextIsRequired is returned when saving an empty message.
	ErrTemplateTextIsRequired = errs.NewValueIsRequiredError("text")
)

// Template is a customisable notification message. The text may carry
// {{placeholder}} tokens filled in at send time.
type Template struct {
	key  Key
	text string

	isConstructed bool
}

// NewTemplate creates a template for a known key.
func NewTemplate(key Key, text string) (Template, error) {
	if _, err := KeyFromString(string(key)); err != nil {
		return Template{}, err
	}

	if text == "" {
		return Template{}, ErrTemplateTextIsRequired
	}

	return Template{
		key:           key,
		text:          text,
		isConstructed: true,
	}, nil
}

// Validate ensures the Template was built through the factory function.
func (t Template) Validate() error {
	if !t.isConstructed {
		return ErrTemplateIsNotConstructed
	}
	return nil
}

// Key returns the template's key.
func (t Template) Key() Key {
	return t.key
}

// Text returns the raw message with its placeholders intact.
func (t Template) Text() string {
	return t.text
}

// Render substitutes every {{name}} token with vars["name"]. Tokens
// without a matching variable are left verbatim so a staff typo shows
// up in the message instead of vanishing silently.
func (t Template) Render(vars map[string]string) string {
	out := t.text
	for name, value := range vars {
		out = strings.ReplaceAll(out, "{{"+name+"}}", value)
	}
	return out
}

// Defaults returns the stock French messages used until staff edit them.
func Defaults() []Template {
	defaults := map[Key]string{
		ReservationConfirmation: "Bonjour {{nom}} ! Votre réservation pour le {{date}} à {{heure}}{{fin_info}} est CONFIRMÉE ✅. À bientôt !",
		ReservationCancellation: "Bonjour {{nom}}. Votre réservation pour le {{date}} à {{heure}} a été ANNULÉE ❌.",
		OrderPreparing:          "Bonne nouvelle {{nom}} ! Votre commande #{{id}} est désormais en cours de préparation en cuisine 👨‍🍳.",
		OrderDelivering:         "Votre commande #{{id}} est en route 🛵 ! Elle vous sera livrée par {{livreur}}.",
		OrderCompleted:          "Votre commande #{{id}} a été livrée ✅. Toute l'équipe vous souhaite un excellent appétit !",
	}

	templates := make([]Template, 0, len(defaults))
	for _, key := range Keys() {
		templates = append(templates, Template{
			key:           key,
			text:          defaults[key],
			isConstructed: true,
		})
	}
	return templates
}
