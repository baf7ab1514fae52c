// Package rabbitmq publishes customer notifications to a RabbitMQ
// fanout exchange. Downstream workers deliver them over WhatsApp or
// SMS; this adapter only hands the rendered message off.
package rabbitmq

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"

	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// NotificationsExchange is the fanout exchange notification messages
	// are published to.
	NotificationsExchange = "notifications_fanout"

	// NotificationsQueue collects every published notification for the
	// delivery workers.
	NotificationsQueue = "notifications.q"

	countryPrefix = "213"
)

// ChannelWhatsApp and ChannelSMS name the delivery channel inside the
// published message.
const (
	ChannelWhatsApp = "whatsapp"
	ChannelSMS      = "sms"
)

// notificationMessage is the wire format consumed by delivery workers.
type notificationMessage struct {
	Channel string `json:"channel"`
	Phone   string `json:"phone"`
	Text    string `json:"text"`
}

// Notifier publishes notifications over an AMQP channel.
type Notifier struct {
	ch *amqp.Channel
}

// NewNotifier declares the notification exchange and queue on the given
// channel and returns a Notifier bound to it.
func NewNotifier(ch *amqp.Channel) (*Notifier, error) {
	if err := ch.ExchangeDeclare(NotificationsExchange, "fanout", true, false, false, false, nil); err != nil {
		return nil, err
	}
	if _, err := ch.QueueDeclare(NotificationsQueue, true, false, false, false, nil); err != nil {
		return nil, err
	}
	if err := ch.QueueBind(NotificationsQueue, "", NotificationsExchange, false, nil); err != nil {
		return nil, err
	}

	return &Notifier{ch: ch}, nil
}

// Dispatch publishes one notification. Delivery is fire and forget:
// publish failures are logged and swallowed so they never undo the
// state change that triggered the message.
func (n *Notifier) Dispatch(ctx context.Context, phone kernel.Phone, whatsApp bool, text string) {
	channel := ChannelSMS
	if whatsApp {
		channel = ChannelWhatsApp
	}

	body, err := json.Marshal(notificationMessage{
		Channel: channel,
		Phone:   NormalizePhone(phone.String()),
		Text:    text,
	})
	if err != nil {
		log.Errorf("notification marshal failed: %v", err)
		return
	}

	err = n.ch.PublishWithContext(ctx, NotificationsExchange, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		log.Errorf("notification publish for %s failed: %v", phone.String(), err)
	}
}

// NormalizePhone converts a locally formatted Algerian number into its
// international form: whitespace stripped, a leading 0 replaced by the
// country prefix, and the prefix prepended when missing.
func NormalizePhone(raw string) string {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	if strings.HasPrefix(clean, "0") {
		return countryPrefix + clean[1:]
	}
	if strings.HasPrefix(clean, countryPrefix) {
		return clean
	}
	return countryPrefix + clean
}
