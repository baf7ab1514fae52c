package ports

import (
	"context"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
)

// Notifier delivers a rendered message to a customer over SMS or
// WhatsApp. Dispatch is fire and forget: a failed delivery must never
// undo the state change that triggered it, so implementations log and
// swallow transport errors.
type Notifier interface {
	Dispatch(ctx context.Context, phone kernel.Phone, whatsApp bool, text string)
}
