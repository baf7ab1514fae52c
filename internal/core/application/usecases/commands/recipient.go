package commands

import (
	"context"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/ports"
)

// recipient carries the contact details a notification needs. Unknown
// callers get zero values; the composer substitutes its fallbacks.
type recipient struct {
	name     string
	whatsApp bool
}

func lookupRecipient(ctx context.Context, repo ports.CustomerRepository, phone kernel.Phone) recipient {
	profile, err := repo.Get(ctx, phone)
	if err != nil {
		return recipient{}
	}

	return recipient{
		name:     profile.Name(),
		whatsApp: profile.WhatsApp(),
	}
}
