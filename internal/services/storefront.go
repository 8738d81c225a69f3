package services

import (
	"github.com/Juan171109/automation-task/internal/models"
	"github.com/Juan171109/automation-task/internal/storage"
)

// StorefrontOptions configures behaviour shared by every client
type StorefrontOptions struct {
	ReAddPolicy  models.ReAddPolicy
	TrimUsername bool
}

// Storefront binds session and basket services to one client's storage
type Storefront struct {
	backend     storage.Backend
	catalog     ProductCatalog
	credentials CredentialStore
	options     StorefrontOptions
}

// ClientServices are the services of a single browser client
type ClientServices struct {
	Session SessionService
	Basket  BasketService
}

// NewStorefront creates a new storefront service factory
func NewStorefront(backend storage.Backend, catalog ProductCatalog, credentials CredentialStore, options StorefrontOptions) *Storefront {
	if options.ReAddPolicy == "" {
		options.ReAddPolicy = models.ReAddIncrement
	}
	return &Storefront{
		backend:     backend,
		catalog:     catalog,
		credentials: credentials,
		options:     options,
	}
}

// ForClient returns services whose basket lives in the durable clientID
// namespace and whose session lives in the browser-session tabID namespace
func (f *Storefront) ForClient(clientID, tabID string) ClientServices {
	basketStore := storage.Scope(f.backend, "client:"+clientID)
	sessionStore := storage.Scope(f.backend, "tab:"+tabID)

	session := NewSessionService(sessionStore, basketStore, f.credentials, f.options.TrimUsername)
	return ClientServices{
		Session: session,
		Basket:  NewBasketService(basketStore, session, f.catalog, f.options.ReAddPolicy),
	}
}
