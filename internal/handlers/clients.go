package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/Juan171109/automation-task/internal/guard"
	"github.com/Juan171109/automation-task/internal/services"
)

const (
	clientCookie = "storefront_client"
	tabCookie    = "storefront_tab"

	idKey     = "id"
	noticeKey = "notice"

	// clientMaxAge keeps the basket cookie for a year
	clientMaxAge = 365 * 24 * 60 * 60
)

// NewCookieStore creates the signed cookie store that carries client ids
func NewCookieStore(secret []byte, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore(secret)
	store.MaxAge(clientMaxAge)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode
	return store
}

// Clients maps browser cookies to per-client services. The client cookie
// persists across browser restarts and scopes the basket; the tab cookie
// lives until the browser session ends and scopes the login session.
type Clients struct {
	store      sessions.Store
	storefront *services.Storefront
}

// NewClients creates a new client resolver
func NewClients(store sessions.Store, storefront *services.Storefront) *Clients {
	return &Clients{
		store:      store,
		storefront: storefront,
	}
}

// Resolve returns the services for the requesting browser, issuing ids on
// first contact.
func (c *Clients) Resolve(w http.ResponseWriter, r *http.Request) (services.ClientServices, error) {
	client := c.session(r, clientCookie)
	tab := c.session(r, tabCookie)
	tab.Options.MaxAge = 0

	clientID, issued := ensureID(client)
	if issued {
		if err := client.Save(r, w); err != nil {
			return services.ClientServices{}, err
		}
	}

	tabID, issued := ensureID(tab)
	if issued {
		if err := tab.Save(r, w); err != nil {
			return services.ClientServices{}, err
		}
	}

	return c.storefront.ForClient(clientID, tabID), nil
}

// State reports the navigation state of the requesting tab without issuing
// ids.
func (c *Clients) State(r *http.Request) guard.State {
	tabID, _ := c.session(r, tabCookie).Values[idKey].(string)
	if tabID == "" {
		return guard.Unauthenticated
	}
	clientID, _ := c.session(r, clientCookie).Values[idKey].(string)

	if c.storefront.ForClient(clientID, tabID).Session.IsAuthenticated(r.Context()) {
		return guard.Authenticated
	}
	return guard.Unauthenticated
}

// Notify queues a one-shot notification for the next page the tab renders
func (c *Clients) Notify(w http.ResponseWriter, r *http.Request, message string) {
	tab := c.session(r, tabCookie)
	tab.Options.MaxAge = 0

	notices, _ := tab.Values[noticeKey].([]string)
	tab.Values[noticeKey] = append(notices, message)
	if err := tab.Save(r, w); err != nil {
		zap.S().Warnw("failed to queue notification", "error", err)
	}
}

// Notifications pops the queued notifications for the tab
func (c *Clients) Notifications(w http.ResponseWriter, r *http.Request) []string {
	tab := c.session(r, tabCookie)
	notices, _ := tab.Values[noticeKey].([]string)
	if len(notices) == 0 {
		return nil
	}

	tab.Options.MaxAge = 0
	delete(tab.Values, noticeKey)
	if err := tab.Save(r, w); err != nil {
		zap.S().Warnw("failed to consume notifications", "error", err)
	}
	return notices
}

func (c *Clients) session(r *http.Request, name string) *sessions.Session {
	sess, err := c.store.Get(r, name)
	if err != nil {
		// an undecodable cookie is replaced by a fresh session
		zap.S().Debugw("discarding client cookie", "cookie", name, "error", err)
	}
	return sess
}

func ensureID(sess *sessions.Session) (string, bool) {
	if id, ok := sess.Values[idKey].(string); ok && id != "" {
		return id, false
	}
	id := uuid.NewString()
	sess.Values[idKey] = id
	return id, true
}
