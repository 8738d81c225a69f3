package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/Juan171109/automation-task/internal/models"
	"github.com/Juan171109/automation-task/internal/storage"
)

// BasketItem is one basket line as shown on the basket page
type BasketItem struct {
	ProductCard
	Quantity int
	Subtotal string
}

// BasketPage is the data rendered by the basket template
type BasketPage struct {
	Items         []BasketItem
	Total         string
	Notifications []string
}

// BasketHandler handles the basket page requests
type BasketHandler struct {
	template *template.Template
	clients  *Clients
}

// NewBasketHandler creates a new BasketHandler
func NewBasketHandler(templatePath string, clients *Clients) (*BasketHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}

	return &BasketHandler{
		template: tmpl,
		clients:  clients,
	}, nil
}

// ServeHTTP handles GET /basket.html
func (h *BasketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	client, err := h.clients.Resolve(w, r)
	if err != nil {
		zap.S().Errorw("failed to resolve client", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	summary, err := client.Basket.Summary(r.Context())
	if err != nil {
		zap.S().Errorw("failed to load basket", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	page := BasketPage{
		Items:         make([]BasketItem, 0, len(summary.Lines)),
		Total:         summary.FormattedTotal(),
		Notifications: h.clients.Notifications(w, r),
	}
	for _, line := range summary.Lines {
		page.Items = append(page.Items, BasketItem{
			ProductCard: newProductCard(line.Product),
			Quantity:    line.Quantity,
			Subtotal:    line.FormattedSubtotal(),
		})
	}

	renderPage(w, h.template, http.StatusOK, page)
}

// BasketClearHandler handles POST /basket/clear
type BasketClearHandler struct {
	clients *Clients
}

// NewBasketClearHandler creates a new BasketClearHandler
func NewBasketClearHandler(clients *Clients) *BasketClearHandler {
	return &BasketClearHandler{clients: clients}
}

// ServeHTTP empties the basket and returns to the basket page
func (h *BasketClearHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	client, err := h.clients.Resolve(w, r)
	if err != nil {
		zap.S().Errorw("failed to resolve client", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	event, err := client.Basket.Clear(r.Context())
	if errors.Is(err, models.ErrUnauthenticated) {
		http.Redirect(w, r, "/index.html", http.StatusSeeOther)
		return
	}
	if err != nil {
		zap.S().Errorw("failed to clear basket", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.clients.Notify(w, r, event.Message)
	http.Redirect(w, r, "/basket.html", http.StatusSeeOther)
}

// LogoutHandler handles POST /logout
type LogoutHandler struct {
	clients *Clients
}

// NewLogoutHandler creates a new LogoutHandler
func NewLogoutHandler(clients *Clients) *LogoutHandler {
	return &LogoutHandler{clients: clients}
}

// ServeHTTP ends the session, erases the basket and returns to login
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	client, err := h.clients.Resolve(w, r)
	if err != nil {
		zap.S().Errorw("failed to resolve client", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := client.Session.Logout(r.Context()); err != nil {
		zap.S().Errorw("logout failed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/index.html", http.StatusSeeOther)
}

// BasketAPIHandler exposes the persisted basket records as JSON
type BasketAPIHandler struct {
	clients *Clients
}

// NewBasketAPIHandler creates a new BasketAPIHandler
func NewBasketAPIHandler(clients *Clients) *BasketAPIHandler {
	return &BasketAPIHandler{clients: clients}
}

// ServeHTTP handles GET /api/basket
func (h *BasketAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendErrorResponse(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	client, err := h.clients.Resolve(w, r)
	if err != nil {
		zap.S().Errorw("failed to resolve client", "error", err)
		sendErrorResponse(w, "Failed to identify client", http.StatusInternalServerError)
		return
	}

	records, err := client.Basket.Records(r.Context())
	if err != nil {
		zap.S().Errorw("failed to load basket", "error", err)
		sendErrorResponse(w, "Failed to load basket", http.StatusInternalServerError)
		return
	}

	data, err := storage.MarshalBasket(records)
	if err != nil {
		sendErrorResponse(w, "Failed to encode basket", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
