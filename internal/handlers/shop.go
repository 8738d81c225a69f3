package handlers

import (
	"errors"
	"html/template"
	"iter"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/Juan171109/automation-task/internal/models"
)

// ProductSearcher filters the catalog by a search term
type ProductSearcher interface {
	Search(term string) iter.Seq[models.Product]
}

// ProductCard is a product as shown on the shop and basket pages
type ProductCard struct {
	Code          string
	Description   string
	Price         string
	UnitOfMeasure string
	AvailableQty  int
	ImageRef      string
}

func newProductCard(p models.Product) ProductCard {
	return ProductCard{
		Code:          p.Code,
		Description:   p.Description,
		Price:         p.FormattedPrice(),
		UnitOfMeasure: p.UnitOfMeasure,
		AvailableQty:  p.AvailableQty,
		ImageRef:      p.ImageRef,
	}
}

// ShopPage is the data rendered by the shop template
type ShopPage struct {
	Query         string
	Products      []ProductCard
	Notifications []string
}

// ShopHandler handles the shop page requests
type ShopHandler struct {
	template *template.Template
	catalog  ProductSearcher
	clients  *Clients
}

// NewShopHandler creates a new ShopHandler
func NewShopHandler(templatePath string, catalog ProductSearcher, clients *Clients) (*ShopHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}

	return &ShopHandler{
		template: tmpl,
		catalog:  catalog,
		clients:  clients,
	}, nil
}

// ServeHTTP handles GET /shop.html?q=
func (h *ShopHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	page := ShopPage{
		Query:         query,
		Products:      []ProductCard{},
		Notifications: h.clients.Notifications(w, r),
	}
	for p := range h.catalog.Search(query) {
		page.Products = append(page.Products, newProductCard(p))
	}

	renderPage(w, h.template, http.StatusOK, page)
}

// BasketAddHandler handles POST /basket/add
type BasketAddHandler struct {
	clients *Clients
}

// NewBasketAddHandler creates a new BasketAddHandler
func NewBasketAddHandler(clients *Clients) *BasketAddHandler {
	return &BasketAddHandler{clients: clients}
}

// ServeHTTP adds one unit of the posted product and returns to the shop
func (h *BasketAddHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	client, err := h.clients.Resolve(w, r)
	if err != nil {
		zap.S().Errorw("failed to resolve client", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	event, err := client.Basket.Add(r.Context(), strings.TrimSpace(r.PostFormValue("productCode")))
	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		http.Redirect(w, r, "/index.html", http.StatusSeeOther)
		return
	case errors.Is(err, models.ErrUnknownProduct):
		http.Error(w, "Unknown product", http.StatusBadRequest)
		return
	case err != nil:
		zap.S().Errorw("failed to add to basket", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.clients.Notify(w, r, event.Message)
	http.Redirect(w, r, shopURL(r.PostFormValue("q")), http.StatusSeeOther)
}

// shopURL keeps the active search term when returning to the shop
func shopURL(query string) string {
	if query == "" {
		return "/shop.html"
	}
	return "/shop.html?q=" + url.QueryEscape(query)
}
