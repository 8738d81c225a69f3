package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Juan171109/automation-task/internal/models"
)

// InvalidLoginMessage is shown for any rejected login
const InvalidLoginMessage = "Invalid username or password"

var validate = validator.New()

type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// LoginPage is the data rendered by the login template
type LoginPage struct {
	Username string
	Error    string
}

// LoginHandler handles the login page
type LoginHandler struct {
	template *template.Template
	clients  *Clients
}

// NewLoginHandler creates a new LoginHandler
func NewLoginHandler(templatePath string, clients *Clients) (*LoginHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}

	return &LoginHandler{
		template: tmpl,
		clients:  clients,
	}, nil
}

// ServeHTTP renders the form on GET and signs the tab in on POST
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.render(w, http.StatusOK, LoginPage{})
	case http.MethodPost:
		h.login(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *LoginHandler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	form := loginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	// the password is never echoed back
	page := LoginPage{Username: form.Username, Error: InvalidLoginMessage}

	if err := validate.Struct(form); err != nil {
		h.render(w, http.StatusUnauthorized, page)
		return
	}

	client, err := h.clients.Resolve(w, r)
	if err != nil {
		zap.S().Errorw("failed to resolve client", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if _, err := client.Session.Login(r.Context(), form.Username, form.Password); err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			h.render(w, http.StatusUnauthorized, page)
			return
		}
		zap.S().Errorw("login failed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/shop.html", http.StatusSeeOther)
}

func (h *LoginHandler) render(w http.ResponseWriter, status int, page LoginPage) {
	renderPage(w, h.template, status, page)
}
