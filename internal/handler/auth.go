package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sillygoals/sillygoals/internal/htmx"
	"github.com/sillygoals/sillygoals/internal/model"
	"github.com/sillygoals/sillygoals/internal/service"
	"github.com/sillygoals/sillygoals/internal/ui"
	"github.com/sillygoals/sillygoals/internal/ui/views"
	"github.com/sillygoals/sillygoals/internal/validation"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) AuthPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, views.AuthPage(""))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	user, err := h.authService.Login(r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			w.WriteHeader(http.StatusUnauthorized)
			ui.Render(w, r, views.AuthPage("Invalid email or password."))
			return
		}

		slog.Error("login failed", "error", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	h.startSession(w, r, user)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	user, err := h.authService.Register(
		r.PostFormValue("email"),
		r.PostFormValue("password"),
		r.PostFormValue("name"),
	)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			w.WriteHeader(http.StatusConflict)
			ui.Render(w, r, views.AuthPage("An account with that email already exists."))
			return
		}

		var invalid *validation.Error
		if errors.As(err, &invalid) {
			w.WriteHeader(http.StatusBadRequest)
			ui.Render(w, r, views.AuthPage(invalid.Error()))
			return
		}

		slog.Error("registration failed", "error", err)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	h.startSession(w, r, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	redirect(w, r, "/auth")
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, user *model.User) {
	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to sign session token", "error", err, "user_id", user.ID)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	h.authService.SetJWTCookie(w, token)
	redirect(w, r, "/dashboard")
}

// redirect sends the client to path. Fragment requests cannot follow a 303
// into a full page, so they get the client-side navigation header instead.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	if htmx.IsRequest(r) {
		htmx.Redirect(w, path)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, path, http.StatusSeeOther)
}
