package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spotifaux/spotifaux-go/internal/middleware"
	"github.com/spotifaux/spotifaux-go/internal/model"
	"github.com/spotifaux/spotifaux-go/internal/service"
)

// CookieConfig holds the attributes of the session cookie.
type CookieConfig struct {
	SameSite http.SameSite
	Secure   bool
	MaxAge   time.Duration
}

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service *service.AuthService
	cookie  CookieConfig
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{service: svc, cookie: cookie}
}

// HandleSignup handles POST /auth/signup requests.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Signup(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrPasswordTooShort):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	h.setSessionCookie(w, resp.AccessToken)
	writeJSON(w, http.StatusOK, resp)
}

// HandleLogin handles POST /auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
			return
		}
		writeInternalError(w, r, err)
		return
	}

	h.setSessionCookie(w, resp.AccessToken)
	writeJSON(w, http.StatusOK, resp)
}

// HandleLogout handles POST /auth/logout requests. It always succeeds.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: h.cookie.SameSite,
		Secure:   h.cookie.Secure,
	})
	slog.Info("logout cookie cleared")

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// HandleMe handles GET /auth/me requests.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Not authenticated"))
		return
	}

	writeJSON(w, http.StatusOK, user.Public())
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookie.MaxAge.Seconds()),
		HttpOnly: true,
		SameSite: h.cookie.SameSite,
		Secure:   h.cookie.Secure,
	})
}
