package admin_session

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный пароль"
	msgLoginRequired      = "требуется вход оператора"
	msgSessionExpired     = "сессия завершена из-за бездействия"
	msgIgnoredEvent       = "событие не считается активностью"
)

// CookieSettings параметры cookie сессии
type CookieSettings struct {
	Name   string
	Secure bool
}

// Handler вход, выход и таймаут бездействия оператора
type Handler struct {
	auth     Authenticator
	sessions SessionGuard
	cookie   CookieSettings
	timeout  time.Duration
	logger   Logger
}

func NewHandler(auth Authenticator, sessions SessionGuard, cookie CookieSettings, timeout time.Duration, logger Logger) *Handler {
	return &Handler{
		auth:     auth,
		sessions: sessions,
		cookie:   cookie,
		timeout:  timeout,
		logger:   logger,
	}
}

// Login POST /api/v1/admin/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	issued, err := h.auth.Login(req.Password)
	if err != nil {
		h.logger.Warn("POST /admin/login - Login failed: %v", err)
		handlers.RespondUnauthorized(w, msgInvalidCredentials)
		return
	}

	if err := h.sessions.Init(r.Context(), issued.SessionID); err != nil {
		h.logger.Error("POST /admin/login - Failed to start session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    issued.Token,
		Path:     "/",
		Expires:  issued.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteStrictMode,
	})

	h.logger.Info("POST /admin/login - Operator logged in")
	handlers.RespondJSON(w, http.StatusOK, &LoginResponse{
		Token:          issued.Token,
		ExpiresAt:      issued.ExpiresAt,
		TimeoutSeconds: int(h.timeout.Seconds()),
	})
}

// Logout POST /api/v1/admin/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(r)
	if !ok {
		handlers.RespondUnauthorized(w, msgLoginRequired)
		return
	}

	if err := h.sessions.Teardown(r.Context(), sessionID); err != nil {
		h.logger.Error("POST /admin/logout - Failed to close session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.clearCookie(w)
	h.logger.Info("POST /admin/logout - Operator logged out")
	handlers.RespondNoContent(w)
}

// Status GET /api/v1/admin/session
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	const op = "GET /admin/session"

	sessionID, ok := h.sessionID(r)
	if !ok {
		handlers.RespondUnauthorized(w, msgLoginRequired)
		return
	}

	status, err := h.sessions.Status(r.Context(), sessionID)
	if err != nil {
		h.respondError(w, op, err)
		return
	}
	if status.State == session.StateExpired {
		h.clearCookie(w)
		handlers.RespondUnauthorized(w, msgSessionExpired)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSessionStatus(status))
}

// Activity POST /api/v1/admin/session/activity
func (h *Handler) Activity(w http.ResponseWriter, r *http.Request) {
	const op = "POST /admin/session/activity"

	sessionID, ok := h.sessionID(r)
	if !ok {
		handlers.RespondUnauthorized(w, msgLoginRequired)
		return
	}

	var req ActivityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	status, err := h.sessions.Touch(r.Context(), sessionID, session.ActivityEvent(req.Event))
	if err != nil {
		h.respondError(w, op, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSessionStatus(status))
}

// Extend POST /api/v1/admin/session/extend
func (h *Handler) Extend(w http.ResponseWriter, r *http.Request) {
	const op = "POST /admin/session/extend"

	sessionID, ok := h.sessionID(r)
	if !ok {
		handlers.RespondUnauthorized(w, msgLoginRequired)
		return
	}

	status, err := h.sessions.Extend(r.Context(), sessionID)
	if err != nil {
		h.respondError(w, op, err)
		return
	}

	h.logger.Info("%s - Session extended", op)
	handlers.RespondJSON(w, http.StatusOK, FromSessionStatus(status))
}

// sessionID идентификатор сессии из проверенного bearer токена
func (h *Handler) sessionID(r *http.Request) (string, bool) {
	token := middleware.BearerToken(r, h.cookie.Name)
	if token == "" {
		return "", false
	}

	claims, err := h.auth.Verify(token)
	if err != nil {
		h.logger.Warn("admin session - Bearer token rejected: %v", err)
		return "", false
	}
	return claims.ID, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, session.ErrIgnoredEvent):
		handlers.RespondBadRequest(w, msgIgnoredEvent)

	case errors.Is(err, session.ErrSessionExpired):
		h.logger.Info("%s - Session expired", op)
		h.clearCookie(w)
		handlers.RespondUnauthorized(w, msgSessionExpired)

	case errors.Is(err, session.ErrSessionNotFound):
		h.clearCookie(w)
		handlers.RespondUnauthorized(w, msgLoginRequired)

	default:
		h.logger.Error("%s - Session store failure: %v", op, err)
		handlers.RespondInternalError(w)
	}
}

func (h *Handler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}
