package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/access"
)

type contextKey string

const capabilityKey contextKey = "capability"

// LinkTokenHeader заголовок с токеном ссылки из письма
const LinkTokenHeader = "X-Reservation-Token"

// AccessResolver определение прав запроса
type AccessResolver interface {
	ResolveAccess(ctx context.Context, req access.Request) domain.Capability
}

// Access определяет права запроса и кладет их в контекст
// Токен ссылки берется из ?token= или X-Reservation-Token, bearer - из Authorization или cookie сессии
func Access(resolver AccessResolver, cookieName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			req := access.Request{
				LinkToken:   LinkToken(r),
				BearerToken: BearerToken(r, cookieName),
			}
			if raw, ok := mux.Vars(r)["reservationId"]; ok {
				if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
					req.ReservationID = &id
				}
			}

			capability := resolver.ResolveAccess(r.Context(), req)
			ctx := context.WithValue(r.Context(), capabilityKey, capability)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetCapability права из контекста; без middleware - Denied
func GetCapability(ctx context.Context) domain.Capability {
	capability, ok := ctx.Value(capabilityKey).(domain.Capability)
	if !ok {
		return domain.Denied()
	}
	return capability
}

// WithCapability кладет права в контекст (для тестов handlers)
func WithCapability(ctx context.Context, capability domain.Capability) context.Context {
	return context.WithValue(ctx, capabilityKey, capability)
}

// LinkToken токен ссылки из query или заголовка
func LinkToken(r *http.Request) string {
	if token := r.URL.Query().Get("token"); token != "" {
		return token
	}
	return strings.TrimSpace(r.Header.Get(LinkTokenHeader))
}

// BearerToken токен оператора из Authorization: Bearer или cookie сессии
func BearerToken(r *http.Request, cookieName string) string {
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	if cookieName != "" {
		if cookie, err := r.Cookie(cookieName); err == nil {
			return cookie.Value
		}
	}
	return ""
}
