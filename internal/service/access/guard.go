package access

import (
	"context"
	"crypto/subtle"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request входные данные для определения прав
type Request struct {
	ReservationID *int64 // бронирование из пути запроса, если есть
	LinkToken     string
	BearerToken   string
}

// Guard определяет права запроса
// Порядок: токен ссылки для конкретного бронирования, затем сессия оператора
type Guard struct {
	tokens   TokenRepository
	verifier TokenVerifier
	sessions SessionChecker
	logger   Logger
}

// NewGuard создает guard доступа
func NewGuard(tokens TokenRepository, verifier TokenVerifier, sessions SessionChecker, logger Logger) *Guard {
	return &Guard{
		tokens:   tokens,
		verifier: verifier,
		sessions: sessions,
		logger:   logger,
	}
}

// ResolveAccess возвращает права запроса
// Несовпавший токен ссылки считается отсутствующим и не мешает проверке сессии
func (g *Guard) ResolveAccess(ctx context.Context, req Request) domain.Capability {
	if req.ReservationID != nil && req.LinkToken != "" {
		if g.linkTokenMatches(ctx, *req.ReservationID, req.LinkToken) {
			return domain.SingleReservationAccess(*req.ReservationID)
		}
	}

	if req.BearerToken != "" {
		claims, err := g.verifier.Verify(req.BearerToken)
		if err != nil {
			g.logger.Warn("ResolveAccess: bearer token rejected: %v", err)
			return domain.Denied()
		}
		if !g.sessions.IsLive(ctx, claims.ID) {
			g.logger.Info("ResolveAccess: session for token is not live")
			return domain.Denied()
		}
		return domain.FullAccess()
	}

	return domain.Denied()
}

// SessionID извлекает идентификатор сессии из проверенного bearer токена
func (g *Guard) SessionID(bearerToken string) (string, bool) {
	claims, err := g.verifier.Verify(bearerToken)
	if err != nil {
		return "", false
	}
	return claims.ID, true
}

func (g *Guard) linkTokenMatches(ctx context.Context, reservationID int64, token string) bool {
	stored, err := g.tokens.GetToken(ctx, reservationID)
	if err != nil {
		g.logger.Warn("ResolveAccess: no token for reservation id=%d: %v", reservationID, err)
		return false
	}
	if stored == "" {
		return false
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(token)) != 1 {
		g.logger.Warn("ResolveAccess: link token mismatch for reservation id=%d", reservationID)
		return false
	}

	return true
}
