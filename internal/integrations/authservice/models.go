package authservice

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// OperatorSubject subject токена оператора (в системе один оператор)
const OperatorSubject = "operator"

// Claims полезная нагрузка bearer токена оператора
// ID (jti) используется как идентификатор сессии
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// IssuedToken выданный токен
type IssuedToken struct {
	Token     string
	SessionID string
	ExpiresAt time.Time
}
