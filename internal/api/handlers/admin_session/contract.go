package admin_session

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/integrations/authservice"
	"github.com/m04kA/SMC-RentalService/internal/service/session"
)

type Authenticator interface {
	Login(password string) (*authservice.IssuedToken, error)
	Verify(token string) (*authservice.Claims, error)
}

type SessionGuard interface {
	Init(ctx context.Context, sessionID string) error
	Touch(ctx context.Context, sessionID string, event session.ActivityEvent) (*session.Status, error)
	Extend(ctx context.Context, sessionID string) (*session.Status, error)
	Status(ctx context.Context, sessionID string) (*session.Status, error)
	Teardown(ctx context.Context, sessionID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
