package session

import (
	"context"
	"fmt"
	"time"
)

// Guard таймер бездействия сессии оператора
// Через timeout без активности сессия истекает, за warning до этого показывается предупреждение
type Guard struct {
	store   Store
	clock   TimeProvider
	timeout time.Duration
	warning time.Duration
	logger  Logger
}

// NewGuard создает guard сессий
func NewGuard(store Store, clock TimeProvider, timeout, warning time.Duration, logger Logger) *Guard {
	return &Guard{
		store:   store,
		clock:   clock,
		timeout: timeout,
		warning: warning,
		logger:  logger,
	}
}

// Timeout длительность бездействия до завершения сессии
func (g *Guard) Timeout() time.Duration {
	return g.timeout
}

// Init запускает отсчет для новой сессии (при входе)
func (g *Guard) Init(ctx context.Context, sessionID string) error {
	if err := g.save(ctx, sessionID); err != nil {
		return err
	}

	g.logger.Info("Init: session %s started, timeout=%s", short(sessionID), g.timeout)
	return nil
}

// Touch учитывает событие активности и сбрасывает таймер
func (g *Guard) Touch(ctx context.Context, sessionID string, event ActivityEvent) (*Status, error) {
	if !event.IsActivity() {
		return nil, fmt.Errorf("%w: %q", ErrIgnoredEvent, event)
	}

	return g.reset(ctx, sessionID, "Touch")
}

// Extend продлевает сессию по кнопке "остаться в системе"
func (g *Guard) Extend(ctx context.Context, sessionID string) (*Status, error) {
	return g.reset(ctx, sessionID, "Extend")
}

// Status возвращает состояние сессии
// Истекшая сессия удаляется из хранилища
func (g *Guard) Status(ctx context.Context, sessionID string) (*Status, error) {
	last, ok, err := g.store.Load(ctx, sessionID)
	if err != nil {
		g.logger.Error("Status: failed to load session %s: %v", short(sessionID), err)
		return nil, fmt.Errorf("%w: load: %v", ErrStore, err)
	}
	if !ok {
		return nil, ErrSessionNotFound
	}

	status := g.evaluate(last)
	if status.State == StateExpired {
		g.logger.Info("Status: session %s expired after %s of inactivity", short(sessionID), g.clock.Now().Sub(last))
		if err := g.Teardown(ctx, sessionID); err != nil {
			return nil, err
		}
	}

	return status, nil
}

// IsLive true, если сессия существует и не истекла
func (g *Guard) IsLive(ctx context.Context, sessionID string) bool {
	status, err := g.Status(ctx, sessionID)
	if err != nil {
		return false
	}
	return status.State != StateExpired
}

// Teardown завершает сессию (выход или таймаут)
func (g *Guard) Teardown(ctx context.Context, sessionID string) error {
	if err := g.store.Delete(ctx, sessionID); err != nil {
		g.logger.Error("Teardown: failed to delete session %s: %v", short(sessionID), err)
		return fmt.Errorf("%w: delete: %v", ErrStore, err)
	}

	g.logger.Info("Teardown: session %s closed", short(sessionID))
	return nil
}

func (g *Guard) reset(ctx context.Context, sessionID, op string) (*Status, error) {
	status, err := g.Status(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if status.State == StateExpired {
		g.logger.Warn("%s: session %s already expired", op, short(sessionID))
		return nil, ErrSessionExpired
	}

	if err := g.save(ctx, sessionID); err != nil {
		return nil, err
	}

	return g.evaluate(g.clock.Now()), nil
}

func (g *Guard) save(ctx context.Context, sessionID string) error {
	// запись живет чуть дольше таймаута, чтобы Status успел увидеть истечение
	if err := g.store.Save(ctx, sessionID, g.clock.Now(), 2*g.timeout); err != nil {
		g.logger.Error("save: failed to persist session %s: %v", short(sessionID), err)
		return fmt.Errorf("%w: save: %v", ErrStore, err)
	}
	return nil
}

func (g *Guard) evaluate(last time.Time) *Status {
	idle := g.clock.Now().Sub(last)
	remaining := g.timeout - idle

	status := &Status{
		State:        StateActive,
		Remaining:    remaining,
		LastActivity: last,
	}

	switch {
	case remaining <= 0:
		status.State = StateExpired
		status.Remaining = 0
	case remaining <= g.warning:
		status.State = StateWarning
	}

	return status
}

func short(sessionID string) string {
	if len(sessionID) <= 8 {
		return sessionID
	}
	return sessionID[:8]
}
