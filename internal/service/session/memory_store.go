package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore хранилище сессий в памяти процесса (тесты, локальный запуск без Redis)
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
}

// NewMemoryStore создает пустое хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]time.Time)}
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, lastActivity time.Time, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = lastActivity
	return nil
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	last, ok := s.sessions[sessionID]
	return last, ok, nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}
