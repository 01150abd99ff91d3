package authservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, password string) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return NewService("test-secret", string(hash), time.Hour)
}

func TestLogin(t *testing.T) {
	svc := newTestService(t, "correct horse")

	issued, err := svc.Login("correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.NotEmpty(t, issued.SessionID)

	claims, err := svc.Verify(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, OperatorSubject, claims.Subject)
	assert.Equal(t, issued.SessionID, claims.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(t, "correct horse")

	_, err := svc.Login("battery staple")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_NoHashConfigured(t *testing.T) {
	svc := NewService("secret", "", time.Hour)

	_, err := svc.Login("anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIssue_UniqueSessions(t *testing.T) {
	svc := NewService("secret", "", time.Hour)

	a, err := svc.Issue(OperatorSubject)
	require.NoError(t, err)
	b, err := svc.Issue(OperatorSubject)
	require.NoError(t, err)

	assert.NotEqual(t, a.SessionID, b.SessionID)
}

func TestVerify_Rejects(t *testing.T) {
	svc := NewService("secret", "", time.Hour)
	other := NewService("other-secret", "", time.Hour)

	foreign, err := other.Issue(OperatorSubject)
	require.NoError(t, err)

	expiredSvc := NewService("secret", "", time.Hour)
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredSvc.Issue(OperatorSubject)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.jwt"},
		{name: "wrong secret", token: foreign.Token},
		{name: "expired", token: expired.Token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
