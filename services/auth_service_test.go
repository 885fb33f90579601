package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexuscoliving/finanzas-backend/models"
)

// fakeSessionStore backs the auth service with in-memory users and sessions
type fakeSessionStore struct {
	*fakeUserStore
	hashes   map[string]string
	sessions map[string]*models.UserSession
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		fakeUserStore: newFakeUserStore(),
		hashes:        make(map[string]string),
		sessions:      make(map[string]*models.UserSession),
	}
}

func (s *fakeSessionStore) GetPasswordHash(email string) (string, error) {
	return s.hashes[email], nil
}

func (s *fakeSessionStore) StoreSession(session *models.UserSession) error {
	s.sessions[session.SessionID] = session
	return nil
}

func (s *fakeSessionStore) GetSession(sessionID string) (*models.UserSession, error) {
	return s.sessions[sessionID], nil
}

func (s *fakeSessionStore) DeleteSession(sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func (s *fakeSessionStore) registerUser(t *testing.T, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s.hashes[email] = string(hash)
}

func TestAuthService_Login_TokenRoundTrips(t *testing.T) {
	store := newFakeSessionStore()
	store.registerUser(t, "maria@nexus.com", "secreto123")
	service := NewAuthService(store, "test-secret", time.Hour)

	resp, err := service.Login("maria@nexus.com", "secreto123")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "maria@nexus.com", resp.Email)
	assert.Equal(t, "Maria", resp.Username)

	session, err := service.ParseToken(resp.Token)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "maria@nexus.com", session.Email)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	store := newFakeSessionStore()
	store.registerUser(t, "maria@nexus.com", "secreto123")
	service := NewAuthService(store, "test-secret", time.Hour)

	_, err := service.Login("maria@nexus.com", "incorrecta")
	assert.Error(t, err)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	service := NewAuthService(newFakeSessionStore(), "test-secret", time.Hour)

	_, err := service.Login("nadie@nexus.com", "loquesea")
	assert.Error(t, err)
}

func TestAuthService_ParseToken_InvalidTokenIsNotAnError(t *testing.T) {
	service := NewAuthService(newFakeSessionStore(), "test-secret", time.Hour)

	session, err := service.ParseToken("garbage.token.value")
	assert.NoError(t, err)
	assert.Nil(t, session)

	session, err = service.ParseToken("")
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestAuthService_ParseToken_RejectsForeignSignature(t *testing.T) {
	store := newFakeSessionStore()
	store.registerUser(t, "maria@nexus.com", "secreto123")
	issuer := NewAuthService(store, "secret-a", time.Hour)
	verifier := NewAuthService(store, "secret-b", time.Hour)

	resp, err := issuer.Login("maria@nexus.com", "secreto123")
	require.NoError(t, err)

	session, err := verifier.ParseToken(resp.Token)
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestAuthService_Logout_DeletesSession(t *testing.T) {
	store := newFakeSessionStore()
	store.registerUser(t, "maria@nexus.com", "secreto123")
	service := NewAuthService(store, "test-secret", time.Hour)

	resp, err := service.Login("maria@nexus.com", "secreto123")
	require.NoError(t, err)

	require.NoError(t, service.Logout(resp.Token))

	session, err := service.ParseToken(resp.Token)
	assert.NoError(t, err)
	assert.Nil(t, session)
}
