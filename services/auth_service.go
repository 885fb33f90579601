// services/auth_service.go
package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexuscoliving/finanzas-backend/models"
	"github.com/nexuscoliving/finanzas-backend/utils"
)

// SessionStore is the persistence surface the auth service needs
type SessionStore interface {
	GetUserByEmail(email string) (*models.UserInfo, error)
	GetPasswordHash(email string) (string, error)
	UpsertUserInfo(email, username string) error
	StoreSession(session *models.UserSession) error
	GetSession(sessionID string) (*models.UserSession, error)
	DeleteSession(sessionID string) error
}

// AuthService handles password login and session tokens
type AuthService struct {
	store    SessionStore
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(store SessionStore, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		store:    store,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Login verifies the password, persists a session row and returns a signed
// token. Credential failures are reported with one deliberately vague
// message.
func (s *AuthService) Login(email, password string) (*models.LoginResponse, error) {
	hash, err := s.store.GetPasswordHash(email)
	if err != nil {
		return nil, err
	}
	if hash == "" {
		return nil, utils.NewUnauthorizedError(utils.ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, utils.NewUnauthorizedError(utils.ErrInvalidCredentials)
	}

	username := ""
	if user, err := s.store.GetUserByEmail(email); err == nil && user != nil {
		username = user.Username
	}
	if username == "" {
		username = utils.DisplayNameFromEmail(email)
		if err := s.store.UpsertUserInfo(email, username); err != nil {
			return nil, err
		}
	}

	session := &models.UserSession{
		SessionID: uuid.New().String(),
		UserID:    email,
		Email:     email,
		Username:  username,
	}
	if err := s.store.StoreSession(session); err != nil {
		return nil, err
	}

	token, err := s.signToken(session)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:    token,
		Email:    email,
		Username: username,
	}, nil
}

// Logout deletes the session behind a token. An invalid token is not an
// error; the session is gone either way.
func (s *AuthService) Logout(token string) error {
	session, err := s.ParseToken(token)
	if err != nil || session == nil {
		return nil
	}
	return s.store.DeleteSession(session.SessionID)
}

// ParseToken validates a token and returns its stored session.
// Returns (nil, nil) for missing, invalid or expired tokens.
func (s *AuthService) ParseToken(tokenString string) (*models.UserSession, error) {
	if tokenString == "" {
		return nil, nil
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok {
		return nil, nil
	}

	return s.store.GetSession(sessionID)
}

func (s *AuthService) signToken(session *models.UserSession) (string, error) {
	claims := jwt.MapClaims{
		"session_id": session.SessionID,
		"email":      session.Email,
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
