// repository/user_repository.go
package repository

import (
	"database/sql"

	"github.com/nexuscoliving/finanzas-backend/models"
)

// UserRepository handles the user_info and current_user_sessions tables
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserByEmail retrieves the cached user info for an email.
// Returns (nil, nil) when the email is unknown.
func (r *UserRepository) GetUserByEmail(email string) (*models.UserInfo, error) {
	var user models.UserInfo
	err := r.db.QueryRow(
		"SELECT id, email, username, created_at FROM user_info WHERE email = $1", email,
	).Scan(&user.ID, &user.Email, &user.Username, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetPasswordHash retrieves the stored password hash for an email.
// Returns ("", nil) when the email is unknown or has no credentials.
func (r *UserRepository) GetPasswordHash(email string) (string, error) {
	var hash sql.NullString
	err := r.db.QueryRow(
		"SELECT password_hash FROM user_info WHERE email = $1", email,
	).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return hash.String, nil
}

// UpsertUserInfo stores or refreshes the display name for an email
func (r *UserRepository) UpsertUserInfo(email, username string) error {
	query := `
		INSERT INTO user_info (email, username)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
	`
	_, err := r.db.Exec(query, email, username)
	return err
}

// GetLatestUser retrieves the most recently stored user info row.
// Returns (nil, nil) when the table is empty.
func (r *UserRepository) GetLatestUser() (*models.UserInfo, error) {
	var user models.UserInfo
	err := r.db.QueryRow(
		"SELECT id, email, username, created_at FROM user_info ORDER BY created_at DESC LIMIT 1",
	).Scan(&user.ID, &user.Email, &user.Username, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// StoreSession persists a login session
func (r *UserRepository) StoreSession(session *models.UserSession) error {
	query := `
		INSERT INTO current_user_sessions (session_id, user_id, email, username)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id) DO NOTHING
	`
	_, err := r.db.Exec(query, session.SessionID, session.UserID, session.Email, session.Username)
	return err
}

// GetSession retrieves a stored session by ID.
// Returns (nil, nil) when the session is unknown.
func (r *UserRepository) GetSession(sessionID string) (*models.UserSession, error) {
	var session models.UserSession
	err := r.db.QueryRow(
		`SELECT session_id, user_id, email, username, created_at
		 FROM current_user_sessions WHERE session_id = $1`, sessionID,
	).Scan(&session.SessionID, &session.UserID, &session.Email, &session.Username, &session.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSession removes a stored session
func (r *UserRepository) DeleteSession(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM current_user_sessions WHERE session_id = $1", sessionID)
	return err
}
