// services/user_service.go
package services

import (
	"log"
	"strings"

	"github.com/nexuscoliving/finanzas-backend/models"
	"github.com/nexuscoliving/finanzas-backend/utils"
)

// UserStore is the persistence surface for cached display names
type UserStore interface {
	GetUserByEmail(email string) (*models.UserInfo, error)
	UpsertUserInfo(email, username string) error
	GetLatestUser() (*models.UserInfo, error)
}

// UserService resolves the human-readable actor name recorded in
// created_by/updated_by fields
type UserService struct {
	users UserStore
}

// NewUserService creates a new user service
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// ResolveActorName walks the fallback chain: session email -> cached
// display name -> derive from the email local part and cache it -> most
// recently stored user -> the "Sistema" sentinel. It never fails; every
// step degrades to the next.
func (s *UserService) ResolveActorName(sessionEmail string) string {
	sessionEmail = strings.TrimSpace(sessionEmail)

	if sessionEmail != "" {
		user, err := s.users.GetUserByEmail(sessionEmail)
		if err != nil {
			log.Printf("Failed to look up user %s: %v", sessionEmail, err)
		}
		if user != nil && user.Username != "" {
			return user.Username
		}

		derived := utils.DisplayNameFromEmail(sessionEmail)
		if err := s.users.UpsertUserInfo(sessionEmail, derived); err != nil {
			log.Printf("Failed to cache display name for %s: %v", sessionEmail, err)
		}
		return derived
	}

	latest, err := s.users.GetLatestUser()
	if err != nil {
		log.Printf("Failed to load last known user: %v", err)
	}
	if latest != nil && latest.Username != "" {
		return latest.Username
	}

	return utils.SentinelActor
}

// SaveUserInfo stores a display name for an email on behalf of the client
func (s *UserService) SaveUserInfo(req *models.SaveUserInfoRequest) error {
	if err := utils.ValidateEmail(req.Email); err != nil {
		return err
	}
	if err := utils.ValidateRequired(req.Username, "username"); err != nil {
		return err
	}
	return s.users.UpsertUserInfo(strings.TrimSpace(req.Email), strings.TrimSpace(req.Username))
}
