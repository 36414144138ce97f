package service

import (
	"ankibot/internal/repository"
)

// AuthService handles single-user authorization
type AuthService struct {
	userRepo repository.UserRepository
	authCode string
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, authCode string) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		authCode: authCode,
	}
}

// CheckAuthCode verifies if the provided authentication code matches
func (s *AuthService) CheckAuthCode(code string) bool {
	return code == s.authCode
}

// IsAuthorized checks if user is authorized
func (s *AuthService) IsAuthorized(userID int64) (bool, error) {
	return s.userRepo.IsAuthorized(userID)
}

// AuthorizeUser authorizes a user
func (s *AuthService) AuthorizeUser(userID int64) error {
	return s.userRepo.AuthorizeUser(userID)
}

// EnsureUserExists creates user record if doesn't exist
func (s *AuthService) EnsureUserExists(userID int64) error {
	return s.userRepo.EnsureUserExists(userID)
}
