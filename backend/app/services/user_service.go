package services

import (
	"errors"

	"ieltsim/backend/app/cache"
	"ieltsim/backend/app/models"
	"ieltsim/backend/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	users *repo.UserRepository
	cache *cache.Cache
}

func NewUserService(users *repo.UserRepository, c *cache.Cache) *UserService {
	return &UserService{users: users, cache: c}
}

// EnsureAdmin seeds the admin account at first boot. Existing accounts are
// left untouched.
func (s *UserService) EnsureAdmin(username, password string) error {
	count, err := s.users.CountByUsername(username)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{Username: username, PasswordHash: string(hash), Role: models.RoleAdmin})
}

// Register creates a regular user. Usernames compare case-sensitive; the
// pre-check catches the common case and the unique index catches the race,
// both reported as ErrUsernameTaken.
func (s *UserService) Register(username, password string) (uint, error) {
	count, err := s.users.CountByUsername(username)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	u := models.User{Username: username, PasswordHash: string(hash), Role: models.RoleUser}
	if err := s.users.Create(&u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}
	s.cache.Invalidate(cache.KeyStats)
	return u.ID, nil
}

func (s *UserService) ValidateCredentials(username, password string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// RoleOf returns the user's current role straight from storage. Admin checks
// go through here instead of trusting token claims.
func (s *UserService) RoleOf(id uint) (string, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return u.Role, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.users.ListByRole(models.RoleUser)
}

// Delete removes the user and all their results atomically. Both aggregate
// caches go stale with the results, so both are dropped.
func (s *UserService) Delete(id uint) error {
	if err := s.users.DeleteWithResults(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	s.cache.Invalidate(cache.KeyLeaderboard, cache.KeyStats)
	return nil
}
