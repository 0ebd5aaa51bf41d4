package service

import (
	"eventexplorer/internal/models"
	"eventexplorer/pkg/bcrypt"
)

// UserStore is the slice of the user repository the services need.
type UserStore interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	UsernameExists(username string) (bool, error)
}

type AuthService struct {
	userStore UserStore
}

func NewAuthService(userStore UserStore) *AuthService {
	return &AuthService{userStore: userStore}
}

// Register creates a new USER account with a hashed password. The username
// must not be taken; a concurrent insert racing past the existence check is
// caught by the unique index and reported the same way.
func (s *AuthService) Register(req models.RegisterRequest) (*models.User, error) {
	exists, err := s.userStore.UsernameExists(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Password: hashedPassword,
		Role:     models.RoleUser,
	}
	if err := s.userStore.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate resolves basic credentials to a user. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userStore.GetByUsername(username)
	if err != nil {
		return nil, models.ErrInvalidCredentials
	}
	if err := bcrypt.ComparePassword(user.Password, password); err != nil {
		return nil, models.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) GetByUsername(username string) (*models.User, error) {
	return s.userStore.GetByUsername(username)
}
