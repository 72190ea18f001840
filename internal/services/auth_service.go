package services

import (
	"errors"

	"github.com/fittrackhq/fittrack/internal/models"
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

var ErrEmailTaken = errors.New("email already registered")

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) RegisterUser(user *models.User) error {
	taken, err := service.users.ExistsByNormalizedEmail(user.Email)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}
	return service.users.Create(user)
}

func (service *AuthService) FindByNormalizedEmail(email string) (models.User, error) {
	return service.users.FindByNormalizedEmail(email)
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
