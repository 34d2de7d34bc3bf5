package service

import (
	"errors"
	"fmt"

	"github.com/japb1998/outreach-crm/internal/database"
	"github.com/japb1998/outreach-crm/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Create(user model.User) (model.User, error)
	GetByID(id int) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	GetByUsername(username string) (*model.User, error)
}

type UserService struct {
	store UserRepository
}

func NewUserSvc(s UserRepository) *UserService {
	return &UserService{store: s}
}

func (u *UserService) GetUserIDByEmail(email string) (int, error) {
	user, err := u.store.GetByEmail(email)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user.ID, nil
}
