package service

import (
	"context"
	"fmt"

	"github.com/ikornaselur/similarium/models"
)

// userService implements the UserService interface
type userService struct {
	uowFactory UnitOfWorkFactory
}

// NewUserService creates a new user service
func NewUserService(uowFactory UnitOfWorkFactory) UserService {
	return &userService{uowFactory: uowFactory}
}

// GetOrCreateUser retrieves a user, creating or refreshing them from the
// platform profile data. Guesses and winners reference users for
// display, so every submitter passes through here first.
func (s *userService) GetOrCreateUser(ctx context.Context, id, username, profilePhoto string) (*models.User, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	user := &models.User{
		ID:           id,
		Username:     username,
		ProfilePhoto: profilePhoto,
	}
	if err := uow.UserRepository().Upsert(ctx, user); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return user, nil
}
