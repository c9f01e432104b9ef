package services

import (
	"context"
	"time"

	"portfolio-api/internal/models"
)

func (s *Service) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (s *Service) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, notFound("User not found")
	}

	return user, nil
}

// SetUserActive flips the account's active flag.
func (s *Service) SetUserActive(ctx context.Context, id int64, active bool) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, notFound("User not found")
	}

	user.IsActive = active
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if user == nil {
		return notFound("User not found")
	}

	return s.users.Delete(ctx, id)
}
