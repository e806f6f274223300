package service

import (
	"context"

	"github.com/ATClus/psa-api-sub000/internal/models"
)

// CreateUser registers a new reporting user. Users have no parent, so
// there is nothing to resolve.
func (s *service) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		CognitoID: req.CognitoID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.log.WithField("user_id", user.ID).Info("User registered")
	return user, nil
}

// GetUser retrieves a user by id
func (s *service) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// GetUserByCognitoID retrieves a user by its identity-provider subject id
func (s *service) GetUserByCognitoID(ctx context.Context, cognitoID int64) (*models.User, error) {
	return s.users.FindByCognitoID(ctx, cognitoID)
}

// ListUsers returns all users
func (s *service) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}

// UpdateUser replaces all mutable fields of a user
func (s *service) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user and returns the deleted snapshot
func (s *service) DeleteUser(ctx context.Context, id uint) (*models.User, error) {
	return s.users.Delete(ctx, id)
}
