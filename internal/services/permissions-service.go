package services

import (
	"context"
	"errors"
	"strings"

	"portfolio-api/internal/api/validations"
	"portfolio-api/internal/models"
	"portfolio-api/internal/repository"
)

func (s *Service) GetAllPermissions(ctx context.Context) ([]models.Permission, error) {
	permissions, err := s.permissions.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return permissions, nil
}

func (s *Service) GetPermissionByID(ctx context.Context, id int64) (*models.Permission, error) {
	permission, err := s.permissions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if permission == nil {
		return nil, notFound("Permission not found")
	}

	return permission, nil
}

func (s *Service) CreatePermission(ctx context.Context, body validations.CreatePermissionValidator) (*models.Permission, error) {
	toInsert := &models.Permission{
		Name:        strings.TrimSpace(body.Name),
		Description: body.Description,
	}

	if err := s.permissions.Insert(ctx, toInsert); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("Permission with this name already exists")
		}
		return nil, err
	}

	return toInsert, nil
}

func (s *Service) UpdatePermission(ctx context.Context, id int64, body validations.UpdatePermissionValidator) (*models.Permission, error) {
	permission, err := s.permissions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if permission == nil {
		return nil, notFound("Permission not found")
	}

	if body.Name != nil {
		permission.Name = strings.TrimSpace(*body.Name)
	}

	if body.Description.Set {
		permission.Description = body.Description.Value
	}

	if err := s.permissions.Update(ctx, permission); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("Permission with this name already exists")
		}
		return nil, err
	}

	return permission, nil
}

func (s *Service) DeletePermission(ctx context.Context, id int64) error {
	permission, err := s.permissions.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if permission == nil {
		return notFound("Permission not found")
	}

	return s.permissions.Delete(ctx, id)
}
