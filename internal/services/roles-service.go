package services

import (
	"context"
	"errors"
	"strings"

	"portfolio-api/internal/api/validations"
	"portfolio-api/internal/models"
	"portfolio-api/internal/repository"
)

func (s *Service) GetAllRoles(ctx context.Context) ([]models.Role, error) {
	roles, err := s.roles.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *Service) GetRoleByID(ctx context.Context, id int64) (*models.Role, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if role == nil {
		return nil, notFound("Role not found")
	}

	return role, nil
}

func (s *Service) CreateRole(ctx context.Context, body validations.CreateRoleValidator) (*models.Role, error) {
	toInsert := &models.Role{
		Name:        strings.TrimSpace(body.Name),
		Description: body.Description,
	}

	if err := s.roles.Insert(ctx, toInsert); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("Role with this name already exists")
		}
		return nil, err
	}

	return toInsert, nil
}

func (s *Service) UpdateRole(ctx context.Context, id int64, body validations.UpdateRoleValidator) (*models.Role, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if role == nil {
		return nil, notFound("Role not found")
	}

	if body.Name != nil {
		role.Name = strings.TrimSpace(*body.Name)
	}

	if body.Description.Set {
		role.Description = body.Description.Value
	}

	if err := s.roles.Update(ctx, role); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("Role with this name already exists")
		}
		return nil, err
	}

	return role, nil
}

func (s *Service) DeleteRole(ctx context.Context, id int64) error {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if role == nil {
		return notFound("Role not found")
	}

	return s.roles.Delete(ctx, id)
}
