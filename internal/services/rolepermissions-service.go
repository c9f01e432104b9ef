package services

import (
	"context"
	"errors"

	"portfolio-api/internal/api/validations"
	"portfolio-api/internal/models"
	"portfolio-api/internal/repository"
)

func (s *Service) GetAllRolePermissions(ctx context.Context) ([]models.RolePermission, error) {
	associations, err := s.rolePermissions.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return associations, nil
}

func (s *Service) GetRolePermissionByID(ctx context.Context, id int64) (*models.RolePermission, error) {
	association, err := s.rolePermissions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if association == nil {
		return nil, notFound("Role-permission association not found")
	}

	return association, nil
}

func (s *Service) GetPermissionsForRole(ctx context.Context, roleID int64) ([]models.Permission, error) {
	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		return nil, err
	}

	if role == nil {
		return nil, notFound("Role not found")
	}

	permissions, err := s.rolePermissions.FindPermissionsForRole(ctx, roleID)
	if err != nil {
		return nil, err
	}

	return permissions, nil
}

func (s *Service) CreateRolePermission(ctx context.Context, body validations.CreateRolePermissionValidator) (*models.RolePermission, error) {
	toInsert := &models.RolePermission{
		UserID:       body.UserID,
		RoleID:       body.RoleID,
		PermissionID: body.PermissionID,
	}

	if err := s.rolePermissions.Insert(ctx, toInsert); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("Role-permission association already exists")
		}
		return nil, err
	}

	return toInsert, nil
}

// AddPermissionsToRole creates one association per permission id for the
// given user and role.
func (s *Service) AddPermissionsToRole(ctx context.Context, roleID int64, body validations.BulkRolePermissionsValidator) ([]models.RolePermission, error) {
	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		return nil, err
	}

	if role == nil {
		return nil, notFound("Role not found")
	}

	associations := make([]models.RolePermission, len(body.PermissionIDs))
	for i, permissionID := range body.PermissionIDs {
		pid := permissionID
		associations[i] = models.RolePermission{
			UserID:       body.UserID,
			RoleID:       roleID,
			PermissionID: &pid,
		}
	}

	if err := s.rolePermissions.InsertMany(ctx, associations); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("Role-permission association already exists")
		}
		return nil, err
	}

	return associations, nil
}

func (s *Service) DeleteRolePermission(ctx context.Context, id int64) error {
	association, err := s.rolePermissions.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if association == nil {
		return notFound("Role-permission association not found")
	}

	return s.rolePermissions.Delete(ctx, id)
}
