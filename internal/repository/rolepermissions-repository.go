package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"portfolio-api/internal/models"
)

type RolePermissions struct {
	bun *bun.DB
}

func NewRolePermissions(db *bun.DB) *RolePermissions {
	return &RolePermissions{db}
}

func (r *RolePermissions) FindAll(ctx context.Context) ([]models.RolePermission, error) {
	var associations []models.RolePermission
	err := r.bun.NewSelect().
		Model(&associations).
		Relation("Permission").
		Order("id").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return associations, nil
}

func (r *RolePermissions) FindByID(ctx context.Context, id int64) (*models.RolePermission, error) {
	var association models.RolePermission
	err := r.bun.NewSelect().
		Model(&association).
		Relation("Permission").
		Where("rp.id = ?", id).
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &association, nil
}

func (r *RolePermissions) FindPermissionsForRole(ctx context.Context, roleID int64) ([]models.Permission, error) {
	var permissions []models.Permission
	err := r.bun.NewSelect().
		Model(&permissions).
		Join("JOIN role_permissions AS rp ON rp.permission_id = permission.id").
		Where("rp.role_id = ?", roleID).
		Order("permission.id").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return permissions, nil
}

func (r *RolePermissions) Insert(ctx context.Context, association *models.RolePermission) error {
	if _, err := r.bun.NewInsert().Model(association).Exec(ctx); err != nil {
		return translate(err)
	}
	return nil
}

func (r *RolePermissions) InsertMany(ctx context.Context, associations []models.RolePermission) error {
	if len(associations) == 0 {
		return nil
	}
	if _, err := r.bun.NewInsert().Model(&associations).Exec(ctx); err != nil {
		return translate(err)
	}
	return nil
}

func (r *RolePermissions) Delete(ctx context.Context, id int64) error {
	_, err := r.bun.NewDelete().
		Model(&models.RolePermission{}).
		Where("id = ?", id).
		Exec(ctx)
	return err
}
