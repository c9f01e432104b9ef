package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"portfolio-api/internal/models"
)

type Roles struct {
	bun *bun.DB
}

func NewRoles(db *bun.DB) *Roles {
	return &Roles{
		bun: db,
	}
}

func (r *Roles) FindAll(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	err := r.bun.NewSelect().
		Model(&roles).
		Order("id").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *Roles) FindByID(ctx context.Context, id int64) (*models.Role, error) {
	var role models.Role
	err := r.bun.NewSelect().
		Model(&role).
		Where("id = ?", id).
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &role, nil
}

func (r *Roles) Insert(ctx context.Context, role *models.Role) error {
	if _, err := r.bun.NewInsert().Model(role).Exec(ctx); err != nil {
		return translate(err)
	}
	return nil
}

func (r *Roles) Update(ctx context.Context, role *models.Role) error {
	_, err := r.bun.NewUpdate().
		Model(role).
		Column("name", "description").
		Where("id = ?", role.ID).
		Exec(ctx)
	if err != nil {
		return translate(err)
	}
	return nil
}

func (r *Roles) Delete(ctx context.Context, id int64) error {
	_, err := r.bun.NewDelete().
		Model(&models.Role{}).
		Where("id = ?", id).
		Exec(ctx)
	return err
}
