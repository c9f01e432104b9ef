package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"portfolio-api/internal/models"
)

type Permissions struct {
	bun *bun.DB
}

func NewPermissions(db *bun.DB) *Permissions {
	return &Permissions{
		bun: db,
	}
}

func (p *Permissions) FindAll(ctx context.Context) ([]models.Permission, error) {
	var permissions []models.Permission
	err := p.bun.NewSelect().
		Model(&permissions).
		Order("id").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return permissions, nil
}

func (p *Permissions) FindByID(ctx context.Context, id int64) (*models.Permission, error) {
	var permission models.Permission
	err := p.bun.NewSelect().
		Model(&permission).
		Where("id = ?", id).
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &permission, nil
}

func (p *Permissions) Insert(ctx context.Context, permission *models.Permission) error {
	if _, err := p.bun.NewInsert().Model(permission).Exec(ctx); err != nil {
		return translate(err)
	}
	return nil
}

func (p *Permissions) Update(ctx context.Context, permission *models.Permission) error {
	_, err := p.bun.NewUpdate().
		Model(permission).
		Column("name", "description").
		Where("id = ?", permission.ID).
		Exec(ctx)
	if err != nil {
		return translate(err)
	}
	return nil
}

func (p *Permissions) Delete(ctx context.Context, id int64) error {
	_, err := p.bun.NewDelete().
		Model(&models.Permission{}).
		Where("id = ?", id).
		Exec(ctx)
	return err
}
