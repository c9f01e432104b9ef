package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"

	"portfolio-api/internal/models"
)

type Users struct {
	log *slog.Logger
	bun *bun.DB
}

func NewUsers(db *bun.DB, log *slog.Logger) *Users {
	return &Users{
		log: log,
		bun: db,
	}
}

func (u *Users) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := u.bun.NewSelect().
		Model(&users).
		Order("id DESC").
		Scan(ctx)

	if err != nil {
		return nil, err
	}

	return users, nil
}

func (u *Users) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user = &models.User{
		ID: id,
	}
	err := u.bun.NewSelect().
		Model(user).
		WherePK().
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return user, nil
}

func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := u.bun.NewSelect().
		Model(&user).
		Where("email = ?", email).
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &user, nil
}

func (u *Users) Insert(ctx context.Context, user *models.User) error {
	if _, err := u.bun.NewInsert().Model(user).Exec(ctx); err != nil {
		return translate(err)
	}
	return nil
}

func (u *Users) Update(ctx context.Context, user *models.User) error {
	// Explicit columns so is_active can be written back to false.
	_, err := u.bun.NewUpdate().
		Model(user).
		Column("email", "first_name", "last_name", "is_active", "updated_at").
		Where("id = ?", user.ID).
		Exec(ctx)
	if err != nil {
		return translate(err)
	}

	return nil
}

func (u *Users) Delete(ctx context.Context, id int64) error {
	_, err := u.bun.NewDelete().
		Model(&models.User{}).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}

	user, err := u.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if user != nil {
		return fmt.Errorf("user with id %d not deleted", id)
	}

	return nil
}
