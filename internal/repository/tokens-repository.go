package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"portfolio-api/internal/models"
)

type Tokens struct {
	bun *bun.DB
}

func NewTokens(db *bun.DB) *Tokens {
	return &Tokens{db}
}

func (t *Tokens) Insert(ctx context.Context, token *models.Token) error {
	if _, err := t.bun.NewInsert().Model(token).Exec(ctx); err != nil {
		return translate(err)
	}
	return nil
}

func (t *Tokens) FindByAccessToken(ctx context.Context, accessToken string) (*models.Token, error) {
	var token models.Token
	err := t.bun.NewSelect().
		Model(&token).
		Where("token = ?", accessToken).
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &token, nil
}

func (t *Tokens) FindByRefreshToken(ctx context.Context, refreshToken string) (*models.Token, error) {
	var token models.Token
	err := t.bun.NewSelect().
		Model(&token).
		Where("refresh_token = ?", refreshToken).
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &token, nil
}

func (t *Tokens) Update(ctx context.Context, token *models.Token) error {
	_, err := t.bun.NewUpdate().
		Model(token).
		Column("token", "expires_at", "is_blacklisted", "updated_at").
		Where("id = ?", token.ID).
		Exec(ctx)
	if err != nil {
		return translate(err)
	}

	return nil
}

// DeleteExpired removes every pair with either horizon strictly in the past.
func (t *Tokens) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := t.bun.NewDelete().
		Model((*models.Token)(nil)).
		Where("expires_at < ?", now).
		WhereOr("refresh_expires_at < ?", now).
		Exec(ctx)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
