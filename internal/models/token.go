package models

import (
	"errors"
	"github.com/uptrace/bun"
	"time"
)

// Token stores one issued access/refresh pair. The access token string is
// overwritten in place on refresh, the refresh token never changes.
type Token struct {
	bun.BaseModel `bun:"table:tokens"`

	ID               int64     `bun:"id,pk,autoincrement"`
	Token            string    `bun:"token,unique,notnull"`
	RefreshToken     string    `bun:"refresh_token,unique,notnull"`
	UserID           int64     `bun:"user_id,notnull"`
	User             *User     `bun:"rel:belongs-to,join:user_id=id"`
	ExpiresAt        time.Time `bun:"expires_at,notnull"`
	RefreshExpiresAt time.Time `bun:"refresh_expires_at,notnull"`
	IsBlacklisted    bool      `bun:"is_blacklisted,notnull,default:false"`
	CreatedAt        time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt        time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// NewToken validates the expiry ordering at creation time only. Tests that
// need already-expired fixtures build the struct literal directly.
func NewToken(userID int64, accessToken, refreshToken string, expiresAt, refreshExpiresAt time.Time) (*Token, error) {
	now := time.Now()

	if !expiresAt.After(now) {
		return nil, errors.New("expires_at must be set to a future time")
	}

	if !refreshExpiresAt.After(now) {
		return nil, errors.New("refresh_expires_at must be set to a future time")
	}

	if !refreshExpiresAt.After(expiresAt) {
		return nil, errors.New("refresh_expires_at must be after expires_at")
	}

	return &Token{
		Token:            accessToken,
		RefreshToken:     refreshToken,
		UserID:           userID,
		ExpiresAt:        expiresAt,
		RefreshExpiresAt: refreshExpiresAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

func (t *Token) IsAccessTokenExpired() bool {
	return t.ExpiresAt.Before(time.Now())
}

func (t *Token) IsRefreshTokenExpired() bool {
	return t.RefreshExpiresAt.Before(time.Now())
}

// IsExpired reports whether either horizon has passed.
func (t *Token) IsExpired() bool {
	return t.IsAccessTokenExpired() || t.IsRefreshTokenExpired()
}

// Blacklist is one-way. There is no way to clear the flag.
func (t *Token) Blacklist() {
	t.IsBlacklisted = true
}
