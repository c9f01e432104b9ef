package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"portfolio-api/internal/models"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/token"
)

func (s *Service) accessTokenTTL() time.Duration {
	return time.Duration(s.config.AccessTokenTTLMinutes) * time.Minute
}

func (s *Service) refreshTokenTTL() time.Duration {
	return time.Duration(s.config.RefreshTokenTTLDays) * 24 * time.Hour
}

// IssueToken mints a signed access/refresh pair and persists it. The access
// token carries the caller's claims, the refresh token only the user id as
// its subject. A jti claim keeps simultaneously minted tokens distinct so
// the unique constraints on the token columns always hold.
func (s *Service) IssueToken(ctx context.Context, userID int64, claims jwt.MapClaims) (*models.Token, error) {
	now := time.Now()
	accessExpiresAt := now.Add(s.accessTokenTTL())
	refreshExpiresAt := now.Add(s.refreshTokenTTL())

	accessClaims := make(jwt.MapClaims, len(claims)+1)
	for key, value := range claims {
		accessClaims[key] = value
	}
	accessClaims["jti"] = uuid.NewString()

	accessToken, err := s.codec.Encode(accessClaims, s.accessTokenTTL())
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.codec.Encode(jwt.MapClaims{
		"sub": userID,
		"jti": uuid.NewString(),
	}, s.refreshTokenTTL())
	if err != nil {
		return nil, err
	}

	toInsert, err := models.NewToken(userID, accessToken, refreshToken, accessExpiresAt, refreshExpiresAt)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Insert(ctx, toInsert); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("Token already exists")
		}
		return nil, err
	}

	return toInsert, nil
}

// ValidateAccessToken gates on record presence, blacklist status and
// signature validity. The stored expires_at column is informational here:
// the exp claim inside the signed token is authoritative.
func (s *Service) ValidateAccessToken(ctx context.Context, tokenStr string) (jwt.MapClaims, error) {
	stored, err := s.tokens.FindByAccessToken(ctx, tokenStr)
	if err != nil {
		return nil, err
	}

	if stored == nil {
		return nil, notFound("Token not found")
	}

	if stored.IsBlacklisted {
		return nil, unauthorized("Token is blacklisted")
	}

	claims, err := s.codec.Decode(tokenStr)
	if err != nil {
		return nil, unauthorized("Invalid token")
	}

	if token.IsExpired(claims) {
		return nil, unauthorized("Token has expired")
	}

	return claims, nil
}

// RefreshAccessToken mints a new access token against a live refresh token.
// The record's access token and expiry are overwritten in place, the
// refresh token and its expiry stay as issued.
func (s *Service) RefreshAccessToken(ctx context.Context, refreshTokenStr string) (string, error) {
	stored, err := s.tokens.FindByRefreshToken(ctx, refreshTokenStr)
	if err != nil {
		return "", err
	}

	if stored == nil {
		return "", notFound("Token not found")
	}

	if stored.IsBlacklisted {
		return "", unauthorized("Invalid or blacklisted refresh token")
	}

	if stored.IsRefreshTokenExpired() {
		return "", unauthorized("Refresh token has expired")
	}

	newAccessToken, err := s.codec.Encode(jwt.MapClaims{
		"sub": stored.UserID,
		"jti": uuid.NewString(),
	}, s.accessTokenTTL())
	if err != nil {
		return "", err
	}

	now := time.Now()
	stored.Token = newAccessToken
	stored.ExpiresAt = now.Add(s.accessTokenTTL())
	stored.UpdatedAt = now

	if err := s.tokens.Update(ctx, stored); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", conflict("Token already exists")
		}
		return "", err
	}

	return newAccessToken, nil
}

// BlacklistToken marks an access token permanently unusable. Blacklisting
// an already-blacklisted token succeeds without touching the record.
func (s *Service) BlacklistToken(ctx context.Context, tokenStr string) error {
	stored, err := s.tokens.FindByAccessToken(ctx, tokenStr)
	if err != nil {
		return err
	}

	if stored == nil {
		return notFound("Token not found")
	}

	if stored.IsBlacklisted {
		return nil
	}

	stored.Blacklist()
	stored.UpdatedAt = time.Now()

	return s.tokens.Update(ctx, stored)
}

// SweepExpiredTokens deletes every pair whose access or refresh expiry is
// strictly in the past.
func (s *Service) SweepExpiredTokens(ctx context.Context) error {
	deleted, err := s.tokens.DeleteExpired(ctx, time.Now())
	if err != nil {
		return err
	}

	s.log.Info("swept expired tokens", "deleted", deleted)
	return nil
}
