package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/models"
	"portfolio-api/internal/token"
)

// Store interfaces are satisfied by the bun repositories. Tests plug in
// in-memory implementations.

type UserStore interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

type TokenStore interface {
	Insert(ctx context.Context, token *models.Token) error
	FindByAccessToken(ctx context.Context, accessToken string) (*models.Token, error)
	FindByRefreshToken(ctx context.Context, refreshToken string) (*models.Token, error)
	Update(ctx context.Context, token *models.Token) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type ProductStore interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int64) error
}

type ServiceStore interface {
	FindAll(ctx context.Context) ([]models.Service, error)
	FindByID(ctx context.Context, id int64) (*models.Service, error)
	Insert(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id int64) error
}

type JobHistoryStore interface {
	FindAllOfUser(ctx context.Context, userID int64) ([]models.JobHistory, error)
	FindByID(ctx context.Context, id int64) (*models.JobHistory, error)
	Insert(ctx context.Context, job *models.JobHistory) error
	Update(ctx context.Context, job *models.JobHistory) error
	Delete(ctx context.Context, id int64) error
}

type RoleStore interface {
	FindAll(ctx context.Context) ([]models.Role, error)
	FindByID(ctx context.Context, id int64) (*models.Role, error)
	Insert(ctx context.Context, role *models.Role) error
	Update(ctx context.Context, role *models.Role) error
	Delete(ctx context.Context, id int64) error
}

type PermissionStore interface {
	FindAll(ctx context.Context) ([]models.Permission, error)
	FindByID(ctx context.Context, id int64) (*models.Permission, error)
	Insert(ctx context.Context, permission *models.Permission) error
	Update(ctx context.Context, permission *models.Permission) error
	Delete(ctx context.Context, id int64) error
}

type RolePermissionStore interface {
	FindAll(ctx context.Context) ([]models.RolePermission, error)
	FindByID(ctx context.Context, id int64) (*models.RolePermission, error)
	FindPermissionsForRole(ctx context.Context, roleID int64) ([]models.Permission, error)
	Insert(ctx context.Context, association *models.RolePermission) error
	InsertMany(ctx context.Context, associations []models.RolePermission) error
	Delete(ctx context.Context, id int64) error
}

type Stores struct {
	Users           UserStore
	Tokens          TokenStore
	Products        ProductStore
	Services        ServiceStore
	JobHistories    JobHistoryStore
	Roles           RoleStore
	Permissions     PermissionStore
	RolePermissions RolePermissionStore
}

type Service struct {
	log    *slog.Logger
	config *config.Config
	codec  *token.Codec

	users           UserStore
	tokens          TokenStore
	products        ProductStore
	services        ServiceStore
	jobs            JobHistoryStore
	roles           RoleStore
	permissions     PermissionStore
	rolePermissions RolePermissionStore
}

func NewService(log *slog.Logger, config *config.Config, codec *token.Codec, stores Stores) *Service {
	return &Service{
		log:             log,
		config:          config,
		codec:           codec,
		users:           stores.Users,
		tokens:          stores.Tokens,
		products:        stores.Products,
		services:        stores.Services,
		jobs:            stores.JobHistories,
		roles:           stores.Roles,
		permissions:     stores.Permissions,
		rolePermissions: stores.RolePermissions,
	}
}

type ErrorWithCode struct {
	Message string `json:"error"`
	Code    int    `json:"-"`
}

func (e ErrorWithCode) Error() string {
	return e.Message
}

func DecodeErrorWithCode(err error) *ErrorWithCode {
	var ewc *ErrorWithCode
	if errors.As(err, &ewc) {
		return ewc
	}
	return nil
}

func notFound(message string) *ErrorWithCode {
	return &ErrorWithCode{Message: message, Code: http.StatusNotFound}
}

func conflict(message string) *ErrorWithCode {
	return &ErrorWithCode{Message: message, Code: http.StatusConflict}
}

func unauthorized(message string) *ErrorWithCode {
	return &ErrorWithCode{Message: message, Code: http.StatusUnauthorized}
}

func badRequest(message string) *ErrorWithCode {
	return &ErrorWithCode{Message: message, Code: http.StatusBadRequest}
}
