package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/models"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/token"
)

// In-memory stores with the same observable behavior as the bun
// repositories: copies in and out, nil on miss, ErrDuplicate on unique
// violations.

type fakeUsers struct {
	nextID int64
	byID   map[int64]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: make(map[int64]*models.User)}
}

func (f *fakeUsers) FindAll(_ context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(f.byID))
	for _, user := range f.byID {
		users = append(users, *user)
	}
	return users, nil
}

func (f *fakeUsers) FindByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.byID {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) Insert(_ context.Context, user *models.User) error {
	for _, existing := range f.byID {
		if existing.Email == user.Email {
			return fmt.Errorf("%w: users_email_key", repository.ErrDuplicate)
		}
	}
	f.nextID++
	user.ID = f.nextID
	clone := *user
	f.byID[user.ID] = &clone
	return nil
}

func (f *fakeUsers) Update(_ context.Context, user *models.User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return nil
	}
	clone := *user
	f.byID[user.ID] = &clone
	return nil
}

func (f *fakeUsers) Delete(_ context.Context, id int64) error {
	delete(f.byID, id)
	return nil
}

type fakeTokens struct {
	nextID int64
	byID   map[int64]*models.Token
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{byID: make(map[int64]*models.Token)}
}

func (f *fakeTokens) Insert(_ context.Context, t *models.Token) error {
	for _, existing := range f.byID {
		if existing.Token == t.Token || existing.RefreshToken == t.RefreshToken {
			return fmt.Errorf("%w: tokens_token_key", repository.ErrDuplicate)
		}
	}
	f.nextID++
	t.ID = f.nextID
	clone := *t
	f.byID[t.ID] = &clone
	return nil
}

func (f *fakeTokens) FindByAccessToken(_ context.Context, accessToken string) (*models.Token, error) {
	for _, t := range f.byID {
		if t.Token == accessToken {
			clone := *t
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeTokens) FindByRefreshToken(_ context.Context, refreshToken string) (*models.Token, error) {
	for _, t := range f.byID {
		if t.RefreshToken == refreshToken {
			clone := *t
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeTokens) Update(_ context.Context, t *models.Token) error {
	stored, ok := f.byID[t.ID]
	if !ok {
		return nil
	}
	for id, existing := range f.byID {
		if id != t.ID && existing.Token == t.Token {
			return fmt.Errorf("%w: tokens_token_key", repository.ErrDuplicate)
		}
	}
	stored.Token = t.Token
	stored.ExpiresAt = t.ExpiresAt
	stored.IsBlacklisted = t.IsBlacklisted
	stored.UpdatedAt = t.UpdatedAt
	return nil
}

func (f *fakeTokens) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var deleted int64
	for id, t := range f.byID {
		if t.ExpiresAt.Before(now) || t.RefreshExpiresAt.Before(now) {
			delete(f.byID, id)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeTokens) mustGet(t *testing.T, id int64) *models.Token {
	t.Helper()
	stored, ok := f.byID[id]
	if !ok {
		t.Fatalf("token %d not found in store", id)
	}
	clone := *stored
	return &clone
}

type fakeJobs struct {
	nextID int64
	byID   map[int64]*models.JobHistory
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{byID: make(map[int64]*models.JobHistory)}
}

func (f *fakeJobs) FindAllOfUser(_ context.Context, userID int64) ([]models.JobHistory, error) {
	var jobs []models.JobHistory
	for _, job := range f.byID {
		if job.UserID == userID {
			jobs = append(jobs, *job)
		}
	}
	return jobs, nil
}

func (f *fakeJobs) FindByID(_ context.Context, id int64) (*models.JobHistory, error) {
	job, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *job
	return &clone, nil
}

func (f *fakeJobs) Insert(_ context.Context, job *models.JobHistory) error {
	f.nextID++
	job.ID = f.nextID
	clone := *job
	f.byID[job.ID] = &clone
	return nil
}

func (f *fakeJobs) Update(_ context.Context, job *models.JobHistory) error {
	clone := *job
	f.byID[job.ID] = &clone
	return nil
}

func (f *fakeJobs) Delete(_ context.Context, id int64) error {
	delete(f.byID, id)
	return nil
}

type fakeProducts struct {
	nextID int64
	byID   map[int64]*models.Product
}

func newFakeProducts() *fakeProducts {
	return &fakeProducts{byID: make(map[int64]*models.Product)}
}

func (f *fakeProducts) FindAll(_ context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0, len(f.byID))
	for _, product := range f.byID {
		products = append(products, *product)
	}
	return products, nil
}

func (f *fakeProducts) FindByID(_ context.Context, id int64) (*models.Product, error) {
	product, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *product
	return &clone, nil
}

func (f *fakeProducts) Insert(_ context.Context, product *models.Product) error {
	for _, existing := range f.byID {
		if existing.Name == product.Name {
			return fmt.Errorf("%w: products_product_name_key", repository.ErrDuplicate)
		}
	}
	f.nextID++
	product.ID = f.nextID
	clone := *product
	f.byID[product.ID] = &clone
	return nil
}

func (f *fakeProducts) Update(_ context.Context, product *models.Product) error {
	for id, existing := range f.byID {
		if id != product.ID && existing.Name == product.Name {
			return fmt.Errorf("%w: products_product_name_key", repository.ErrDuplicate)
		}
	}
	clone := *product
	f.byID[product.ID] = &clone
	return nil
}

func (f *fakeProducts) Delete(_ context.Context, id int64) error {
	delete(f.byID, id)
	return nil
}

type testStores struct {
	users    *fakeUsers
	tokens   *fakeTokens
	jobs     *fakeJobs
	products *fakeProducts
}

func newTestService(t *testing.T) (*Service, *testStores) {
	t.Helper()

	conf := &config.Config{
		JwtSecret:             "test-secret",
		JwtAlgorithm:          "HS256",
		AccessTokenTTLMinutes: 30,
		RefreshTokenTTLDays:   7,
	}

	codec, err := token.NewCodec(conf.JwtSecret, conf.JwtAlgorithm)
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}

	stores := &testStores{
		users:    newFakeUsers(),
		tokens:   newFakeTokens(),
		jobs:     newFakeJobs(),
		products: newFakeProducts(),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewService(logger, conf, codec, Stores{
		Users:        stores.users,
		Tokens:       stores.tokens,
		JobHistories: stores.jobs,
		Products:     stores.products,
	})

	return service, stores
}
