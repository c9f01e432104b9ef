package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/api/validations"
	"portfolio-api/internal/helpers"
	"portfolio-api/internal/models"
)

func seedUser(t *testing.T, stores *testStores) *models.User {
	t.Helper()
	user := &models.User{
		Email:        "alice@example.com",
		HashPassword: "not-a-real-hash",
		FirstName:    "Alice",
		LastName:     "Martin",
	}
	require.NoError(t, stores.users.Insert(context.Background(), user))
	return user
}

func TestCreateJobHistory(t *testing.T) {
	service, stores := newTestService(t)
	ctx := context.Background()
	user := seedUser(t, stores)

	job, err := service.CreateJobHistory(ctx, validations.CreateJobHistoryValidator{
		UserID:      user.ID,
		Location:    "Lyon",
		Description: "Backend engineer",
		IsActive:    true,
		StartDate:   time.Now().Add(-30 * 24 * time.Hour),
	})
	require.NoError(t, err)

	assert.NotZero(t, job.ID)
	assert.Equal(t, user.ID, job.UserID)
	assert.True(t, job.IsCurrent())

	jobs, err := service.GetUserJobHistory(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestCreateJobHistoryUnknownUser(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.CreateJobHistory(context.Background(), validations.CreateJobHistoryValidator{
		UserID:    99,
		Location:  "Lyon",
		IsActive:  true,
		StartDate: time.Now().Add(-time.Hour),
	})
	assertCode(t, err, http.StatusNotFound)
}

func TestUpdateJobHistoryClearsEndDate(t *testing.T) {
	service, stores := newTestService(t)
	ctx := context.Background()
	user := seedUser(t, stores)

	ended := time.Now().Add(-24 * time.Hour)
	job := &models.JobHistory{
		UserID:    user.ID,
		Location:  "Lyon",
		IsActive:  false,
		StartDate: time.Now().Add(-60 * 24 * time.Hour),
		EndDate:   &ended,
	}
	require.NoError(t, stores.jobs.Insert(ctx, job))

	// Reopening the job: is_active true, end_date explicitly null.
	active := true
	updated, err := service.UpdateJobHistory(ctx, job.ID, validations.UpdateJobHistoryValidator{
		IsActive: &active,
		EndDate:  helpers.NullTime{Set: true, Value: nil},
	})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
	assert.Nil(t, updated.EndDate)
}

func TestUpdateJobHistoryPairingViolations(t *testing.T) {
	service, stores := newTestService(t)
	ctx := context.Background()
	user := seedUser(t, stores)

	job := &models.JobHistory{
		UserID:    user.ID,
		Location:  "Lyon",
		IsActive:  true,
		StartDate: time.Now().Add(-60 * 24 * time.Hour),
	}
	require.NoError(t, stores.jobs.Insert(ctx, job))

	// An active job can't gain an end date on its own.
	ended := time.Now().Add(-time.Hour)
	_, err := service.UpdateJobHistory(ctx, job.ID, validations.UpdateJobHistoryValidator{
		EndDate: helpers.NullTime{Set: true, Value: &ended},
	})
	assertCode(t, err, http.StatusBadRequest)

	// Nor can it become inactive without one.
	inactive := false
	_, err = service.UpdateJobHistory(ctx, job.ID, validations.UpdateJobHistoryValidator{
		IsActive: &inactive,
	})
	assertCode(t, err, http.StatusBadRequest)

	// The record is unchanged after both rejected patches.
	stored, findErr := stores.jobs.FindByID(ctx, job.ID)
	require.NoError(t, findErr)
	assert.True(t, stored.IsActive)
	assert.Nil(t, stored.EndDate)
}

func TestDeleteJobHistoryFutureEndDate(t *testing.T) {
	service, stores := newTestService(t)
	ctx := context.Background()
	user := seedUser(t, stores)

	future := time.Now().Add(24 * time.Hour)
	job := &models.JobHistory{
		UserID:    user.ID,
		Location:  "Lyon",
		IsActive:  false,
		StartDate: time.Now().Add(-60 * 24 * time.Hour),
		EndDate:   &future,
	}
	require.NoError(t, stores.jobs.Insert(ctx, job))

	assertCode(t, service.DeleteJobHistory(ctx, job.ID), http.StatusBadRequest)

	// Once the end date has passed the entry can go.
	past := time.Now().Add(-time.Hour)
	job.EndDate = &past
	require.NoError(t, stores.jobs.Update(ctx, job))

	require.NoError(t, service.DeleteJobHistory(ctx, job.ID))

	stored, err := stores.jobs.FindByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestCreateProductDuplicateName(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.CreateProduct(ctx, validations.CreateProductValidator{Name: "Widget", Amount: 9.99})
	require.NoError(t, err)

	_, err = service.CreateProduct(ctx, validations.CreateProductValidator{Name: "Widget", Amount: 19.99})
	assertCode(t, err, http.StatusConflict)
}

func TestUpdateProductPartial(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateProduct(ctx, validations.CreateProductValidator{Name: "  Widget  ", Amount: 9.99})
	require.NoError(t, err)
	assert.Equal(t, "Widget", created.Name)

	amount := 14.99
	updated, err := service.UpdateProduct(ctx, created.ID, validations.UpdateProductValidator{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, "Widget", updated.Name)
	assert.Equal(t, 14.99, updated.Amount)
}

func TestUpdateProductUnknown(t *testing.T) {
	service, _ := newTestService(t)

	amount := 14.99
	_, err := service.UpdateProduct(context.Background(), 99, validations.UpdateProductValidator{Amount: &amount})
	assertCode(t, err, http.StatusNotFound)
}
