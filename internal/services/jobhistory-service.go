package services

import (
	"context"
	"time"

	"portfolio-api/internal/api/validations"
	"portfolio-api/internal/models"
)

func (s *Service) GetUserJobHistory(ctx context.Context, userID int64) ([]models.JobHistory, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, notFound("User not found")
	}

	jobs, err := s.jobs.FindAllOfUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return jobs, nil
}

func (s *Service) CreateJobHistory(ctx context.Context, body validations.CreateJobHistoryValidator) (*models.JobHistory, error) {
	user, err := s.users.FindByID(ctx, body.UserID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, notFound("User not found")
	}

	toInsert := &models.JobHistory{
		UserID:      body.UserID,
		Location:    body.Location,
		Description: body.Description,
		IsActive:    body.IsActive,
		StartDate:   body.StartDate,
		EndDate:     body.EndDate,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.jobs.Insert(ctx, toInsert); err != nil {
		return nil, err
	}

	return toInsert, nil
}

func (s *Service) UpdateJobHistory(ctx context.Context, id int64, body validations.UpdateJobHistoryValidator) (*models.JobHistory, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if job == nil {
		return nil, notFound("Job history entry not found")
	}

	if body.Location != nil {
		job.Location = *body.Location
	}

	if body.Description != nil {
		job.Description = *body.Description
	}

	if body.IsActive != nil {
		job.IsActive = *body.IsActive
	}

	if body.StartDate != nil {
		job.StartDate = *body.StartDate
	}

	if body.EndDate.Set {
		job.EndDate = body.EndDate.Value
	}

	// The active/end-date pairing must still hold after the patch.
	if job.IsActive && job.EndDate != nil {
		return nil, badRequest("An active job can't have an end date")
	}
	if !job.IsActive && job.EndDate == nil {
		return nil, badRequest("An inactive job must have an end date")
	}

	job.UpdatedAt = time.Now()

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

func (s *Service) DeleteJobHistory(ctx context.Context, id int64) error {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if job == nil {
		return notFound("Job history entry not found")
	}

	if job.EndDate != nil && job.EndDate.After(time.Now()) {
		return badRequest("Cannot delete job history with an end date in the future")
	}

	return s.jobs.Delete(ctx, id)
}
