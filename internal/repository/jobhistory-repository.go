package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"portfolio-api/internal/models"
)

type JobHistories struct {
	bun *bun.DB
}

func NewJobHistories(db *bun.DB) *JobHistories {
	return &JobHistories{db}
}

func (j *JobHistories) FindAllOfUser(ctx context.Context, userID int64) ([]models.JobHistory, error) {
	var jobs []models.JobHistory
	err := j.bun.NewSelect().
		Model(&jobs).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (j *JobHistories) FindByID(ctx context.Context, id int64) (*models.JobHistory, error) {
	var job models.JobHistory
	err := j.bun.NewSelect().
		Model(&job).
		Where("id = ?", id).
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &job, nil
}

func (j *JobHistories) Insert(ctx context.Context, job *models.JobHistory) error {
	if _, err := j.bun.NewInsert().Model(job).Exec(ctx); err != nil {
		return translate(err)
	}
	return nil
}

func (j *JobHistories) Update(ctx context.Context, job *models.JobHistory) error {
	_, err := j.bun.NewUpdate().
		Model(job).
		Column("location", "description", "is_active", "start_date", "end_date", "updated_at").
		Where("id = ?", job.ID).
		Exec(ctx)
	if err != nil {
		return translate(err)
	}
	return nil
}

func (j *JobHistories) Delete(ctx context.Context, id int64) error {
	_, err := j.bun.NewDelete().
		Model(&models.JobHistory{}).
		Where("id = ?", id).
		Exec(ctx)
	return err
}
