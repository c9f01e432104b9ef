package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"portfolio-api/internal/models"
)

type Services struct {
	bun *bun.DB
}

func NewServices(db *bun.DB) *Services {
	return &Services{db}
}

func (s *Services) FindAll(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := s.bun.NewSelect().
		Model(&services).
		Order("service_id").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (s *Services) FindByID(ctx context.Context, id int64) (*models.Service, error) {
	var service models.Service
	err := s.bun.NewSelect().
		Model(&service).
		Where("service_id = ?", id).
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &service, nil
}

func (s *Services) Insert(ctx context.Context, service *models.Service) error {
	if _, err := s.bun.NewInsert().Model(service).Exec(ctx); err != nil {
		return translate(err)
	}
	return nil
}

func (s *Services) Update(ctx context.Context, service *models.Service) error {
	_, err := s.bun.NewUpdate().
		Model(service).
		Where("service_id = ?", service.ID).
		OmitZero().
		Exec(ctx)
	if err != nil {
		return translate(err)
	}
	return nil
}

func (s *Services) Delete(ctx context.Context, id int64) error {
	_, err := s.bun.NewDelete().
		Model(&models.Service{}).
		Where("service_id = ?", id).
		Exec(ctx)
	return err
}
