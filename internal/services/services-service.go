package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"portfolio-api/internal/api/validations"
	"portfolio-api/internal/models"
	"portfolio-api/internal/repository"
)

func (s *Service) GetAllServices(ctx context.Context) ([]models.Service, error) {
	services, err := s.services.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (s *Service) GetServiceByID(ctx context.Context, id int64) (*models.Service, error) {
	service, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if service == nil {
		return nil, notFound("Service not found")
	}

	return service, nil
}

func (s *Service) CreateService(ctx context.Context, body validations.CreateServiceValidator) (*models.Service, error) {
	toInsert := &models.Service{
		Name:        strings.TrimSpace(body.Name),
		TotalAmount: body.TotalAmount,
	}

	if err := s.services.Insert(ctx, toInsert); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("Service with this name already exists")
		}
		return nil, err
	}

	return toInsert, nil
}

func (s *Service) UpdateService(ctx context.Context, id int64, body validations.UpdateServiceValidator) (*models.Service, error) {
	service, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if service == nil {
		return nil, notFound("Service not found")
	}

	if body.Name != nil {
		service.Name = strings.TrimSpace(*body.Name)
	}

	if body.TotalAmount != nil {
		service.TotalAmount = *body.TotalAmount
	}

	service.UpdatedAt = time.Now()

	if err := s.services.Update(ctx, service); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("Service with this name already exists")
		}
		return nil, err
	}

	return service, nil
}

func (s *Service) DeleteService(ctx context.Context, id int64) error {
	service, err := s.services.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if service == nil {
		return notFound("Service not found")
	}

	return s.services.Delete(ctx, id)
}
