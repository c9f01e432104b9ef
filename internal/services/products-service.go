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

func (s *Service) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Service) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product == nil {
		return nil, notFound("Product not found")
	}

	return product, nil
}

func (s *Service) CreateProduct(ctx context.Context, body validations.CreateProductValidator) (*models.Product, error) {
	toInsert := &models.Product{
		Name:   strings.TrimSpace(body.Name),
		Amount: body.Amount,
	}

	if err := s.products.Insert(ctx, toInsert); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("Product with this name already exists")
		}
		return nil, err
	}

	return toInsert, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id int64, body validations.UpdateProductValidator) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product == nil {
		return nil, notFound("Product not found")
	}

	if body.Name != nil {
		product.Name = strings.TrimSpace(*body.Name)
	}

	if body.Amount != nil {
		product.Amount = *body.Amount
	}

	product.UpdatedAt = time.Now()

	if err := s.products.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("Product with this name already exists")
		}
		return nil, err
	}

	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if product == nil {
		return notFound("Product not found")
	}

	return s.products.Delete(ctx, id)
}
