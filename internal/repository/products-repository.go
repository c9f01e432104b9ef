package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"portfolio-api/internal/models"
)

type Products struct {
	bun *bun.DB
}

func NewProducts(db *bun.DB) *Products {
	return &Products{db}
}

func (p *Products) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.bun.NewSelect().
		Model(&products).
		Order("product_id").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (p *Products) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := p.bun.NewSelect().
		Model(&product).
		Where("product_id = ?", id).
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &product, nil
}

func (p *Products) Insert(ctx context.Context, product *models.Product) error {
	if _, err := p.bun.NewInsert().Model(product).Exec(ctx); err != nil {
		return translate(err)
	}
	return nil
}

func (p *Products) Update(ctx context.Context, product *models.Product) error {
	_, err := p.bun.NewUpdate().
		Model(product).
		Where("product_id = ?", product.ID).
		OmitZero().
		Exec(ctx)
	if err != nil {
		return translate(err)
	}
	return nil
}

func (p *Products) Delete(ctx context.Context, id int64) error {
	_, err := p.bun.NewDelete().
		Model(&models.Product{}).
		Where("product_id = ?", id).
		Exec(ctx)
	return err
}
