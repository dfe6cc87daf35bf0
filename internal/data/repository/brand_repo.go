package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"electronics-store/internal/data/entity"
	"electronics-store/pkg/database"
)

type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
}

type brandRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBrandRepository(db database.PgxIface, log *zap.Logger) BrandRepository {
	return &brandRepository{
		db:  db,
		log: log.With(zap.String("repository", "brand")),
	}
}

func (r *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	query := `
		INSERT INTO brands (name, description, logo_url)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		brand.Name,
		brand.Description,
		brand.LogoURL,
	).Scan(&brand.ID)

	if err != nil {
		r.log.Error("Failed to create brand",
			zap.Error(err),
			zap.String("name", brand.Name),
		)
		return fmt.Errorf("create brand %s: %w", brand.Name, err)
	}

	return nil
}
