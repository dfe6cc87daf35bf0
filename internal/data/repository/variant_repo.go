package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"electronics-store/internal/data/entity"
	"electronics-store/pkg/database"
)

type VariantRepository interface {
	Create(ctx context.Context, variant *entity.ProductVariant) error
	FindByProduct(ctx context.Context, productID int64) ([]*entity.ProductVariant, error)
}

type variantRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVariantRepository(db database.PgxIface, log *zap.Logger) VariantRepository {
	return &variantRepository{
		db:  db,
		log: log.With(zap.String("repository", "variant")),
	}
}

func (r *variantRepository) Create(ctx context.Context, variant *entity.ProductVariant) error {
	query := `
		INSERT INTO product_variants (product_id, name, sku, color, size,
		                              stock, price, discount_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		variant.ProductID,
		variant.Name,
		variant.SKU,
		variant.Color,
		variant.Size,
		variant.Stock,
		variant.Price,
		variant.DiscountPrice,
	).Scan(&variant.ID)

	if err != nil {
		r.log.Error("Failed to create product variant",
			zap.Error(err),
			zap.Int64("product_id", variant.ProductID),
		)
		return fmt.Errorf("create variant for product %d: %w", variant.ProductID, err)
	}

	return nil
}

func (r *variantRepository) FindByProduct(ctx context.Context, productID int64) ([]*entity.ProductVariant, error) {
	query := `
		SELECT id, product_id, name, sku, color, size, stock, price, discount_price
		FROM product_variants
		WHERE product_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		r.log.Error("Failed to query product variants",
			zap.Error(err),
			zap.Int64("product_id", productID),
		)
		return nil, fmt.Errorf("query variants for product %d: %w", productID, err)
	}
	defer rows.Close()

	var variants []*entity.ProductVariant
	for rows.Next() {
		var variant entity.ProductVariant
		err := rows.Scan(
			&variant.ID,
			&variant.ProductID,
			&variant.Name,
			&variant.SKU,
			&variant.Color,
			&variant.Size,
			&variant.Stock,
			&variant.Price,
			&variant.DiscountPrice,
		)
		if err != nil {
			r.log.Error("Failed to scan variant row", zap.Error(err))
			return nil, fmt.Errorf("scan variant row: %w", err)
		}
		variants = append(variants, &variant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate variant rows: %w", err)
	}

	return variants, nil
}
