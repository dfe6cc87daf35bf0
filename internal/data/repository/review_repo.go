package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"electronics-store/internal/data/entity"
	"electronics-store/pkg/database"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByProduct(ctx context.Context, productID int64) ([]*entity.Review, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (product_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		review.ProductID,
		review.UserID,
		review.Rating,
		review.Comment,
	).Scan(&review.ID)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("product_id", review.ProductID),
		)
		return fmt.Errorf("create review for product %d: %w", review.ProductID, err)
	}

	return nil
}

// FindByProduct returns reviews newest first with the reviewer's login
// name joined in.
func (r *reviewRepository) FindByProduct(ctx context.Context, productID int64) ([]*entity.Review, error) {
	query := `
		SELECT rv.id, rv.product_id, rv.user_id, rv.rating, rv.comment, rv.created_at,
		       a.email
		FROM reviews rv
		JOIN accounts a ON a.id = rv.user_id
		WHERE rv.product_id = $1
		ORDER BY rv.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		r.log.Error("Failed to query reviews",
			zap.Error(err),
			zap.Int64("product_id", productID),
		)
		return nil, fmt.Errorf("query reviews for product %d: %w", productID, err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.ProductID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.Username,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}
