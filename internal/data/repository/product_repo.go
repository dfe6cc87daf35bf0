package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"electronics-store/internal/data/entity"
	"electronics-store/pkg/database"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindByCategories(ctx context.Context, categoryIDs []int64, limit int) ([]*entity.Product, error)
	FindByMode(ctx context.Context, mode string, limit int) ([]*entity.Product, error)
	AddImage(ctx context.Context, image *entity.ProductImage) error
	FindImages(ctx context.Context, productID int64) ([]*entity.ProductImage, error)
	AddShippingInfo(ctx context.Context, info *entity.ShippingInfo) error
	FindShippingInfo(ctx context.Context, productID int64) ([]*entity.ShippingInfo, error)
	AddReturnPolicy(ctx context.Context, policy *entity.ReturnPolicy) error
	FindReturnPolicies(ctx context.Context, productID int64) ([]*entity.ReturnPolicy, error)
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

const productColumns = `
	p.id, p.brand_id, p.category_id, p.name, p.description,
	p.price, p.discount_price, p.rating, p.num_reviews, p.sold,
	p.is_available, p.is_popular, p.is_sale, p.is_best_seller,
	p.created_at, p.updated_at,
	b.id, b.name, b.logo_url
`

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (brand_id, category_id, name, description,
		                      price, discount_price, rating, num_reviews, sold,
		                      is_available, is_popular, is_sale, is_best_seller,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		product.BrandID,
		product.CategoryID,
		product.Name,
		product.Description,
		product.Price,
		product.DiscountPrice,
		product.Rating,
		product.NumReviews,
		product.Sold,
		product.IsAvailable,
		product.IsPopular,
		product.IsSale,
		product.IsBestSeller,
	).Scan(&product.ID)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN brands b ON b.id = p.brand_id
		WHERE p.id = $1 AND p.is_available = true
	`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return nil, fmt.Errorf("find product by ID %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("find product by ID %d: %w", id, err)
		}
		return nil, nil
	}

	product, err := scanProduct(rows)
	if err != nil {
		r.log.Error("Failed to scan product row", zap.Error(err))
		return nil, fmt.Errorf("scan product row: %w", err)
	}

	return product, nil
}

func (r *productRepository) FindByCategories(ctx context.Context, categoryIDs []int64, limit int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN brands b ON b.id = p.brand_id
		WHERE p.category_id = ANY($1) AND p.is_available = true
		ORDER BY p.id
		LIMIT $2
	`

	return r.queryProducts(ctx, query, categoryIDs, limit)
}

// FindByMode lists available products filtered by a marketing flag:
// "popular", "sale", "best_seller", or "" for no filter.
func (r *productRepository) FindByMode(ctx context.Context, mode string, limit int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN brands b ON b.id = p.brand_id
		WHERE p.is_available = true
	`

	switch mode {
	case "popular":
		query += ` AND p.is_popular = true`
	case "sale":
		query += ` AND p.is_sale = true`
	case "best_seller":
		query += ` AND p.is_best_seller = true`
	}

	query += `
		ORDER BY p.id
		LIMIT $1
	`

	return r.queryProducts(ctx, query, limit)
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query products", zap.Error(err))
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

// scanProduct reads one productColumns row, folding the left-joined brand
// into Product.Brand when present.
func scanProduct(rows pgx.Rows) (*entity.Product, error) {
	var product entity.Product
	var brandID *int64
	var brandName, brandLogo *string

	err := rows.Scan(
		&product.ID,
		&product.BrandID,
		&product.CategoryID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.DiscountPrice,
		&product.Rating,
		&product.NumReviews,
		&product.Sold,
		&product.IsAvailable,
		&product.IsPopular,
		&product.IsSale,
		&product.IsBestSeller,
		&product.CreatedAt,
		&product.UpdatedAt,
		&brandID,
		&brandName,
		&brandLogo,
	)
	if err != nil {
		return nil, err
	}

	if brandID != nil {
		brand := entity.Brand{ID: *brandID, LogoURL: brandLogo}
		if brandName != nil {
			brand.Name = *brandName
		}
		product.Brand = &brand
	}

	return &product, nil
}

func (r *productRepository) AddImage(ctx context.Context, image *entity.ProductImage) error {
	query := `
		INSERT INTO product_images (product_id, url, is_main)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		image.ProductID,
		image.URL,
		image.IsMain,
	).Scan(&image.ID)

	if err != nil {
		r.log.Error("Failed to add product image",
			zap.Error(err),
			zap.Int64("product_id", image.ProductID),
		)
		return fmt.Errorf("add image for product %d: %w", image.ProductID, err)
	}

	return nil
}

func (r *productRepository) FindImages(ctx context.Context, productID int64) ([]*entity.ProductImage, error) {
	query := `
		SELECT id, product_id, url, is_main
		FROM product_images
		WHERE product_id = $1
		ORDER BY is_main DESC, id
	`

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		r.log.Error("Failed to query product images",
			zap.Error(err),
			zap.Int64("product_id", productID),
		)
		return nil, fmt.Errorf("query images for product %d: %w", productID, err)
	}
	defer rows.Close()

	var images []*entity.ProductImage
	for rows.Next() {
		var image entity.ProductImage
		err := rows.Scan(&image.ID, &image.ProductID, &image.URL, &image.IsMain)
		if err != nil {
			r.log.Error("Failed to scan image row", zap.Error(err))
			return nil, fmt.Errorf("scan image row: %w", err)
		}
		images = append(images, &image)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate image rows: %w", err)
	}

	return images, nil
}

func (r *productRepository) AddShippingInfo(ctx context.Context, info *entity.ShippingInfo) error {
	query := `
		INSERT INTO shipping_info (product_id, info)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, info.ProductID, info.Info).Scan(&info.ID)
	if err != nil {
		r.log.Error("Failed to add shipping info",
			zap.Error(err),
			zap.Int64("product_id", info.ProductID),
		)
		return fmt.Errorf("add shipping info for product %d: %w", info.ProductID, err)
	}

	return nil
}

func (r *productRepository) FindShippingInfo(ctx context.Context, productID int64) ([]*entity.ShippingInfo, error) {
	query := `
		SELECT id, product_id, info
		FROM shipping_info
		WHERE product_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		r.log.Error("Failed to query shipping info",
			zap.Error(err),
			zap.Int64("product_id", productID),
		)
		return nil, fmt.Errorf("query shipping info for product %d: %w", productID, err)
	}
	defer rows.Close()

	var infos []*entity.ShippingInfo
	for rows.Next() {
		var info entity.ShippingInfo
		err := rows.Scan(&info.ID, &info.ProductID, &info.Info)
		if err != nil {
			return nil, fmt.Errorf("scan shipping info row: %w", err)
		}
		infos = append(infos, &info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shipping info rows: %w", err)
	}

	return infos, nil
}

func (r *productRepository) AddReturnPolicy(ctx context.Context, policy *entity.ReturnPolicy) error {
	query := `
		INSERT INTO return_policy (product_id, policy_text)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, policy.ProductID, policy.PolicyText).Scan(&policy.ID)
	if err != nil {
		r.log.Error("Failed to add return policy",
			zap.Error(err),
			zap.Int64("product_id", policy.ProductID),
		)
		return fmt.Errorf("add return policy for product %d: %w", policy.ProductID, err)
	}

	return nil
}

func (r *productRepository) FindReturnPolicies(ctx context.Context, productID int64) ([]*entity.ReturnPolicy, error) {
	query := `
		SELECT id, product_id, policy_text
		FROM return_policy
		WHERE product_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		r.log.Error("Failed to query return policies",
			zap.Error(err),
			zap.Int64("product_id", productID),
		)
		return nil, fmt.Errorf("query return policies for product %d: %w", productID, err)
	}
	defer rows.Close()

	var policies []*entity.ReturnPolicy
	for rows.Next() {
		var policy entity.ReturnPolicy
		err := rows.Scan(&policy.ID, &policy.ProductID, &policy.PolicyText)
		if err != nil {
			return nil, fmt.Errorf("scan return policy row: %w", err)
		}
		policies = append(policies, &policy)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate return policy rows: %w", err)
	}

	return policies, nil
}
