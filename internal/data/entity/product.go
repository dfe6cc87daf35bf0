package entity

import "time"

type Product struct {
	ID            int64    `db:"id"`
	BrandID       *int64   `db:"brand_id"`
	CategoryID    *int64   `db:"category_id"`
	Name          string   `db:"name"`
	Description   string   `db:"description"`
	Price         float64  `db:"price"`
	DiscountPrice *float64 `db:"discount_price"`
	Rating        float64  `db:"rating"`
	NumReviews    int      `db:"num_reviews"`
	Sold          int      `db:"sold"`
	IsAvailable   bool     `db:"is_available"`
	IsPopular     bool     `db:"is_popular"`
	IsSale        bool     `db:"is_sale"`
	IsBestSeller  bool     `db:"is_best_seller"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`

	// populated by queries joining brands
	Brand *Brand `db:"-"`
}
