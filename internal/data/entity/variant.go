package entity

type ProductVariant struct {
	ID            int64    `db:"id"`
	ProductID     int64    `db:"product_id"`
	Name          *string  `db:"name"`
	SKU           *string  `db:"sku"`
	Color         *string  `db:"color"`
	Size          *string  `db:"size"`
	Stock         int      `db:"stock"`
	Price         *float64 `db:"price"`
	DiscountPrice *float64 `db:"discount_price"`
}
