package entity

type ShippingInfo struct {
	ID        int64  `db:"id"`
	ProductID int64  `db:"product_id"`
	Info      string `db:"info"`
}

type ReturnPolicy struct {
	ID         int64  `db:"id"`
	ProductID  int64  `db:"product_id"`
	PolicyText string `db:"policy_text"`
}

type ProductImage struct {
	ID        int64  `db:"id"`
	ProductID int64  `db:"product_id"`
	URL       string `db:"url"`
	IsMain    bool   `db:"is_main"`
}
