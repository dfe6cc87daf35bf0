package entity

type Brand struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	LogoURL     *string `db:"logo_url"`
}
