package entity

type Category struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Slug     string `db:"slug"`
	ParentID *int64 `db:"parent_id"`
}
