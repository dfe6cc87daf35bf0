package entity

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID        int64     `db:"id"`
	ProductID int64     `db:"product_id"`
	UserID    uuid.UUID `db:"user_id"`
	Rating    int       `db:"rating"`
	Comment   *string   `db:"comment"`
	CreatedAt time.Time `db:"created_at"`

	// reviewer's login name, joined from accounts
	Username string `db:"-"`
}
