package entity

// Account is a store customer. Email doubles as the login name. Accounts
// are created inactive and flip to active exactly once, when the
// registration OTP is verified.
type Account struct {
	Base
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	IsActive     bool   `db:"is_active"`
}
