package entity

import (
	"time"

	"github.com/google/uuid"
)

// registration codes stay usable for this long after issuance
const OTPValidity = 5 * time.Minute

// RegistrationOTP is the single pending verification code for an account.
// The code is kept as text to preserve leading zeros. Expiry is computed
// on read; nothing sweeps stale rows.
type RegistrationOTP struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
	Code   string    `db:"code"`
}

// IsValid reports whether the code is still usable at now. The boundary is
// inclusive: a code checked exactly OTPValidity after issuance still
// passes.
func (o *RegistrationOTP) IsValid(now time.Time) bool {
	return !now.After(o.CreatedAt.Add(OTPValidity))
}
