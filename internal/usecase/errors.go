package usecase

import "errors"

// Domain errors handlers translate into client responses. Messages are the
// exact detail strings clients see.
var (
	// registration
	ErrEmailTaken = errors.New("Email is already registered.")

	// OTP verification. Unknown email and missing code collapse into one
	// error so responses don't reveal whether an account exists.
	ErrInvalidEmailOrOTP = errors.New("Invalid email or OTP.")
	ErrOTPExpired        = errors.New("OTP expired.")
	ErrOTPMismatch       = errors.New("Invalid OTP.")

	// login / tokens
	ErrInvalidCredentials  = errors.New("Invalid credentials")
	ErrInvalidRefreshToken = errors.New("Invalid or expired refresh token")

	// catalog
	ErrCategoryNotFound = errors.New("Category not found")
	ErrParentNotFound   = errors.New("Parent category not found")
	ErrProductNotFound  = errors.New("Product not found")

	ErrAccountNotFound = errors.New("Account not found")
)
