package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"electronics-store/internal/data/entity"
	"electronics-store/pkg/database"
)

type OTPRepository interface {
	Replace(ctx context.Context, otp *entity.RegistrationOTP) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.RegistrationOTP, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOTPRepository(db database.PgxIface, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

// Replace upserts the account's pending code. registration_otps.user_id is
// unique, so an account can never hold two live codes; re-issuing replaces
// the code and restarts the validity window.
func (r *otpRepository) Replace(ctx context.Context, otp *entity.RegistrationOTP) error {
	query := `
		INSERT INTO registration_otps (id, user_id, code, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET code = EXCLUDED.code, created_at = EXCLUDED.created_at
	`

	_, err := r.db.Exec(ctx, query,
		otp.ID,
		otp.UserID,
		otp.Code,
		otp.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to store registration OTP",
			zap.Error(err),
			zap.String("user_id", otp.UserID.String()),
		)
		return fmt.Errorf("store OTP for user %s: %w", otp.UserID.String(), err)
	}

	return nil
}

// FindByUserID returns the pending code regardless of age. Expiry is the
// caller's call, via RegistrationOTP.IsValid.
func (r *otpRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.RegistrationOTP, error) {
	query := `
		SELECT id, user_id, code, created_at
		FROM registration_otps
		WHERE user_id = $1
	`

	var otp entity.RegistrationOTP
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&otp.ID,
		&otp.UserID,
		&otp.Code,
		&otp.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find registration OTP",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find OTP for user %s: %w", userID.String(), err)
	}

	return &otp, nil
}

func (r *otpRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `
		DELETE FROM registration_otps
		WHERE user_id = $1
	`

	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to delete registration OTP",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete OTP for user %s: %w", userID.String(), err)
	}

	return nil
}
