package repository

import (
	"go.uber.org/zap"

	"electronics-store/pkg/database"
)

type Repository struct {
	Account  AccountRepository
	OTP      OTPRepository
	Brand    BrandRepository
	Category CategoryRepository
	Product  ProductRepository
	Variant  VariantRepository
	Review   ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Account:  NewAccountRepository(db, log),
		OTP:      NewOTPRepository(db, log),
		Brand:    NewBrandRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Product:  NewProductRepository(db, log),
		Variant:  NewVariantRepository(db, log),
		Review:   NewReviewRepository(db, log),
	}
}
