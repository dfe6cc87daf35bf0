package usecase

import (
	"go.uber.org/zap"

	"electronics-store/internal/data/repository"
	"electronics-store/pkg/utils"
)

// Service groups all usecases for wiring
type Service struct {
	Auth     AuthService
	Category CategoryService
	Product  ProductService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	mail Dispatcher,
	tokens TokenIssuer,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, mail, tokens, log),
		Category: NewCategoryService(repo, config, log),
		Product:  NewProductService(repo, config, log),
	}
}
