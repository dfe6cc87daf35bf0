package adaptor

import (
	"go.uber.org/zap"

	"electronics-store/internal/usecase"
)

// Handler groups all HTTP handlers for wiring
type Handler struct {
	Auth     *AuthHandler
	Category *CategoryHandler
	Product  *ProductHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Category: NewCategoryHandler(service.Category, log),
		Product:  NewProductHandler(service.Product, log),
	}
}
