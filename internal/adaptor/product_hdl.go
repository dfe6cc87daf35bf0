package adaptor

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"electronics-store/internal/usecase"
	"electronics-store/pkg/utils"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// ProductDetail handles GET /api/products/{id}
func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	productID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || productID < 1 {
		utils.ResponseBadRequest(w, "Invalid product ID")
		return
	}

	detail, err := h.service.ProductDetail(r.Context(), productID)
	if err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			h.log.Warn("Product not found", zap.Int64("product_id", productID))
			utils.ResponseNotFound(w, err.Error())
			return
		}
		h.log.Error("Failed to get product detail", zap.Error(err), zap.Int64("product_id", productID))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, detail)
}
