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

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "category")),
	}
}

// ParentCategories handles GET /api/products/categories-parents
func (h *CategoryHandler) ParentCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ParentCategories(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get parent categories")
		return
	}

	utils.ResponseSuccess(w, categories)
}

// CategoryProducts handles GET /api/products/categories/{id}.
// id 0 means "all products"; ?type=popular|sale|best_seller narrows it.
func (h *CategoryHandler) CategoryProducts(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := h.parseID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.CategoryProducts(r.Context(), categoryID, h.mode(r))
	if err != nil {
		h.handleServiceError(w, err, "get category products")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// ParentCategoryProducts handles GET /api/products/parent-categories/{id}
func (h *CategoryHandler) ParentCategoryProducts(w http.ResponseWriter, r *http.Request) {
	parentID, ok := h.parseID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.ParentCategoryProducts(r.Context(), parentID, h.mode(r))
	if err != nil {
		h.handleServiceError(w, err, "get parent category products")
		return
	}

	utils.ResponseSuccess(w, resp)
}

func (h *CategoryHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		utils.ResponseBadRequest(w, "Invalid category ID")
		return 0, false
	}
	return id, true
}

// mode returns the marketing filter, only meaningful for the 0 pseudo-id
func (h *CategoryHandler) mode(r *http.Request) string {
	mode := r.URL.Query().Get("type")
	switch mode {
	case "popular", "sale", "best_seller":
		return mode
	case "":
		return ""
	default:
		h.log.Warn("Invalid type filter, ignoring", zap.String("type", mode))
		return ""
	}
}

func (h *CategoryHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrCategoryNotFound),
		errors.Is(err, usecase.ErrParentNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
