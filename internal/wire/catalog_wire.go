package wire

import (
	"github.com/go-chi/chi/v5"

	"electronics-store/internal/adaptor"
)

func wireCatalog(
	r chi.Router,
	categoryHandler *adaptor.CategoryHandler,
	productHandler *adaptor.ProductHandler,
) {
	r.Get("/api/products/categories-parents", categoryHandler.ParentCategories)
	r.Get("/api/products/categories/{id}", categoryHandler.CategoryProducts)
	r.Get("/api/products/parent-categories/{id}", categoryHandler.ParentCategoryProducts)
	r.Get("/api/products/{id}", productHandler.ProductDetail)
}
