package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"electronics-store/internal/dto/response"
	"electronics-store/internal/usecase"
)

// stubCategoryService records the arguments the handler extracted from
// the request so URL and query parsing can be checked in isolation.
type stubCategoryService struct {
	gotID   int64
	gotMode string

	parents     []response.ParentCategoryResponse
	products    *response.CategoryProductsResponse
	productsErr error
}

func (s *stubCategoryService) ParentCategories(context.Context) ([]response.ParentCategoryResponse, error) {
	return s.parents, nil
}

func (s *stubCategoryService) CategoryProducts(_ context.Context, categoryID int64, mode string) (*response.CategoryProductsResponse, error) {
	s.gotID = categoryID
	s.gotMode = mode
	return s.products, s.productsErr
}

func (s *stubCategoryService) ParentCategoryProducts(_ context.Context, parentID int64, mode string) (*response.CategoryProductsResponse, error) {
	s.gotID = parentID
	s.gotMode = mode
	return s.products, s.productsErr
}

func categoryRouter(h *CategoryHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/products/categories-parents", h.ParentCategories)
	r.Get("/api/products/categories/{id}", h.CategoryProducts)
	r.Get("/api/products/parent-categories/{id}", h.ParentCategoryProducts)
	return r
}

func getRequest(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestParentCategoriesHandler(t *testing.T) {
	stub := &stubCategoryService{
		parents: []response.ParentCategoryResponse{
			{ID: 1, Name: "Laptops", Slug: "laptops", SubCategories: []response.SubCategoryResponse{}},
		},
	}
	router := categoryRouter(NewCategoryHandler(stub, zap.NewNop()))

	rec := getRequest(t, router, "/api/products/categories-parents")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body []response.ParentCategoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body) != 1 || body[0].Name != "Laptops" {
		t.Errorf("body = %+v", body)
	}
}

func TestCategoryProductsHandlerParsing(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantID   int64
		wantMode string
	}{
		{"plain id", "/api/products/categories/7", 7, ""},
		{"zero sentinel with type", "/api/products/categories/0?type=popular", 0, "popular"},
		{"sale filter", "/api/products/categories/0?type=sale", 0, "sale"},
		{"best seller filter", "/api/products/categories/0?type=best_seller", 0, "best_seller"},
		{"unknown type ignored", "/api/products/categories/0?type=newest", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubCategoryService{products: &response.CategoryProductsResponse{}}
			router := categoryRouter(NewCategoryHandler(stub, zap.NewNop()))

			rec := getRequest(t, router, tt.target)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if stub.gotID != tt.wantID || stub.gotMode != tt.wantMode {
				t.Errorf("service called with (%d, %q), want (%d, %q)",
					stub.gotID, stub.gotMode, tt.wantID, tt.wantMode)
			}
		})
	}
}

func TestCategoryProductsHandlerInvalidID(t *testing.T) {
	stub := &stubCategoryService{products: &response.CategoryProductsResponse{}}
	router := categoryRouter(NewCategoryHandler(stub, zap.NewNop()))

	for _, target := range []string{
		"/api/products/categories/abc",
		"/api/products/categories/-1",
	} {
		rec := getRequest(t, router, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestCategoryProductsHandlerNotFound(t *testing.T) {
	stub := &stubCategoryService{productsErr: usecase.ErrCategoryNotFound}
	router := categoryRouter(NewCategoryHandler(stub, zap.NewNop()))

	rec := getRequest(t, router, "/api/products/categories/99")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := decodeDetail(t, rec); got != "Category not found" {
		t.Errorf("detail = %q", got)
	}
}

func TestParentCategoryProductsHandlerNotFound(t *testing.T) {
	stub := &stubCategoryService{productsErr: usecase.ErrParentNotFound}
	router := categoryRouter(NewCategoryHandler(stub, zap.NewNop()))

	rec := getRequest(t, router, "/api/products/parent-categories/99")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
