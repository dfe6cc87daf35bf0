package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"electronics-store/internal/data/entity"
	"electronics-store/internal/data/repository"
	"electronics-store/internal/dto/response"
	"electronics-store/pkg/utils"
)

// category grids show at most this many products
const categoryProductLimit = 6

type CategoryService interface {
	ParentCategories(ctx context.Context) ([]response.ParentCategoryResponse, error)
	CategoryProducts(ctx context.Context, categoryID int64, mode string) (*response.CategoryProductsResponse, error)
	ParentCategoryProducts(ctx context.Context, parentID int64, mode string) (*response.CategoryProductsResponse, error)
}

type categoryService struct {
	repo    *repository.Repository
	baseURL string
	log     *zap.Logger
}

func NewCategoryService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) CategoryService {
	return &categoryService{
		repo:    repo,
		baseURL: config.App.BaseURL,
		log:     log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) ParentCategories(ctx context.Context) ([]response.ParentCategoryResponse, error) {
	parents, err := s.repo.Category.FindParents(ctx)
	if err != nil {
		return nil, fmt.Errorf("get parent categories: %w", err)
	}

	result := make([]response.ParentCategoryResponse, len(parents))
	for i, parent := range parents {
		children, err := s.repo.Category.FindChildren(ctx, parent.ID)
		if err != nil {
			return nil, fmt.Errorf("get children of category %d: %w", parent.ID, err)
		}

		subs := make([]response.SubCategoryResponse, len(children))
		for j, child := range children {
			subs[j] = response.CategoryToSubResponse(child)
		}

		result[i] = response.ParentCategoryResponse{
			ID:            parent.ID,
			Name:          parent.Name,
			SvgSrc:        nil,
			Slug:          parent.Slug,
			SubCategories: subs,
		}
	}

	s.log.Info("Parent categories retrieved", zap.Int("count", len(result)))
	return result, nil
}

// CategoryProducts returns a category with up to six of its products.
// Category 0 is a pseudo-category meaning "all products", optionally
// narrowed by mode (popular, sale, best_seller).
func (s *categoryService) CategoryProducts(ctx context.Context, categoryID int64, mode string) (*response.CategoryProductsResponse, error) {
	if categoryID == 0 {
		return s.allProducts(ctx, mode)
	}

	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	products, err := s.repo.Product.FindByCategories(ctx, []int64{category.ID}, categoryProductLimit)
	if err != nil {
		return nil, fmt.Errorf("get products for category %d: %w", category.ID, err)
	}

	return s.buildCategoryProducts(ctx, category, products)
}

// ParentCategoryProducts returns products across all children of a parent
// category. The 0 sentinel behaves as in CategoryProducts.
func (s *categoryService) ParentCategoryProducts(ctx context.Context, parentID int64, mode string) (*response.CategoryProductsResponse, error) {
	if parentID == 0 {
		return s.allProducts(ctx, mode)
	}

	parent, err := s.repo.Category.FindByID(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("find parent category: %w", err)
	}
	if parent == nil {
		return nil, ErrParentNotFound
	}

	children, err := s.repo.Category.FindChildren(ctx, parent.ID)
	if err != nil {
		return nil, fmt.Errorf("get children of category %d: %w", parent.ID, err)
	}

	childIDs := make([]int64, len(children))
	for i, child := range children {
		childIDs[i] = child.ID
	}

	var products []*entity.Product
	if len(childIDs) > 0 {
		products, err = s.repo.Product.FindByCategories(ctx, childIDs, categoryProductLimit)
		if err != nil {
			return nil, fmt.Errorf("get products for parent %d: %w", parent.ID, err)
		}
	}

	return s.buildCategoryProducts(ctx, parent, products)
}

func (s *categoryService) allProducts(ctx context.Context, mode string) (*response.CategoryProductsResponse, error) {
	products, err := s.repo.Product.FindByMode(ctx, mode, categoryProductLimit)
	if err != nil {
		return nil, fmt.Errorf("get products by mode %q: %w", mode, err)
	}

	all := &entity.Category{ID: 0, Name: "All Products", Slug: "all"}
	return s.buildCategoryProducts(ctx, all, products)
}

func (s *categoryService) buildCategoryProducts(ctx context.Context, category *entity.Category, products []*entity.Product) (*response.CategoryProductsResponse, error) {
	items := make([]response.ProductListItem, len(products))
	for i, product := range products {
		items[i] = response.ProductToListItem(product, s.mainImage(ctx, product.ID))
	}

	return &response.CategoryProductsResponse{
		ID:       category.ID,
		Name:     category.Name,
		Slug:     category.Slug,
		Products: items,
	}, nil
}

// mainImage is best effort: a product without a usable main image renders
// with a placeholder on the storefront.
func (s *categoryService) mainImage(ctx context.Context, productID int64) *string {
	images, err := s.repo.Product.FindImages(ctx, productID)
	if err != nil {
		s.log.Warn("Failed to get images for product",
			zap.Error(err),
			zap.Int64("product_id", productID),
		)
		return nil
	}

	for _, image := range images {
		if image.IsMain {
			url := utils.NormalizeMediaURL(s.baseURL, image.URL)
			return &url
		}
	}
	return nil
}
