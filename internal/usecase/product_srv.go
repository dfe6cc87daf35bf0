package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"electronics-store/internal/data/repository"
	"electronics-store/internal/dto/response"
	"electronics-store/pkg/utils"
)

type ProductService interface {
	ProductDetail(ctx context.Context, productID int64) (*response.ProductDetailResponse, error)
}

type productService struct {
	repo    *repository.Repository
	baseURL string
	log     *zap.Logger
}

func NewProductService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) ProductService {
	return &productService{
		repo:    repo,
		baseURL: config.App.BaseURL,
		log:     log.With(zap.String("service", "product")),
	}
}

// ProductDetail assembles the full product page: brand, variants, reviews,
// shipping info, return policy and images. Unavailable products are
// treated as missing.
func (s *productService) ProductDetail(ctx context.Context, productID int64) (*response.ProductDetailResponse, error) {
	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	variants, err := s.repo.Variant.FindByProduct(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("get variants: %w", err)
	}

	reviews, err := s.repo.Review.FindByProduct(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	shipping, err := s.repo.Product.FindShippingInfo(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("get shipping info: %w", err)
	}

	policies, err := s.repo.Product.FindReturnPolicies(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("get return policies: %w", err)
	}

	images, err := s.repo.Product.FindImages(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("get images: %w", err)
	}

	detail := &response.ProductDetailResponse{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		Rating:        product.Rating,
		NumReviews:    product.NumReviews,
		IsAvailable:   product.IsAvailable,
		Brand:         response.BrandToResponse(product.Brand),
		Variants:      make([]response.VariantResponse, len(variants)),
		Reviews:       make([]response.ReviewResponse, len(reviews)),
		ShippingInfo:  make([]response.ShippingInfoResponse, len(shipping)),
		ReturnPolicy:  make([]response.ReturnPolicyResponse, len(policies)),
		OtherImages:   []string{},
	}

	for i, variant := range variants {
		detail.Variants[i] = response.VariantToResponse(variant)
	}
	for i, review := range reviews {
		detail.Reviews[i] = response.ReviewToResponse(review)
	}
	for i, info := range shipping {
		detail.ShippingInfo[i] = response.ShippingInfoResponse{ID: info.ID, Info: info.Info}
	}
	for i, policy := range policies {
		detail.ReturnPolicy[i] = response.ReturnPolicyResponse{ID: policy.ID, PolicyText: policy.PolicyText}
	}

	for _, image := range images {
		url := utils.NormalizeMediaURL(s.baseURL, image.URL)
		if image.IsMain && detail.MainImage == nil {
			detail.MainImage = &url
			continue
		}
		detail.OtherImages = append(detail.OtherImages, url)
	}

	s.log.Info("Product detail retrieved", zap.Int64("product_id", product.ID))
	return detail, nil
}
