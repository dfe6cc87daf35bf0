package response

import (
	"time"

	"electronics-store/internal/data/entity"
)

type BrandResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	LogoURL *string `json:"logo_url"`
}

// ProductListItem is the shape the storefront renders in category grids.
type ProductListItem struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         float64        `json:"price"`
	DiscountPrice *float64       `json:"discount_price"`
	Sold          int            `json:"sold"`
	Brand         *BrandResponse `json:"brand"`
	MainImage     *string        `json:"main_image"`
}

type SubCategoryResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	SvgSrc *string `json:"svgSrc"`
	Slug   string  `json:"slug"`
}

type ParentCategoryResponse struct {
	ID            int64                 `json:"id"`
	Name          string                `json:"name"`
	SvgSrc        *string               `json:"svgSrc"`
	Slug          string                `json:"slug"`
	SubCategories []SubCategoryResponse `json:"subCategories"`
}

type CategoryProductsResponse struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Slug     string            `json:"slug"`
	Products []ProductListItem `json:"products"`
}

type VariantResponse struct {
	ID            int64    `json:"id"`
	Name          *string  `json:"name"`
	Color         *string  `json:"color"`
	Size          *string  `json:"size"`
	Stock         int      `json:"stock"`
	Price         *float64 `json:"price"`
	DiscountPrice *float64 `json:"discount_price"`
}

type ReviewResponse struct {
	ID        int64     `json:"id"`
	User      string    `json:"user"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type ShippingInfoResponse struct {
	ID   int64  `json:"id"`
	Info string `json:"info"`
}

type ReturnPolicyResponse struct {
	ID         int64  `json:"id"`
	PolicyText string `json:"policy_text"`
}

type ProductDetailResponse struct {
	ID            int64                  `json:"id"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	Price         float64                `json:"price"`
	DiscountPrice *float64               `json:"discount_price"`
	Rating        float64                `json:"rating"`
	NumReviews    int                    `json:"num_reviews"`
	IsAvailable   bool                   `json:"is_available"`
	Brand         *BrandResponse         `json:"brand"`
	Variants      []VariantResponse      `json:"variants"`
	Reviews       []ReviewResponse       `json:"reviews"`
	ShippingInfo  []ShippingInfoResponse `json:"shipping_info"`
	ReturnPolicy  []ReturnPolicyResponse `json:"return_policy"`
	MainImage     *string                `json:"main_image"`
	OtherImages   []string               `json:"other_images"`
}

// Helper converters

func BrandToResponse(brand *entity.Brand) *BrandResponse {
	if brand == nil {
		return nil
	}
	return &BrandResponse{
		ID:      brand.ID,
		Name:    brand.Name,
		LogoURL: brand.LogoURL,
	}
}

func ProductToListItem(product *entity.Product, mainImage *string) ProductListItem {
	return ProductListItem{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		Sold:          product.Sold,
		Brand:         BrandToResponse(product.Brand),
		MainImage:     mainImage,
	}
}

func CategoryToSubResponse(category *entity.Category) SubCategoryResponse {
	return SubCategoryResponse{
		ID:     category.ID,
		Name:   category.Name,
		SvgSrc: nil,
		Slug:   category.Slug,
	}
}

func VariantToResponse(variant *entity.ProductVariant) VariantResponse {
	return VariantResponse{
		ID:            variant.ID,
		Name:          variant.Name,
		Color:         variant.Color,
		Size:          variant.Size,
		Stock:         variant.Stock,
		Price:         variant.Price,
		DiscountPrice: variant.DiscountPrice,
	}
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		User:      review.Username,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}
