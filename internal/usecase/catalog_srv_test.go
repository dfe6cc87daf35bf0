package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"electronics-store/internal/data/entity"
	"electronics-store/internal/data/repository"
	"electronics-store/pkg/utils"
)

// ==================== catalog fakes ====================

type fakeCategoryRepo struct {
	categories map[int64]*entity.Category
	nextID     int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[int64]*entity.Category), nextID: 1}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	category.ID = f.nextID
	f.nextID++
	copied := *category
	f.categories[category.ID] = &copied
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id int64) (*entity.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *category
	return &copied, nil
}

func (f *fakeCategoryRepo) FindParents(context.Context) ([]*entity.Category, error) {
	var parents []*entity.Category
	for id := int64(1); id < f.nextID; id++ {
		if category, ok := f.categories[id]; ok && category.ParentID == nil {
			copied := *category
			parents = append(parents, &copied)
		}
	}
	return parents, nil
}

func (f *fakeCategoryRepo) FindChildren(_ context.Context, parentID int64) ([]*entity.Category, error) {
	var children []*entity.Category
	for id := int64(1); id < f.nextID; id++ {
		category, ok := f.categories[id]
		if ok && category.ParentID != nil && *category.ParentID == parentID {
			copied := *category
			children = append(children, &copied)
		}
	}
	return children, nil
}

type fakeProductRepo struct {
	products map[int64]*entity.Product
	images   map[int64][]*entity.ProductImage
	shipping map[int64][]*entity.ShippingInfo
	policies map[int64][]*entity.ReturnPolicy
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: make(map[int64]*entity.Product),
		images:   make(map[int64][]*entity.ProductImage),
		shipping: make(map[int64][]*entity.ShippingInfo),
		policies: make(map[int64][]*entity.ReturnPolicy),
		nextID:   1,
	}
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	product.ID = f.nextID
	f.nextID++
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	product, ok := f.products[id]
	if !ok || !product.IsAvailable {
		return nil, nil
	}
	copied := *product
	return &copied, nil
}

func (f *fakeProductRepo) FindByCategories(_ context.Context, categoryIDs []int64, limit int) ([]*entity.Product, error) {
	wanted := make(map[int64]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		wanted[id] = true
	}

	var result []*entity.Product
	for id := int64(1); id < f.nextID && len(result) < limit; id++ {
		product, ok := f.products[id]
		if !ok || !product.IsAvailable || product.CategoryID == nil {
			continue
		}
		if wanted[*product.CategoryID] {
			copied := *product
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeProductRepo) FindByMode(_ context.Context, mode string, limit int) ([]*entity.Product, error) {
	var result []*entity.Product
	for id := int64(1); id < f.nextID && len(result) < limit; id++ {
		product, ok := f.products[id]
		if !ok || !product.IsAvailable {
			continue
		}
		switch mode {
		case "popular":
			if !product.IsPopular {
				continue
			}
		case "sale":
			if !product.IsSale {
				continue
			}
		case "best_seller":
			if !product.IsBestSeller {
				continue
			}
		}
		copied := *product
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeProductRepo) AddImage(_ context.Context, image *entity.ProductImage) error {
	f.images[image.ProductID] = append(f.images[image.ProductID], image)
	return nil
}

func (f *fakeProductRepo) FindImages(_ context.Context, productID int64) ([]*entity.ProductImage, error) {
	return f.images[productID], nil
}

func (f *fakeProductRepo) AddShippingInfo(_ context.Context, info *entity.ShippingInfo) error {
	f.shipping[info.ProductID] = append(f.shipping[info.ProductID], info)
	return nil
}

func (f *fakeProductRepo) FindShippingInfo(_ context.Context, productID int64) ([]*entity.ShippingInfo, error) {
	return f.shipping[productID], nil
}

func (f *fakeProductRepo) AddReturnPolicy(_ context.Context, policy *entity.ReturnPolicy) error {
	f.policies[policy.ProductID] = append(f.policies[policy.ProductID], policy)
	return nil
}

func (f *fakeProductRepo) FindReturnPolicies(_ context.Context, productID int64) ([]*entity.ReturnPolicy, error) {
	return f.policies[productID], nil
}

type fakeVariantRepo struct {
	variants map[int64][]*entity.ProductVariant
}

func (f *fakeVariantRepo) Create(_ context.Context, variant *entity.ProductVariant) error {
	if f.variants == nil {
		f.variants = make(map[int64][]*entity.ProductVariant)
	}
	f.variants[variant.ProductID] = append(f.variants[variant.ProductID], variant)
	return nil
}

func (f *fakeVariantRepo) FindByProduct(_ context.Context, productID int64) ([]*entity.ProductVariant, error) {
	return f.variants[productID], nil
}

type fakeReviewRepo struct {
	reviews map[int64][]*entity.Review
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	if f.reviews == nil {
		f.reviews = make(map[int64][]*entity.Review)
	}
	f.reviews[review.ProductID] = append(f.reviews[review.ProductID], review)
	return nil
}

func (f *fakeReviewRepo) FindByProduct(_ context.Context, productID int64) ([]*entity.Review, error) {
	return f.reviews[productID], nil
}

// ==================== harness ====================

type catalogFixture struct {
	categories *fakeCategoryRepo
	products   *fakeProductRepo
	variants   *fakeVariantRepo
	reviews    *fakeReviewRepo
	category   CategoryService
	product    ProductService
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()

	f := &catalogFixture{
		categories: newFakeCategoryRepo(),
		products:   newFakeProductRepo(),
		variants:   &fakeVariantRepo{},
		reviews:    &fakeReviewRepo{},
	}

	repo := &repository.Repository{
		Category: f.categories,
		Product:  f.products,
		Variant:  f.variants,
		Review:   f.reviews,
	}
	config := &utils.Config{
		App: utils.AppConfig{BaseURL: "http://localhost:8080"},
	}

	f.category = NewCategoryService(repo, config, zap.NewNop())
	f.product = NewProductService(repo, config, zap.NewNop())
	return f
}

func (f *catalogFixture) addCategory(t *testing.T, name, slug string, parentID *int64) *entity.Category {
	t.Helper()

	category := &entity.Category{Name: name, Slug: slug, ParentID: parentID}
	if err := f.categories.Create(context.Background(), category); err != nil {
		t.Fatalf("create category %s: %v", name, err)
	}
	return category
}

func (f *catalogFixture) addProduct(t *testing.T, product *entity.Product) *entity.Product {
	t.Helper()

	if err := f.products.Create(context.Background(), product); err != nil {
		t.Fatalf("create product %s: %v", product.Name, err)
	}
	return product
}

// ==================== category browsing ====================

func TestParentCategoriesTree(t *testing.T) {
	f := newCatalogFixture(t)

	laptops := f.addCategory(t, "Laptops", "laptops", nil)
	f.addCategory(t, "Gaming Laptops", "gaming-laptops", &laptops.ID)
	f.addCategory(t, "Ultrabooks", "ultrabooks", &laptops.ID)
	phones := f.addCategory(t, "Smartphones", "smartphones", nil)
	f.addCategory(t, "iPhones", "iphones", &phones.ID)

	result, err := f.category.ParentCategories(context.Background())
	if err != nil {
		t.Fatalf("ParentCategories: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("got %d parents, want 2", len(result))
	}
	if result[0].Name != "Laptops" || len(result[0].SubCategories) != 2 {
		t.Errorf("first parent = %q with %d children", result[0].Name, len(result[0].SubCategories))
	}
	if result[1].Name != "Smartphones" || len(result[1].SubCategories) != 1 {
		t.Errorf("second parent = %q with %d children", result[1].Name, len(result[1].SubCategories))
	}
	if result[0].SubCategories[0].Slug != "gaming-laptops" {
		t.Errorf("child slug = %q", result[0].SubCategories[0].Slug)
	}
}

func TestCategoryProducts(t *testing.T) {
	f := newCatalogFixture(t)

	category := f.addCategory(t, "Headphones", "headphones", nil)
	f.addProduct(t, &entity.Product{
		CategoryID:  &category.ID,
		Name:        "Sony WH-1000XM5",
		Description: "Noise cancelling",
		Price:       349.99,
		IsAvailable: true,
	})
	f.addProduct(t, &entity.Product{
		CategoryID:  &category.ID,
		Name:        "Hidden",
		Price:       10,
		IsAvailable: false,
	})

	resp, err := f.category.CategoryProducts(context.Background(), category.ID, "")
	if err != nil {
		t.Fatalf("CategoryProducts: %v", err)
	}

	if resp.ID != category.ID || resp.Slug != "headphones" {
		t.Errorf("category fields = %d / %q", resp.ID, resp.Slug)
	}
	if len(resp.Products) != 1 {
		t.Fatalf("got %d products, want 1 (unavailable ones are hidden)", len(resp.Products))
	}
	if resp.Products[0].Name != "Sony WH-1000XM5" {
		t.Errorf("product = %q", resp.Products[0].Name)
	}
}

func TestCategoryProductsUnknownCategory(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.category.CategoryProducts(context.Background(), 99, "")
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("err = %v, want ErrCategoryNotFound", err)
	}

	_, err = f.category.ParentCategoryProducts(context.Background(), 99, "")
	if !errors.Is(err, ErrParentNotFound) {
		t.Fatalf("err = %v, want ErrParentNotFound", err)
	}
}

func TestCategoryProductsLimit(t *testing.T) {
	f := newCatalogFixture(t)

	category := f.addCategory(t, "Monitors", "monitors", nil)
	for i := 0; i < 10; i++ {
		f.addProduct(t, &entity.Product{
			CategoryID:  &category.ID,
			Name:        "Monitor",
			Price:       199,
			IsAvailable: true,
		})
	}

	resp, err := f.category.CategoryProducts(context.Background(), category.ID, "")
	if err != nil {
		t.Fatalf("CategoryProducts: %v", err)
	}
	if len(resp.Products) != categoryProductLimit {
		t.Errorf("got %d products, want %d", len(resp.Products), categoryProductLimit)
	}
}

func TestCategoryZeroIsAllProducts(t *testing.T) {
	f := newCatalogFixture(t)

	category := f.addCategory(t, "Phones", "phones", nil)
	f.addProduct(t, &entity.Product{
		CategoryID: &category.ID, Name: "Plain", Price: 100, IsAvailable: true,
	})
	f.addProduct(t, &entity.Product{
		CategoryID: &category.ID, Name: "On Sale", Price: 100, IsAvailable: true, IsSale: true,
	})
	f.addProduct(t, &entity.Product{
		CategoryID: &category.ID, Name: "Popular", Price: 100, IsAvailable: true, IsPopular: true,
	})

	resp, err := f.category.CategoryProducts(context.Background(), 0, "")
	if err != nil {
		t.Fatalf("CategoryProducts(0): %v", err)
	}
	if resp.ID != 0 || resp.Name != "All Products" || resp.Slug != "all" {
		t.Errorf("pseudo-category = %d / %q / %q", resp.ID, resp.Name, resp.Slug)
	}
	if len(resp.Products) != 3 {
		t.Errorf("got %d products, want all 3", len(resp.Products))
	}

	sale, err := f.category.CategoryProducts(context.Background(), 0, "sale")
	if err != nil {
		t.Fatalf("CategoryProducts(0, sale): %v", err)
	}
	if len(sale.Products) != 1 || sale.Products[0].Name != "On Sale" {
		t.Errorf("sale filter returned %+v", sale.Products)
	}

	// the parent endpoint honors the same sentinel
	popular, err := f.category.ParentCategoryProducts(context.Background(), 0, "popular")
	if err != nil {
		t.Fatalf("ParentCategoryProducts(0, popular): %v", err)
	}
	if len(popular.Products) != 1 || popular.Products[0].Name != "Popular" {
		t.Errorf("popular filter returned %+v", popular.Products)
	}
}

func TestParentCategoryProductsSpanChildren(t *testing.T) {
	f := newCatalogFixture(t)

	parent := f.addCategory(t, "Computers", "computers", nil)
	laptops := f.addCategory(t, "Laptops", "laptops", &parent.ID)
	desktops := f.addCategory(t, "Desktops", "desktops", &parent.ID)

	f.addProduct(t, &entity.Product{
		CategoryID: &laptops.ID, Name: "XPS 13", Price: 999, IsAvailable: true,
	})
	f.addProduct(t, &entity.Product{
		CategoryID: &desktops.ID, Name: "Tower", Price: 1299, IsAvailable: true,
	})

	resp, err := f.category.ParentCategoryProducts(context.Background(), parent.ID, "")
	if err != nil {
		t.Fatalf("ParentCategoryProducts: %v", err)
	}
	if resp.Name != "Computers" {
		t.Errorf("category name = %q", resp.Name)
	}
	if len(resp.Products) != 2 {
		t.Errorf("got %d products, want 2 (across both children)", len(resp.Products))
	}
}

func TestCategoryProductsMainImage(t *testing.T) {
	f := newCatalogFixture(t)

	category := f.addCategory(t, "Tablets", "tablets", nil)
	product := f.addProduct(t, &entity.Product{
		CategoryID: &category.ID, Name: "iPad", Price: 799, IsAvailable: true,
	})

	f.products.AddImage(context.Background(), &entity.ProductImage{
		ProductID: product.ID, URL: "media/ipad_2.jpg", IsMain: false,
	})
	f.products.AddImage(context.Background(), &entity.ProductImage{
		ProductID: product.ID, URL: "media/ipad_1.jpg", IsMain: true,
	})

	resp, err := f.category.CategoryProducts(context.Background(), category.ID, "")
	if err != nil {
		t.Fatalf("CategoryProducts: %v", err)
	}

	item := resp.Products[0]
	if item.MainImage == nil {
		t.Fatal("main image missing")
	}
	if *item.MainImage != "http://localhost:8080/media/ipad_1.jpg" {
		t.Errorf("main image = %q", *item.MainImage)
	}
}

// ==================== product detail ====================

func TestProductDetail(t *testing.T) {
	f := newCatalogFixture(t)

	discount := 279.99
	logo := "https://cdn.example.com/sony.png"
	product := f.addProduct(t, &entity.Product{
		Name:          "Sony WH-1000XM5",
		Description:   "Noise cancelling headphones",
		Price:         349.99,
		DiscountPrice: &discount,
		Rating:        4.7,
		NumReviews:    2,
		IsAvailable:   true,
		Brand:         &entity.Brand{ID: 3, Name: "Sony", LogoURL: &logo},
	})

	color := "Black"
	f.variants.Create(context.Background(), &entity.ProductVariant{
		ID: 1, ProductID: product.ID, Color: &color, Stock: 12,
	})

	comment := "Excellent."
	f.reviews.Create(context.Background(), &entity.Review{
		ID: 1, ProductID: product.ID, Username: "buyer@example.com", Rating: 5, Comment: &comment,
	})

	f.products.AddShippingInfo(context.Background(), &entity.ShippingInfo{
		ID: 1, ProductID: product.ID, Info: "Ships within 2-3 business days.",
	})
	f.products.AddReturnPolicy(context.Background(), &entity.ReturnPolicy{
		ID: 1, ProductID: product.ID, PolicyText: "30-day return policy.",
	})
	f.products.AddImage(context.Background(), &entity.ProductImage{
		ProductID: product.ID, URL: "media/main.jpg", IsMain: true,
	})
	f.products.AddImage(context.Background(), &entity.ProductImage{
		ProductID: product.ID, URL: "media/side.jpg", IsMain: false,
	})

	detail, err := f.product.ProductDetail(context.Background(), product.ID)
	if err != nil {
		t.Fatalf("ProductDetail: %v", err)
	}

	if detail.Name != "Sony WH-1000XM5" || detail.Price != 349.99 {
		t.Errorf("product fields = %q / %v", detail.Name, detail.Price)
	}
	if detail.Brand == nil || detail.Brand.Name != "Sony" {
		t.Errorf("brand = %+v", detail.Brand)
	}
	if len(detail.Variants) != 1 || detail.Variants[0].Stock != 12 {
		t.Errorf("variants = %+v", detail.Variants)
	}
	if len(detail.Reviews) != 1 || detail.Reviews[0].User != "buyer@example.com" {
		t.Errorf("reviews = %+v", detail.Reviews)
	}
	if len(detail.ShippingInfo) != 1 || len(detail.ReturnPolicy) != 1 {
		t.Errorf("shipping/policy = %d / %d", len(detail.ShippingInfo), len(detail.ReturnPolicy))
	}
	if detail.MainImage == nil || *detail.MainImage != "http://localhost:8080/media/main.jpg" {
		t.Errorf("main image = %v", detail.MainImage)
	}
	if len(detail.OtherImages) != 1 || detail.OtherImages[0] != "http://localhost:8080/media/side.jpg" {
		t.Errorf("other images = %v", detail.OtherImages)
	}
}

func TestProductDetailNotFound(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.product.ProductDetail(context.Background(), 42)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
}

func TestProductDetailUnavailableIsHidden(t *testing.T) {
	f := newCatalogFixture(t)

	product := f.addProduct(t, &entity.Product{
		Name: "Discontinued", Price: 10, IsAvailable: false,
	})

	_, err := f.product.ProductDetail(context.Background(), product.ID)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
}
