package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"electronics-store/internal/data/entity"
	"electronics-store/internal/data/repository"
	"electronics-store/pkg/database"
	"electronics-store/pkg/utils"
)

var brandNames = []string{
	"Apple", "Samsung", "Sony", "LG", "Dell", "HP", "Lenovo", "Asus", "Acer", "Microsoft",
}

// parent category -> subcategories
var categoryTree = map[string][]string{
	"Laptops":     {"Gaming Laptops", "Ultrabooks", "MacBooks"},
	"Smartphones": {"Android Phones", "iPhones", "Phone Accessories"},
	"TV & Audio":  {"LED & OLED TVs", "Soundbars", "Projectors"},
	"Accessories": {"Chargers & Cables", "Headphones", "Keyboards & Mice"},
}

var productNames = []string{
	"iPhone 15 Pro", "Galaxy S23 Ultra", "Sony WH-1000XM5", "MacBook Pro 16",
	"Dell XPS 13", "iPad Pro 12.9", "Samsung Galaxy Tab S9", "LG 27UK850 Monitor",
	"Logitech MX Master 3", "HP LaserJet Pro M404", "Lenovo ThinkPad X1 Carbon",
	"Asus ROG Strix G15", "Acer Predator Helios 300", "Microsoft Surface Pro 9",
	"Sony A7 IV Camera", "Canon EOS R6", "Bose QuietComfort 45", "Apple Watch Series 9",
	"Samsung Galaxy Watch 6", "Razer DeathAdder V2", "Apple Magic Keyboard",
	"Dell UltraSharp U2723QE", "HP Envy 6055 Printer", "Logitech G502 Mouse",
	"Asus TUF Gaming F15", "Acer Nitro 5", "Samsung Odyssey G7", "Apple AirPods Pro 2",
	"Sony Xperia 1 V", "Microsoft Surface Laptop 5",
}

var (
	colors = []string{"Red", "Blue", "Black", "White", "Silver"}
	sizes  = []string{"S", "M", "L", "XL"}
)

// Run wipes the catalog tables and fills them with demo data: brands,
// a two-level category tree, products with variants, images, shipping
// info, return policies and reviews from a handful of demo accounts.
func Run(ctx context.Context, db database.PgxIface, repos *repository.Repository, log *zap.Logger) error {
	if err := truncateCatalog(ctx, db); err != nil {
		return err
	}
	log.Info("Catalog tables truncated")

	brands := make([]*entity.Brand, 0, len(brandNames))
	for _, name := range brandNames {
		description := name + " official products"
		brand := &entity.Brand{Name: name, Description: &description}
		if err := repos.Brand.Create(ctx, brand); err != nil {
			return err
		}
		brands = append(brands, brand)
	}
	log.Info("Brands seeded", zap.Int("count", len(brands)))

	var leafCategories []*entity.Category
	for parentName, childNames := range categoryTree {
		parent := &entity.Category{Name: parentName, Slug: slugify(parentName)}
		if err := repos.Category.Create(ctx, parent); err != nil {
			return err
		}
		for _, childName := range childNames {
			child := &entity.Category{
				Name:     childName,
				Slug:     slugify(childName),
				ParentID: &parent.ID,
			}
			if err := repos.Category.Create(ctx, child); err != nil {
				return err
			}
			leafCategories = append(leafCategories, child)
		}
	}
	log.Info("Categories seeded", zap.Int("leaves", len(leafCategories)))

	reviewers, err := demoAccounts(ctx, repos, 5)
	if err != nil {
		return err
	}

	for _, name := range productNames {
		brand := brands[rand.Intn(len(brands))]
		category := leafCategories[rand.Intn(len(leafCategories))]

		price := roundPrice(100 + rand.Float64()*1900)
		product := &entity.Product{
			BrandID:      &brand.ID,
			CategoryID:   &category.ID,
			Name:         name,
			Description:  "Description for " + name,
			Price:        price,
			Rating:       1 + rand.Float64()*4,
			NumReviews:   rand.Intn(50),
			Sold:         rand.Intn(500),
			IsAvailable:  rand.Intn(3) > 0,
			IsPopular:    rand.Intn(3) == 0,
			IsSale:       rand.Intn(3) == 0,
			IsBestSeller: rand.Intn(4) == 0,
		}
		if rand.Intn(2) == 0 {
			discount := roundPrice(price * 0.8)
			product.DiscountPrice = &discount
		}
		if err := repos.Product.Create(ctx, product); err != nil {
			return err
		}

		if err := seedVariants(ctx, repos, product); err != nil {
			return err
		}
		if err := seedImages(ctx, repos, product); err != nil {
			return err
		}
		if err := seedReviews(ctx, repos, product, reviewers); err != nil {
			return err
		}

		shipping := &entity.ShippingInfo{
			ProductID: product.ID,
			Info:      "Ships within 2-3 business days.",
		}
		if err := repos.Product.AddShippingInfo(ctx, shipping); err != nil {
			return err
		}

		policy := &entity.ReturnPolicy{
			ProductID:  product.ID,
			PolicyText: "30-day return policy. Item must be unopened.",
		}
		if err := repos.Product.AddReturnPolicy(ctx, policy); err != nil {
			return err
		}
	}
	log.Info("Products seeded", zap.Int("count", len(productNames)))

	return nil
}

func seedVariants(ctx context.Context, repos *repository.Repository, product *entity.Product) error {
	for i := 0; i < 1+rand.Intn(3); i++ {
		color := colors[rand.Intn(len(colors))]
		size := sizes[rand.Intn(len(sizes))]
		name := color + " - " + size
		variant := &entity.ProductVariant{
			ProductID:     product.ID,
			Name:          &name,
			Color:         &color,
			Size:          &size,
			Stock:         rand.Intn(100),
			Price:         &product.Price,
			DiscountPrice: product.DiscountPrice,
		}
		if err := repos.Variant.Create(ctx, variant); err != nil {
			return err
		}
	}
	return nil
}

func seedImages(ctx context.Context, repos *repository.Repository, product *entity.Product) error {
	for i := 0; i < 1+rand.Intn(2); i++ {
		image := &entity.ProductImage{
			ProductID: product.ID,
			URL:       fmt.Sprintf("media/%s_%d.jpg", slugify(product.Name), i+1),
			IsMain:    i == 0,
		}
		if err := repos.Product.AddImage(ctx, image); err != nil {
			return err
		}
	}
	return nil
}

func seedReviews(ctx context.Context, repos *repository.Repository, product *entity.Product, reviewers []uuid.UUID) error {
	for i := 0; i < 1+rand.Intn(5); i++ {
		comment := "Great value for money."
		review := &entity.Review{
			ProductID: product.ID,
			UserID:    reviewers[rand.Intn(len(reviewers))],
			Rating:    1 + rand.Intn(5),
			Comment:   &comment,
		}
		if err := repos.Review.Create(ctx, review); err != nil {
			return err
		}
	}
	return nil
}

// demoAccounts ensures n active demo accounts exist for review authorship
func demoAccounts(ctx context.Context, repos *repository.Repository, n int) ([]uuid.UUID, error) {
	hash, err := utils.HashPassword("testpass")
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, n)
	for i := 1; i <= n; i++ {
		email := fmt.Sprintf("user%d@example.com", i)
		now := time.Now()
		account := &entity.Account{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Email:        email,
			PasswordHash: hash,
			IsActive:     true,
		}

		err := repos.Account.Create(ctx, account)
		if err == repository.ErrDuplicateEmail {
			existing, findErr := repos.Account.FindByEmail(ctx, email)
			if findErr != nil {
				return nil, findErr
			}
			ids = append(ids, existing.ID)
			continue
		}
		if err != nil {
			return nil, err
		}
		ids = append(ids, account.ID)
	}

	return ids, nil
}

func truncateCatalog(ctx context.Context, db database.PgxIface) error {
	tables := []string{
		"product_images", "product_variants", "reviews",
		"shipping_info", "return_policy", "products",
		"brands", "categories",
	}

	query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", "))
	if _, err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("truncate catalog tables: %w", err)
	}
	return nil
}

func slugify(name string) string {
	slug := strings.ToLower(name)
	for _, cut := range []string{"&", ","} {
		slug = strings.ReplaceAll(slug, cut, "")
	}
	return strings.Join(strings.Fields(slug), "-")
}

func roundPrice(v float64) float64 {
	return float64(int(v*100)) / 100
}
