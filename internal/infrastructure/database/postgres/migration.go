// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/your-org/snackshop-backend/internal/config"
	"github.com/your-org/snackshop-backend/internal/domain/catalog"
	"github.com/your-org/snackshop-backend/internal/domain/notification"
	"github.com/your-org/snackshop-backend/internal/domain/order"
	"github.com/your-org/snackshop-backend/internal/domain/user"
	"github.com/your-org/snackshop-backend/internal/pkg/auth"
	"gorm.io/gorm"
)

// Migrate runs the schema auto-migrations
func (d *DB) Migrate() error {
	err := d.gorm.AutoMigrate(
		&user.User{},
		&catalog.Category{},
		&catalog.Product{},
		&catalog.Review{},
		&order.Order{},
		&order.OrderItem{},
		&notification.Notification{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("✅ Database migrations completed")
	return nil
}

// Seed populates the catalog and the admin account on first start.
// It is idempotent: existing rows are left untouched.
func (d *DB) Seed(cfg *config.Config) error {
	if err := d.seedCatalog(); err != nil {
		return err
	}
	if err := d.seedAdmin(cfg); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

type seedProduct struct {
	name        string
	description string
	price       int64
	image       string
	category    string
	stock       int
	rating      float64
}

var seedProducts = []seedProduct{
	{"Takis Fuego", "Intense hot chili pepper & lime rolled tortilla chips", 299,
		"https://images.unsplash.com/photo-1633237308525-cd587cf71926?w=800", "Snacks", 50, 4.8},
	{"Haribo Goldbären", "Classic gummy bears in various fruit flavors", 199,
		"https://images.unsplash.com/photo-1582058091505-f87a2e55a40f?w=800", "Süßigkeiten", 100, 4.7},
	{"Monster Energy Original", "Energy drink with a powerful blend of energy-enhancing ingredients", 249,
		"https://images.unsplash.com/photo-1622543925917-763c34d1a86e?w=800", "Getränke", 75, 4.5},
	{"Marlboro Red", "Classic cigarettes with rich tobacco flavor", 899,
		"https://images.unsplash.com/photo-1567861911437-538298e4232c?w=800", "Tabak", 200, 4.2},
	{"Absolut Vodka", "Premium Swedish vodka, perfect for cocktails", 1999,
		"https://images.unsplash.com/photo-1569529465841-dfecdab7503b?w=800", "Alkohol", 30, 4.6},
	{"Elf Bar BC5000", "Disposable vape device with various flavors", 1499,
		"https://images.unsplash.com/photo-1571705042748-55feda1cfadc?w=800", "Vapes", 40, 4.4},
	{"Ritter Sport", "Premium German chocolate in various flavors", 249,
		"https://images.unsplash.com/photo-1587132137056-bfbf0166836e?w=800", "Süßigkeiten", 80, 4.7},
	{"Red Bull", "Energy drink that gives you wings", 299,
		"https://images.unsplash.com/photo-1551538827-9c037cb4f32a?w=800", "Getränke", 100, 4.6},
}

func (d *DB) seedCatalog() error {
	var count int64
	if err := d.gorm.Model(&catalog.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check products: %w", err)
	}
	if count > 0 {
		return nil
	}

	return d.gorm.Transaction(func(tx *gorm.DB) error {
		categories := make(map[string]uint)
		for _, p := range seedProducts {
			if _, ok := categories[p.category]; ok {
				continue
			}
			cat := catalog.Category{Name: p.category}
			if err := tx.Where("name = ?", p.category).FirstOrCreate(&cat).Error; err != nil {
				return fmt.Errorf("failed to seed category %q: %w", p.category, err)
			}
			categories[p.category] = cat.ID
		}

		for _, p := range seedProducts {
			product := catalog.Product{
				Name:        p.name,
				Description: p.description,
				Price:       p.price,
				Image:       p.image,
				CategoryID:  categories[p.category],
				Stock:       p.stock,
				Rating:      p.rating,
			}
			if err := tx.Create(&product).Error; err != nil {
				return fmt.Errorf("failed to seed product %q: %w", p.name, err)
			}
		}
		return nil
	})
}

func (d *DB) seedAdmin(cfg *config.Config) error {
	adminEmail := cfg.Notification.OperatorEmail
	if adminEmail == "" {
		return nil
	}

	var count int64
	if err := d.gorm.Model(&user.User{}).
		Where("role = ?", user.RoleAdmin).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if count > 0 {
		return nil
	}

	// The initial password is random and printed once. It must be
	// changed after first login.
	initialPassword := uuid.New().String()
	hash, err := auth.HashPassword(initialPassword, cfg.Security.BcryptCost)
	if err != nil {
		return err
	}

	admin := user.User{
		Email:        adminEmail,
		PasswordHash: hash,
		Name:         "Shop Admin",
		Role:         user.RoleAdmin,
	}
	if err := d.gorm.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	log.Printf("✅ Admin account created for %s (initial password: %s)", adminEmail, initialPassword)
	return nil
}
