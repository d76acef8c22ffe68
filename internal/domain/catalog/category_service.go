// internal/domain/catalog/category_service.go
package catalog

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// CategoryService handles category business logic
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new category service
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// CategoryCreateRequest represents category creation data
type CategoryCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetCategories retrieves all categories ordered by name
func (s *CategoryService) GetCategories() ([]Category, error) {
	var categories []Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	return categories, nil
}

// GetCategory retrieves a single category by ID
func (s *CategoryService) GetCategory(id uint) (*Category, error) {
	var category Category
	if result := s.db.First(&category, id); result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("category not found")
		}
		return nil, fmt.Errorf("failed to retrieve category: %w", result.Error)
	}
	return &category, nil
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(req *CategoryCreateRequest) (*Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	// Check for duplicate name
	var existing Category
	if result := s.db.Where("name = ?", name).First(&existing); result.Error == nil {
		return nil, fmt.Errorf("category with this name already exists")
	}

	category := Category{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &category, nil
}

// UpdateCategory renames an existing category
func (s *CategoryService) UpdateCategory(id uint, req *CategoryCreateRequest) (*Category, error) {
	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	var existing Category
	if result := s.db.Where("name = ? AND id != ?", name, id).First(&existing); result.Error == nil {
		return nil, fmt.Errorf("category with this name already exists")
	}

	if err := s.db.Model(category).Update("name", name).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	category.Name = name
	return category, nil
}

// DeleteCategory deletes a category if it has no products
func (s *CategoryService) DeleteCategory(id uint) error {
	if _, err := s.GetCategory(id); err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&Product{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check category usage: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("category has %d products and cannot be deleted", count)
	}

	if err := s.db.Delete(&Category{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
