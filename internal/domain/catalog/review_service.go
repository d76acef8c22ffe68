// internal/domain/catalog/review_service.go
package catalog

import (
	"fmt"

	"gorm.io/gorm"
)

// ReviewService handles product review business logic
type ReviewService struct {
	db *gorm.DB
}

// NewReviewService creates a new review service
func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// ReviewCreateRequest represents review submission data
type ReviewCreateRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// GetProductReviews retrieves all reviews for a product, newest first
func (s *ReviewService) GetProductReviews(productID uint) ([]Review, error) {
	var product Product
	if result := s.db.First(&product, productID); result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}

	var reviews []Review
	if err := s.db.Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	return reviews, nil
}

// CreateReview adds a review for a product and refreshes its rating.
// A user may review a product once; a second submission replaces the first.
func (s *ReviewService) CreateReview(userID, productID uint, req *ReviewCreateRequest) (*Review, error) {
	var product Product
	if result := s.db.First(&product, productID); result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	var review Review
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing Review
		result := tx.Where("product_id = ? AND user_id = ?", productID, userID).First(&existing)
		switch {
		case result.Error == nil:
			existing.Rating = req.Rating
			existing.Comment = req.Comment
			if err := tx.Save(&existing).Error; err != nil {
				return fmt.Errorf("failed to update review: %w", err)
			}
			review = existing
		case result.Error == gorm.ErrRecordNotFound:
			review = Review{
				ProductID: productID,
				UserID:    userID,
				Rating:    req.Rating,
				Comment:   req.Comment,
			}
			if err := tx.Create(&review).Error; err != nil {
				return fmt.Errorf("failed to create review: %w", err)
			}
		default:
			return fmt.Errorf("failed to check existing review: %w", result.Error)
		}

		return s.refreshProductRating(tx, productID)
	})
	if err != nil {
		return nil, err
	}

	return &review, nil
}

// DeleteReview removes a review owned by the user and refreshes the rating
func (s *ReviewService) DeleteReview(userID, reviewID uint) error {
	var review Review
	if result := s.db.First(&review, reviewID); result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return fmt.Errorf("review not found")
		}
		return fmt.Errorf("failed to retrieve review: %w", result.Error)
	}

	if review.UserID != userID {
		return fmt.Errorf("review does not belong to user")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Review{}, reviewID).Error; err != nil {
			return fmt.Errorf("failed to delete review: %w", err)
		}
		return s.refreshProductRating(tx, review.ProductID)
	})
}

func (s *ReviewService) refreshProductRating(tx *gorm.DB, productID uint) error {
	var avg float64
	if err := tx.Model(&Review{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error; err != nil {
		return fmt.Errorf("failed to compute rating: %w", err)
	}
	if err := tx.Model(&Product{}).
		Where("id = ?", productID).
		Update("rating", avg).Error; err != nil {
		return fmt.Errorf("failed to update product rating: %w", err)
	}
	return nil
}
