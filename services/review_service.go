package services

import (
	"meal-marketplace-api/apperr"
	"meal-marketplace-api/models"
	"meal-marketplace-api/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	db        *gorm.DB
	reviews   *repository.ReviewRepository
	orders    *repository.OrderRepository
	providers *repository.ProviderRepository
}

func NewReviewService(
	db *gorm.DB,
	reviews *repository.ReviewRepository,
	orders *repository.OrderRepository,
	providers *repository.ProviderRepository,
) *ReviewService {
	return &ReviewService{db: db, reviews: reviews, orders: orders, providers: providers}
}

type CreateReviewInput struct {
	OrderID uint
	MealID  uint
	Rating  int
	Comment string
}

// Create checks the review against the order it claims to come from:
// the order must belong to the caller, be delivered and contain the
// meal. The provider's denormalized rating is recomputed in the same
// transaction.
func (s *ReviewService) Create(userID uint, in CreateReviewInput) (*models.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}

	order, err := s.orders.FindByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != userID {
		return nil, apperr.Forbidden("this order does not belong to you")
	}
	if order.Status != models.StatusDelivered {
		return nil, apperr.Conflict("only delivered orders can be reviewed")
	}
	inOrder := false
	for _, item := range order.Items {
		if item.MealID == in.MealID {
			inOrder = true
			break
		}
	}
	if !inOrder {
		return nil, apperr.Validation("this meal is not part of the order")
	}

	exists, err := s.reviews.Exists(userID, in.MealID, in.OrderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("you have already reviewed this meal for this order")
	}

	review := models.Review{
		Rating:  in.Rating,
		Comment: in.Comment,
		UserID:  userID,
		MealID:  in.MealID,
		OrderID: in.OrderID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.reviews.Create(tx, &review); err != nil {
			return err
		}
		ratings, err := s.reviews.RatingsForProvider(tx, order.ProviderID)
		if err != nil {
			return err
		}
		return s.providers.UpdateRating(tx, order.ProviderID, AverageRating(ratings), len(ratings))
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// MealReviews bundles a meal's reviews with the computed summary.
type MealReviews struct {
	Reviews       []models.Review `json:"reviews"`
	AverageRating float64         `json:"average_rating"`
	ReviewCount   int             `json:"review_count"`
}

func (s *ReviewService) ForMeal(mealID uint) (*MealReviews, error) {
	reviews, err := s.reviews.FindByMeal(mealID)
	if err != nil {
		return nil, err
	}
	ratings := make([]int, 0, len(reviews))
	for _, review := range reviews {
		ratings = append(ratings, review.Rating)
	}
	return &MealReviews{
		Reviews:       reviews,
		AverageRating: AverageRating(ratings),
		ReviewCount:   len(reviews),
	}, nil
}
