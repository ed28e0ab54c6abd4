package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/antarin-app/antarin/internal/pkg/apperrors"
	"github.com/antarin-app/antarin/internal/pkg/models"
	"github.com/antarin-app/antarin/services/trips"
)

// SubmitReview records a post-trip review and updates the reviewee's
// average rating. One review per reviewer per trip; duplicates are
// rejected by the unique index underneath.
func (uc *tripUC) SubmitReview(ctx context.Context, req trips.SubmitReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.New(apperrors.KindValidation, "rating must be between 1 and 5")
	}
	if req.ReviewerID == req.RevieweeID {
		return nil, apperrors.New(apperrors.KindValidation, "cannot review yourself")
	}

	trip, err := uc.tripRepo.GetTrip(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusCompleted {
		return nil, apperrors.New(apperrors.KindInvalidState, "reviews are only allowed on completed trips")
	}
	if !trip.IsParticipant(req.ReviewerID) || !trip.IsParticipant(req.RevieweeID) {
		return nil, apperrors.New(apperrors.KindUnauthorized, "reviewer and reviewee must be trip participants")
	}

	review := &models.Review{
		ID:         uuid.New(),
		TripID:     req.TripID,
		ReviewerID: req.ReviewerID,
		RevieweeID: req.RevieweeID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  time.Now(),
	}

	average, err := uc.tripRepo.CreateReview(ctx, review)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, "review submitted", func() error {
		return uc.tripGW.PublishReviewSubmitted(ctx, models.ReviewEvent{
			ReviewID:   review.ID.String(),
			TripID:     review.TripID.String(),
			ReviewerID: review.ReviewerID.String(),
			RevieweeID: review.RevieweeID.String(),
			Rating:     review.Rating,
			NewAverage: average,
			OccurredAt: time.Now(),
		})
	})

	uc.notify(ctx, req.RevieweeID, req.TripID, models.NotificationReview,
		"New review", fmt.Sprintf("You received a %d-star review", req.Rating))

	return review, nil
}
