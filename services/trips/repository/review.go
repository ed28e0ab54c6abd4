package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/antarin-app/antarin/internal/pkg/apperrors"
	"github.com/antarin-app/antarin/internal/pkg/models"
)

// CreateReview inserts the review and recomputes the reviewee's average
// rating inside one transaction. The full-mean recompute keeps the stored
// rating exactly equal to AVG over all reviews.
func (r *TripRepo) CreateReview(ctx context.Context, review *models.Review) (float64, error) {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO reviews (id, trip_id, reviewer_id, reviewee_id, rating, comment, created_at)
		VALUES (:id, :trip_id, :reviewer_id, :reviewee_id, :rating, :comment, :created_at)
	`
	_, err = tx.NamedExecContext(ctx, insertQuery, review)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.New(apperrors.KindValidation, "review already submitted for this trip")
		}
		return 0, fmt.Errorf("failed to insert review: %w", err)
	}

	var average float64
	err = tx.QueryRowContext(ctx,
		`SELECT AVG(rating)::float8 FROM reviews WHERE reviewee_id = $1`,
		review.RevieweeID,
	).Scan(&average)
	if err != nil {
		return 0, fmt.Errorf("failed to compute rating average: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE users SET rating = $1, updated_at = $2 WHERE id = $3`,
		average, time.Now(), review.RevieweeID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update reviewee rating: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit review: %w", err)
	}

	return average, nil
}
