package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/db"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/apperrors"
)

// reviewTarget describes one reviewable request to the shared review runner.
// Both landlord verifications and student verification requests follow the
// same machine: pending -> approved | rejected, outcomes terminal, and an
// approval flags the subject user verified in the same transaction.
type reviewTarget struct {
	// current is the state loaded before the decision
	current models.ReviewStatus
	// subjectID is the user flagged verified on approval
	subjectID int64
	// persist records the decision guarded on the pending state
	persist func(ctx context.Context, q db.Querier, status models.ReviewStatus) (bool, error)
}

// runReview applies a review decision to a target. The guarded update and the
// subject flag commit atomically; a lost guard means another reviewer got
// there first.
func runReview(ctx context.Context, tx TxRunner, users UserStore, status models.ReviewStatus, target reviewTarget) error {
	if !models.IsReviewOutcome(status) {
		return apperrors.NewValidationError("status must be approved or rejected")
	}
	if target.current != models.ReviewPending {
		return apperrors.ErrAlreadyReviewed
	}

	return tx.WithTransaction(ctx, func(ctx context.Context, txq pgx.Tx) error {
		persisted, err := target.persist(ctx, txq, status)
		if err != nil {
			return err
		}
		if !persisted {
			return apperrors.ErrAlreadyReviewed
		}
		if status == models.ReviewApproved {
			return users.SetVerified(ctx, txq, target.subjectID)
		}
		return nil
	})
}
