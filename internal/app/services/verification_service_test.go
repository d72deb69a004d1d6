package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/apperrors"
)

func newVerificationService() (*VerificationService, *mockVerificationStore, *mockStudentVerificationStore, *mockUserStore) {
	verifications := new(mockVerificationStore)
	studentVerifications := new(mockStudentVerificationStore)
	users := new(mockUserStore)
	svc := NewVerificationService(verifications, studentVerifications, users, &fakeTxRunner{})
	return svc, verifications, studentVerifications, users
}

func TestVerificationSubmit(t *testing.T) {
	ctx := context.Background()
	req := &dto.SubmitVerificationRequest{Type: models.VerificationNationalID, DocumentURL: "https://docs.example/id.pdf"}

	t.Run("creates a pending request", func(t *testing.T) {
		svc, verifications, _, _ := newVerificationService()

		verifications.On("ActiveStatusOfType", ctx, int64(2), models.VerificationNationalID).Return(nil, nil)
		verifications.On("Create", ctx, mock.AnythingOfType("*models.Verification")).Return(int64(11), nil)

		resp, err := svc.Submit(ctx, 2, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(11), resp.VerificationID)
		verifications.AssertExpectations(t)
	})

	t.Run("rejects a second pending request of the same type", func(t *testing.T) {
		svc, verifications, _, _ := newVerificationService()

		pending := models.ReviewPending
		verifications.On("ActiveStatusOfType", ctx, int64(2), models.VerificationNationalID).Return(&pending, nil)

		_, err := svc.Submit(ctx, 2, req)

		assert.ErrorIs(t, err, apperrors.ErrDuplicateRequest)
	})

	t.Run("rejects resubmission of an approved type", func(t *testing.T) {
		svc, verifications, _, _ := newVerificationService()

		approved := models.ReviewApproved
		verifications.On("ActiveStatusOfType", ctx, int64(2), models.VerificationNationalID).Return(&approved, nil)

		_, err := svc.Submit(ctx, 2, req)

		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("rejects an unknown verification type", func(t *testing.T) {
		svc, _, _, _ := newVerificationService()

		_, err := svc.Submit(ctx, 2, &dto.SubmitVerificationRequest{Type: "passport_scan"})

		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestVerificationReview(t *testing.T) {
	ctx := context.Background()

	t.Run("approval verifies the landlord in the same transaction", func(t *testing.T) {
		svc, verifications, _, users := newVerificationService()

		verifications.On("GetByID", ctx, int64(11)).
			Return(&models.Verification{ID: 11, UserID: 2, Status: models.ReviewPending}, nil)
		verifications.On("ReviewIfPending", ctx, mock.Anything, int64(11), models.ReviewApproved, int64(9)).
			Return(true, nil)
		users.On("SetVerified", ctx, mock.Anything, int64(2)).Return(nil)

		err := svc.Review(ctx, 9, 11, &dto.ReviewRequest{Status: models.ReviewApproved})

		assert.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("rejection does not touch the landlord flag", func(t *testing.T) {
		svc, verifications, _, users := newVerificationService()

		verifications.On("GetByID", ctx, int64(11)).
			Return(&models.Verification{ID: 11, UserID: 2, Status: models.ReviewPending}, nil)
		verifications.On("ReviewIfPending", ctx, mock.Anything, int64(11), models.ReviewRejected, int64(9)).
			Return(true, nil)

		err := svc.Review(ctx, 9, 11, &dto.ReviewRequest{Status: models.ReviewRejected})

		assert.NoError(t, err)
		users.AssertNotCalled(t, "SetVerified", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("terminal states reject a second review", func(t *testing.T) {
		svc, verifications, _, _ := newVerificationService()

		verifications.On("GetByID", ctx, int64(11)).
			Return(&models.Verification{ID: 11, UserID: 2, Status: models.ReviewApproved}, nil)

		err := svc.Review(ctx, 9, 11, &dto.ReviewRequest{Status: models.ReviewRejected})

		assert.ErrorIs(t, err, apperrors.ErrAlreadyReviewed)
	})

	t.Run("losing the review race reports a conflict", func(t *testing.T) {
		svc, verifications, _, _ := newVerificationService()

		verifications.On("GetByID", ctx, int64(11)).
			Return(&models.Verification{ID: 11, UserID: 2, Status: models.ReviewPending}, nil)
		verifications.On("ReviewIfPending", ctx, mock.Anything, int64(11), models.ReviewApproved, int64(9)).
			Return(false, nil)

		err := svc.Review(ctx, 9, 11, &dto.ReviewRequest{Status: models.ReviewApproved})

		assert.ErrorIs(t, err, apperrors.ErrAlreadyReviewed)
	})

	t.Run("only approved or rejected are valid outcomes", func(t *testing.T) {
		svc, verifications, _, _ := newVerificationService()

		verifications.On("GetByID", ctx, int64(11)).
			Return(&models.Verification{ID: 11, UserID: 2, Status: models.ReviewPending}, nil)

		err := svc.Review(ctx, 9, 11, &dto.ReviewRequest{Status: models.ReviewPending})

		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("unknown verification is not found", func(t *testing.T) {
		svc, verifications, _, _ := newVerificationService()

		verifications.On("GetByID", ctx, int64(11)).Return(nil, nil)

		err := svc.Review(ctx, 9, 11, &dto.ReviewRequest{Status: models.ReviewApproved})

		assert.ErrorIs(t, err, apperrors.ErrVerificationNotFound)
	})
}

func TestStudentVerificationSubmit(t *testing.T) {
	ctx := context.Background()
	req := &dto.SubmitStudentVerificationRequest{LandlordID: 2, DocumentURL: "https://docs.example/student.pdf"}

	t.Run("creates a request with the default document type", func(t *testing.T) {
		svc, _, studentVerifications, users := newVerificationService()

		users.On("ExistsWithRole", ctx, int64(2), models.RoleLandlord).Return(true, nil)
		studentVerifications.On("HasPendingForPair", ctx, int64(1), int64(2)).Return(false, nil)
		studentVerifications.On("Create", ctx, mock.MatchedBy(func(sv *models.StudentVerification) bool {
			return sv.DocumentType == defaultStudentDocumentType
		})).Return(int64(33), nil)

		resp, err := svc.SubmitStudent(ctx, 1, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(33), resp.StudentVerificationID)
	})

	t.Run("rejects a duplicate pending pair", func(t *testing.T) {
		svc, _, studentVerifications, users := newVerificationService()

		users.On("ExistsWithRole", ctx, int64(2), models.RoleLandlord).Return(true, nil)
		studentVerifications.On("HasPendingForPair", ctx, int64(1), int64(2)).Return(true, nil)

		_, err := svc.SubmitStudent(ctx, 1, req)

		assert.ErrorIs(t, err, apperrors.ErrDuplicateRequest)
	})

	t.Run("unknown landlord is not found", func(t *testing.T) {
		svc, _, _, users := newVerificationService()

		users.On("ExistsWithRole", ctx, int64(2), models.RoleLandlord).Return(false, nil)

		_, err := svc.SubmitStudent(ctx, 1, req)

		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})
}

func TestStudentVerificationReview(t *testing.T) {
	ctx := context.Background()

	t.Run("approval verifies the student and records notes", func(t *testing.T) {
		svc, _, studentVerifications, users := newVerificationService()

		studentVerifications.On("GetForLandlord", ctx, int64(33), int64(2)).
			Return(&models.StudentVerification{ID: 33, StudentID: 1, LandlordID: 2, Status: models.ReviewPending}, nil)
		studentVerifications.On("ReviewIfPending", ctx, mock.Anything, int64(33), models.ReviewApproved, "looks good").
			Return(true, nil)
		users.On("SetVerified", ctx, mock.Anything, int64(1)).Return(nil)

		err := svc.ReviewStudent(ctx, 2, 33, &dto.ReviewRequest{Status: models.ReviewApproved, Notes: "looks good"})

		assert.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("requests addressed to another landlord are not found", func(t *testing.T) {
		svc, _, studentVerifications, _ := newVerificationService()

		studentVerifications.On("GetForLandlord", ctx, int64(33), int64(5)).Return(nil, nil)

		err := svc.ReviewStudent(ctx, 5, 33, &dto.ReviewRequest{Status: models.ReviewApproved})

		assert.ErrorIs(t, err, apperrors.ErrVerificationNotFound)
	})

	t.Run("terminal states reject a second review", func(t *testing.T) {
		svc, _, studentVerifications, _ := newVerificationService()

		studentVerifications.On("GetForLandlord", ctx, int64(33), int64(2)).
			Return(&models.StudentVerification{ID: 33, StudentID: 1, LandlordID: 2, Status: models.ReviewRejected}, nil)

		err := svc.ReviewStudent(ctx, 2, 33, &dto.ReviewRequest{Status: models.ReviewApproved})

		assert.ErrorIs(t, err, apperrors.ErrAlreadyReviewed)
	})
}

func TestVerificationListWithStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to the pending queue", func(t *testing.T) {
		svc, verifications, _, _ := newVerificationService()

		verifications.On("ListWithStatus", ctx, models.ReviewPending).Return([]models.VerificationDetail{}, nil)

		_, err := svc.ListWithStatus(ctx, "")

		assert.NoError(t, err)
		verifications.AssertExpectations(t)
	})

	t.Run("unknown status filter falls back to pending", func(t *testing.T) {
		svc, verifications, _, _ := newVerificationService()

		verifications.On("ListWithStatus", ctx, models.ReviewPending).Return([]models.VerificationDetail{}, nil)

		_, err := svc.ListWithStatus(ctx, "archived")

		assert.NoError(t, err)
		verifications.AssertExpectations(t)
	})

	t.Run("valid status filter is honored", func(t *testing.T) {
		svc, verifications, _, _ := newVerificationService()

		verifications.On("ListWithStatus", ctx, models.ReviewRejected).Return([]models.VerificationDetail{}, nil)

		_, err := svc.ListWithStatus(ctx, "rejected")

		assert.NoError(t, err)
		verifications.AssertExpectations(t)
	})
}

func TestStudentVerificationListForLandlord(t *testing.T) {
	ctx := context.Background()

	t.Run("valid status filter is passed through", func(t *testing.T) {
		svc, _, studentVerifications, _ := newVerificationService()

		approved := models.ReviewApproved
		studentVerifications.On("ListForLandlord", ctx, int64(2), &approved).
			Return([]models.StudentVerificationDetail{}, nil)

		_, err := svc.ListStudentForLandlord(ctx, 2, "approved")

		assert.NoError(t, err)
		studentVerifications.AssertExpectations(t)
	})

	t.Run("unknown status filter is ignored", func(t *testing.T) {
		svc, _, studentVerifications, _ := newVerificationService()

		studentVerifications.On("ListForLandlord", ctx, int64(2), (*models.ReviewStatus)(nil)).
			Return([]models.StudentVerificationDetail{}, nil)

		_, err := svc.ListStudentForLandlord(ctx, 2, "archived")

		assert.NoError(t, err)
		studentVerifications.AssertExpectations(t)
	})
}
