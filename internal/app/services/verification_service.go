package services

import (
	"context"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/db"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/apperrors"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/dberrors"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/logger"
)

// defaultStudentDocumentType is assumed when a student submits without one
const defaultStudentDocumentType = "student_id"

// VerificationService handles both verification workflows: landlord documents
// reviewed by admins, and student documents reviewed by landlords.
type VerificationService struct {
	verifications        VerificationStore
	studentVerifications StudentVerificationStore
	users                UserStore
	tx                   TxRunner
}

// NewVerificationService creates a new VerificationService
func NewVerificationService(
	verifications VerificationStore,
	studentVerifications StudentVerificationStore,
	users UserStore,
	tx TxRunner,
) *VerificationService {
	return &VerificationService{
		verifications:        verifications,
		studentVerifications: studentVerifications,
		users:                users,
		tx:                   tx,
	}
}

// Submit files a landlord document for admin review. A landlord holds at most
// one pending or approved request per document type.
func (s *VerificationService) Submit(ctx context.Context, userID int64, req *dto.SubmitVerificationRequest) (*dto.SubmitVerificationResponse, error) {
	if !models.IsValidVerificationType(req.Type) {
		return nil, apperrors.NewValidationError("invalid verification type")
	}

	existing, err := s.verifications.ActiveStatusOfType(ctx, userID, req.Type)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if *existing == models.ReviewApproved {
			return nil, apperrors.NewConflictError("this document type is already approved")
		}
		return nil, apperrors.ErrDuplicateRequest
	}

	verification := &models.Verification{
		UserID:      userID,
		Type:        req.Type,
		DocumentURL: req.DocumentURL,
	}

	verificationID, err := s.verifications.Create(ctx, verification)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateRequest
		}
		return nil, err
	}

	logger.Info().Int64("verificationID", verificationID).Int64("userID", userID).
		Str("type", string(req.Type)).Msg("Verification submitted")
	return &dto.SubmitVerificationResponse{VerificationID: verificationID}, nil
}

// ListOwn retrieves the landlord's own submissions
func (s *VerificationService) ListOwn(ctx context.Context, userID int64) ([]models.VerificationDetail, error) {
	return s.verifications.ListByUser(ctx, userID)
}

// ListWithStatus retrieves verifications for admin review. Anything other
// than a recognized status falls back to the pending queue.
func (s *VerificationService) ListWithStatus(ctx context.Context, status string) ([]models.VerificationDetail, error) {
	reviewStatus := models.ReviewPending
	switch models.ReviewStatus(status) {
	case models.ReviewPending, models.ReviewApproved, models.ReviewRejected:
		reviewStatus = models.ReviewStatus(status)
	}
	return s.verifications.ListWithStatus(ctx, reviewStatus)
}

// Review records an admin decision on a landlord verification. Approval flags
// the landlord verified in the same transaction.
func (s *VerificationService) Review(ctx context.Context, adminID, verificationID int64, req *dto.ReviewRequest) error {
	verification, err := s.verifications.GetByID(ctx, verificationID)
	if err != nil {
		return err
	}
	if verification == nil {
		return apperrors.ErrVerificationNotFound
	}

	err = runReview(ctx, s.tx, s.users, req.Status, reviewTarget{
		current:   verification.Status,
		subjectID: verification.UserID,
		persist: func(ctx context.Context, q db.Querier, status models.ReviewStatus) (bool, error) {
			return s.verifications.ReviewIfPending(ctx, q, verificationID, status, adminID)
		},
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("verificationID", verificationID).Int64("adminID", adminID).
		Str("status", string(req.Status)).Msg("Verification reviewed")
	return nil
}

// SubmitStudent files a student document for review by a specific landlord
func (s *VerificationService) SubmitStudent(ctx context.Context, studentID int64, req *dto.SubmitStudentVerificationRequest) (*dto.SubmitStudentVerificationResponse, error) {
	isLandlord, err := s.users.ExistsWithRole(ctx, req.LandlordID, models.RoleLandlord)
	if err != nil {
		return nil, err
	}
	if !isLandlord {
		return nil, apperrors.NewNotFoundError("landlord not found")
	}

	hasPending, err := s.studentVerifications.HasPendingForPair(ctx, studentID, req.LandlordID)
	if err != nil {
		return nil, err
	}
	if hasPending {
		return nil, apperrors.ErrDuplicateRequest
	}

	documentType := req.DocumentType
	if documentType == "" {
		documentType = defaultStudentDocumentType
	}

	sv := &models.StudentVerification{
		StudentID:    studentID,
		LandlordID:   req.LandlordID,
		DocumentURL:  req.DocumentURL,
		DocumentType: documentType,
	}

	requestID, err := s.studentVerifications.Create(ctx, sv)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateRequest
		}
		return nil, err
	}

	logger.Info().Int64("requestID", requestID).Int64("studentID", studentID).
		Int64("landlordID", req.LandlordID).Msg("Student verification submitted")
	return &dto.SubmitStudentVerificationResponse{StudentVerificationID: requestID}, nil
}

// ListStudentForLandlord retrieves requests addressed to the landlord,
// optionally filtered by status. Unrecognized filter values are ignored.
func (s *VerificationService) ListStudentForLandlord(ctx context.Context, landlordID int64, status string) ([]models.StudentVerificationDetail, error) {
	var filter *models.ReviewStatus
	switch reviewStatus := models.ReviewStatus(status); reviewStatus {
	case models.ReviewPending, models.ReviewApproved, models.ReviewRejected:
		filter = &reviewStatus
	}
	return s.studentVerifications.ListForLandlord(ctx, landlordID, filter)
}

// ListStudentOwn retrieves the student's own requests
func (s *VerificationService) ListStudentOwn(ctx context.Context, studentID int64) ([]models.StudentVerificationDetail, error) {
	return s.studentVerifications.ListForStudent(ctx, studentID)
}

// ReviewStudent records a landlord decision on a student verification.
// Approval flags the student verified in the same transaction. Requests
// addressed to other landlords are reported as not found.
func (s *VerificationService) ReviewStudent(ctx context.Context, landlordID, requestID int64, req *dto.ReviewRequest) error {
	sv, err := s.studentVerifications.GetForLandlord(ctx, requestID, landlordID)
	if err != nil {
		return err
	}
	if sv == nil {
		return apperrors.ErrVerificationNotFound
	}

	err = runReview(ctx, s.tx, s.users, req.Status, reviewTarget{
		current:   sv.Status,
		subjectID: sv.StudentID,
		persist: func(ctx context.Context, q db.Querier, status models.ReviewStatus) (bool, error) {
			return s.studentVerifications.ReviewIfPending(ctx, q, requestID, status, req.Notes)
		},
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("requestID", requestID).Int64("landlordID", landlordID).
		Str("status", string(req.Status)).Msg("Student verification reviewed")
	return nil
}
