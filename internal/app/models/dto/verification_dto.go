package dto

import (
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
)

// SubmitVerificationRequest is the landlord document submission payload
type SubmitVerificationRequest struct {
	Type        models.VerificationType `json:"verification_type" binding:"required"`
	DocumentURL string                  `json:"document_url" binding:"required"`
}

// SubmitVerificationResponse carries the new verification identifier
type SubmitVerificationResponse struct {
	VerificationID int64 `json:"verification_id" example:"5"`
}

// ReviewRequest is the admin/landlord review decision payload
type ReviewRequest struct {
	Status models.ReviewStatus `json:"status" binding:"required"`
	Notes  string              `json:"notes,omitempty"`
}

// SubmitStudentVerificationRequest is the student-to-landlord submission payload
type SubmitStudentVerificationRequest struct {
	LandlordID   int64  `json:"landlord_id" binding:"required"`
	DocumentURL  string `json:"document_url" binding:"required"`
	DocumentType string `json:"document_type,omitempty"`
}

// SubmitStudentVerificationResponse carries the new request identifier
type SubmitStudentVerificationResponse struct {
	StudentVerificationID int64 `json:"student_verification_id" example:"9"`
}
