package models

import (
	"time"
)

// ReviewStatus enumerates the states of a reviewable request. The machine is
// pending -> approved | rejected, with both outcomes terminal.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// IsReviewOutcome reports whether s is a valid terminal review decision
func IsReviewOutcome(s ReviewStatus) bool {
	return s == ReviewApproved || s == ReviewRejected
}

// VerificationType enumerates accepted landlord document categories
type VerificationType string

const (
	VerificationNationalID  VerificationType = "national_id"
	VerificationTitleDeed   VerificationType = "title_deed"
	VerificationUtilityBill VerificationType = "utility_bill"
	VerificationOther       VerificationType = "other"
)

// IsValidVerificationType reports whether t is an accepted document category
func IsValidVerificationType(t VerificationType) bool {
	switch t {
	case VerificationNationalID, VerificationTitleDeed, VerificationUtilityBill, VerificationOther:
		return true
	}
	return false
}

// Verification is a landlord identity/document verification reviewed by an admin
type Verification struct {
	ID          int64            `json:"verification_id" db:"verification_id"`
	UserID      int64            `json:"user_id" db:"user_id"`
	Type        VerificationType `json:"verification_type" db:"verification_type"`
	DocumentURL string           `json:"document_url" db:"document_url"`
	Status      ReviewStatus     `json:"status" db:"status"`
	VerifiedBy  *int64           `json:"verified_by,omitempty" db:"verified_by"`
	VerifiedAt  *time.Time       `json:"verified_at,omitempty" db:"verified_at"`
}

// VerificationDetail is a verification joined with subject and reviewer details
type VerificationDetail struct {
	Verification
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	Username       string     `json:"username"`
	PhoneNumber    *string    `json:"phone_number,omitempty"`
	UserCreatedAt  *time.Time `json:"user_created_at,omitempty"`
	VerifiedByName *string    `json:"verified_by_name,omitempty"`
}

// StudentVerification is a student identity document reviewed by a specific landlord
type StudentVerification struct {
	ID           int64        `json:"student_verification_id" db:"student_verification_id"`
	StudentID    int64        `json:"student_id" db:"student_id"`
	LandlordID   int64        `json:"landlord_id" db:"landlord_id"`
	DocumentURL  string       `json:"document_url" db:"document_url"`
	DocumentType string       `json:"document_type" db:"document_type"`
	Status       ReviewStatus `json:"status" db:"status"`
	Notes        string       `json:"notes" db:"notes"`
	SubmittedAt  time.Time    `json:"submitted_at" db:"submitted_at"`
	ReviewedAt   *time.Time   `json:"reviewed_at,omitempty" db:"reviewed_at"`
}

// StudentVerificationDetail joins the counterparty's display fields
type StudentVerificationDetail struct {
	StudentVerification
	StudentName   *string `json:"student_name,omitempty"`
	StudentEmail  *string `json:"student_email,omitempty"`
	StudentPhone  *string `json:"student_phone,omitempty"`
	LandlordName  *string `json:"landlord_name,omitempty"`
	LandlordEmail *string `json:"landlord_email,omitempty"`
}
