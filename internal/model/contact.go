package model

import (
	"strings"
	"time"

	"github.com/deppfellow/estate-listings/internal/validation"
)

// ContactInquiry is a message left through the contact form. It is created
// once and never updated.
type ContactInquiry struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone" bson:"phone"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// ContactInput is the raw contact form submission.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Normalized trims every field and lower-cases the email.
func (in ContactInput) Normalized() ContactInput {
	return ContactInput{
		Name:    trim(in.Name),
		Email:   strings.ToLower(trim(in.Email)),
		Phone:   trim(in.Phone),
		Message: trim(in.Message),
	}
}

// Validate requires all four fields to be non-empty after trimming.
func (in *ContactInput) Validate() error {
	n := in.Normalized()

	var fields validation.CustomValidationErrors
	fields.Require("name", n.Name != "")
	fields.Require("email", n.Email != "")
	fields.Require("phone", n.Phone != "")
	fields.Require("message", n.Message != "")

	return fields.Err()
}

// Inquiry builds the record to persist from a normalized input.
func (in ContactInput) Inquiry(now time.Time) ContactInquiry {
	return ContactInquiry{
		ID:        NewID(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		CreatedAt: now.UTC(),
	}
}

// ContactReceipt is the acknowledgment returned by POST /contact.
type ContactReceipt struct {
	OK        bool   `json:"ok"`
	InquiryID string `json:"inquiryId"`
}
