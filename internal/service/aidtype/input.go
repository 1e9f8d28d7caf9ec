package aidtype

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/domain"
)

const (
	maxLabelLength       = 100
	maxDescriptionLength = 500
)

// CreateAidTypeInput holds the parameters for adding a catalog entry.
type CreateAidTypeInput struct {
	Label       string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateAidTypeInput) Validate() error {
	var errs []domain.FieldError

	label := domain.NormalizeLabel(i.Label)
	if label == "" {
		errs = append(errs, domain.FieldError{Field: "label", Message: "required"})
	}
	if utf8.RuneCountInString(label) > maxLabelLength {
		errs = append(errs, domain.FieldError{Field: "label", Message: "max 100 characters"})
	}
	if i.Description != nil && utf8.RuneCountInString(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateAidTypeInput holds a partial update.
type UpdateAidTypeInput struct {
	AidTypeID   uuid.UUID
	Label       *string
	Description *string // nil = don't change; ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateAidTypeInput) Validate() error {
	var errs []domain.FieldError

	if i.AidTypeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "aid_type_id", Message: "required"})
	}
	if i.Label == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Label != nil {
		label := domain.NormalizeLabel(*i.Label)
		if label == "" {
			errs = append(errs, domain.FieldError{Field: "label", Message: "required"})
		}
		if utf8.RuneCountInString(label) > maxLabelLength {
			errs = append(errs, domain.FieldError{Field: "label", Message: "max 100 characters"})
		}
	}
	if i.Description != nil && utf8.RuneCountInString(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
