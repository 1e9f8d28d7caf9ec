package casefile

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/domain"
)

const (
	maxDescriptionLength = 5000
	maxNotesLength       = 5000
)

func longText(errs []domain.FieldError, field string, v *string, limit int) []domain.FieldError {
	if v != nil && utf8.RuneCountInString(*v) > limit {
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", limit)})
	}
	return errs
}


// CreateCaseInput holds the parameters for opening a case.
type CreateCaseInput struct {
	PersonID      uuid.UUID
	Urgency       *domain.Urgency
	ContactMethod *domain.ContactMethod
	Description   *string
	Notes         *string
	AidTypeIDs    []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateCaseInput) Validate(maxAidTypes int) error {
	var errs []domain.FieldError

	if i.PersonID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "person_id", Message: "required"})
	}
	if i.Urgency != nil && !i.Urgency.IsValid() {
		errs = append(errs, domain.FieldError{Field: "urgency", Message: "invalid value"})
	}
	if i.ContactMethod != nil && !i.ContactMethod.IsValid() {
		errs = append(errs, domain.FieldError{Field: "contact_method", Message: "invalid value"})
	}
	errs = longText(errs, "description", i.Description, maxDescriptionLength)
	errs = longText(errs, "notes", i.Notes, maxNotesLength)
	if len(i.AidTypeIDs) > maxAidTypes {
		errs = append(errs, domain.FieldError{Field: "aid_type_ids", Message: fmt.Sprintf("max %d items", maxAidTypes)})
	}
	for _, id := range i.AidTypeIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "aid_type_ids", Message: "contains empty id"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCaseInput holds a partial case update. nil fields are left unchanged.
type UpdateCaseInput struct {
	CaseID        uuid.UUID
	Status        *domain.CaseStatus
	Urgency       *domain.Urgency
	ContactMethod *domain.ContactMethod
	Description   *string
	Notes         *string // blank text clears the notes
	AssignedTo    *uuid.UUID
	// ClearAssignee removes the current assignee. Mutually exclusive with AssignedTo.
	ClearAssignee bool
}

// Validate checks all fields and collects all errors.
func (i UpdateCaseInput) Validate() error {
	var errs []domain.FieldError

	if i.CaseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "case_id", Message: "required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Urgency != nil && !i.Urgency.IsValid() {
		errs = append(errs, domain.FieldError{Field: "urgency", Message: "invalid value"})
	}
	if i.ContactMethod != nil && !i.ContactMethod.IsValid() {
		errs = append(errs, domain.FieldError{Field: "contact_method", Message: "invalid value"})
	}
	errs = longText(errs, "description", i.Description, maxDescriptionLength)
	errs = longText(errs, "notes", i.Notes, maxNotesLength)
	if i.AssignedTo != nil && *i.AssignedTo == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "assigned_to", Message: "invalid id"})
	}
	if i.AssignedTo != nil && i.ClearAssignee {
		errs = append(errs, domain.FieldError{Field: "assigned_to", Message: "cannot assign and clear at once"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateCaseInput) params() domain.CaseUpdateParams {
	p := domain.CaseUpdateParams{
		Status:        i.Status,
		Urgency:       i.Urgency,
		ContactMethod: i.ContactMethod,
		AssignedTo:    i.AssignedTo,
		ClearAssignee: i.ClearAssignee,
	}
	if i.Description != nil {
		d := strings.TrimSpace(*i.Description)
		p.Description = &d
	}
	if i.Notes != nil {
		n := strings.TrimSpace(*i.Notes)
		p.Notes = &n
	}
	return p
}

// ListCasesInput narrows the case list.
type ListCasesInput struct {
	Status  *domain.CaseStatus
	Urgency *domain.Urgency
	City    *string
}

// Validate checks all fields and collects all errors.
func (i ListCasesInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Urgency != nil && !i.Urgency.IsValid() {
		errs = append(errs, domain.FieldError{Field: "urgency", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListCasesInput) filter() domain.CaseFilter {
	f := domain.CaseFilter{Status: i.Status, Urgency: i.Urgency}
	if i.City != nil {
		if city := strings.TrimSpace(*i.City); city != "" {
			f.City = &city
		}
	}
	return f
}
