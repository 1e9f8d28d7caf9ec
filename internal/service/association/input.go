package association

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/domain"
)

// LinkInput identifies one case to aid-type pair.
type LinkInput struct {
	CaseID    uuid.UUID
	AidTypeID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i LinkInput) Validate() error {
	var errs []domain.FieldError

	if i.CaseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "case_id", Message: "required"})
	}
	if i.AidTypeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "aid_type_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LinkBatchInput holds the parameters for linking several aid types at once.
type LinkBatchInput struct {
	CaseID     uuid.UUID
	AidTypeIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i LinkBatchInput) Validate(maxItems int) error {
	var errs []domain.FieldError

	if i.CaseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "case_id", Message: "required"})
	}
	if len(i.AidTypeIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "aid_type_ids", Message: "required"})
	}
	if len(i.AidTypeIDs) > maxItems {
		errs = append(errs, domain.FieldError{Field: "aid_type_ids", Message: fmt.Sprintf("max %d items", maxItems)})
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
