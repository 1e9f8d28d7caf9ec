package person

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/domain"
)

const (
	maxNameLength  = 200
	maxPhoneLength = 50
	maxCityLength  = 100
	maxNotesLength = 5000
)

// CreatePersonInput holds the parameters for registering a person.
type CreatePersonInput struct {
	FullName      string
	Phone         *string
	City          *string
	HouseholdSize *int
	Notes         *string
}

// Validate checks all fields and collects all errors.
func (i CreatePersonInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.FullName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "required"})
	}
	errs = append(errs, checkOptional(name, i.Phone, i.City, i.HouseholdSize, i.Notes)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePersonInput holds a partial update. nil fields are left unchanged;
// an empty phone, city or notes clears the value.
type UpdatePersonInput struct {
	PersonID      uuid.UUID
	FullName      *string
	Phone         *string
	City          *string
	HouseholdSize *int
	Notes         *string
}

// Validate checks all fields and collects all errors.
func (i UpdatePersonInput) Validate() error {
	var errs []domain.FieldError

	if i.PersonID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "person_id", Message: "required"})
	}
	if i.FullName == nil && i.Phone == nil && i.City == nil && i.HouseholdSize == nil && i.Notes == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	name := ""
	if i.FullName != nil {
		name = strings.TrimSpace(*i.FullName)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "full_name", Message: "required"})
		}
	}
	errs = append(errs, checkOptional(name, i.Phone, i.City, i.HouseholdSize, i.Notes)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkOptional(name string, phone, city *string, householdSize *int, notes *string) []domain.FieldError {
	var errs []domain.FieldError

	if utf8.RuneCountInString(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "max 200 characters"})
	}
	if phone != nil && utf8.RuneCountInString(*phone) > maxPhoneLength {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "max 50 characters"})
	}
	if city != nil && utf8.RuneCountInString(*city) > maxCityLength {
		errs = append(errs, domain.FieldError{Field: "city", Message: "max 100 characters"})
	}
	if householdSize != nil && *householdSize < 1 {
		errs = append(errs, domain.FieldError{Field: "household_size", Message: "must be at least 1"})
	}
	if notes != nil && utf8.RuneCountInString(*notes) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 5000 characters"})
	}

	return errs
}
