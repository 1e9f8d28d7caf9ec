package person

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/domain"
)

// GetPerson returns a person by id.
func (s *Service) GetPerson(ctx context.Context, personID uuid.UUID) (*domain.Person, error) {
	if personID == uuid.Nil {
		return nil, domain.NewValidationError("person_id", "required")
	}

	p, err := s.people.GetByID(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("get person: %w", err)
	}

	return p, nil
}

// ListPeople returns people newest first. City matches exactly; Search
// matches the full name case-insensitively as a substring.
func (s *Service) ListPeople(ctx context.Context, filter domain.PersonFilter) ([]domain.Person, error) {
	f := domain.PersonFilter{
		City:   trimOrNil(filter.City),
		Search: trimOrNil(filter.Search),
	}

	people, err := s.people.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}

	return people, nil
}
