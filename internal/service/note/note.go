package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/domain"
	"github.com/ksarapp/ksar-backend/pkg/ctxutil"
)

// AddNoteInput holds the parameters for adding a note.
type AddNoteInput struct {
	CaseID  uuid.UUID
	Content string
}

// Validate checks all fields and collects all errors.
func (i AddNoteInput) Validate(maxLength int) error {
	var errs []domain.FieldError

	if i.CaseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "case_id", Message: "required"})
	}
	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if utf8.RuneCountInString(content) > maxLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: fmt.Sprintf("max %d characters", maxLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddNote attaches a note written by the acting user to a case.
func (s *Service) AddNote(ctx context.Context, input AddNoteInput) (*domain.Note, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxNoteLength); err != nil {
		return nil, err
	}

	var created *domain.Note
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireCase(txCtx, input.CaseID); err != nil {
			return err
		}

		var err error
		created, err = s.notes.Create(txCtx, input.CaseID, actor.UserID, strings.TrimSpace(input.Content))
		if err != nil {
			return fmt.Errorf("create note: %w", err)
		}

		s.ledger.Log(txCtx, domain.ActionAddNote, fmt.Sprintf("Added note to case %s", input.CaseID))

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "note added",
		slog.String("user_id", actor.UserID.String()),
		slog.String("case_id", input.CaseID.String()),
		slog.String("note_id", created.ID.String()),
	)

	return created, nil
}

// ListNotes returns the notes of a case, newest first.
func (s *Service) ListNotes(ctx context.Context, caseID uuid.UUID) ([]domain.Note, error) {
	if caseID == uuid.Nil {
		return nil, domain.NewValidationError("case_id", "required")
	}

	if err := s.requireCase(ctx, caseID); err != nil {
		return nil, err
	}

	notes, err := s.notes.ListByCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

// DeleteNote removes a note. Only its author or an admin may delete it.
func (s *Service) DeleteNote(ctx context.Context, caseID, noteID uuid.UUID) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if noteID == uuid.Nil {
		return domain.NewValidationError("note_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.notes.GetByID(txCtx, noteID)
		if err != nil {
			return fmt.Errorf("get note: %w", err)
		}
		if n.CaseID != caseID {
			return fmt.Errorf("note %s in case %s: %w", noteID, caseID, domain.ErrNotFound)
		}
		if n.UserID != actor.UserID && !actor.IsAdmin() {
			return fmt.Errorf("note %s: %w", noteID, domain.ErrForbidden)
		}

		if err := s.notes.Delete(txCtx, noteID); err != nil {
			return fmt.Errorf("delete note: %w", err)
		}

		s.ledger.Log(txCtx, domain.ActionDeleteNote, fmt.Sprintf("Deleted note from case %s", caseID))

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("user_id", actor.UserID.String()),
		slog.String("case_id", caseID.String()),
		slog.String("note_id", noteID.String()),
	)

	return nil
}

func (s *Service) requireCase(ctx context.Context, caseID uuid.UUID) error {
	exists, err := s.cases.Exists(ctx, caseID)
	if err != nil {
		return fmt.Errorf("check case: %w", err)
	}
	if !exists {
		return fmt.Errorf("case %s: %w", caseID, domain.ErrNotFound)
	}
	return nil
}
