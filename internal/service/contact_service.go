package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	apperrors "contacts/internal/errors"
	"contacts/internal/model"
	"contacts/internal/repository"
)

// CreateContactRequest is the payload accepted when creating a contact.
// ID exists only so a client echoing a zero id is accepted.
type CreateContactRequest struct {
	ID    uint    `json:"id" validate:"eq=0"`
	Name  string  `json:"name" validate:"required,notblank,max=100"`
	Email string  `json:"email" validate:"required,max=100,email,dotdomain"`
	Phone *string `json:"phone" validate:"omitempty,max=15"`
	Note  *string `json:"note" validate:"omitempty,max=200"`
}

// UpdateContactRequest is the payload accepted when replacing a contact.
type UpdateContactRequest struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name" validate:"required,notblank,max=100"`
	Email string  `json:"email" validate:"required,max=100,email,dotdomain"`
	Phone *string `json:"phone" validate:"omitempty,max=15"`
	Note  *string `json:"note" validate:"omitempty,max=200"`
}

// ImportResult summarises a bulk import.
type ImportResult struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
	Invalid    int `json:"invalid"`
}

// ContactService exposes contact operations.
type ContactService interface {
	List(ctx context.Context) ([]model.Contact, error)
	Get(ctx context.Context, id uint) (*model.Contact, error)
	Create(ctx context.Context, req CreateContactRequest) (*model.Contact, error)
	Update(ctx context.Context, id uint, req UpdateContactRequest) (*model.Contact, error)
	Delete(ctx context.Context, id uint) error
	Import(ctx context.Context, reqs []CreateContactRequest) (ImportResult, error)
}

type contactService struct {
	repo      repository.ContactRepository
	validator *ContactValidator
}

// NewContactService builds a ContactService on top of repo.
func NewContactService(repo repository.ContactRepository, validator *ContactValidator) ContactService {
	return &contactService{repo: repo, validator: validator}
}

func (s *contactService) List(ctx context.Context) ([]model.Contact, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []model.Contact{}
	}
	return contacts, nil
}

func (s *contactService) Get(ctx context.Context, id uint) (*model.Contact, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *contactService) Create(ctx context.Context, req CreateContactRequest) (*model.Contact, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}

	contact := &model.Contact{
		Name:  req.Name,
		Email: req.Email,
		Phone: valueOrEmpty(req.Phone),
		Note:  req.Note,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	log.Debug().Uint("contact_id", contact.ID).Msg("contact created")
	return contact, nil
}

// Update checks the body id against id before anything else, so a
// mismatch is reported even for otherwise invalid payloads.
func (s *contactService) Update(ctx context.Context, id uint, req UpdateContactRequest) (*model.Contact, error) {
	if req.ID != id {
		return nil, apperrors.ErrIDMismatch
	}
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}

	contact := &model.Contact{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
		Phone: valueOrEmpty(req.Phone),
		Note:  req.Note,
	}
	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, err
	}

	log.Debug().Uint("contact_id", id).Msg("contact updated")
	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Debug().Uint("contact_id", id).Msg("contact deleted")
	return nil
}

// Import creates each contact in order. Invalid and duplicate entries are
// counted and skipped; any other error aborts the import.
func (s *contactService) Import(ctx context.Context, reqs []CreateContactRequest) (ImportResult, error) {
	var result ImportResult
	for _, req := range reqs {
		_, err := s.Create(ctx, req)
		var verr *apperrors.ValidationError
		switch {
		case err == nil:
			result.Created++
		case errors.As(err, &verr):
			log.Warn().Str("email", req.Email).Err(err).Msg("skipping invalid contact")
			result.Invalid++
		case errors.Is(err, apperrors.ErrEmailConflict):
			log.Warn().Str("email", req.Email).Msg("skipping duplicate contact")
			result.Duplicates++
		default:
			return result, err
		}
	}
	return result, nil
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
