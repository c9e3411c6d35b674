package services

import (
	"context"
	"time"

	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ContactInput is a contact form submission as received from the page form or
// the JSON API
type ContactInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

// ContactStore persists contact submissions
type ContactStore interface {
	Add(ctx context.Context, contact *models.Contact) error
}

type ContactService struct {
	store  ContactStore
	logger zerolog.Logger
	now    func() time.Time
}

func NewContactService(store ContactStore) *ContactService {
	return &ContactService{
		store:  store,
		logger: log.With().Str("service", "contact").Logger(),
		now:    time.Now,
	}
}

// Submit validates a contact form and stores it.
//
// Parameters:
//   - ctx: request context passed to the store
//   - in: the submitted fields, surrounding whitespace is ignored
//
// Returns:
//   - the stored contact, never marked as responded
//   - an *errs.ApiErr with one message per invalid field when validation
//     fails, in which case nothing is stored
//
// No notification is sent.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*models.Contact, error) {
	trimAll(&in.Name, &in.Email, &in.Subject, &in.Message)
	if err := Validate(in); err != nil {
		return nil, err
	}

	contact := &models.Contact{
		Name:        in.Name,
		Email:       in.Email,
		Subject:     in.Subject,
		Message:     in.Message,
		CreatedDate: s.now(),
	}
	if err := s.store.Add(ctx, contact); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("contactID", contact.ID.String()).
		Str("subject", contact.Subject).
		Msg("contact form submitted")
	return contact, nil
}
