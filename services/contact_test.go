package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

type memoryContacts struct {
	added []*models.Contact
	err   error
}

func (m *memoryContacts) Add(_ context.Context, c *models.Contact) error {
	if m.err != nil {
		return m.err
	}
	m.added = append(m.added, c)
	return nil
}

func validContact() ContactInput {
	return ContactInput{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Collaboration",
		Message: "Let's build an engine.",
	}
}

func TestContactSubmitStoresValidInput(t *testing.T) {
	store := &memoryContacts{}
	svc := NewContactService(store)
	fixed := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	in := validContact()
	in.Name = "  Ada Lovelace  "
	contact, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(store.added) != 1 {
		t.Fatalf("expected 1 stored contact, got %d", len(store.added))
	}
	if contact.Name != "Ada Lovelace" {
		t.Fatalf("expected trimmed name, got %q", contact.Name)
	}
	if contact.Responded || contact.ResponseDate != nil {
		t.Fatalf("expected unanswered contact, got %+v", contact)
	}
	if !contact.CreatedDate.Equal(fixed) {
		t.Fatalf("expected created date %v, got %v", fixed, contact.CreatedDate)
	}
}

func TestContactSubmitMissingEmail(t *testing.T) {
	store := &memoryContacts{}
	in := validContact()
	in.Email = ""

	_, err := NewContactService(store).Submit(context.Background(), in)

	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *errs.ApiErr, got %v", err)
	}
	if apiErr.StatusCode != 400 {
		t.Fatalf("expected status 400, got %d", apiErr.StatusCode)
	}
	if got := apiErr.Fields["email"]; got != "This field is required." {
		t.Fatalf("expected required message for email, got %q", got)
	}
	if len(apiErr.Fields) != 1 {
		t.Fatalf("expected only email to be invalid, got %v", apiErr.Fields)
	}
	if len(store.added) != 0 {
		t.Fatal("expected nothing to be stored")
	}
}

func TestContactSubmitFieldMessages(t *testing.T) {
	in := ContactInput{
		Name:    strings.Repeat("n", 101),
		Email:   "not-an-email",
		Subject: strings.Repeat("s", 201),
		Message: "   ",
	}

	_, err := NewContactService(&memoryContacts{}).Submit(context.Background(), in)
	if !errs.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var apiErr *errs.ApiErr
	errors.As(err, &apiErr)

	want := map[string]string{
		"name":    "Ensure this field has no more than 100 characters.",
		"email":   "Enter a valid email address.",
		"subject": "Ensure this field has no more than 200 characters.",
		"message": "This field is required.",
	}
	for field, msg := range want {
		if got := apiErr.Fields[field]; got != msg {
			t.Fatalf("field %s: expected %q, got %q", field, msg, got)
		}
	}
}

func TestContactSubmitStoreError(t *testing.T) {
	storeErr := errors.New("disk full")
	_, err := NewContactService(&memoryContacts{err: storeErr}).Submit(context.Background(), validContact())
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}
