package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

// ContactFilter selects contact submissions for the admin inbox
type ContactFilter struct {
	Responded *bool
}

func (f ContactFilter) Build() Filter {
	filter := Filter{}
	if f.Responded != nil {
		filter = filter.Where("contacts.responded = ?", *f.Responded)
	}
	return filter.OrderBy("contacts.created_date DESC")
}

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// Add inserts a new contact submission
func (r *ContactRepo) Add(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// List returns submissions newest first
func (r *ContactRepo) List(ctx context.Context, filter ContactFilter) ([]*models.Contact, error) {
	var contacts []*models.Contact
	err := filter.Build().Apply(r.db.WithContext(ctx)).Find(&contacts).Error
	return contacts, err
}

// FindByID returns a submission by its id
func (r *ContactRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&contact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("contact")
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// MarkResponded flags a submission as answered. The first response date is kept
// when called again.
func (r *ContactRepo) MarkResponded(ctx context.Context, id uuid.UUID, at time.Time) (*models.Contact, error) {
	contact, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	contact.MarkResponded(at)
	err = r.db.WithContext(ctx).
		Model(contact).
		Select("responded", "response_date").
		Updates(contact).Error
	if err != nil {
		return nil, err
	}
	return contact, nil
}
