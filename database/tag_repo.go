package database

import (
	"context"

	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindAll returns all tags ordered by name
func (r *TagRepo) FindAll(ctx context.Context) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.WithContext(ctx).Order("name").Find(&tags).Error
	return tags, err
}

// FindBySlugs returns the tags with the given slugs, unknown slugs are skipped
func (r *TagRepo) FindBySlugs(ctx context.Context, slugs []string) ([]models.Tag, error) {
	tags := []models.Tag{}
	if len(slugs) == 0 {
		return tags, nil
	}
	err := r.db.WithContext(ctx).Where("slug IN ?", slugs).Order("name").Find(&tags).Error
	return tags, err
}

// Add inserts a new tag into the database
func (r *TagRepo) Add(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}
