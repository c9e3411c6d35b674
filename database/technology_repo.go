package database

import (
	"context"

	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

// TechnologyFilter selects technologies. Empty fields do not constrain.
type TechnologyFilter struct {
	Category string
	Limit    int
}

// Build turns the parameters into the technology listing filter
func (f TechnologyFilter) Build() Filter {
	return Filter{}.
		WhereIf(f.Category != "", "technologies.category = ?", f.Category).
		OrderBy("technologies.category", "technologies.name").
		Limit(f.Limit)
}

type TechnologyRepo struct {
	db *gorm.DB
}

func NewTechnologyRepo(db *gorm.DB) *TechnologyRepo {
	return &TechnologyRepo{db}
}

// List returns the technologies matching filter, ordered by category then name
func (r *TechnologyRepo) List(ctx context.Context, filter TechnologyFilter) ([]*models.Technology, error) {
	var technologies []*models.Technology
	err := filter.Build().Apply(r.db.WithContext(ctx)).Find(&technologies).Error
	return technologies, err
}

// FindBySlugs returns the technologies with the given slugs, unknown slugs are skipped
func (r *TechnologyRepo) FindBySlugs(ctx context.Context, slugs []string) ([]models.Technology, error) {
	technologies := []models.Technology{}
	if len(slugs) == 0 {
		return technologies, nil
	}
	err := r.db.WithContext(ctx).Where("slug IN ?", slugs).Order("category, name").Find(&technologies).Error
	return technologies, err
}

// Add inserts a new technology into the database
func (r *TechnologyRepo) Add(ctx context.Context, technology *models.Technology) error {
	return r.db.WithContext(ctx).Create(technology).Error
}
