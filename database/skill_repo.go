package database

import (
	"context"
	"sort"

	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

// SkillFilter selects resume skills. Skills hidden from the resume are always
// excluded.
type SkillFilter struct {
	Category string
}

func (f SkillFilter) Build() Filter {
	return Filter{}.
		Where("skills.show_on_resume = ?", true).
		WhereIf(f.Category != "", "skills.category = ?", f.Category).
		OrderBy("skills.category", "skills.years_experience DESC", "skills.name")
}

// SkillGroup is the skills of one category in listing order
type SkillGroup struct {
	Category models.SkillCategory
	Skills   []*models.Skill
}

// GroupSkillsByCategory groups skills by category. Groups follow the order of
// models.SkillCategories, unknown categories last. Skills keep their order
// inside each group.
func GroupSkillsByCategory(skills []*models.Skill) []SkillGroup {
	var groups []SkillGroup
	index := make(map[models.SkillCategory]int)
	for _, skill := range skills {
		i, ok := index[skill.Category]
		if !ok {
			i = len(groups)
			index[skill.Category] = i
			groups = append(groups, SkillGroup{Category: skill.Category})
		}
		groups[i].Skills = append(groups[i].Skills, skill)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return models.SkillCategories.Index(string(groups[i].Category)) <
			models.SkillCategories.Index(string(groups[j].Category))
	})
	return groups
}

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// List returns resume skills ordered by category, experience (most first) and name
func (r *SkillRepo) List(ctx context.Context, filter SkillFilter) ([]*models.Skill, error) {
	var skills []*models.Skill
	err := filter.Build().Apply(r.db.WithContext(ctx)).Find(&skills).Error
	return skills, err
}

// Add inserts a new skill into the database
func (r *SkillRepo) Add(ctx context.Context, skill *models.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}
