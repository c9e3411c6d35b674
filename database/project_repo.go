package database

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

// TechnologyMatch selects how ProjectFilter.Technology is compared
type TechnologyMatch int

const (
	// MatchTechnologyName matches a case-insensitive substring of the technology name
	MatchTechnologyName TechnologyMatch = iota
	// MatchTechnologySlug matches the technology slug exactly
	MatchTechnologySlug
)

// ProjectFilter selects projects. Nil and empty fields do not constrain.
type ProjectFilter struct {
	Featured        *bool
	Status          string
	Technology      string
	TechnologyMatch TechnologyMatch
	Limit           int
}

// Build turns the parameters into the project listing filter. The technology
// predicate is a subquery on the join table so a project linked to several
// matching technologies is returned once.
func (f ProjectFilter) Build() Filter {
	filter := Filter{}
	if f.Featured != nil {
		filter = filter.Where("projects.featured = ?", *f.Featured)
	}
	filter = filter.WhereIf(f.Status != "", "projects.status = ?", f.Status)

	if technology := strings.TrimSpace(f.Technology); technology != "" {
		switch f.TechnologyMatch {
		case MatchTechnologySlug:
			filter = filter.Where(`projects.id IN (SELECT pt.project_id FROM project_technologies pt
				JOIN technologies t ON t.id = pt.technology_id WHERE t.slug = ?)`, technology)
		default:
			filter = filter.Where(`projects.id IN (SELECT pt.project_id FROM project_technologies pt
				JOIN technologies t ON t.id = pt.technology_id WHERE LOWER(t.name) LIKE ? ESCAPE '\')`, containsPattern(technology))
		}
	}

	return filter.
		OrderBy("projects.priority DESC", "projects.created_date DESC").
		Limit(f.Limit)
}

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

func preloadTechnologies(db *gorm.DB) *gorm.DB {
	return db.Order("technologies.category, technologies.name")
}

// List returns the projects matching filter with their technologies
func (r *ProjectRepo) List(ctx context.Context, filter ProjectFilter) ([]*models.Project, error) {
	var projects []*models.Project
	err := filter.Build().
		Apply(r.db.WithContext(ctx).Preload("Technologies", preloadTechnologies)).
		Find(&projects).Error
	return projects, err
}

// FindBySlug returns a project by its slug
func (r *ProjectRepo) FindBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Technologies", preloadTechnologies).
		Where("slug = ?", slug).
		First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("project")
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Related returns up to limit other projects sharing at least one technology
// with project
func (r *ProjectRepo) Related(ctx context.Context, project *models.Project, limit int) ([]*models.Project, error) {
	filter := Filter{}.
		Where("projects.id <> ?", project.ID).
		Where(`projects.id IN (SELECT pt.project_id FROM project_technologies pt
			WHERE pt.technology_id IN (SELECT technology_id FROM project_technologies WHERE project_id = ?))`, project.ID).
		OrderBy("projects.priority DESC", "projects.created_date DESC").
		Limit(limit)

	var projects []*models.Project
	err := filter.Apply(r.db.WithContext(ctx).Preload("Technologies", preloadTechnologies)).Find(&projects).Error
	return projects, err
}

// Add inserts a new project and links its technologies
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit("Technologies.*").Create(project).Error
}

// Update saves every column of project and replaces its technology links
func (r *ProjectRepo) Update(ctx context.Context, project *models.Project) error {
	technologies := project.Technologies
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Technologies").Save(project).Error; err != nil {
			return err
		}
		return tx.Model(project).Association("Technologies").Replace(technologies)
	})
}

// DeleteBySlug removes a project. Blog posts pointing at it keep existing with
// their related project cleared.
func (r *ProjectRepo) DeleteBySlug(ctx context.Context, slug string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.Where("slug = ?", slug).First(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("project")
			}
			return err
		}
		if err := tx.Model(&project).Association("Technologies").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&models.BlogPost{}).
			Where("related_project_id = ?", project.ID).
			UpdateColumn("related_project_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", project.ID).Error
	})
}

// FindIDBySlug resolves a project slug to its id
func (r *ProjectRepo) FindIDBySlug(ctx context.Context, slug string) (uuid.UUID, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Select("id").Where("slug = ?", slug).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, errs.NewNotFound("project")
	}
	return project.ID, err
}
