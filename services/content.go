package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// ProjectInput is the admin payload for creating or replacing a project.
// Technologies are referenced by slug.
type ProjectInput struct {
	Title               string               `json:"title" validate:"required,max=200"`
	Slug                string               `json:"slug" validate:"omitempty,max=200,slug"`
	Description         string               `json:"description" validate:"required"`
	DetailedDescription string               `json:"detailed_description"`
	Technologies        []string             `json:"technologies" validate:"dive,slug"`
	GithubURL           string               `json:"github_url" validate:"omitempty,url"`
	DemoURL             string               `json:"demo_url" validate:"omitempty,url"`
	Status              models.ProjectStatus `json:"status" validate:"omitempty,project_status"`
	Priority            int                  `json:"priority"`
	Featured            bool                 `json:"featured"`
	Thumbnail           string               `json:"thumbnail"`
	Screenshots         []string             `json:"screenshots"`
	CompletionDate      string               `json:"completion_date" validate:"omitempty,datetime=2006-01-02"`
}

// BlogPostInput is the admin payload for creating or replacing a blog post.
// Tags and technologies are referenced by slug, the related project by its slug.
type BlogPostInput struct {
	Title               string              `json:"title" validate:"required,max=200"`
	Slug                string              `json:"slug" validate:"omitempty,max=200,slug"`
	Content             string              `json:"content" validate:"required"`
	Excerpt             string              `json:"excerpt" validate:"max=300"`
	Category            models.BlogCategory `json:"category" validate:"omitempty,blog_category"`
	Tags                []string            `json:"tags" validate:"dive,slug"`
	RelatedTechnologies []string            `json:"related_technologies" validate:"dive,slug"`
	RelatedProject      string              `json:"related_project" validate:"omitempty,slug"`
	Published           bool                `json:"published"`
}

// ContentService applies admin writes to projects and blog posts
type ContentService struct {
	db     database.Database
	logger zerolog.Logger
}

func NewContentService(db database.Database) *ContentService {
	return &ContentService{
		db:     db,
		logger: log.With().Str("service", "content").Logger(),
	}
}

// CreateProject validates in and stores it as a new project
func (s *ContentService) CreateProject(ctx context.Context, in ProjectInput) (*models.Project, error) {
	project := &models.Project{}
	if err := s.applyProject(ctx, project, in); err != nil {
		return nil, err
	}
	if err := s.db.ProjectRepo().Add(ctx, project); err != nil {
		return nil, errs.NewDatabaseError("create", "project", err)
	}
	s.logger.Info().Str("slug", project.Slug).Msg("project created")
	return s.reloadProject(ctx, project.Slug)
}

// UpdateProject replaces every field of the project stored under slug
func (s *ContentService) UpdateProject(ctx context.Context, slug string, in ProjectInput) (*models.Project, error) {
	project, err := s.db.ProjectRepo().FindBySlug(ctx, slug)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	if err := keepSlug(&in.Slug, project.Slug); err != nil {
		return nil, err
	}
	if err := s.applyProject(ctx, project, in); err != nil {
		return nil, err
	}
	if err := s.db.ProjectRepo().Update(ctx, project); err != nil {
		return nil, errs.NewDatabaseError("update", "project", err)
	}
	s.logger.Info().Str("slug", project.Slug).Msg("project updated")
	return s.reloadProject(ctx, project.Slug)
}

func (s *ContentService) DeleteProject(ctx context.Context, slug string) error {
	if err := s.db.ProjectRepo().DeleteBySlug(ctx, slug); err != nil {
		return errs.NewDatabaseError("delete", "project", err)
	}
	s.logger.Info().Str("slug", slug).Msg("project deleted")
	return nil
}

func (s *ContentService) reloadProject(ctx context.Context, slug string) (*models.Project, error) {
	project, err := s.db.ProjectRepo().FindBySlug(ctx, slug)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	return project, nil
}

func (s *ContentService) applyProject(ctx context.Context, project *models.Project, in ProjectInput) error {
	trimAll(&in.Title, &in.Slug, &in.Description, &in.GithubURL, &in.DemoURL, &in.Thumbnail, &in.CompletionDate)
	if err := Validate(in); err != nil {
		return err
	}

	technologies, err := s.db.TechnologyRepo().FindBySlugs(ctx, in.Technologies)
	if err != nil {
		return errs.NewDatabaseError("find", "technologies", err)
	}
	if missing := missingSlugs(in.Technologies, technologySlugs(technologies)); len(missing) > 0 {
		return errs.NewValidationError(map[string]string{
			"technologies": fmt.Sprintf("Unknown technology %q.", missing[0]),
		})
	}

	var completion *datatypes.Date
	if in.CompletionDate != "" {
		parsed, err := time.Parse(dateLayout, in.CompletionDate)
		if err != nil {
			return errs.NewInvalidFieldError("completion_date", err.Error())
		}
		date := datatypes.Date(parsed)
		completion = &date
	}

	var screenshots datatypes.JSON
	if len(in.Screenshots) > 0 {
		raw, err := json.Marshal(in.Screenshots)
		if err != nil {
			return errs.NewInvalidFieldError("screenshots", err.Error())
		}
		screenshots = datatypes.JSON(raw)
	}

	project.Title = in.Title
	project.Slug = in.Slug
	project.Description = in.Description
	project.DetailedDescription = in.DetailedDescription
	project.Technologies = technologies
	project.GithubURL = in.GithubURL
	project.DemoURL = in.DemoURL
	project.Status = in.Status
	project.Priority = in.Priority
	project.Featured = in.Featured
	project.Thumbnail = in.Thumbnail
	project.Screenshots = screenshots
	project.CompletionDate = completion
	return nil
}

// CreatePost validates in and stores it as a new blog post. Publishing stamps
// the published date.
func (s *ContentService) CreatePost(ctx context.Context, in BlogPostInput) (*models.BlogPost, error) {
	post := &models.BlogPost{}
	if err := s.applyPost(ctx, post, in); err != nil {
		return nil, err
	}
	if err := s.db.BlogPostRepo().Add(ctx, post); err != nil {
		return nil, errs.NewDatabaseError("create", "blog post", err)
	}
	s.logger.Info().Str("slug", post.Slug).Bool("published", post.Published).Msg("blog post created")
	return s.reloadPost(ctx, post.Slug)
}

// UpdatePost replaces every field of the post stored under slug. The view
// count and the first published date are kept.
func (s *ContentService) UpdatePost(ctx context.Context, slug string, in BlogPostInput) (*models.BlogPost, error) {
	post, err := s.db.BlogPostRepo().FindBySlug(ctx, slug)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog post", err)
	}
	if err := keepSlug(&in.Slug, post.Slug); err != nil {
		return nil, err
	}
	if err := s.applyPost(ctx, post, in); err != nil {
		return nil, err
	}
	if err := s.db.BlogPostRepo().Update(ctx, post); err != nil {
		return nil, errs.NewDatabaseError("update", "blog post", err)
	}
	s.logger.Info().Str("slug", post.Slug).Bool("published", post.Published).Msg("blog post updated")
	return s.reloadPost(ctx, post.Slug)
}

func (s *ContentService) DeletePost(ctx context.Context, slug string) error {
	if err := s.db.BlogPostRepo().DeleteBySlug(ctx, slug); err != nil {
		return errs.NewDatabaseError("delete", "blog post", err)
	}
	s.logger.Info().Str("slug", slug).Msg("blog post deleted")
	return nil
}

func (s *ContentService) reloadPost(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.db.BlogPostRepo().FindBySlug(ctx, slug)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog post", err)
	}
	return post, nil
}

func (s *ContentService) applyPost(ctx context.Context, post *models.BlogPost, in BlogPostInput) error {
	trimAll(&in.Title, &in.Slug, &in.Excerpt, &in.RelatedProject)
	if err := Validate(in); err != nil {
		return err
	}

	tags, err := s.db.TagRepo().FindBySlugs(ctx, in.Tags)
	if err != nil {
		return errs.NewDatabaseError("find", "tags", err)
	}
	if missing := missingSlugs(in.Tags, tagSlugs(tags)); len(missing) > 0 {
		return errs.NewValidationError(map[string]string{
			"tags": fmt.Sprintf("Unknown tag %q.", missing[0]),
		})
	}

	technologies, err := s.db.TechnologyRepo().FindBySlugs(ctx, in.RelatedTechnologies)
	if err != nil {
		return errs.NewDatabaseError("find", "technologies", err)
	}
	if missing := missingSlugs(in.RelatedTechnologies, technologySlugs(technologies)); len(missing) > 0 {
		return errs.NewValidationError(map[string]string{
			"related_technologies": fmt.Sprintf("Unknown technology %q.", missing[0]),
		})
	}

	var relatedProject *uuid.UUID
	if in.RelatedProject != "" {
		id, err := s.db.ProjectRepo().FindIDBySlug(ctx, in.RelatedProject)
		if errs.IsNotFound(err) {
			return errs.NewValidationError(map[string]string{
				"related_project": fmt.Sprintf("Unknown project %q.", in.RelatedProject),
			})
		}
		if err != nil {
			return errs.NewDatabaseError("find", "project", err)
		}
		relatedProject = &id
	}

	post.Title = in.Title
	post.Slug = in.Slug
	post.Content = in.Content
	post.Excerpt = in.Excerpt
	post.Category = in.Category
	post.Tags = tags
	post.RelatedTechnologies = technologies
	post.RelatedProjectID = relatedProject
	post.RelatedProject = nil
	post.Published = in.Published
	return nil
}

// keepSlug fills an empty slug from the stored one and rejects any other value.
// Slugs are part of every page and API URL so they never change once assigned.
func keepSlug(slug *string, stored string) error {
	*slug = strings.TrimSpace(*slug)
	if *slug == "" {
		*slug = stored
		return nil
	}
	if *slug != stored {
		return errs.NewValidationError(map[string]string{"slug": "Slug cannot be changed."})
	}
	return nil
}

func technologySlugs(technologies []models.Technology) []string {
	slugs := make([]string, 0, len(technologies))
	for _, t := range technologies {
		slugs = append(slugs, t.Slug)
	}
	return slugs
}

func tagSlugs(tags []models.Tag) []string {
	slugs := make([]string, 0, len(tags))
	for _, t := range tags {
		slugs = append(slugs, t.Slug)
	}
	return slugs
}

// missingSlugs returns the requested slugs that were not found, in request order
func missingSlugs(requested, found []string) []string {
	known := make(map[string]struct{}, len(found))
	for _, s := range found {
		known[s] = struct{}{}
	}
	var missing []string
	for _, s := range requested {
		if _, ok := known[s]; !ok {
			missing = append(missing, s)
		}
	}
	return missing
}
