package api

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
)

type TechnologyResponse struct {
	ID       uuid.UUID                 `json:"id"`
	Name     string                    `json:"name"`
	Category models.TechnologyCategory `json:"category"`
	Color    string                    `json:"color"`
}

type TagResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// ProjectListResponse is the project as shown in listings
type ProjectListResponse struct {
	ID           uuid.UUID            `json:"id"`
	Title        string               `json:"title"`
	Slug         string               `json:"slug"`
	Description  string               `json:"description"`
	Technologies []TechnologyResponse `json:"technologies"`
	Status       models.ProjectStatus `json:"status"`
	Featured     bool                 `json:"featured"`
	GithubURL    string               `json:"github_url"`
	DemoURL      string               `json:"demo_url"`
	Thumbnail    *string              `json:"thumbnail"`
}

// ProjectDetailResponse adds the long form fields to ProjectListResponse
type ProjectDetailResponse struct {
	ProjectListResponse
	DetailedDescription string    `json:"detailed_description"`
	Priority            int       `json:"priority"`
	CreatedDate         time.Time `json:"created_date"`
	UpdatedDate         time.Time `json:"updated_date"`
	CompletionDate      *string   `json:"completion_date"`
}

// BlogPostListResponse is the post as shown in listings, without its content
type BlogPostListResponse struct {
	ID            uuid.UUID           `json:"id"`
	Title         string              `json:"title"`
	Slug          string              `json:"slug"`
	Excerpt       string              `json:"excerpt"`
	Category      models.BlogCategory `json:"category"`
	Tags          []TagResponse       `json:"tags"`
	PublishedDate *time.Time          `json:"published_date"`
	Views         uint                `json:"views"`
}

type BlogPostDetailResponse struct {
	BlogPostListResponse
	Content             string               `json:"content"`
	RelatedTechnologies []TechnologyResponse `json:"related_technologies"`
	Published           bool                 `json:"published"`
	CreatedDate         time.Time            `json:"created_date"`
}

type SkillResponse struct {
	ID              uuid.UUID            `json:"id"`
	Name            string               `json:"name"`
	Category        models.SkillCategory `json:"category"`
	Proficiency     models.Proficiency   `json:"proficiency"`
	YearsExperience string               `json:"years_experience"`
	ShowOnResume    bool                 `json:"show_on_resume"`
}

// presenter shapes models into API responses. Thumbnails are resolved to
// loadable URLs through the media resolver.
type presenter struct {
	media services.MediaResolver
}

func presentTechnology(t models.Technology) TechnologyResponse {
	return TechnologyResponse{ID: t.ID, Name: t.Name, Category: t.Category, Color: t.Color}
}

func presentTechnologies(technologies []models.Technology) []TechnologyResponse {
	out := make([]TechnologyResponse, 0, len(technologies))
	for _, t := range technologies {
		out = append(out, presentTechnology(t))
	}
	return out
}

func presentTags(tags []models.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagResponse{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}
	return out
}

func presentSkill(s *models.Skill) SkillResponse {
	return SkillResponse{
		ID:              s.ID,
		Name:            s.Name,
		Category:        s.Category,
		Proficiency:     s.Proficiency,
		YearsExperience: fmt.Sprintf("%.1f", s.YearsExperience),
		ShowOnResume:    s.OnResume(),
	}
}

func (p presenter) projectListItem(ctx context.Context, project *models.Project) (ProjectListResponse, error) {
	var thumbnail *string
	if project.Thumbnail != "" {
		url, err := p.media.URL(ctx, project.Thumbnail)
		if err != nil {
			return ProjectListResponse{}, err
		}
		thumbnail = &url
	}

	return ProjectListResponse{
		ID:           project.ID,
		Title:        project.Title,
		Slug:         project.Slug,
		Description:  project.Description,
		Technologies: presentTechnologies(project.Technologies),
		Status:       project.Status,
		Featured:     project.Featured,
		GithubURL:    project.GithubURL,
		DemoURL:      project.DemoURL,
		Thumbnail:    thumbnail,
	}, nil
}

func (p presenter) projectList(ctx context.Context, projects []*models.Project) ([]ProjectListResponse, error) {
	out := make([]ProjectListResponse, 0, len(projects))
	for _, project := range projects {
		item, err := p.projectListItem(ctx, project)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (p presenter) projectDetail(ctx context.Context, project *models.Project) (ProjectDetailResponse, error) {
	item, err := p.projectListItem(ctx, project)
	if err != nil {
		return ProjectDetailResponse{}, err
	}

	var completion *string
	if project.CompletionDate != nil {
		formatted := time.Time(*project.CompletionDate).Format("2006-01-02")
		completion = &formatted
	}

	return ProjectDetailResponse{
		ProjectListResponse: item,
		DetailedDescription: project.DetailedDescription,
		Priority:            project.Priority,
		CreatedDate:         project.CreatedDate,
		UpdatedDate:         project.UpdatedDate,
		CompletionDate:      completion,
	}, nil
}

func presentBlogPostListItem(post *models.BlogPost) BlogPostListResponse {
	return BlogPostListResponse{
		ID:            post.ID,
		Title:         post.Title,
		Slug:          post.Slug,
		Excerpt:       post.Excerpt,
		Category:      post.Category,
		Tags:          presentTags(post.Tags),
		PublishedDate: post.PublishedDate,
		Views:         post.Views,
	}
}

func presentBlogPostList(posts []*models.BlogPost) []BlogPostListResponse {
	out := make([]BlogPostListResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, presentBlogPostListItem(post))
	}
	return out
}

func presentBlogPostDetail(post *models.BlogPost) BlogPostDetailResponse {
	return BlogPostDetailResponse{
		BlogPostListResponse: presentBlogPostListItem(post),
		Content:              post.Content,
		RelatedTechnologies:  presentTechnologies(post.RelatedTechnologies),
		Published:            post.Published,
		CreatedDate:          post.CreatedDate,
	}
}
