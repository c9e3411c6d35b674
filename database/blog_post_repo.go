package database

import (
	"context"
	"errors"
	"strings"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

// BlogPostFilter selects published blog posts. Empty fields do not constrain.
type BlogPostFilter struct {
	Category string
	Search   string
	Limit    int
}

// Build turns the parameters into the blog listing filter. Drafts are always
// excluded. Search is a case-insensitive substring match on title, content or
// excerpt.
func (f BlogPostFilter) Build() Filter {
	filter := Filter{}.
		Where("blog_posts.published = ?", true).
		WhereIf(f.Category != "", "blog_posts.category = ?", f.Category)

	if search := strings.TrimSpace(f.Search); search != "" {
		pattern := containsPattern(search)
		filter = filter.Where(`(LOWER(blog_posts.title) LIKE ? ESCAPE '\'
			OR LOWER(blog_posts.content) LIKE ? ESCAPE '\'
			OR LOWER(blog_posts.excerpt) LIKE ? ESCAPE '\')`, pattern, pattern, pattern)
	}

	return filter.
		OrderBy("blog_posts.published_date DESC", "blog_posts.created_date DESC").
		Limit(f.Limit)
}

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

func preloadTags(db *gorm.DB) *gorm.DB {
	return db.Order("tags.name")
}

func (r *BlogPostRepo) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Tags", preloadTags).
		Preload("RelatedTechnologies", preloadTechnologies).
		Preload("RelatedProject")
}

// List returns the published posts matching filter with their tags
func (r *BlogPostRepo) List(ctx context.Context, filter BlogPostFilter) ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := filter.Build().
		Apply(r.db.WithContext(ctx).Preload("Tags", preloadTags)).
		Find(&posts).Error
	return posts, err
}

// FindPublishedBySlug returns a published post with all its relations. Drafts
// are reported as not found.
func (r *BlogPostRepo) FindPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return r.findOne(ctx, "slug = ? AND published = ?", slug, true)
}

// FindBySlug returns a post whether or not it is published
func (r *BlogPostRepo) FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *BlogPostRepo) findOne(ctx context.Context, query string, args ...any) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.withRelations(ctx).Where(query, args...).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("blog post")
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// RecordView increments the view counter of a published post in a single
// UPDATE and returns the post as stored afterwards. Only the views column is
// written.
func (r *BlogPostRepo) RecordView(ctx context.Context, slug string) (*models.BlogPost, error) {
	result := r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("slug = ? AND published = ?", slug, true).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewNotFound("blog post")
	}
	return r.FindPublishedBySlug(ctx, slug)
}

// Related returns up to limit other published posts sharing at least one tag
// with post
func (r *BlogPostRepo) Related(ctx context.Context, post *models.BlogPost, limit int) ([]*models.BlogPost, error) {
	filter := Filter{}.
		Where("blog_posts.published = ?", true).
		Where("blog_posts.id <> ?", post.ID).
		Where(`blog_posts.id IN (SELECT bt.blog_post_id FROM blog_post_tags bt
			WHERE bt.tag_id IN (SELECT tag_id FROM blog_post_tags WHERE blog_post_id = ?))`, post.ID).
		OrderBy("blog_posts.published_date DESC", "blog_posts.created_date DESC").
		Limit(limit)

	var posts []*models.BlogPost
	err := filter.Apply(r.db.WithContext(ctx).Preload("Tags", preloadTags)).Find(&posts).Error
	return posts, err
}

// Categories lists the distinct categories used by published posts
func (r *BlogPostRepo) Categories(ctx context.Context) ([]models.BlogCategory, error) {
	var categories []models.BlogCategory
	err := r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("published = ?", true).
		Distinct().
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

// Add inserts a new post and links its tags and technologies
func (r *BlogPostRepo) Add(ctx context.Context, post *models.BlogPost) error {
	return r.db.WithContext(ctx).
		Omit("Tags.*", "RelatedTechnologies.*", "RelatedProject").
		Create(post).Error
}

// Update saves every column of post and replaces its tag and technology links.
// The publish hook runs as part of the save.
func (r *BlogPostRepo) Update(ctx context.Context, post *models.BlogPost) error {
	tags := post.Tags
	technologies := post.RelatedTechnologies
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "RelatedTechnologies", "RelatedProject").Save(post).Error; err != nil {
			return err
		}
		if err := tx.Model(post).Association("Tags").Replace(tags); err != nil {
			return err
		}
		return tx.Model(post).Association("RelatedTechnologies").Replace(technologies)
	})
}

// DeleteBySlug removes a post and its tag and technology links
func (r *BlogPostRepo) DeleteBySlug(ctx context.Context, slug string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.BlogPost
		if err := tx.Where("slug = ?", slug).First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFound("blog post")
			}
			return err
		}
		if err := tx.Model(&post).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&post).Association("RelatedTechnologies").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.BlogPost{}, "id = ?", post.ID).Error
	})
}
