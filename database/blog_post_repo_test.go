package database

import (
	"context"
	"testing"
	"time"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

func published(at time.Time) *time.Time {
	return &at
}

func TestBlogPostListExcludesDraftsAndOrdersNewestFirst(t *testing.T) {
	d := openTestDB(t)

	addPost(t, d, models.BlogPost{Title: "Older", Published: true, PublishedDate: published(baseTime)})
	addPost(t, d, models.BlogPost{Title: "Newer", Published: true, PublishedDate: published(baseTime.AddDate(0, 0, 7))})
	addPost(t, d, models.BlogPost{Title: "Draft"})

	posts, err := d.BlogPostRepo().List(context.Background(), BlogPostFilter{})
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	want := []string{"Newer", "Older"}
	if got := postTitles(posts); !sameStrings(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBlogPostSearch(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	addPost(t, d, models.BlogPost{
		Title:     "Concurrency notes",
		Content:   "Channels everywhere.",
		Excerpt:   "What I learned about Goroutines",
		Published: true,
	})
	addPost(t, d, models.BlogPost{Title: "Unrelated", Content: "CSS grid", Published: true})
	addPost(t, d, models.BlogPost{Title: "Goroutines draft", Content: "goroutines"})

	posts, err := d.BlogPostRepo().List(ctx, BlogPostFilter{Search: "goroutines"})
	if err != nil {
		t.Fatalf("search posts: %v", err)
	}
	if got := postTitles(posts); !sameStrings(got, []string{"Concurrency notes"}) {
		t.Fatalf("expected excerpt match only, got %v", got)
	}

	posts, err = d.BlogPostRepo().List(ctx, BlogPostFilter{Search: "CHANNELS"})
	if err != nil {
		t.Fatalf("search posts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected case-insensitive content match, got %v", postTitles(posts))
	}

	posts, err = d.BlogPostRepo().List(ctx, BlogPostFilter{Search: "100%"})
	if err != nil {
		t.Fatalf("search posts: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected wildcard characters to match literally, got %v", postTitles(posts))
	}
}

func TestBlogPostListByCategory(t *testing.T) {
	d := openTestDB(t)

	addPost(t, d, models.BlogPost{Title: "How To", Category: models.BlogTutorial, Published: true})
	addPost(t, d, models.BlogPost{Title: "Thoughts", Category: models.BlogReflection, Published: true})

	posts, err := d.BlogPostRepo().List(context.Background(), BlogPostFilter{Category: string(models.BlogTutorial)})
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if got := postTitles(posts); !sameStrings(got, []string{"How To"}) {
		t.Fatalf("expected only the tutorial, got %v", got)
	}
}

func TestBlogPostRecordView(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	addPost(t, d, models.BlogPost{Title: "Counted", Published: true})
	addPost(t, d, models.BlogPost{Title: "Hidden"})

	before, err := d.BlogPostRepo().FindPublishedBySlug(ctx, "counted")
	if err != nil {
		t.Fatalf("find post: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := d.BlogPostRepo().RecordView(ctx, "counted"); err != nil {
			t.Fatalf("record view: %v", err)
		}
	}

	after, err := d.BlogPostRepo().FindPublishedBySlug(ctx, "counted")
	if err != nil {
		t.Fatalf("find post: %v", err)
	}
	if after.Views != before.Views+2 {
		t.Fatalf("expected %d views, got %d", before.Views+2, after.Views)
	}
	if !after.UpdatedDate.Equal(before.UpdatedDate) {
		t.Fatalf("expected updated date untouched, got %v then %v", before.UpdatedDate, after.UpdatedDate)
	}

	if _, err := d.BlogPostRepo().RecordView(ctx, "hidden"); !errs.IsNotFound(err) {
		t.Fatalf("expected draft to be not found, got %v", err)
	}
	draft, err := d.BlogPostRepo().FindBySlug(ctx, "hidden")
	if err != nil {
		t.Fatalf("find draft: %v", err)
	}
	if draft.Views != 0 {
		t.Fatalf("expected draft views to stay 0, got %d", draft.Views)
	}
}

func TestBlogPostPublishDateIsStampedOnce(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	post := addPost(t, d, models.BlogPost{Title: "Later"})
	if post.PublishedDate != nil {
		t.Fatalf("expected draft to have no published date, got %v", post.PublishedDate)
	}

	post.Published = true
	if err := d.BlogPostRepo().Update(ctx, post); err != nil {
		t.Fatalf("publish post: %v", err)
	}
	first, err := d.BlogPostRepo().FindPublishedBySlug(ctx, "later")
	if err != nil {
		t.Fatalf("find post: %v", err)
	}
	if first.PublishedDate == nil {
		t.Fatal("expected published date to be stamped")
	}

	first.Title = "Later, edited"
	if err := d.BlogPostRepo().Update(ctx, first); err != nil {
		t.Fatalf("update post: %v", err)
	}
	second, err := d.BlogPostRepo().FindPublishedBySlug(ctx, "later")
	if err != nil {
		t.Fatalf("find post: %v", err)
	}
	if !second.PublishedDate.Equal(*first.PublishedDate) {
		t.Fatalf("expected published date %v to be kept, got %v", first.PublishedDate, second.PublishedDate)
	}
}

func TestBlogPostExcerptLimit(t *testing.T) {
	d := openTestDB(t)

	long := make([]rune, models.MaxExcerptLength+1)
	for i := range long {
		long[i] = 'é'
	}
	post := models.BlogPost{Title: "Too long", Content: "x", Excerpt: string(long)}
	if err := d.BlogPostRepo().Add(context.Background(), &post); err == nil {
		t.Fatal("expected excerpt over the limit to be rejected")
	}
}

func TestBlogPostRelatedAndRelations(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	golang := addTag(t, d, "Go")
	web := addTag(t, d, "Web")
	other := addTag(t, d, "Other")
	tech := addTechnology(t, d, "Go", models.TechnologyLanguage)
	project := addProject(t, d, models.Project{Title: "Backend"})

	addPost(t, d, models.BlogPost{
		Title:               "Main",
		Published:           true,
		Tags:                []models.Tag{web, golang},
		RelatedTechnologies: []models.Technology{tech},
		RelatedProjectID:    &project.ID,
	})
	addPost(t, d, models.BlogPost{Title: "Sibling", Published: true, Tags: []models.Tag{golang, web}})
	addPost(t, d, models.BlogPost{Title: "Sibling Draft", Tags: []models.Tag{golang}})
	addPost(t, d, models.BlogPost{Title: "Stranger", Published: true, Tags: []models.Tag{other}})

	post, err := d.BlogPostRepo().FindPublishedBySlug(ctx, "main")
	if err != nil {
		t.Fatalf("find post: %v", err)
	}
	if slugs := post.TagSlugs(); !sameStrings(slugs, []string{"go", "web"}) {
		t.Fatalf("expected tags ordered by name, got %v", slugs)
	}
	if len(post.RelatedTechnologies) != 1 || post.RelatedProject == nil || post.RelatedProject.Slug != "backend" {
		t.Fatalf("expected relations to be loaded, got %+v %+v", post.RelatedTechnologies, post.RelatedProject)
	}

	related, err := d.BlogPostRepo().Related(ctx, post, 3)
	if err != nil {
		t.Fatalf("related posts: %v", err)
	}
	if got := postTitles(related); !sameStrings(got, []string{"Sibling"}) {
		t.Fatalf("expected only the published sibling, got %v", got)
	}
}

func TestBlogPostCategories(t *testing.T) {
	d := openTestDB(t)

	addPost(t, d, models.BlogPost{Title: "A", Category: models.BlogTutorial, Published: true})
	addPost(t, d, models.BlogPost{Title: "B", Category: models.BlogTutorial, Published: true})
	addPost(t, d, models.BlogPost{Title: "C", Category: models.BlogLearning, Published: true})
	addPost(t, d, models.BlogPost{Title: "D", Category: models.BlogCoursework})

	categories, err := d.BlogPostRepo().Categories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(categories) != 2 || categories[0] != models.BlogLearning || categories[1] != models.BlogTutorial {
		t.Fatalf("expected [learning tutorial], got %v", categories)
	}
}

func TestBlogPostDelete(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	tag := addTag(t, d, "Go")
	addPost(t, d, models.BlogPost{Title: "Bye", Published: true, Tags: []models.Tag{tag}})

	if err := d.BlogPostRepo().DeleteBySlug(ctx, "bye"); err != nil {
		t.Fatalf("delete post: %v", err)
	}
	if _, err := d.BlogPostRepo().FindBySlug(ctx, "bye"); !errs.IsNotFound(err) {
		t.Fatalf("expected deleted post to be not found, got %v", err)
	}
	tags, err := d.TagRepo().FindAll(ctx)
	if err != nil {
		t.Fatalf("list tags: %v", err)
	}
	if len(tags) != 1 {
		t.Fatalf("expected tag to survive post deletion, got %d tags", len(tags))
	}
}
