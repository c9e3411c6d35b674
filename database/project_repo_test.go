package database

import (
	"context"
	"errors"
	"testing"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

func TestProjectListOrdersByPriorityThenNewest(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	addProject(t, d, models.Project{Title: "Old Low", Priority: 1, CreatedDate: baseTime})
	addProject(t, d, models.Project{Title: "New Low", Priority: 1, CreatedDate: baseTime.AddDate(0, 1, 0)})
	addProject(t, d, models.Project{Title: "High", Priority: 5, CreatedDate: baseTime})

	projects, err := d.ProjectRepo().List(ctx, ProjectFilter{})
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	want := []string{"High", "New Low", "Old Low"}
	if got := projectTitles(projects); !sameStrings(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestProjectListFilters(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	django := addTechnology(t, d, "Django", models.TechnologyFramework)
	golang := addTechnology(t, d, "Go", models.TechnologyLanguage)
	postgres := addTechnology(t, d, "PostgreSQL", models.TechnologyDatabase)

	addProject(t, d, models.Project{
		Title:        "Site",
		Featured:     true,
		Status:       models.ProjectCompleted,
		Technologies: []models.Technology{django, postgres},
	})
	addProject(t, d, models.Project{
		Title:        "Draft",
		Status:       models.ProjectPlanning,
		Technologies: []models.Technology{golang},
	})

	featured := true
	got, err := d.ProjectRepo().List(ctx, ProjectFilter{Featured: &featured})
	if err != nil {
		t.Fatalf("list featured: %v", err)
	}
	if titles := projectTitles(got); !sameStrings(titles, []string{"Site"}) {
		t.Fatalf("expected only Site, got %v", titles)
	}

	got, err = d.ProjectRepo().List(ctx, ProjectFilter{Status: string(models.ProjectPlanning)})
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if titles := projectTitles(got); !sameStrings(titles, []string{"Draft"}) {
		t.Fatalf("expected only Draft, got %v", titles)
	}

	got, err = d.ProjectRepo().List(ctx, ProjectFilter{Technology: "djan"})
	if err != nil {
		t.Fatalf("list by technology name: %v", err)
	}
	if titles := projectTitles(got); !sameStrings(titles, []string{"Site"}) {
		t.Fatalf("expected only Site, got %v", titles)
	}

	got, err = d.ProjectRepo().List(ctx, ProjectFilter{Technology: "go", TechnologyMatch: MatchTechnologySlug})
	if err != nil {
		t.Fatalf("list by technology slug: %v", err)
	}
	if titles := projectTitles(got); !sameStrings(titles, []string{"Draft"}) {
		t.Fatalf("expected only Draft, got %v", titles)
	}

	if len(got[0].Technologies) != 1 || got[0].Technologies[0].Slug != "go" {
		t.Fatalf("expected technologies to be preloaded, got %+v", got[0].Technologies)
	}
}

func TestProjectListTechnologyFilterHasNoDuplicates(t *testing.T) {
	d := openTestDB(t)

	react := addTechnology(t, d, "React", models.TechnologyFrontend)
	native := addTechnology(t, d, "React Native", models.TechnologyFramework)
	addProject(t, d, models.Project{Title: "App", Technologies: []models.Technology{react, native}})

	got, err := d.ProjectRepo().List(context.Background(), ProjectFilter{Technology: "REACT"})
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected a single project, got %v", projectTitles(got))
	}
}

func TestProjectListLimit(t *testing.T) {
	d := openTestDB(t)
	for _, title := range []string{"A", "B", "C", "D"} {
		addProject(t, d, models.Project{Title: title, Featured: true})
	}

	featured := true
	got, err := d.ProjectRepo().List(context.Background(), ProjectFilter{Featured: &featured, Limit: 3})
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(got))
	}
}

func TestProjectFindBySlug(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	created := addProject(t, d, models.Project{Title: "Portfolio Site"})
	if created.Slug != "portfolio-site" {
		t.Fatalf("expected slug derived from title, got %q", created.Slug)
	}
	if created.Status != models.ProjectDevelopment {
		t.Fatalf("expected default status, got %q", created.Status)
	}

	found, err := d.ProjectRepo().FindBySlug(ctx, "portfolio-site")
	if err != nil {
		t.Fatalf("find project: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected id %s, got %s", created.ID, found.ID)
	}

	_, err = d.ProjectRepo().FindBySlug(ctx, "missing")
	if !errs.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestProjectSlugIsUnique(t *testing.T) {
	d := openTestDB(t)
	addProject(t, d, models.Project{Title: "Same"})

	dup := models.Project{Title: "Same", Description: "again"}
	err := d.ProjectRepo().Add(context.Background(), &dup)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected duplicated key, got %v", err)
	}
}

func TestProjectRelated(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	golang := addTechnology(t, d, "Go", models.TechnologyLanguage)
	redis := addTechnology(t, d, "Redis", models.TechnologyDatabase)
	vue := addTechnology(t, d, "Vue", models.TechnologyFrontend)

	origin := addProject(t, d, models.Project{Title: "Main", Technologies: []models.Technology{golang, redis}})
	addProject(t, d, models.Project{Title: "Shares Both", Technologies: []models.Technology{golang, redis}})
	addProject(t, d, models.Project{Title: "Shares One", Technologies: []models.Technology{redis}})
	addProject(t, d, models.Project{Title: "Unrelated", Technologies: []models.Technology{vue}})

	related, err := d.ProjectRepo().Related(ctx, origin, 3)
	if err != nil {
		t.Fatalf("related projects: %v", err)
	}
	titles := projectTitles(related)
	if len(titles) != 2 {
		t.Fatalf("expected 2 related projects, got %v", titles)
	}
	for _, title := range titles {
		if title == "Main" || title == "Unrelated" {
			t.Fatalf("unexpected related project %q", title)
		}
	}
}

func TestProjectUpdateReplacesTechnologies(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	golang := addTechnology(t, d, "Go", models.TechnologyLanguage)
	vue := addTechnology(t, d, "Vue", models.TechnologyFrontend)
	project := addProject(t, d, models.Project{Title: "Swap", Technologies: []models.Technology{golang}})

	project.Technologies = []models.Technology{vue}
	project.Featured = true
	if err := d.ProjectRepo().Update(ctx, project); err != nil {
		t.Fatalf("update project: %v", err)
	}

	found, err := d.ProjectRepo().FindBySlug(ctx, "swap")
	if err != nil {
		t.Fatalf("find project: %v", err)
	}
	if !found.Featured {
		t.Fatal("expected featured to be saved")
	}
	if slugs := found.TechnologySlugs(); !sameStrings(slugs, []string{"vue"}) {
		t.Fatalf("expected technologies [vue], got %v", slugs)
	}
}

func TestProjectDeleteClearsBlogReference(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	golang := addTechnology(t, d, "Go", models.TechnologyLanguage)
	project := addProject(t, d, models.Project{Title: "Gone", Technologies: []models.Technology{golang}})
	addPost(t, d, models.BlogPost{Title: "Writeup", Published: true, RelatedProjectID: &project.ID})

	if err := d.ProjectRepo().DeleteBySlug(ctx, "gone"); err != nil {
		t.Fatalf("delete project: %v", err)
	}

	post, err := d.BlogPostRepo().FindBySlug(ctx, "writeup")
	if err != nil {
		t.Fatalf("find post: %v", err)
	}
	if post.RelatedProjectID != nil {
		t.Fatalf("expected related project to be cleared, got %s", post.RelatedProjectID)
	}

	if err := d.ProjectRepo().DeleteBySlug(ctx, "gone"); !errs.IsNotFound(err) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
