package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB returns a migrated in-memory database private to the test
func openTestDB(t *testing.T) Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	database := New(db)
	if err := database.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return database
}

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func addTechnology(t *testing.T, d Database, name string, category models.TechnologyCategory) models.Technology {
	t.Helper()
	tech := models.Technology{Name: name, Category: category}
	if err := d.TechnologyRepo().Add(context.Background(), &tech); err != nil {
		t.Fatalf("add technology %s: %v", name, err)
	}
	return tech
}

func addTag(t *testing.T, d Database, name string) models.Tag {
	t.Helper()
	tag := models.Tag{Name: name}
	if err := d.TagRepo().Add(context.Background(), &tag); err != nil {
		t.Fatalf("add tag %s: %v", name, err)
	}
	return tag
}

func addProject(t *testing.T, d Database, p models.Project) *models.Project {
	t.Helper()
	if p.Description == "" {
		p.Description = p.Title + " description"
	}
	if err := d.ProjectRepo().Add(context.Background(), &p); err != nil {
		t.Fatalf("add project %s: %v", p.Title, err)
	}
	return &p
}

func addPost(t *testing.T, d Database, p models.BlogPost) *models.BlogPost {
	t.Helper()
	if p.Content == "" {
		p.Content = p.Title + " content"
	}
	if err := d.BlogPostRepo().Add(context.Background(), &p); err != nil {
		t.Fatalf("add blog post %s: %v", p.Title, err)
	}
	return &p
}

func postTitles(posts []*models.BlogPost) []string {
	titles := make([]string, 0, len(posts))
	for _, p := range posts {
		titles = append(titles, p.Title)
	}
	return titles
}

func projectTitles(projects []*models.Project) []string {
	titles := make([]string, 0, len(projects))
	for _, p := range projects {
		titles = append(titles, p.Title)
	}
	return titles
}

func sameStrings(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
