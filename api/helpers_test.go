package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "secret"

func openTestDB(t *testing.T) database.Database {
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

	d := database.New(db)
	if err := d.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return d
}

// newTestServer seeds a small site and serves it through the full router
func newTestServer(t *testing.T) (*httptest.Server, database.Database) {
	t.Helper()

	d := openTestDB(t)
	seed(t, d)

	router, err := newRouter(d, withConfig(map[string]string{"BACKEND_PASSWORD": testPassword}))
	if err != nil {
		t.Fatalf("newRouter: %v", err)
	}
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, d
}

func seed(t *testing.T, d database.Database) {
	t.Helper()
	ctx := context.Background()

	golang := models.Technology{Name: "Go", Category: models.TechnologyLanguage, Color: "#00add8"}
	goose := models.Technology{Name: "Goose", Category: models.TechnologyTool}
	django := models.Technology{Name: "Django", Category: models.TechnologyFramework}
	for _, tech := range []*models.Technology{&golang, &goose, &django} {
		if err := d.TechnologyRepo().Add(ctx, tech); err != nil {
			t.Fatalf("add technology: %v", err)
		}
	}
	tag := models.Tag{Name: "Testing"}
	if err := d.TagRepo().Add(ctx, &tag); err != nil {
		t.Fatalf("add tag: %v", err)
	}

	for _, p := range []*models.Project{
		{Title: "Site", Slug: "site", Description: "This site", Status: models.ProjectCompleted, Featured: true,
			Thumbnail: "projects/site.png", Technologies: []models.Technology{golang, goose}},
		{Title: "Draft", Slug: "draft", Description: "Not started", Status: models.ProjectPlanning,
			Technologies: []models.Technology{django}},
	} {
		if err := d.ProjectRepo().Add(ctx, p); err != nil {
			t.Fatalf("add project: %v", err)
		}
	}

	for _, p := range []*models.BlogPost{
		{Title: "Hello", Slug: "hello", Content: "# Hello\n\nFirst post.", Excerpt: "The first one",
			Published: true, Tags: []models.Tag{tag}, RelatedTechnologies: []models.Technology{golang}},
		{Title: "Unfinished", Slug: "unfinished", Content: "Later.", Published: false},
	} {
		if err := d.BlogPostRepo().Add(ctx, p); err != nil {
			t.Fatalf("add post: %v", err)
		}
	}

	skill := models.Skill{Name: "Go", Category: models.SkillProgramming, Proficiency: models.ProficiencyAdvanced,
		YearsExperience: 4}
	if err := d.SkillRepo().Add(ctx, &skill); err != nil {
		t.Fatalf("add skill: %v", err)
	}
}

func do(t *testing.T, method, url, contentType, body string, header http.Header) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	return do(t, http.MethodGet, url, "", "", nil)
}

func decode(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedCopy(values ...string) []string {
	out := append([]string(nil), values...)
	sort.Strings(out)
	return out
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": {"Bearer " + token}}
}
