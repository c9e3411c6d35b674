package web

import (
	"bytes"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
)

func TestRenderMarkdownSanitizes(t *testing.T) {
	out, err := RenderMarkdown("# Title\n\nHello <script>alert(1)</script> **world**\n\n| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("render markdown: %v", err)
	}
	html := string(out)
	if strings.Contains(html, "<script>") {
		t.Fatalf("expected script to be stripped, got %s", html)
	}
	for _, want := range []string{`<h1 id="title">Title</h1>`, "<strong>world</strong>", "<table>"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in %s", want, html)
		}
	}
}

func TestNewPagerKeepsFilters(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	page := database.Paginate(items, 5, 2)
	query := url.Values{"search": {"go"}, "page": {"2"}}

	pager := NewPager(page, query)
	if !pager.HasPrevious || !pager.HasNext {
		t.Fatalf("expected both directions, got %+v", pager)
	}
	if pager.NextURL != "?page=3&search=go" {
		t.Fatalf("expected next url to keep search, got %q", pager.NextURL)
	}
	if pager.PreviousURL != "?page=1&search=go" {
		t.Fatalf("expected previous url to keep search, got %q", pager.PreviousURL)
	}
	if len(pager.Links) != 3 || !pager.Links[1].Current {
		t.Fatalf("expected 3 links with the second current, got %+v", pager.Links)
	}
	if query.Get("page") != "2" {
		t.Fatal("expected request query to be left untouched")
	}

	single := NewPager(database.Paginate(items[:2], 5, 1), url.Values{})
	if len(single.Links) != 0 {
		t.Fatalf("expected no links for a single page, got %+v", single.Links)
	}
}

func TestRendererRendersEveryPage(t *testing.T) {
	r, err := NewRenderer(services.LocalMedia{BaseURL: "/media"})
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	published := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	tech := models.Technology{Name: "Go", Slug: "go", Category: models.TechnologyLanguage, Color: "#00ADD8"}
	project := &models.Project{
		Title:        "Engine",
		Slug:         "engine",
		Description:  "Small engine",
		Status:       models.ProjectCompleted,
		Thumbnail:    "projects/engine.png",
		Technologies: []models.Technology{tech},
	}
	post := &models.BlogPost{
		Title:         "Hello",
		Slug:          "hello",
		Content:       "Some *markdown*",
		Category:      models.BlogLearning,
		PublishedDate: &published,
		Tags:          []models.Tag{{Name: "Go", Slug: "go"}},
	}
	skills := []*models.Skill{{Name: "Go", Category: models.SkillProgramming, Proficiency: models.ProficiencyAdvanced, YearsExperience: 2.5}}

	pages := map[string]struct {
		data any
		want string
	}{
		PageHome:          {HomePage{FeaturedProjects: []*models.Project{project}, RecentPosts: []*models.BlogPost{post}}, `/media/projects/engine.png`},
		PageProjects:      {ProjectsPage{Projects: []*models.Project{project}, Technologies: []*models.Technology{&tech}, Statuses: models.ProjectStatuses, CurrentTech: "go"}, `<option value="go" selected>`},
		PageProjectDetail: {ProjectDetailPage{Project: project}, "Small engine"},
		PageBlog:          {BlogPage{Posts: []*models.BlogPost{post}, Categories: []models.BlogCategory{models.BlogLearning}, SearchQuery: "he"}, "April 2, 2024"},
		PageBlogDetail:    {BlogDetailPage{Post: post}, "<em>markdown</em>"},
		PageAbout:         {AboutPage{SkillGroups: database.GroupSkillsByCategory(skills)}, "2.5 years"},
		PageContact:       {ContactPage{Errors: map[string]string{"email": "This field is required."}}, "This field is required."},
		PageNotFound:      {ErrorPage{Status: 404}, "Page not found"},
		PageError:         {ErrorPage{Status: 500}, "Something went wrong"},
	}

	for name, tc := range pages {
		var buf bytes.Buffer
		if err := r.Render(&buf, name, tc.data); err != nil {
			t.Fatalf("render %s: %v", name, err)
		}
		if !strings.Contains(buf.String(), tc.want) {
			t.Fatalf("expected %q in %s page:\n%s", tc.want, name, buf.String())
		}
	}
}

func TestRendererUnknownPage(t *testing.T) {
	r, err := NewRenderer(nil)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if err := r.Render(&bytes.Buffer{}, "missing", nil); err == nil {
		t.Fatal("expected error for unknown page")
	}
}
