package web

import (
	"net/url"
	"strconv"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
)

type HomePage struct {
	FeaturedProjects []*models.Project
	RecentPosts      []*models.BlogPost
	Technologies     []*models.Technology
}

type ProjectsPage struct {
	Projects      []*models.Project
	Pager         Pager
	Technologies  []*models.Technology
	Statuses      models.Choices
	CurrentTech   string
	CurrentStatus string
}

type ProjectDetailPage struct {
	Project         *models.Project
	RelatedProjects []*models.Project
}

type BlogPage struct {
	Posts           []*models.BlogPost
	Pager           Pager
	Categories      []models.BlogCategory
	SearchQuery     string
	CurrentCategory string
}

type BlogDetailPage struct {
	Post         *models.BlogPost
	RelatedPosts []*models.BlogPost
}

type AboutPage struct {
	SkillGroups []database.SkillGroup
}

// ContactPage carries the submitted values back on validation errors so the
// form does not have to be typed again
type ContactPage struct {
	Success bool
	Form    services.ContactInput
	Errors  map[string]string
}

type ErrorPage struct {
	Status  int
	Message string
}

// PageLink is one entry of a pager
type PageLink struct {
	Number  int
	URL     string
	Current bool
}

// Pager is the navigation state of a paginated listing. URLs keep the other
// query parameters (filters, search) of the current request.
type Pager struct {
	Number      int
	TotalPages  int
	HasPrevious bool
	HasNext     bool
	PreviousURL string
	NextURL     string
	Links       []PageLink
}

func NewPager[T any](page database.Page[T], query url.Values) Pager {
	pager := Pager{
		Number:      page.Number,
		TotalPages:  page.TotalPages,
		HasPrevious: page.HasPrevious(),
		HasNext:     page.HasNext(),
	}
	if pager.HasPrevious {
		pager.PreviousURL = pageURL(query, page.PreviousNumber())
	}
	if pager.HasNext {
		pager.NextURL = pageURL(query, page.NextNumber())
	}
	if page.HasOtherPages() {
		for _, n := range page.Numbers() {
			pager.Links = append(pager.Links, PageLink{Number: n, URL: pageURL(query, n), Current: n == page.Number})
		}
	}
	return pager
}

func pageURL(query url.Values, number int) string {
	q := url.Values{}
	for k, v := range query {
		q[k] = append([]string(nil), v...)
	}
	q.Set("page", strconv.Itoa(number))
	return "?" + q.Encode()
}
