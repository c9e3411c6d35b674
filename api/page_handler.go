package api

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rpupo63/portfolio-backend/web"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	projectsPerPage = 6
	postsPerPage    = 5
	relatedLimit    = 3
)

// pageHandler serves the server rendered site
type pageHandler struct {
	logger   zerolog.Logger
	renderer *web.Renderer
	db       database.Database
	contacts *services.ContactService
}

func newPageHandler(db database.Database, renderer *web.Renderer, contacts *services.ContactService) pageHandler {
	return pageHandler{
		logger:   log.With().Str("handlerName", "pageHandler").Logger(),
		renderer: renderer,
		db:       db,
		contacts: contacts,
	}
}

func (h pageHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		h.logger.Error().
			Err(err).
			Str("page", page).
			Str("request_id", ctxGetRequestID(r.Context())).
			Msg("failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error().Err(err).Msg("error writing response")
	}
}

// renderError renders the not found page for unknown content and the generic
// error page for everything else
func (h pageHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	if errs.IsNotFound(err) {
		h.render(w, r, http.StatusNotFound, web.PageNotFound, web.ErrorPage{Status: http.StatusNotFound})
		return
	}

	h.logger.Error().
		Err(err).
		Str("path", r.URL.Path).
		Str("request_id", ctxGetRequestID(r.Context())).
		Msg("failed to load page")
	h.render(w, r, http.StatusInternalServerError, web.PageError, web.ErrorPage{Status: http.StatusInternalServerError})
}

func (h pageHandler) notFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusNotFound, web.PageNotFound, web.ErrorPage{Status: http.StatusNotFound})
	}
}

// home shows featured completed projects, the latest posts and a few
// technologies. The three lists are loaded concurrently.
func (h pageHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var page web.HomePage
		featured := true

		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			projects, err := h.db.ProjectRepo().List(ctx, database.ProjectFilter{
				Featured: &featured,
				Status:   string(models.ProjectCompleted),
				Limit:    3,
			})
			page.FeaturedProjects = projects
			return err
		})
		g.Go(func() error {
			posts, err := h.db.BlogPostRepo().List(ctx, database.BlogPostFilter{Limit: 3})
			page.RecentPosts = posts
			return err
		})
		g.Go(func() error {
			technologies, err := h.db.TechnologyRepo().List(ctx, database.TechnologyFilter{Limit: 8})
			page.Technologies = technologies
			return err
		})
		if err := g.Wait(); err != nil {
			h.renderError(w, r, err)
			return
		}

		h.render(w, r, http.StatusOK, web.PageHome, page)
	}
}

// projects lists projects six per page. technology is matched against the
// technology slug.
func (h pageHandler) projects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := database.ProjectFilter{
			Technology:      query.Get("technology"),
			TechnologyMatch: database.MatchTechnologySlug,
			Status:          query.Get("status"),
		}

		projects, err := h.db.ProjectRepo().List(r.Context(), filter)
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		technologies, err := h.db.TechnologyRepo().List(r.Context(), database.TechnologyFilter{})
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		page := database.Paginate(projects, projectsPerPage, database.ParsePageNumber(query.Get("page")))
		h.render(w, r, http.StatusOK, web.PageProjects, web.ProjectsPage{
			Projects:      page.Items,
			Pager:         web.NewPager(page, query),
			Technologies:  technologies,
			Statuses:      models.ProjectStatuses,
			CurrentTech:   filter.Technology,
			CurrentStatus: filter.Status,
		})
	}
}

func (h pageHandler) projectDetail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := h.db.ProjectRepo().FindBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		related, err := h.db.ProjectRepo().Related(r.Context(), project, relatedLimit)
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		h.render(w, r, http.StatusOK, web.PageProjectDetail, web.ProjectDetailPage{
			Project:         project,
			RelatedProjects: related,
		})
	}
}

// blog lists published posts five per page, with free text search
func (h pageHandler) blog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := database.BlogPostFilter{
			Search:   query.Get("search"),
			Category: query.Get("category"),
		}

		posts, err := h.db.BlogPostRepo().List(r.Context(), filter)
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		categories, err := h.db.BlogPostRepo().Categories(r.Context())
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		page := database.Paginate(posts, postsPerPage, database.ParsePageNumber(query.Get("page")))
		h.render(w, r, http.StatusOK, web.PageBlog, web.BlogPage{
			Posts:           page.Items,
			Pager:           web.NewPager(page, query),
			Categories:      categories,
			SearchQuery:     filter.Search,
			CurrentCategory: filter.Category,
		})
	}
}

// blogDetail shows a published post and counts the view
func (h pageHandler) blogDetail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := h.db.BlogPostRepo().RecordView(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		related, err := h.db.BlogPostRepo().Related(r.Context(), post, relatedLimit)
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		h.render(w, r, http.StatusOK, web.PageBlogDetail, web.BlogDetailPage{
			Post:         post,
			RelatedPosts: related,
		})
	}
}

func (h pageHandler) about() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.db.SkillRepo().List(r.Context(), database.SkillFilter{})
		if err != nil {
			h.renderError(w, r, err)
			return
		}

		h.render(w, r, http.StatusOK, web.PageAbout, web.AboutPage{
			SkillGroups: database.GroupSkillsByCategory(skills),
		})
	}
}

func (h pageHandler) contactForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusOK, web.PageContact, web.ContactPage{})
	}
}

// submitContact stores the contact form. Invalid submissions render the form
// again with the entered values and one message per field.
func (h pageHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		if err := r.ParseForm(); err != nil {
			h.render(w, r, http.StatusBadRequest, web.PageContact, web.ContactPage{
				Errors: map[string]string{"message": "The form could not be read."},
			})
			return
		}

		in := services.ContactInput{
			Name:    r.PostForm.Get("name"),
			Email:   r.PostForm.Get("email"),
			Subject: r.PostForm.Get("subject"),
			Message: r.PostForm.Get("message"),
		}
		if _, err := h.contacts.Submit(r.Context(), in); err != nil {
			var apiErr *errs.ApiErr
			if errors.As(err, &apiErr) && errs.IsValidationError(err) {
				h.render(w, r, http.StatusOK, web.PageContact, web.ContactPage{Form: in, Errors: apiErr.Fields})
				return
			}
			h.renderError(w, r, err)
			return
		}

		h.render(w, r, http.StatusOK, web.PageContact, web.ContactPage{Success: true})
	}
}
