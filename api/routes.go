package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/web"
	"github.com/rs/zerolog/log"
)

// setupPageRoutes sets up the server rendered site
func setupPageRoutes(r chi.Router, handlers *routeHandlers) {
	r.Handle("/static/*", http.StripPrefix("/static/", web.StaticHandler()))

	r.Get("/", handlers.pageHandler.home())
	r.Get("/projects", handlers.pageHandler.projects())
	r.Get("/projects/{slug}", handlers.pageHandler.projectDetail())
	r.Get("/blog", handlers.pageHandler.blog())
	r.Get("/blog/{slug}", handlers.pageHandler.blogDetail())
	r.Get("/about", handlers.pageHandler.about())
	r.Get("/contact", handlers.pageHandler.contactForm())
	r.Post("/contact", handlers.pageHandler.submitContact())
	r.Get("/healthz", handlers.rootHandler.healthz())
}

// setupAPIRoutes sets up the public read API and the contact endpoint
func setupAPIRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/api", handlers.rootHandler.apiIndex())

	r.Get("/api/projects", handlers.projectHandler.listProjects())
	r.Get("/api/projects/{slug}", handlers.projectHandler.getProject())
	r.Get("/api/technologies", handlers.technologyHandler.listTechnologies())
	r.Get("/api/blog", handlers.blogPostHandler.listBlogPosts())
	r.Get("/api/blog/{slug}", handlers.blogPostHandler.getBlogPost())
	r.Get("/api/skills", handlers.skillHandler.listSkills())
	r.Post("/api/contact", handlers.contactHandler.submitContact())
}

// setupAdminRoutes sets up the content management API, every route requires
// the admin bearer token
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)

		r.Post("/api/admin/projects", handlers.projectHandler.createProject())
		r.Put("/api/admin/projects/{slug}", handlers.projectHandler.updateProject())
		r.Delete("/api/admin/projects/{slug}", handlers.projectHandler.deleteProject())

		r.Post("/api/admin/blog", handlers.blogPostHandler.createBlogPost())
		r.Put("/api/admin/blog/{slug}", handlers.blogPostHandler.updateBlogPost())
		r.Delete("/api/admin/blog/{slug}", handlers.blogPostHandler.deleteBlogPost())

		r.Get("/api/admin/contacts", handlers.contactHandler.listContacts())
		r.Post("/api/admin/contacts/{id}/respond", handlers.contactHandler.markContactResponded())
	})
}

// notFoundHandler answers unknown API paths with JSON and everything else
// with the site's 404 page
func notFoundHandler(pages pageHandler) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "notFound").Logger())
	page := pages.notFound()

	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
			responder.WriteError(w, errs.NewNotFound("resource"))
			return
		}
		page(w, r)
	}
}
