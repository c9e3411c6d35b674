package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
	content      *services.ContentService
}

func newBlogPostHandler(blogPostRepo *database.BlogPostRepo, content *services.ContentService) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
		content:      content,
	}
}

// listBlogPosts lists published blog posts
// @Summary List blog posts
// @Description Lists published posts, newest first
// @Tags Blog
// @Produce json
// @Param category query string false "blog category"
// @Success 200 {array} BlogPostListResponse
// @Router /api/blog/ [get]
func (h blogPostHandler) listBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.blogPostRepo.List(r.Context(), database.BlogPostFilter{
			Category: r.URL.Query().Get("category"),
		})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "blog posts", err))
			return
		}

		h.responder.WriteJSON(w, presentBlogPostList(posts))
	}
}

// getBlogPost retrieves a published blog post by slug. Drafts are not found.
// @Summary Get blog post
// @Tags Blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} BlogPostDetailResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/blog/{slug}/ [get]
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := h.blogPostRepo.FindPublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, presentBlogPostDetail(post))
	}
}

// createBlogPost creates a blog post, published or draft
// @Summary Create blog post
// @Tags Admin
// @Accept json
// @Produce json
// @Param post body services.BlogPostInput true "Post data"
// @Success 201 {object} BlogPostDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/admin/blog [post]
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.BlogPostInput
		if err := decodeJSON(w, r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.content.CreatePost(r.Context(), in)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, presentBlogPostDetail(post))
	}
}

// updateBlogPost replaces a blog post. Setting published stamps the publish
// date the first time.
// @Summary Update blog post
// @Tags Admin
// @Accept json
// @Produce json
// @Param slug path string true "Post slug"
// @Param post body services.BlogPostInput true "Post data"
// @Success 200 {object} BlogPostDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/blog/{slug} [put]
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.BlogPostInput
		if err := decodeJSON(w, r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.content.UpdatePost(r.Context(), chi.URLParam(r, "slug"), in)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, presentBlogPostDetail(post))
	}
}

// deleteBlogPost deletes a blog post by slug
// @Summary Delete blog post
// @Tags Admin
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/blog/{slug} [delete]
func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.content.DeletePost(r.Context(), chi.URLParam(r, "slug")); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, MessageResponse{
			Status:  "success",
			Message: "blog post deleted successfully",
		})
	}
}
