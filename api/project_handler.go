package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	presenter   presenter
	projectRepo *database.ProjectRepo
	content     *services.ContentService
}

func newProjectHandler(projectRepo *database.ProjectRepo, content *services.ContentService, presenter presenter) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		presenter:   presenter,
		projectRepo: projectRepo,
		content:     content,
	}
}

// projectFilterFromQuery reads the API filters. featured only constrains when
// it is "true", technology is a case-insensitive substring of a technology name.
func projectFilterFromQuery(r *http.Request) database.ProjectFilter {
	query := r.URL.Query()
	filter := database.ProjectFilter{
		Status:          query.Get("status"),
		Technology:      query.Get("technology"),
		TechnologyMatch: database.MatchTechnologyName,
	}
	if strings.EqualFold(query.Get("featured"), "true") {
		featured := true
		filter.Featured = &featured
	}
	return filter
}

// listProjects lists projects
// @Summary List projects
// @Description Lists projects ordered by priority then newest first
// @Tags Projects
// @Produce json
// @Param featured query string false "only featured projects when true"
// @Param technology query string false "technology name contains"
// @Param status query string false "project status"
// @Success 200 {array} ProjectListResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/projects/ [get]
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.List(r.Context(), projectFilterFromQuery(r))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "projects", err))
			return
		}

		response, err := h.presenter.projectList(r.Context(), projects)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, response)
	}
}

// getProject retrieves a project by slug
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} ProjectDetailResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/projects/{slug}/ [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := h.projectRepo.FindBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		response, err := h.presenter.projectDetail(r.Context(), project)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, response)
	}
}

// createProject creates a new project
// @Summary Create project
// @Tags Admin
// @Accept json
// @Produce json
// @Param project body services.ProjectInput true "Project data"
// @Success 201 {object} ProjectDetailResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slug already used"
// @Router /api/admin/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.ProjectInput
		if err := decodeJSON(w, r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.content.CreateProject(r.Context(), in)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		response, err := h.presenter.projectDetail(r.Context(), project)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSONWithStatus(w, http.StatusCreated, response)
	}
}

// updateProject replaces a project
// @Summary Update project
// @Tags Admin
// @Accept json
// @Produce json
// @Param slug path string true "Project slug"
// @Param project body services.ProjectInput true "Project data"
// @Success 200 {object} ProjectDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/projects/{slug} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.ProjectInput
		if err := decodeJSON(w, r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.content.UpdateProject(r.Context(), chi.URLParam(r, "slug"), in)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		response, err := h.presenter.projectDetail(r.Context(), project)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, response)
	}
}

// deleteProject deletes a project by slug
// @Summary Delete project
// @Tags Admin
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/projects/{slug} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.content.DeleteProject(r.Context(), chi.URLParam(r, "slug")); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, MessageResponse{
			Status:  "success",
			Message: "project deleted successfully",
		})
	}
}
