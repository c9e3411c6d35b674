package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
	contacts    *services.ContactService
	now         func() time.Time
}

func newContactHandler(contactRepo *database.ContactRepo, contacts *services.ContactService) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		contacts:    contacts,
		now:         time.Now,
	}
}

// submitContact stores a contact form submission
// @Summary Submit contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param contact body services.ContactInput true "Contact form"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Field errors"
// @Router /api/contact/ [post]
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.ContactInput
		if err := decodeJSON(w, r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.contacts.Submit(r.Context(), in); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact", err))
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, MessageResponse{
			Message: "Contact form submitted successfully!",
		})
	}
}

// listContacts lists contact submissions, newest first
// @Summary List contacts
// @Tags Admin
// @Produce json
// @Param responded query bool false "filter on responded"
// @Success 200 {array} models.Contact
// @Failure 401 {object} ErrorResponse
// @Router /api/admin/contacts [get]
func (h contactHandler) listContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter database.ContactFilter
		if raw := r.URL.Query().Get("responded"); raw != "" {
			responded, err := strconv.ParseBool(raw)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("responded", "expected true or false"))
				return
			}
			filter.Responded = &responded
		}

		contacts, err := h.contactRepo.List(r.Context(), filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "contacts", err))
			return
		}
		if contacts == nil {
			contacts = []*models.Contact{}
		}
		h.responder.WriteJSON(w, contacts)
	}
}

// markContactResponded flags a submission as answered
// @Summary Mark contact responded
// @Tags Admin
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} models.Contact
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/contacts/{id}/respond [post]
func (h contactHandler) markContactResponded() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("id", "expected a UUID"))
			return
		}

		contact, err := h.contactRepo.MarkResponded(r.Context(), id, h.now())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "contact", err))
			return
		}

		h.logger.Info().Str("contactID", id.String()).Msg("contact marked responded")
		h.responder.WriteJSON(w, contact)
	}
}
