package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type technologyHandler struct {
	responder      Responder
	logger         zerolog.Logger
	technologyRepo *database.TechnologyRepo
}

func newTechnologyHandler(technologyRepo *database.TechnologyRepo) technologyHandler {
	logger := log.With().Str("handlerName", "technologyHandler").Logger()

	return technologyHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		technologyRepo: technologyRepo,
	}
}

// listTechnologies lists technologies
// @Summary List technologies
// @Tags Technologies
// @Produce json
// @Param category query string false "technology category"
// @Success 200 {array} TechnologyResponse
// @Router /api/technologies/ [get]
func (h technologyHandler) listTechnologies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologies, err := h.technologyRepo.List(r.Context(), database.TechnologyFilter{
			Category: r.URL.Query().Get("category"),
		})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "technologies", err))
			return
		}

		response := make([]TechnologyResponse, 0, len(technologies))
		for _, technology := range technologies {
			response = append(response, presentTechnology(*technology))
		}
		h.responder.WriteJSON(w, response)
	}
}
