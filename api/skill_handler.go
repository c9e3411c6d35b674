package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
}

func newSkillHandler(skillRepo *database.SkillRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

// listSkills lists the skills shown on the resume
// @Summary List skills
// @Tags Skills
// @Produce json
// @Param category query string false "skill category"
// @Success 200 {array} SkillResponse
// @Router /api/skills/ [get]
func (h skillHandler) listSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.List(r.Context(), database.SkillFilter{
			Category: r.URL.Query().Get("category"),
		})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "skills", err))
			return
		}

		response := make([]SkillResponse, 0, len(skills))
		for _, skill := range skills {
			response = append(response, presentSkill(skill))
		}
		h.responder.WriteJSON(w, response)
	}
}
