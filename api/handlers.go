package api

import (
	"time"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rpupo63/portfolio-backend/web"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, renderer *web.Renderer, media services.MediaResolver, startupTime time.Time) *routeHandlers {
	content := services.NewContentService(db)
	contacts := services.NewContactService(db.ContactRepo())
	presenter := presenter{media: media}

	return &routeHandlers{
		pageHandler:       newPageHandler(db, renderer, contacts),
		rootHandler:       newRootHandler(db, startupTime),
		projectHandler:    newProjectHandler(db.ProjectRepo(), content, presenter),
		blogPostHandler:   newBlogPostHandler(db.BlogPostRepo(), content),
		technologyHandler: newTechnologyHandler(db.TechnologyRepo()),
		skillHandler:      newSkillHandler(db.SkillRepo()),
		contactHandler:    newContactHandler(db.ContactRepo(), contacts),
	}
}
