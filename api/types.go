package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	pageHandler       pageHandler
	rootHandler       rootHandler
	projectHandler    projectHandler
	blogPostHandler   blogPostHandler
	technologyHandler technologyHandler
	skillHandler      skillHandler
	contactHandler    contactHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string            `json:"error" example:"Internal Server Error"`
	Status  string            `json:"status" example:"error"`
	Field   string            `json:"field,omitempty" example:"email"`
	Details string            `json:"details,omitempty" example:"invalid fields: email"`
	Fields  map[string]string `json:"fields,omitempty"`
	Cause   string            `json:"cause,omitempty" example:"Underlying error cause"`
}

// MessageResponse is the body of successful writes that return no entity
type MessageResponse struct {
	Status  string `json:"status,omitempty" example:"success"`
	Message string `json:"message" example:"Contact form submitted successfully!"`
}
