package handlers

// ErrorResponse is the error body shape shared by the echo handlers.
type ErrorResponse struct {
	Error string `json:"error" example:"pack not found"`
}

// StatusResponse is the body shape of the health endpoints.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
