// Package modrequestdto - request DTOs for community mod requests.
package modrequestdto

// CreateModRequestInput is the body of POST /api/mod-requests.
type CreateModRequestInput struct {
	Title       string `json:"title" bson:"title" validate:"required,min=3,max=120,no_xss"`
	Description string `json:"description" bson:"description" validate:"required,min=10,max=2000,no_xss"`
	Category    string `json:"category" bson:"category,omitempty" validate:"omitempty,max=100,no_xss"`
}

// UpdateModRequestStatusInput is the body of PUT /api/mod-requests/:id/status.
type UpdateModRequestStatusInput struct {
	Status       string `json:"status" validate:"required,oneof=pending in-progress completed rejected"`
	DownloadLink string `json:"downloadLink" validate:"omitempty,url"`
}
