// Package moddto - request DTOs for the mod routes.
package moddto

// CreateModInput carries the multipart form fields of POST /api/mods. Files
// travel separately.
type CreateModInput struct {
	Title        string  `json:"title" bson:"title" validate:"required,min=3,max=120,no_xss"`
	Description  string  `json:"description" bson:"description" validate:"required,min=10,max=5000,no_xss"`
	Version      string  `json:"version" bson:"version,omitempty" validate:"omitempty,max=20"`
	Tags         string  `json:"tags" bson:"-" validate:"omitempty,max=300"`
	GameName     string  `json:"gameName" bson:"-" validate:"required"`
	Category     string  `json:"category" bson:"-" validate:"required"`
	DownloadLink string  `json:"downloadLink" bson:"downloadLink,omitempty" validate:"omitempty,url"`
	IsFree       bool    `json:"isFree" bson:"isFree"`
	Price        float64 `json:"price" bson:"price" validate:"omitempty,gte=0"`
	ContactEmail string  `json:"contactEmail" bson:"contactEmail,omitempty" validate:"omitempty,email"`
}

// UpdateModInput is the body of PUT /api/mods/:id. Only present fields are
// written.
type UpdateModInput struct {
	Title        string   `json:"title" bson:"title,omitempty" validate:"omitempty,min=3,max=120,no_xss"`
	Description  string   `json:"description" bson:"description,omitempty" validate:"omitempty,min=10,max=5000,no_xss"`
	Version      string   `json:"version" bson:"version,omitempty" validate:"omitempty,max=20"`
	Tags         []string `json:"tags" bson:"tags,omitempty" validate:"omitempty,max=10,dive,max=30"`
	DownloadLink string   `json:"downloadLink" bson:"downloadLink,omitempty" validate:"omitempty,url"`
	Price        *float64 `json:"price" bson:"price,omitempty" validate:"omitempty,gte=0"`
	ContactEmail string   `json:"contactEmail" bson:"contactEmail,omitempty" validate:"omitempty,email"`
}

// UpdateStatusInput is the body of PATCH /api/mods/:id/status.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
	Reason string `json:"reason" validate:"omitempty,max=500,no_xss"`
}

// RateModInput is the body of POST /api/mods/:id/rating.
type RateModInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=500,no_xss"`
}

// ListModsQuery captures the supported query parameters of GET /api/mods.
type ListModsQuery struct {
	Status   string `query:"status"`
	Category string `query:"category"`
	GameName string `query:"gameName"`
	Type     string `query:"type"` // free | paid
	Search   string `query:"search"`
	Sort     string `query:"sort"`
	Order    string `query:"order"` // asc | desc
	Page     int64  `query:"page"`
	Limit    int64  `query:"limit"`
}
