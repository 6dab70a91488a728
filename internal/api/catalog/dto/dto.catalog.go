// Package catalogdto - request DTOs for games and categories.
package catalogdto

// CreateGameInput is the body of POST /api/games.
type CreateGameInput struct {
	Name      string `json:"name" bson:"name" validate:"required,min=2,max=100,no_xss"`
	ShortName string `json:"shortName" bson:"shortName,omitempty" validate:"omitempty,max=20,no_xss"`
	Image     string `json:"image" bson:"image,omitempty" validate:"omitempty,url"`
}

// UpdateGameInput is the body of PUT /api/games/:id. Only present fields are
// written.
type UpdateGameInput struct {
	Name      string `json:"name" bson:"name,omitempty" validate:"omitempty,min=2,max=100,no_xss"`
	ShortName string `json:"shortName" bson:"shortName,omitempty" validate:"omitempty,max=20,no_xss"`
	Image     string `json:"image" bson:"image,omitempty" validate:"omitempty,url"`
}

// CreateCategoryInput is the body of POST /api/categories.
type CreateCategoryInput struct {
	Name        string `json:"name" bson:"name" validate:"required,min=2,max=100,no_xss"`
	Description string `json:"description" bson:"description,omitempty" validate:"omitempty,max=500,no_xss"`
	Icon        string `json:"icon" bson:"icon,omitempty" validate:"omitempty,max=100"`
}

// UpdateCategoryInput is the body of PUT /api/categories/:id.
type UpdateCategoryInput struct {
	Name        string `json:"name" bson:"name,omitempty" validate:"omitempty,min=2,max=100,no_xss"`
	Description string `json:"description" bson:"description,omitempty" validate:"omitempty,max=500,no_xss"`
	Icon        string `json:"icon" bson:"icon,omitempty" validate:"omitempty,max=100"`
}
