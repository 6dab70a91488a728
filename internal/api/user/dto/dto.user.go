// Package userdto - request DTOs for profile and user administration.
package userdto

// UpdateProfileInput is the body of PUT /api/users/profile. Only present
// fields are written.
type UpdateProfileInput struct {
	Username string `json:"username" bson:"username,omitempty" validate:"omitempty,min=3,max=30,no_xss"`
	Email    string `json:"email" bson:"email,omitempty" validate:"omitempty,email"`
	Avatar   string `json:"avatar" bson:"avatar,omitempty" validate:"omitempty,url"`
}

// AdminUpdateUserInput is the body of PUT /api/users/:id (admin).
type AdminUpdateUserInput struct {
	Role     string `json:"role" bson:"role,omitempty" validate:"omitempty,oneof=user creator admin"`
	IsActive *bool  `json:"isActive" bson:"isActive,omitempty"`
}
