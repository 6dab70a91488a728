// Package requestdto - request DTOs for purchase requests.
package requestdto

// CreateRequestInput is the body of POST /api/requests.
type CreateRequestInput struct {
	ModID   string `json:"modId" validate:"required"`
	Message string `json:"message" validate:"required,min=10,max=500,no_xss"`
}

// UpdateRequestInput is the body of PUT /api/requests/:id (admin).
type UpdateRequestInput struct {
	Status     string `json:"status" validate:"required,oneof=pending in-progress completed cancelled"`
	AdminNotes string `json:"adminNotes" validate:"omitempty,max=1000,no_xss"`
}

// PurchaseMessageInput is the optional body of
// POST /api/purchase/request/:modId.
type PurchaseMessageInput struct {
	Message string `json:"message" validate:"omitempty,max=500,no_xss"`
}
