// Package requesthdl - HTTP handlers for purchase requests and the purchase
// relay.
package requesthdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	authmodels "github.com/InderX84/FarmX/internal/api/auth/models"
	basehdl "github.com/InderX84/FarmX/internal/api/base/handler"
	requestdto "github.com/InderX84/FarmX/internal/api/request/dto"
	models "github.com/InderX84/FarmX/internal/api/request/models"
	requestsvc "github.com/InderX84/FarmX/internal/api/request/service"
	"github.com/InderX84/FarmX/internal/common"
)

// RequestHandler serves /api/requests and /api/purchase.
type RequestHandler struct {
	*basehdl.BaseHandler[models.Request, requestdto.CreateRequestInput, requestdto.UpdateRequestInput]
	requestService *requestsvc.RequestService
}

// NewRequestHandler creates a RequestHandler.
func NewRequestHandler(requestService *requestsvc.RequestService) *RequestHandler {
	return &RequestHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Request, requestdto.CreateRequestInput, requestdto.UpdateRequestInput](requestService),
		requestService: requestService,
	}
}

// HandleCreate stores a purchase request.
// POST /api/requests
func (h *RequestHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		buyer, ok := c.Locals("user").(authmodels.User)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		var input requestdto.CreateRequestInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		request, err := h.requestService.Create(c.Context(), buyer, &input)
		h.HandleResponse(c, request, err)
		return nil
	})
}

// HandleMyRequests returns the caller's requests, newest first.
// GET /api/requests/my-requests
func (h *RequestHandler) HandleMyRequests(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := basehdl.CurrentUserID(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		requests, err := h.requestService.MyRequests(c.Context(), userID)
		h.HandleResponse(c, requests, err)
		return nil
	})
}

// HandleListAll returns one admin page of requests.
// GET /api/requests
func (h *RequestHandler) HandleListAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)

		result, err := h.requestService.ListAll(c.Context(), c.Query("status"), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleUpdate moves a request through its lifecycle. Admin only.
// PUT /api/requests/:id
func (h *RequestHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input requestdto.UpdateRequestInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		request, err := h.requestService.UpdateStatus(c.Context(), id, &input)
		h.HandleResponse(c, request, err)
		return nil
	})
}

// HandleRelayPurchase sends a purchase inquiry to the mod's contact address.
// POST /api/purchase/request/:modId
func (h *RequestHandler) HandleRelayPurchase(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		modID, err := h.ParseObjectID(c, "modId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		buyer, ok := c.Locals("user").(authmodels.User)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		var input requestdto.PurchaseMessageInput
		if len(c.Body()) > 0 {
			if err := h.ParseRequestBody(c, &input); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}

		err = h.requestService.RelayPurchase(c.Context(), modID, buyer, input.Message)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"message": "Purchase request sent"}, nil)
		return nil
	})
}
