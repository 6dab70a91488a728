// Package modrequesthdl - HTTP handlers for community mod requests.
package modrequesthdl

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/InderX84/FarmX/internal/api/base/handler"
	modsvc "github.com/InderX84/FarmX/internal/api/mod/service"
	modrequestdto "github.com/InderX84/FarmX/internal/api/modrequest/dto"
	models "github.com/InderX84/FarmX/internal/api/modrequest/models"
	modrequestsvc "github.com/InderX84/FarmX/internal/api/modrequest/service"
	"github.com/InderX84/FarmX/internal/common"
)

// ModRequestHandler serves the /api/mod-requests routes.
type ModRequestHandler struct {
	*basehdl.BaseHandler[models.ModRequest, modrequestdto.CreateModRequestInput, modrequestdto.CreateModRequestInput]
	modRequestService *modrequestsvc.ModRequestService
}

// NewModRequestHandler creates a ModRequestHandler.
func NewModRequestHandler(modRequestService *modrequestsvc.ModRequestService) *ModRequestHandler {
	return &ModRequestHandler{
		BaseHandler:       basehdl.NewBaseHandler[models.ModRequest, modrequestdto.CreateModRequestInput, modrequestdto.CreateModRequestInput](modRequestService),
		modRequestService: modRequestService,
	}
}

// HandleList returns all requests, most wanted first.
// GET /api/mod-requests
func (h *ModRequestHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.modRequestService.List(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleCreate stores a new request from a multipart form with an optional
// image.
// POST /api/mod-requests
func (h *ModRequestHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := basehdl.CurrentUserID(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		input := modrequestdto.CreateModRequestInput{
			Title:       strings.TrimSpace(c.FormValue("title")),
			Description: strings.TrimSpace(c.FormValue("description")),
			Category:    c.FormValue("category"),
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var image *modsvc.Upload
		if fileHeader, err := c.FormFile("image"); err == nil {
			file, err := fileHeader.Open()
			if err != nil {
				h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat,
					"Failed to read uploaded image", common.StatusBadRequest, err))
				return nil
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat,
					"Failed to read uploaded image", common.StatusBadRequest, err))
				return nil
			}
			image = &modsvc.Upload{
				Filename:    fileHeader.Filename,
				ContentType: fileHeader.Header.Get("Content-Type"),
				Data:        data,
			}
		}

		request, err := h.modRequestService.Create(c.Context(), userID, &input, image)
		h.HandleResponse(c, request, err)
		return nil
	})
}

// HandleVote toggles the caller's vote.
// POST /api/mod-requests/:id/vote
func (h *ModRequestHandler) HandleVote(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		userID := basehdl.CurrentUserID(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		request, err := h.modRequestService.Vote(c.Context(), id, userID)
		h.HandleResponse(c, request, err)
		return nil
	})
}

// HandleUpdateStatus transitions a request. Admin only.
// PUT /api/mod-requests/:id/status
func (h *ModRequestHandler) HandleUpdateStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input modrequestdto.UpdateModRequestStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		request, err := h.modRequestService.SetStatus(c.Context(), id, &input)
		h.HandleResponse(c, request, err)
		return nil
	})
}
