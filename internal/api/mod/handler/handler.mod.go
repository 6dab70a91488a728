// Package modhdl - HTTP handlers for the mod routes.
package modhdl

import (
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	authmodels "github.com/InderX84/FarmX/internal/api/auth/models"
	basehdl "github.com/InderX84/FarmX/internal/api/base/handler"
	moddto "github.com/InderX84/FarmX/internal/api/mod/dto"
	models "github.com/InderX84/FarmX/internal/api/mod/models"
	modsvc "github.com/InderX84/FarmX/internal/api/mod/service"
	"github.com/InderX84/FarmX/internal/common"
)

// ModHandler serves the /api/mods routes.
type ModHandler struct {
	*basehdl.BaseHandler[models.Mod, moddto.CreateModInput, moddto.UpdateModInput]
	modService *modsvc.ModService
}

// NewModHandler creates a ModHandler.
func NewModHandler(modService *modsvc.ModService) *ModHandler {
	return &ModHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Mod, moddto.CreateModInput, moddto.UpdateModInput](modService),
		modService:  modService,
	}
}

// HandleList returns one page of mods.
// GET /api/mods
func (h *ModHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		query := parseListQuery(c)
		result, err := h.modService.List(c.Context(), query)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleCreate publishes a new mod from a multipart form.
// POST /api/mods
func (h *ModHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		creator, ok := c.Locals("user").(authmodels.User)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		input := moddto.CreateModInput{
			Title:        strings.TrimSpace(c.FormValue("title")),
			Description:  strings.TrimSpace(c.FormValue("description")),
			Version:      c.FormValue("version"),
			Tags:         c.FormValue("tags"),
			GameName:     c.FormValue("gameName"),
			Category:     c.FormValue("category"),
			DownloadLink: c.FormValue("downloadLink"),
			IsFree:       c.FormValue("isFree") == "true",
			ContactEmail: c.FormValue("contactEmail"),
		}
		if priceStr := c.FormValue("price"); priceStr != "" {
			price, err := strconv.ParseFloat(priceStr, 64)
			if err != nil || price < 0 {
				h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput,
					"Invalid price", common.StatusBadRequest, nil))
				return nil
			}
			input.Price = price
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		archive, err := readOptionalUpload(c, "modFile")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		images, err := readImageUploads(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		mod, err := h.modService.Create(c.Context(), creator, &input, archive, images)
		h.HandleResponse(c, mod, err)
		return nil
	})
}

// HandleUpdate edits a mod. Owner or admin only.
// PUT /api/mods/:id
func (h *ModHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		actor, ok := c.Locals("user").(authmodels.User)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		var input moddto.UpdateModInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		mod, err := h.modService.Update(c.Context(), id, actor, &input)
		h.HandleResponse(c, mod, err)
		return nil
	})
}

// HandleDelete removes a mod. Owner or admin only.
// DELETE /api/mods/:id
func (h *ModHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		actor, ok := c.Locals("user").(authmodels.User)
		if !ok {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		err = h.modService.Delete(c.Context(), id, actor)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"message": "Mod deleted"}, nil)
		return nil
	})
}

// HandleDownload counts a download and returns the download URL.
// POST /api/mods/:id/download
func (h *ModHandler) HandleDownload(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		url, err := h.modService.Download(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"downloadUrl": url}, nil)
		return nil
	})
}

// HandleUpdateStatus moves a mod through moderation. Admin only.
// PATCH /api/mods/:id/status
func (h *ModHandler) HandleUpdateStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input moddto.UpdateStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		mod, err := h.modService.SetStatus(c.Context(), id, input.Status, input.Reason)
		h.HandleResponse(c, mod, err)
		return nil
	})
}

// HandleRate stores or replaces the caller's rating.
// POST /api/mods/:id/rating
func (h *ModHandler) HandleRate(c fiber.Ctx) error {
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

		var input moddto.RateModInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		mod, err := h.modService.Rate(c.Context(), id, userID, &input)
		h.HandleResponse(c, mod, err)
		return nil
	})
}

// parseListQuery reads the supported query parameters of the list endpoint.
func parseListQuery(c fiber.Ctx) *moddto.ListModsQuery {
	query := &moddto.ListModsQuery{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		GameName: c.Query("gameName"),
		Type:     c.Query("type"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
		Order:    c.Query("order"),
	}
	if page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64); err == nil {
		query.Page = page
	}
	if limit, err := strconv.ParseInt(c.Query("limit", "12"), 10, 64); err == nil {
		query.Limit = limit
	}
	return query
}

// readOptionalUpload loads a single optional file field into memory.
func readOptionalUpload(c fiber.Ctx, field string) (*modsvc.Upload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	return readUpload(fileHeader)
}

// readImageUploads loads the images form field, capped before reading so a
// request cannot balloon memory.
func readImageUploads(c fiber.Ctx) ([]*modsvc.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	fileHeaders := form.File["images"]
	if len(fileHeaders) > modsvc.MaxImages {
		return nil, common.NewError(common.ErrCodeValidationInput,
			"Too many images", common.StatusBadRequest, nil)
	}

	var uploads []*modsvc.Upload
	for _, fileHeader := range fileHeaders {
		upload, err := readUpload(fileHeader)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}
	return uploads, nil
}

func readUpload(fileHeader *multipart.FileHeader) (*modsvc.Upload, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat,
			"Failed to read uploaded file", common.StatusBadRequest, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat,
			"Failed to read uploaded file", common.StatusBadRequest, err)
	}

	return &modsvc.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
