// Package cataloghdl - HTTP handlers for games and categories. Reads are
// public; writes are admin only (enforced in the router).
package cataloghdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basehdl "github.com/InderX84/FarmX/internal/api/base/handler"
	catalogdto "github.com/InderX84/FarmX/internal/api/catalog/dto"
	models "github.com/InderX84/FarmX/internal/api/catalog/models"
	catalogsvc "github.com/InderX84/FarmX/internal/api/catalog/service"
)

// GameHandler serves the /api/games routes.
type GameHandler struct {
	*basehdl.BaseHandler[models.Game, catalogdto.CreateGameInput, catalogdto.UpdateGameInput]
	gameService *catalogsvc.GameService
}

// NewGameHandler creates a GameHandler.
func NewGameHandler(gameService *catalogsvc.GameService) *GameHandler {
	return &GameHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Game, catalogdto.CreateGameInput, catalogdto.UpdateGameInput](gameService),
		gameService: gameService,
	}
}

// HandleList returns all games sorted by name.
// GET /api/games
func (h *GameHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
		data, err := h.gameService.Find(c.Context(), nil, opts)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleCreate creates a game. Duplicate names return 400.
// POST /api/games
func (h *GameHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.CreateGameInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		game, err := h.gameService.Create(c.Context(), models.Game{
			Name:      input.Name,
			ShortName: input.ShortName,
			Image:     input.Image,
		})
		h.HandleResponse(c, game, err)
		return nil
	})
}

// CategoryHandler serves the /api/categories routes.
type CategoryHandler struct {
	*basehdl.BaseHandler[models.Category, catalogdto.CreateCategoryInput, catalogdto.UpdateCategoryInput]
	categoryService *catalogsvc.CategoryService
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(categoryService *catalogsvc.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Category, catalogdto.CreateCategoryInput, catalogdto.UpdateCategoryInput](categoryService),
		categoryService: categoryService,
	}
}

// HandleList returns all categories sorted by name.
// GET /api/categories
func (h *CategoryHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
		data, err := h.categoryService.Find(c.Context(), nil, opts)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleCreate creates a category. Duplicate names return 400.
// POST /api/categories
func (h *CategoryHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.CreateCategoryInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		category, err := h.categoryService.Create(c.Context(), models.Category{
			Name:        input.Name,
			Description: input.Description,
			Icon:        input.Icon,
		})
		h.HandleResponse(c, category, err)
		return nil
	})
}
