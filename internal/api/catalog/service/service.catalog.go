// Package catalogsvc - services for games and categories.
package catalogsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/InderX84/FarmX/internal/api/base/service"
	models "github.com/InderX84/FarmX/internal/api/catalog/models"
	"github.com/InderX84/FarmX/internal/common"
	"github.com/InderX84/FarmX/internal/global"
)

// Default catalog entries, created when the collections are empty.
var (
	DefaultCategories = []models.Category{
		{Name: "Tractors", Description: "Tractors of every size and brand"},
		{Name: "Vehicles", Description: "Trucks, cars and other vehicles"},
		{Name: "Maps", Description: "Custom maps and terrains"},
		{Name: "Tools", Description: "Implements, trailers and equipment"},
		{Name: "Other", Description: "Everything else"},
	}

	DefaultGames = []models.Game{
		{Name: "Farming Simulator 22", ShortName: "FS22"},
		{Name: "Farming Simulator 19", ShortName: "FS19"},
	}
)

// GameService manages the games collection.
type GameService struct {
	*basesvc.BaseServiceMongoImpl[models.Game]
}

// NewGameService creates a GameService.
func NewGameService() (*GameService, error) {
	gameCollection, exist := global.RegistryCollections.Get(global.ColNames.Games)
	if !exist {
		return nil, fmt.Errorf("failed to get games collection: %v", common.ErrNotFound)
	}
	return &GameService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Game](gameCollection),
	}, nil
}

// Create inserts a game. A taken name is a client error, not a conflict.
func (s *GameService) Create(ctx context.Context, game models.Game) (models.Game, error) {
	var zero models.Game
	exists, err := s.DocumentExists(ctx, bson.M{"name": game.Name})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, nameTakenError("game")
	}
	created, err := s.InsertOne(ctx, game)
	return created, duplicateNameToBadRequest(err, "game")
}

// FindByName looks a game up by its name or short name.
func (s *GameService) FindByName(ctx context.Context, name string) (models.Game, error) {
	return s.FindOne(ctx, bson.M{"$or": bson.A{
		bson.M{"name": name},
		bson.M{"shortName": name},
	}}, nil)
}

// CategoryService manages the categories collection.
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.Category]
}

// NewCategoryService creates a CategoryService.
func NewCategoryService() (*CategoryService, error) {
	categoryCollection, exist := global.RegistryCollections.Get(global.ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Category](categoryCollection),
	}, nil
}

// Create inserts a category. A taken name is a client error, not a conflict.
func (s *CategoryService) Create(ctx context.Context, category models.Category) (models.Category, error) {
	var zero models.Category
	exists, err := s.DocumentExists(ctx, bson.M{"name": category.Name})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, nameTakenError("category")
	}
	created, err := s.InsertOne(ctx, category)
	return created, duplicateNameToBadRequest(err, "category")
}

func nameTakenError(what string) error {
	return common.NewError(common.ErrCodeValidationInput,
		fmt.Sprintf("A %s with this name already exists", what),
		common.StatusBadRequest, nil)
}

// duplicateNameToBadRequest maps a unique-index violation on insert to the
// same 400 the precheck returns, covering the race between the two.
func duplicateNameToBadRequest(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, common.ErrMongoDuplicate) || errors.Is(err, common.ErrDuplicate) {
		return nameTakenError(what)
	}
	return err
}

// SeedDefaults inserts the default games and categories that do not exist
// yet. Safe to call on every start.
func SeedDefaults(ctx context.Context, games *GameService, categories *CategoryService) error {
	for _, category := range DefaultCategories {
		exists, err := categories.DocumentExists(ctx, bson.M{"name": category.Name})
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := categories.InsertOne(ctx, category); err != nil && !errors.Is(err, common.ErrMongoDuplicate) {
			return err
		}
		logrus.WithField("category", category.Name).Info("Seeded default category")
	}

	for _, game := range DefaultGames {
		exists, err := games.DocumentExists(ctx, bson.M{"name": game.Name})
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := games.InsertOne(ctx, game); err != nil && !errors.Is(err, common.ErrMongoDuplicate) {
			return err
		}
		logrus.WithField("game", game.Name).Info("Seeded default game")
	}

	return nil
}
