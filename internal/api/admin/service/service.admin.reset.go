package adminsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	authmodels "github.com/InderX84/FarmX/internal/api/auth/models"
	catalogsvc "github.com/InderX84/FarmX/internal/api/catalog/service"
	"github.com/InderX84/FarmX/internal/common"
	"github.com/InderX84/FarmX/internal/global"
)

// ResetService wipes marketplace data and reseeds the default catalog.
type ResetService struct {
	gameService     *catalogsvc.GameService
	categoryService *catalogsvc.CategoryService
}

// NewResetService creates a ResetService.
func NewResetService(gameService *catalogsvc.GameService, categoryService *catalogsvc.CategoryService) *ResetService {
	return &ResetService{
		gameService:     gameService,
		categoryService: categoryService,
	}
}

// ResetDatabase deletes mods, catalog data, mod requests, purchase requests,
// notifications and all non-admin users, then reseeds the default categories
// and games. Admin accounts and settings survive.
func (s *ResetService) ResetDatabase(ctx context.Context) (map[string]int64, error) {
	wiped := make(map[string]int64)

	fullWipe := []string{
		global.ColNames.Mods,
		global.ColNames.Categories,
		global.ColNames.ModRequests,
		global.ColNames.Games,
		global.ColNames.Requests,
		global.ColNames.Notifications,
	}

	for _, name := range fullWipe {
		collection, exist := global.RegistryCollections.Get(name)
		if !exist {
			return nil, fmt.Errorf("failed to get %s collection: %v", name, common.ErrNotFound)
		}
		count, err := deleteAll(ctx, collection, bson.D{})
		if err != nil {
			return nil, err
		}
		wiped[name] = count
	}

	userCollection, exist := global.RegistryCollections.Get(global.ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	count, err := deleteAll(ctx, userCollection, bson.M{"role": bson.M{"$ne": authmodels.RoleAdmin}})
	if err != nil {
		return nil, err
	}
	wiped[global.ColNames.Users] = count

	if err := catalogsvc.SeedDefaults(ctx, s.gameService, s.categoryService); err != nil {
		return nil, err
	}

	logrus.WithField("wiped", wiped).Warn("Database reset executed")
	return wiped, nil
}

func deleteAll(ctx context.Context, collection *mongo.Collection, filter interface{}) (int64, error) {
	result, err := collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}
