package main

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	authmodels "github.com/InderX84/FarmX/internal/api/auth/models"
	basesvc "github.com/InderX84/FarmX/internal/api/base/service"
	catalogsvc "github.com/InderX84/FarmX/internal/api/catalog/service"
	"github.com/InderX84/FarmX/internal/common"
	"github.com/InderX84/FarmX/internal/global"
	"github.com/InderX84/FarmX/internal/logger"
	"github.com/InderX84/FarmX/internal/utility"
)

// InitDefaultData seeds the default catalog entries and, when configured,
// the default admin account.
func InitDefaultData(gameService *catalogsvc.GameService, categoryService *catalogsvc.CategoryService) {
	log := logger.GetAppLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := catalogsvc.SeedDefaults(ctx, gameService, categoryService); err != nil {
		log.Fatalf("Failed to seed default catalog data: %v", err)
	}
	log.Info("Default catalog data ready")

	if err := initDefaultAdmin(ctx); err != nil {
		log.Warnf("Failed to initialize default admin: %v", err)
	}
}

// initDefaultAdmin creates the admin account from DEFAULT_ADMIN_* when no
// admin exists yet. Without the env settings the first admin must be
// promoted by hand.
func initDefaultAdmin(ctx context.Context) error {
	cfg := global.ServerConfig
	log := logger.GetAppLogger()

	if cfg.DefaultAdminEmail == "" || cfg.DefaultAdminPassword == "" {
		log.Info("DEFAULT_ADMIN_EMAIL not set, skipping default admin")
		return nil
	}

	userCollection, exist := global.RegistryCollections.Get(global.ColNames.Users)
	if !exist {
		return errors.New("users collection not registered")
	}
	userService := basesvc.NewBaseServiceMongo[authmodels.User](userCollection)

	exists, err := userService.DocumentExists(ctx, bson.M{"role": authmodels.RoleAdmin})
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := utility.HashPassword(cfg.DefaultAdminPassword)
	if err != nil {
		return err
	}

	admin, err := userService.InsertOne(ctx, authmodels.User{
		Username:        cfg.DefaultAdminName,
		Email:           cfg.DefaultAdminEmail,
		Password:        hash,
		Role:            authmodels.RoleAdmin,
		IsEmailVerified: true,
		IsActive:        true,
	})
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil
		}
		return err
	}

	log.WithField("email", admin.Email).Info("Created default admin account")
	return nil
}
