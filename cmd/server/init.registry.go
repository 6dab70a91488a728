package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/InderX84/FarmX/config"
	"github.com/InderX84/FarmX/internal/database"
	"github.com/InderX84/FarmX/internal/global"
)

// InitRegistry registers the MongoDB collections and makes sure their
// indexes exist.
func InitRegistry() {
	if err := InitCollections(global.MongoDB_Session, global.ServerConfig); err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	if _, err := global.RegistryDatabase.Register(global.ServerConfig.MongoDB_DBName, db); err != nil {
		logrus.Warnf("Failed to register database handle: %v", err)
	}

	if err := database.EnsureIndexes(ctx, db); err != nil {
		logrus.Fatalf("Failed to ensure indexes: %v", err)
	}
	logrus.Info("Ensured MongoDB indexes")
}

// InitCollections registers every collection in the global registry.
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.ColNames.Users,
		global.ColNames.Mods,
		global.ColNames.Games,
		global.ColNames.Categories,
		global.ColNames.ModRequests,
		global.ColNames.Requests,
		global.ColNames.Notifications,
		global.ColNames.Settings,
	}

	for _, name := range colNames {
		if _, err := global.RegistryCollections.Register(name, db.Collection(name)); err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}
	}

	return nil
}
