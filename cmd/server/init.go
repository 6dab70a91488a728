package main

import (
	"github.com/sirupsen/logrus"

	"github.com/InderX84/FarmX/config"
	"github.com/InderX84/FarmX/internal/database"
	"github.com/InderX84/FarmX/internal/global"
)

// InitGlobal fills the global state: validator, configuration and the
// MongoDB connection.
func InitGlobal() {
	initValidator()
	initConfig()
	initDatabaseMongoDB()
}

func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

func initConfig() {
	cfg := config.NewConfig()
	if cfg == nil {
		logrus.Fatal("Failed to load configuration")
	}
	global.ServerConfig = cfg
	logrus.Info("Initialized server configuration")
}

func initDatabaseMongoDB() {
	client, err := database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	global.MongoDB_Session = client
	logrus.Info("Connected to MongoDB")
}
