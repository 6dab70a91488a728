package global

import (
	"github.com/InderX84/FarmX/config"
	"github.com/InderX84/FarmX/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionNames holds the MongoDB collection names used by the app.
type CollectionNames struct {
	Users         string // user accounts
	Mods          string // published and pending mods
	Games         string // supported games
	Categories    string // mod categories
	ModRequests   string // community mod requests
	Requests      string // purchase requests for paid mods
	Notifications string // per-user notifications
	Settings      string // key/value site settings (maintenance flag)
}

// Global state shared across packages.
var Validate *validator.Validate           // request validation
var MongoDB_Session *mongo.Client          // MongoDB connection
var ServerConfig *config.Configuration     // server configuration
var ColNames = CollectionNames{
	Users:         "users",
	Mods:          "mods",
	Games:         "games",
	Categories:    "categories",
	ModRequests:   "mod_requests",
	Requests:      "requests",
	Notifications: "notifications",
	Settings:      "settings",
}

// Registries for shared handles.
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()
