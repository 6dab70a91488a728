// Package database - index definitions for the marketplace collections.
package database

import (
	"context"
	"strings"

	"github.com/InderX84/FarmX/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the query paths depend on. Safe to call
// on every start; existing indexes are skipped.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	// users: unique email and username
	users := db.Collection(global.ColNames.Users)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("user_email_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetName("user_username_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}
	// users: session token lookup on every authenticated request
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "token", Value: 1}},
		Options: options.Index().SetName("user_token").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// mods: text search over title, description and tags
	mods := db.Collection(global.ColNames.Mods)
	if _, err := mods.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "tags", Value: "text"},
		},
		Options: options.Index().SetName("mod_text_search"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}
	// mods: public listing filter (status, game, category)
	if _, err := mods.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "game", Value: 1},
			{Key: "category", Value: 1},
		},
		Options: options.Index().SetName("mod_status_game_category"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}
	// mods: creator dashboard listing
	if _, err := mods.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdBy", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("mod_creator_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// games and categories: unique names
	games := db.Collection(global.ColNames.Games)
	if _, err := games.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("game_name_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}
	categories := db.Collection(global.ColNames.Categories)
	if _, err := categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("category_name_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// mod_requests: listing by status and newest first
	modRequests := db.Collection(global.ColNames.ModRequests)
	if _, err := modRequests.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("mod_request_status_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// requests: purchase request inbox per mod owner
	requests := db.Collection(global.ColNames.Requests)
	if _, err := requests.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "mod", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("request_mod_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// notifications: per-user inbox, unread count
	notifications := db.Collection(global.ColNames.Notifications)
	if _, err := notifications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}, {Key: "isRead", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("notification_user_read_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// settings: unique key
	settings := db.Collection(global.ColNames.Settings)
	if _, err := settings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetName("setting_key_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
