// Package worker - background maintenance jobs.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authmodels "github.com/InderX84/FarmX/internal/api/auth/models"
	basesvc "github.com/InderX84/FarmX/internal/api/base/service"
	"github.com/InderX84/FarmX/internal/common"
	"github.com/InderX84/FarmX/internal/global"
)

// CleanupWorker removes stale unverified accounts so abandoned registrations
// do not pile up and block their email addresses forever.
type CleanupWorker struct {
	userService *basesvc.BaseServiceMongoImpl[authmodels.User]
	interval    time.Duration // time between sweeps
	maxAge      time.Duration // how long an unverified account may live
}

// NewCleanupWorker creates a CleanupWorker with the default hourly sweep and
// a 24h grace period.
func NewCleanupWorker() (*CleanupWorker, error) {
	userCollection, exist := global.RegistryCollections.Get(global.ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &CleanupWorker{
		userService: basesvc.NewBaseServiceMongo[authmodels.User](userCollection),
		interval:    time.Hour,
		maxAge:      24 * time.Hour,
	}, nil
}

// Start runs the sweep loop until the context is cancelled. One sweep runs
// immediately on start.
func (w *CleanupWorker) Start(ctx context.Context) {
	logrus.WithFields(logrus.Fields{
		"interval": w.interval.String(),
		"max_age":  w.maxAge.String(),
	}).Info("Cleanup worker started")

	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Cleanup worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

// sweep deletes unverified accounts older than maxAge.
func (w *CleanupWorker) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-w.maxAge).UnixMilli()

	deleted, err := w.userService.DeleteMany(ctx, bson.M{
		"isEmailVerified": false,
		"createdAt":       bson.M{"$lt": cutoff},
	})
	if err != nil {
		logrus.WithError(err).Error("Cleanup sweep failed")
		return
	}
	if deleted > 0 {
		logrus.WithField("deleted", deleted).Info("Removed stale unverified accounts")
	}
}
