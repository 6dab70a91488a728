// Package adminsvc - site administration: settings, maintenance mode and
// database reset.
package adminsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/InderX84/FarmX/internal/api/admin/models"
	basesvc "github.com/InderX84/FarmX/internal/api/base/service"
	"github.com/InderX84/FarmX/internal/common"
	"github.com/InderX84/FarmX/internal/global"
	"github.com/InderX84/FarmX/internal/utility"
)

// Maintenance flag reads go through a short-lived cache so the gate does not
// hit the database on every request.
const maintenanceCacheTTL = 5 * time.Second

const maintenanceCacheKey = "setting:" + models.SettingMaintenanceMode

// SettingService reads and writes site settings.
type SettingService struct {
	*basesvc.BaseServiceMongoImpl[models.Setting]
	cache *utility.Cache
}

// NewSettingService creates a SettingService.
func NewSettingService() (*SettingService, error) {
	settingCollection, exist := global.RegistryCollections.Get(global.ColNames.Settings)
	if !exist {
		return nil, fmt.Errorf("failed to get settings collection: %v", common.ErrNotFound)
	}

	return &SettingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Setting](settingCollection),
		cache:                utility.NewCache(maintenanceCacheTTL, time.Minute),
	}, nil
}

// MaintenanceEnabled reports whether maintenance mode is on. Reads are served
// from the cache for a few seconds; an unreadable flag counts as off so a
// database hiccup does not lock everyone out.
func (s *SettingService) MaintenanceEnabled(ctx context.Context) bool {
	if cached, ok := s.cache.Get(maintenanceCacheKey); ok {
		enabled, _ := cached.(bool)
		return enabled
	}

	setting, err := s.FindOne(ctx, bson.M{"key": models.SettingMaintenanceMode}, nil)
	enabled := err == nil && setting.BoolValue()

	s.cache.Set(maintenanceCacheKey, enabled)
	return enabled
}

// SetMaintenance persists the maintenance flag and refreshes the cache.
func (s *SettingService) SetMaintenance(ctx context.Context, enabled bool, updatedBy primitive.ObjectID) (models.Setting, error) {
	setting, err := s.Upsert(ctx, bson.M{"key": models.SettingMaintenanceMode}, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"key":       models.SettingMaintenanceMode,
			"value":     enabled,
			"updatedBy": updatedBy,
		},
	})
	if err != nil {
		return setting, err
	}

	s.cache.Set(maintenanceCacheKey, enabled)
	return setting, nil
}
