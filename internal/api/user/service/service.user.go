// Package usersvc - public stats, profiles, dashboards and user
// administration.
package usersvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "github.com/InderX84/FarmX/internal/api/auth/models"
	basemodels "github.com/InderX84/FarmX/internal/api/base/models"
	basesvc "github.com/InderX84/FarmX/internal/api/base/service"
	modmodels "github.com/InderX84/FarmX/internal/api/mod/models"
	requestmodels "github.com/InderX84/FarmX/internal/api/request/models"
	userdto "github.com/InderX84/FarmX/internal/api/user/dto"
	"github.com/InderX84/FarmX/internal/common"
	"github.com/InderX84/FarmX/internal/global"
)

// UserService manages profile and administration reads over the users, mods
// and requests collections.
type UserService struct {
	*basesvc.BaseServiceMongoImpl[authmodels.User]
	modService     *basesvc.BaseServiceMongoImpl[modmodels.Mod]
	requestService *basesvc.BaseServiceMongoImpl[requestmodels.Request]
}

// NewUserService creates a UserService.
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	modCollection, exist := global.RegistryCollections.Get(global.ColNames.Mods)
	if !exist {
		return nil, fmt.Errorf("failed to get mods collection: %v", common.ErrNotFound)
	}
	requestCollection, exist := global.RegistryCollections.Get(global.ColNames.Requests)
	if !exist {
		return nil, fmt.Errorf("failed to get requests collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[authmodels.User](userCollection),
		modService:           basesvc.NewBaseServiceMongo[modmodels.Mod](modCollection),
		requestService:       basesvc.NewBaseServiceMongo[requestmodels.Request](requestCollection),
	}, nil
}

// SiteStats is the public landing-page counter pair.
type SiteStats struct {
	TotalUsers int64 `json:"totalUsers"`
	TotalMods  int64 `json:"totalMods"`
}

// Stats returns public site totals. Only approved mods count.
func (s *UserService) Stats(ctx context.Context) (*SiteStats, error) {
	totalUsers, err := s.CountDocuments(ctx, nil)
	if err != nil {
		return nil, err
	}
	totalMods, err := s.modService.CountDocuments(ctx, bson.M{"status": modmodels.StatusApproved})
	if err != nil {
		return nil, err
	}
	return &SiteStats{TotalUsers: totalUsers, TotalMods: totalMods}, nil
}

// UpdateProfile applies a partial profile update. Unique indexes reject
// duplicate usernames or emails.
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input *userdto.UpdateProfileInput) (authmodels.PublicUser, error) {
	user, err := s.UpdateById(ctx, userID, input)
	if err != nil {
		return authmodels.PublicUser{}, err
	}
	return user.Public(), nil
}

// MyMods returns the user's own mods, newest first and regardless of status.
func (s *UserService) MyMods(ctx context.Context, userID primitive.ObjectID) ([]modmodels.Mod, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.modService.Find(ctx, bson.M{"createdBy": userID}, opts)
}

// DashboardStats assembles the role-dependent dashboard block.
func (s *UserService) DashboardStats(ctx context.Context, user authmodels.User) (map[string]interface{}, error) {
	switch user.Role {
	case authmodels.RoleAdmin:
		return s.adminDashboard(ctx)
	case authmodels.RoleCreator:
		return s.creatorDashboard(ctx, user.ID)
	default:
		return s.userDashboard(ctx, user.ID)
	}
}

func (s *UserService) adminDashboard(ctx context.Context) (map[string]interface{}, error) {
	totalUsers, err := s.CountDocuments(ctx, nil)
	if err != nil {
		return nil, err
	}
	totalMods, err := s.modService.CountDocuments(ctx, nil)
	if err != nil {
		return nil, err
	}
	pendingMods, err := s.modService.CountDocuments(ctx, bson.M{"status": modmodels.StatusPending})
	if err != nil {
		return nil, err
	}
	pendingRequests, err := s.requestService.CountDocuments(ctx, bson.M{"status": requestmodels.StatusPending})
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"role":            authmodels.RoleAdmin,
		"totalUsers":      totalUsers,
		"totalMods":       totalMods,
		"pendingMods":     pendingMods,
		"pendingRequests": pendingRequests,
	}, nil
}

func (s *UserService) creatorDashboard(ctx context.Context, userID primitive.ObjectID) (map[string]interface{}, error) {
	totalMods, err := s.modService.CountDocuments(ctx, bson.M{"createdBy": userID})
	if err != nil {
		return nil, err
	}
	approvedMods, err := s.modService.CountDocuments(ctx, bson.M{"createdBy": userID, "status": modmodels.StatusApproved})
	if err != nil {
		return nil, err
	}
	pendingMods, err := s.modService.CountDocuments(ctx, bson.M{"createdBy": userID, "status": modmodels.StatusPending})
	if err != nil {
		return nil, err
	}

	// Sum of the downloads counter across the creator's mods.
	var totalDownloads int64
	mods, err := s.modService.Find(ctx, bson.M{"createdBy": userID}, nil)
	if err != nil {
		return nil, err
	}
	for _, mod := range mods {
		totalDownloads += mod.Downloads
	}

	return map[string]interface{}{
		"role":           authmodels.RoleCreator,
		"totalMods":      totalMods,
		"approvedMods":   approvedMods,
		"pendingMods":    pendingMods,
		"totalDownloads": totalDownloads,
	}, nil
}

func (s *UserService) userDashboard(ctx context.Context, userID primitive.ObjectID) (map[string]interface{}, error) {
	totalRequests, err := s.requestService.CountDocuments(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, err
	}
	openRequests, err := s.requestService.CountDocuments(ctx, bson.M{
		"user":   userID,
		"status": bson.M{"$in": bson.A{requestmodels.StatusPending, requestmodels.StatusInProgress}},
	})
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"role":          authmodels.RoleUser,
		"totalRequests": totalRequests,
		"openRequests":  openRequests,
	}, nil
}

// ListUsers returns one admin page of users, newest first.
func (s *UserService) ListUsers(ctx context.Context, page, limit int64) (*basemodels.PaginateResult[authmodels.PublicUser], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	result, err := s.FindWithPagination(ctx, nil, page, limit, opts)
	if err != nil {
		return nil, err
	}

	public := make([]authmodels.PublicUser, 0, len(result.Items))
	for _, user := range result.Items {
		public = append(public, user.Public())
	}

	return &basemodels.PaginateResult[authmodels.PublicUser]{
		Items:     public,
		Page:      result.Page,
		Limit:     result.Limit,
		ItemCount: result.ItemCount,
		Total:     result.Total,
		TotalPage: result.TotalPage,
	}, nil
}

// AdminUpdate changes a user's role or active flag.
func (s *UserService) AdminUpdate(ctx context.Context, id primitive.ObjectID, input *userdto.AdminUpdateUserInput) (authmodels.PublicUser, error) {
	user, err := s.UpdateById(ctx, id, input)
	if err != nil {
		return authmodels.PublicUser{}, err
	}
	return user.Public(), nil
}
