// Package modrequestsvc - community mod requests: listing, voting and status
// transitions.
package modrequestsvc

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/InderX84/FarmX/internal/api/base/service"
	modsvc "github.com/InderX84/FarmX/internal/api/mod/service"
	modrequestdto "github.com/InderX84/FarmX/internal/api/modrequest/dto"
	models "github.com/InderX84/FarmX/internal/api/modrequest/models"
	notificationmodels "github.com/InderX84/FarmX/internal/api/notification/models"
	notificationsvc "github.com/InderX84/FarmX/internal/api/notification/service"
	"github.com/InderX84/FarmX/internal/common"
	"github.com/InderX84/FarmX/internal/global"
	"github.com/InderX84/FarmX/internal/storage"
)

// ModRequestService manages the mod_requests collection.
type ModRequestService struct {
	*basesvc.BaseServiceMongoImpl[models.ModRequest]
	notificationService *notificationsvc.NotificationService
	store               *storage.Store
}

// NewModRequestService creates a ModRequestService. store may be nil; image
// uploads are then skipped.
func NewModRequestService(notificationService *notificationsvc.NotificationService, store *storage.Store) (*ModRequestService, error) {
	modRequestCollection, exist := global.RegistryCollections.Get(global.ColNames.ModRequests)
	if !exist {
		return nil, fmt.Errorf("failed to get mod_requests collection: %v", common.ErrNotFound)
	}

	return &ModRequestService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ModRequest](modRequestCollection),
		notificationService:  notificationService,
		store:                store,
	}, nil
}

// List returns all requests, most wanted first.
func (s *ModRequestService) List(ctx context.Context) ([]models.ModRequest, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "voteCount", Value: -1},
		{Key: "createdAt", Value: -1},
	})
	return s.Find(ctx, nil, opts)
}

// Create stores a new request. The image upload is best effort.
func (s *ModRequestService) Create(ctx context.Context, userID primitive.ObjectID, input *modrequestdto.CreateModRequestInput, image *modsvc.Upload) (models.ModRequest, error) {
	request := models.ModRequest{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Status:      models.StatusPending,
		Votes:       []primitive.ObjectID{},
		VoteCount:   0,
		CreatedBy:   userID,
	}

	if image != nil && s.store != nil {
		if err := modsvc.ValidateImage(image.ContentType, int64(len(image.Data))); err != nil {
			return models.ModRequest{}, err
		}
		key := fmt.Sprintf("farmx/images/%s%s", primitive.NewObjectID().Hex(), strings.ToLower(path.Ext(image.Filename)))
		imageURL, err := s.store.Upload(ctx, key, image.Data, image.ContentType)
		if err != nil {
			logrus.WithError(err).Warn("Mod request image upload failed, continuing without it")
		} else {
			request.Image = imageURL
		}
	}

	return s.InsertOne(ctx, request)
}

// Vote toggles the caller's vote and keeps voteCount in sync with the votes
// array.
func (s *ModRequestService) Vote(ctx context.Context, id, userID primitive.ObjectID) (models.ModRequest, error) {
	request, err := s.FindOneById(ctx, id)
	if err != nil {
		return models.ModRequest{}, err
	}

	votes, _ := models.ToggleVote(request.Votes, userID)

	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"votes":     votes,
			"voteCount": len(votes),
		},
	})
}

// SetStatus transitions a request. Completing stores the download link and
// notifies the requester.
func (s *ModRequestService) SetStatus(ctx context.Context, id primitive.ObjectID, input *modrequestdto.UpdateModRequestStatusInput) (models.ModRequest, error) {
	var zero models.ModRequest

	if !models.ValidStatus(input.Status) {
		return zero, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Unknown status %q", input.Status), common.StatusBadRequest, nil)
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"status": input.Status},
	}
	if input.Status == models.StatusCompleted && input.DownloadLink != "" {
		update.Set["downloadLink"] = input.DownloadLink
	}

	request, err := s.UpdateById(ctx, id, update)
	if err != nil {
		return zero, err
	}

	if input.Status == models.StatusCompleted {
		s.notificationService.NotifyAsync(request.CreatedBy,
			notificationmodels.TypeRequestCompleted,
			"Mod request completed",
			fmt.Sprintf("Your request %q has been completed.", request.Title),
			"/mod-requests")
	}

	return request, nil
}
