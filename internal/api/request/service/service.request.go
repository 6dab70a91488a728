// Package requestsvc - purchase requests for paid mods and the purchase
// email relay.
package requestsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "github.com/InderX84/FarmX/internal/api/auth/models"
	basemodels "github.com/InderX84/FarmX/internal/api/base/models"
	basesvc "github.com/InderX84/FarmX/internal/api/base/service"
	modmodels "github.com/InderX84/FarmX/internal/api/mod/models"
	requestdto "github.com/InderX84/FarmX/internal/api/request/dto"
	models "github.com/InderX84/FarmX/internal/api/request/models"
	"github.com/InderX84/FarmX/internal/common"
	"github.com/InderX84/FarmX/internal/global"
	"github.com/InderX84/FarmX/internal/mailer"
	"github.com/InderX84/FarmX/internal/utility"
)

// RequestService manages the requests collection.
type RequestService struct {
	*basesvc.BaseServiceMongoImpl[models.Request]
	modService *basesvc.BaseServiceMongoImpl[modmodels.Mod]
	mail       *mailer.Mailer
}

// NewRequestService creates a RequestService. mail may be nil; the relay is
// then skipped.
func NewRequestService(mail *mailer.Mailer) (*RequestService, error) {
	requestCollection, exist := global.RegistryCollections.Get(global.ColNames.Requests)
	if !exist {
		return nil, fmt.Errorf("failed to get requests collection: %v", common.ErrNotFound)
	}
	modCollection, exist := global.RegistryCollections.Get(global.ColNames.Mods)
	if !exist {
		return nil, fmt.Errorf("failed to get mods collection: %v", common.ErrNotFound)
	}

	return &RequestService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Request](requestCollection),
		modService:           basesvc.NewBaseServiceMongo[modmodels.Mod](modCollection),
		mail:                 mail,
	}, nil
}

// loadPaidMod fetches a mod and verifies it is actually paid.
func (s *RequestService) loadPaidMod(ctx context.Context, modID primitive.ObjectID) (modmodels.Mod, error) {
	mod, err := s.modService.FindOneById(ctx, modID)
	if err != nil {
		return mod, err
	}
	if mod.IsFree {
		return mod, common.NewError(common.ErrCodeBusinessOperation,
			"This mod is free, download it directly", common.StatusBadRequest, nil)
	}
	return mod, nil
}

// Create stores a purchase request and relays it to the site admin by mail.
// A user can only hold one open request per mod.
func (s *RequestService) Create(ctx context.Context, buyer authmodels.User, input *requestdto.CreateRequestInput) (models.Request, error) {
	var zero models.Request

	modID := utility.String2ObjectID(input.ModID)
	if modID.IsZero() {
		return zero, common.ErrInvalidInput
	}

	mod, err := s.loadPaidMod(ctx, modID)
	if err != nil {
		return zero, err
	}

	open, err := s.DocumentExists(ctx, bson.M{
		"mod":    modID,
		"user":   buyer.ID,
		"status": bson.M{"$in": bson.A{models.StatusPending, models.StatusInProgress}},
	})
	if err != nil {
		return zero, err
	}
	if open {
		return zero, common.NewError(common.ErrCodeBusinessState,
			"You already have an open request for this mod", common.StatusBadRequest, nil)
	}

	request, err := s.InsertOne(ctx, models.Request{
		Mod:      modID,
		ModTitle: mod.Title,
		User:     buyer.ID,
		Message:  input.Message,
		Status:   models.StatusPending,
	})
	if err != nil {
		return zero, err
	}

	s.relayAsync(global.ServerConfig.AdminEmail, mod.Title, buyer, input.Message)
	return request, nil
}

// MyRequests returns the caller's requests, newest first.
func (s *RequestService) MyRequests(ctx context.Context, userID primitive.ObjectID) ([]models.Request, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.M{"user": userID}, opts)
}

// ListAll returns one admin page of requests, optionally filtered by status.
func (s *RequestService) ListAll(ctx context.Context, status string, page, limit int64) (*basemodels.PaginateResult[models.Request], error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// UpdateStatus moves a request through its lifecycle. Admin only.
func (s *RequestService) UpdateStatus(ctx context.Context, id primitive.ObjectID, input *requestdto.UpdateRequestInput) (models.Request, error) {
	var zero models.Request

	if !models.ValidStatus(input.Status) {
		return zero, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Unknown status %q", input.Status), common.StatusBadRequest, nil)
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"status": input.Status},
	}
	if input.AdminNotes != "" {
		update.Set["adminNotes"] = input.AdminNotes
	}

	return s.UpdateById(ctx, id, update)
}

// RelayPurchase sends a purchase inquiry for a paid mod to the mod's contact
// address, falling back to the configured admin address.
func (s *RequestService) RelayPurchase(ctx context.Context, modID primitive.ObjectID, buyer authmodels.User, message string) error {
	mod, err := s.loadPaidMod(ctx, modID)
	if err != nil {
		return err
	}

	recipient := mod.ContactEmail
	if recipient == "" {
		recipient = global.ServerConfig.AdminEmail
	}
	if recipient == "" {
		return common.NewError(common.ErrCodeBusinessOperation,
			"No contact address is configured for purchase requests",
			common.StatusServiceUnavailable, nil)
	}

	if s.mail == nil {
		return common.NewError(common.ErrCodeBusinessOperation,
			"Email delivery is not configured", common.StatusServiceUnavailable, nil)
	}

	if err := s.mail.SendPurchaseRequest(recipient, mod.Title, buyer.Username, buyer.Email, message); err != nil {
		return common.NewError(common.ErrCodeInternalServer,
			"Failed to send purchase request", common.StatusInternalServerError, err)
	}

	return nil
}

// relayAsync mails a copy of a stored request to the admin, best effort.
func (s *RequestService) relayAsync(recipient, modTitle string, buyer authmodels.User, message string) {
	if s.mail == nil || recipient == "" {
		return
	}
	go func() {
		if err := s.mail.SendPurchaseRequest(recipient, modTitle, buyer.Username, buyer.Email, message); err != nil {
			logrus.WithFields(logrus.Fields{
				"mod":   modTitle,
				"error": err.Error(),
			}).Error("Failed to relay purchase request")
		}
	}()
}
