// Package modsvc - mod catalog: listing, publishing, moderation, downloads
// and ratings.
package modsvc

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "github.com/InderX84/FarmX/internal/api/auth/models"
	basesvc "github.com/InderX84/FarmX/internal/api/base/service"
	catalogsvc "github.com/InderX84/FarmX/internal/api/catalog/service"
	moddto "github.com/InderX84/FarmX/internal/api/mod/dto"
	models "github.com/InderX84/FarmX/internal/api/mod/models"
	notificationmodels "github.com/InderX84/FarmX/internal/api/notification/models"
	notificationsvc "github.com/InderX84/FarmX/internal/api/notification/service"
	"github.com/InderX84/FarmX/internal/common"
	"github.com/InderX84/FarmX/internal/global"
	"github.com/InderX84/FarmX/internal/mailer"
	"github.com/InderX84/FarmX/internal/storage"
	"github.com/InderX84/FarmX/internal/utility"
)

// Upload limits.
const (
	MaxArchiveSize = 100 << 20 // 100MB
	MaxImageSize   = 5 << 20   // 5MB
	MaxImages      = 5
)

var allowedArchiveExts = []string{".zip", ".rar", ".7z"}

// Upload is file content received from a multipart request.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ValidateArchive checks a mod archive against the upload policy.
func ValidateArchive(filename string, size int64) error {
	if size > MaxArchiveSize {
		return common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Mod file exceeds the %s limit", utility.FormatBytes(MaxArchiveSize)),
			common.StatusBadRequest, nil)
	}
	ext := strings.ToLower(path.Ext(filename))
	for _, allowed := range allowedArchiveExts {
		if ext == allowed {
			return nil
		}
	}
	return common.NewError(common.ErrCodeValidationInput,
		"Mod file must be a .zip, .rar or .7z archive",
		common.StatusBadRequest, nil)
}

// ValidateImage checks an image upload against the upload policy.
func ValidateImage(contentType string, size int64) error {
	if size > MaxImageSize {
		return common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Image exceeds the %s limit", utility.FormatBytes(MaxImageSize)),
			common.StatusBadRequest, nil)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return common.NewError(common.ErrCodeValidationInput,
			"Only image uploads are allowed", common.StatusBadRequest, nil)
	}
	return nil
}

// BuildListFilter converts list query parameters into a MongoDB filter and
// sort document.
func BuildListFilter(query *moddto.ListModsQuery) (bson.M, bson.D) {
	filter := bson.M{}

	status := query.Status
	if status == "" {
		status = models.StatusApproved
	}
	if status != "all" {
		filter["status"] = status
	}

	if query.Category != "" {
		if categoryID := utility.String2ObjectID(query.Category); !categoryID.IsZero() {
			filter["category"] = categoryID
		}
	}
	if query.GameName != "" {
		filter["gameName"] = query.GameName
	}
	switch query.Type {
	case "free":
		filter["isFree"] = true
	case "paid":
		filter["isFree"] = false
	}
	if query.Search != "" {
		filter["$text"] = bson.M{"$search": query.Search}
	}

	sortField := query.Sort
	switch sortField {
	case "downloads", "title", "price", "createdAt":
	case "rating":
		sortField = "rating.average"
	default:
		sortField = "createdAt"
	}
	order := -1
	if query.Order == "asc" {
		order = 1
	}

	return filter, bson.D{{Key: sortField, Value: order}}
}

// ModListResult is the page shape the mod list endpoint returns.
type ModListResult struct {
	Mods        []models.Mod `json:"mods"`
	TotalPages  int64        `json:"totalPages"`
	CurrentPage int64        `json:"currentPage"`
	Total       int64        `json:"total"`
}

// ModService manages the mods collection.
type ModService struct {
	*basesvc.BaseServiceMongoImpl[models.Mod]
	gameService         *catalogsvc.GameService
	userService         *basesvc.BaseServiceMongoImpl[authmodels.User]
	notificationService *notificationsvc.NotificationService
	store               *storage.Store
	mail                *mailer.Mailer
}

// NewModService creates a ModService. store and mail may be nil; uploads and
// outbound mail are then disabled.
func NewModService(gameService *catalogsvc.GameService, notificationService *notificationsvc.NotificationService, store *storage.Store, mail *mailer.Mailer) (*ModService, error) {
	modCollection, exist := global.RegistryCollections.Get(global.ColNames.Mods)
	if !exist {
		return nil, fmt.Errorf("failed to get mods collection: %v", common.ErrNotFound)
	}
	userCollection, exist := global.RegistryCollections.Get(global.ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &ModService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Mod](modCollection),
		gameService:          gameService,
		userService:          basesvc.NewBaseServiceMongo[authmodels.User](userCollection),
		notificationService:  notificationService,
		store:                store,
		mail:                 mail,
	}, nil
}

// List returns one page of mods matching the query.
func (s *ModService) List(ctx context.Context, query *moddto.ListModsQuery) (*ModListResult, error) {
	filter, sort := BuildListFilter(query)

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit <= 0 {
		limit = 12
	}

	opts := options.Find().SetSort(sort)
	result, err := s.FindWithPagination(ctx, filter, page, limit, opts)
	if err != nil {
		return nil, err
	}

	return &ModListResult{
		Mods:        result.Items,
		TotalPages:  result.TotalPage,
		CurrentPage: result.Page,
		Total:       result.Total,
	}, nil
}

// Create publishes a new mod. A mod needs either an uploaded archive or an
// external download link. Image upload failures are logged but do not fail
// the request; a failed archive upload does.
func (s *ModService) Create(ctx context.Context, creator authmodels.User, input *moddto.CreateModInput, archive *Upload, images []*Upload) (models.Mod, error) {
	var zero models.Mod

	if archive == nil && input.DownloadLink == "" {
		return zero, common.NewError(common.ErrCodeValidationInput,
			"Either a mod file or a download link is required",
			common.StatusBadRequest, nil)
	}
	if len(images) > MaxImages {
		return zero, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("At most %d images are allowed", MaxImages),
			common.StatusBadRequest, nil)
	}

	game, err := s.gameService.FindByName(ctx, input.GameName)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, common.NewError(common.ErrCodeValidationInput,
				fmt.Sprintf("Unknown game %q", input.GameName),
				common.StatusBadRequest, nil)
		}
		return zero, err
	}

	categoryID := utility.String2ObjectID(input.Category)
	if categoryID.IsZero() {
		return zero, common.NewError(common.ErrCodeValidationInput,
			"Invalid category id", common.StatusBadRequest, nil)
	}

	price := input.Price
	if input.IsFree {
		price = 0
	}

	status := models.StatusPending
	if creator.Role == authmodels.RoleAdmin {
		status = models.StatusApproved
	}

	mod := models.Mod{
		Title:        input.Title,
		Description:  input.Description,
		Version:      input.Version,
		Tags:         splitTags(input.Tags),
		Game:         game.ID,
		GameName:     game.Name,
		Category:     categoryID,
		DownloadLink: input.DownloadLink,
		IsFree:       input.IsFree,
		Price:        price,
		ContactEmail: input.ContactEmail,
		Status:       status,
		CreatedBy:    creator.ID,
	}

	if archive != nil {
		if err := ValidateArchive(archive.Filename, int64(len(archive.Data))); err != nil {
			return zero, err
		}
		if s.store == nil {
			return zero, common.NewError(common.ErrCodeBusinessOperation,
				"File uploads are disabled, provide a download link instead",
				common.StatusBadRequest, nil)
		}
		key := fmt.Sprintf("farmx/files/%s%s", primitive.NewObjectID().Hex(), strings.ToLower(path.Ext(archive.Filename)))
		fileURL, err := s.store.Upload(ctx, key, archive.Data, archive.ContentType)
		if err != nil {
			return zero, common.NewError(common.ErrCodeInternalServer,
				"Failed to store mod file", common.StatusInternalServerError, err)
		}
		mod.FileURL = fileURL
	}

	for _, image := range images {
		if err := ValidateImage(image.ContentType, int64(len(image.Data))); err != nil {
			return zero, err
		}
	}
	if s.store != nil {
		for _, image := range images {
			key := fmt.Sprintf("farmx/images/%s%s", primitive.NewObjectID().Hex(), strings.ToLower(path.Ext(image.Filename)))
			imageURL, err := s.store.Upload(ctx, key, image.Data, image.ContentType)
			if err != nil {
				logrus.WithError(err).WithField("image", image.Filename).Warn("Image upload failed, continuing without it")
				continue
			}
			mod.Images = append(mod.Images, imageURL)
		}
	}

	return s.InsertOne(ctx, mod)
}

// Update applies a partial update. Only the owner or an admin may edit.
func (s *ModService) Update(ctx context.Context, id primitive.ObjectID, actor authmodels.User, input *moddto.UpdateModInput) (models.Mod, error) {
	var zero models.Mod

	mod, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	if !canManage(mod, actor) {
		return zero, common.ErrNotAuthorized
	}

	return s.UpdateById(ctx, id, input)
}

// Delete removes a mod and its stored objects. Only the owner or an admin
// may delete; an admin deleting someone else's mod notifies the owner.
func (s *ModService) Delete(ctx context.Context, id primitive.ObjectID, actor authmodels.User) error {
	mod, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if !canManage(mod, actor) {
		return common.ErrNotAuthorized
	}

	if err := s.DeleteById(ctx, id); err != nil {
		return err
	}

	s.deleteObjectsAsync(mod)

	if actor.Role == authmodels.RoleAdmin && actor.ID != mod.CreatedBy {
		s.notificationService.NotifyAsync(mod.CreatedBy,
			notificationmodels.TypeModDeleted,
			"Mod removed",
			fmt.Sprintf("Your mod %q was removed by a moderator.", mod.Title),
			"")
	}

	return nil
}

// Download resolves the download URL for an approved mod and counts the
// download. Paid mods cannot be downloaded directly.
func (s *ModService) Download(ctx context.Context, id primitive.ObjectID) (string, error) {
	mod, err := s.FindOneById(ctx, id)
	if err != nil {
		return "", err
	}
	if mod.Status != models.StatusApproved {
		return "", common.ErrNotFound
	}
	if !mod.IsFree {
		return "", common.NewError(common.ErrCodeBusinessOperation,
			"Paid mods require a purchase request", common.StatusForbidden, nil)
	}

	updated, err := s.FindOneAndUpdate(ctx, bson.M{"_id": id}, &basesvc.UpdateData{
		Inc: map[string]interface{}{"downloads": 1},
	}, nil)
	if err != nil {
		return "", err
	}

	if updated.FileURL != "" {
		return updated.FileURL, nil
	}
	return updated.DownloadLink, nil
}

// SetStatus moves a mod through moderation and notifies the creator.
func (s *ModService) SetStatus(ctx context.Context, id primitive.ObjectID, status, reason string) (models.Mod, error) {
	var zero models.Mod

	if !models.ValidStatus(status) {
		return zero, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Unknown status %q", status), common.StatusBadRequest, nil)
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"status": status},
	}
	if status == models.StatusRejected && reason != "" {
		update.Set["rejectionReason"] = reason
	} else {
		update.Unset = map[string]interface{}{"rejectionReason": ""}
	}

	mod, err := s.UpdateById(ctx, id, update)
	if err != nil {
		return zero, err
	}

	s.notifyModeration(ctx, mod, status, reason)
	return mod, nil
}

// Rate stores or replaces the caller's rating and recomputes the aggregate.
func (s *ModService) Rate(ctx context.Context, id, userID primitive.ObjectID, input *moddto.RateModInput) (models.Mod, error) {
	var zero models.Mod

	mod, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	if mod.Status != models.StatusApproved {
		return zero, common.NewError(common.ErrCodeBusinessState,
			"Only approved mods can be rated", common.StatusBadRequest, nil)
	}

	ratings := models.ApplyRating(mod.Ratings, models.Rating{
		User:      userID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now().UnixMilli(),
	})

	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"ratings": ratings,
			"rating":  models.SummarizeRatings(ratings),
		},
	})
}

// canManage reports whether the actor owns the mod or is an admin.
func canManage(mod models.Mod, actor authmodels.User) bool {
	return actor.Role == authmodels.RoleAdmin || mod.CreatedBy == actor.ID
}

// splitTags turns a comma separated tag string into a trimmed slice.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

// notifyModeration writes an inbox entry and sends a best-effort email to
// the mod's creator.
func (s *ModService) notifyModeration(ctx context.Context, mod models.Mod, status, reason string) {
	ntype := notificationmodels.TypeModApproved
	title := "Mod approved"
	message := fmt.Sprintf("Your mod %q has been approved and is now live.", mod.Title)
	if status == models.StatusRejected {
		ntype = notificationmodels.TypeModRejected
		title = "Mod rejected"
		message = fmt.Sprintf("Your mod %q was rejected.", mod.Title)
		if reason != "" {
			message += " Reason: " + reason
		}
	} else if status == models.StatusPending {
		return
	}

	s.notificationService.NotifyAsync(mod.CreatedBy, ntype, title, message, "/mods/"+mod.ID.Hex())

	if s.mail == nil {
		return
	}
	creator, err := s.userService.FindOneById(ctx, mod.CreatedBy)
	if err != nil {
		logrus.WithError(err).Warn("Moderation mail skipped, creator not found")
		return
	}
	go func() {
		if err := s.mail.SendModerationNotice(creator.Email, creator.Username, mod.Title, status, reason); err != nil {
			logrus.WithFields(logrus.Fields{
				"mod":   mod.ID.Hex(),
				"email": creator.Email,
				"error": err.Error(),
			}).Error("Failed to send moderation notice")
		}
	}()
}

// deleteObjectsAsync removes stored archive and images, best effort.
func (s *ModService) deleteObjectsAsync(mod models.Mod) {
	if s.store == nil {
		return
	}
	go func() {
		urls := append([]string{mod.FileURL}, mod.Images...)
		for _, rawURL := range urls {
			key := s.store.KeyFromURL(rawURL)
			if key == "" {
				continue
			}
			if err := s.store.Delete(context.Background(), key); err != nil {
				logrus.WithError(err).WithField("key", key).Warn("Failed to delete stored object")
			}
		}
	}()
}
