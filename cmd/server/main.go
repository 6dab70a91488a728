package main

import (
	"context"
	"fmt"
	"time"

	adminhdl "github.com/InderX84/FarmX/internal/api/admin/handler"
	adminsvc "github.com/InderX84/FarmX/internal/api/admin/service"
	authhdl "github.com/InderX84/FarmX/internal/api/auth/handler"
	authsvc "github.com/InderX84/FarmX/internal/api/auth/service"
	cataloghdl "github.com/InderX84/FarmX/internal/api/catalog/handler"
	catalogsvc "github.com/InderX84/FarmX/internal/api/catalog/service"
	modhdl "github.com/InderX84/FarmX/internal/api/mod/handler"
	modsvc "github.com/InderX84/FarmX/internal/api/mod/service"
	modrequesthdl "github.com/InderX84/FarmX/internal/api/modrequest/handler"
	modrequestsvc "github.com/InderX84/FarmX/internal/api/modrequest/service"
	notificationhdl "github.com/InderX84/FarmX/internal/api/notification/handler"
	notificationsvc "github.com/InderX84/FarmX/internal/api/notification/service"
	requesthdl "github.com/InderX84/FarmX/internal/api/request/handler"
	requestsvc "github.com/InderX84/FarmX/internal/api/request/service"
	"github.com/InderX84/FarmX/internal/api/router"
	userhdl "github.com/InderX84/FarmX/internal/api/user/handler"
	usersvc "github.com/InderX84/FarmX/internal/api/user/service"
	"github.com/InderX84/FarmX/internal/global"
	"github.com/InderX84/FarmX/internal/logger"
	"github.com/InderX84/FarmX/internal/mailer"
	"github.com/InderX84/FarmX/internal/storage"
	"github.com/InderX84/FarmX/internal/worker"
)

func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger initialized")
}

// buildHandlers constructs the service and handler graph. The catalog
// services are returned as well so the default data seeding can reuse them.
func buildHandlers() (*router.Handlers, *catalogsvc.GameService, *catalogsvc.CategoryService, error) {
	log := logger.GetAppLogger()

	mail := mailer.NewMailer(global.ServerConfig)
	if mail == nil {
		log.Warn("SMTP not configured, outbound email disabled")
	}

	store, err := storage.NewStore(global.ServerConfig)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}
	if store == nil {
		log.Warn("Object storage not configured, file uploads disabled")
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to prepare storage bucket: %w", err)
		}
	}

	authService, err := authsvc.NewUserService(mail)
	if err != nil {
		return nil, nil, nil, err
	}
	gameService, err := catalogsvc.NewGameService()
	if err != nil {
		return nil, nil, nil, err
	}
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, nil, nil, err
	}
	notificationService, err := notificationsvc.NewNotificationService()
	if err != nil {
		return nil, nil, nil, err
	}
	modService, err := modsvc.NewModService(gameService, notificationService, store, mail)
	if err != nil {
		return nil, nil, nil, err
	}
	modRequestService, err := modrequestsvc.NewModRequestService(notificationService, store)
	if err != nil {
		return nil, nil, nil, err
	}
	requestService, err := requestsvc.NewRequestService(mail)
	if err != nil {
		return nil, nil, nil, err
	}
	userService, err := usersvc.NewUserService()
	if err != nil {
		return nil, nil, nil, err
	}
	settingService, err := adminsvc.NewSettingService()
	if err != nil {
		return nil, nil, nil, err
	}
	resetService := adminsvc.NewResetService(gameService, categoryService)

	return &router.Handlers{
		Auth:          authhdl.NewUserHandler(authService),
		Mods:          modhdl.NewModHandler(modService),
		Games:         cataloghdl.NewGameHandler(gameService),
		Categories:    cataloghdl.NewCategoryHandler(categoryService),
		ModRequests:   modrequesthdl.NewModRequestHandler(modRequestService),
		Requests:      requesthdl.NewRequestHandler(requestService),
		Notifications: notificationhdl.NewNotificationHandler(notificationService),
		Users:         userhdl.NewUserHandler(userService),
		Admin:         adminhdl.NewAdminHandler(settingService, resetService),
		Settings:      settingService,
	}, gameService, categoryService, nil
}

func main() {
	initLogger()
	InitGlobal()
	InitRegistry()

	log := logger.GetAppLogger()

	handlers, gameService, categoryService, err := buildHandlers()
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	InitDefaultData(gameService, categoryService)

	cleanupWorker, err := worker.NewCleanupWorker()
	if err != nil {
		log.WithError(err).Error("Failed to create cleanup worker, continuing without it")
	} else {
		workerCtx, cancelWorker := context.WithCancel(context.Background())
		defer cancelWorker()
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.WithField("panic", r).Error("Cleanup worker crashed")
				}
			}()
			cleanupWorker.Start(workerCtx)
		}()
	}

	app := InitFiberApp(handlers)

	address := global.ServerConfig.Address
	log.WithField("address", address).Info("Starting server")
	if err := app.Listen(address); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
