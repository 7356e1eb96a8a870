package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Jafre0912/ReactNativeFORM/docs"
	"github.com/Jafre0912/ReactNativeFORM/src/config"
	"github.com/Jafre0912/ReactNativeFORM/src/controllers"
	"github.com/Jafre0912/ReactNativeFORM/src/database"
	"github.com/Jafre0912/ReactNativeFORM/src/jobs"
	"github.com/Jafre0912/ReactNativeFORM/src/logger"
	"github.com/Jafre0912/ReactNativeFORM/src/middleware"
	"github.com/Jafre0912/ReactNativeFORM/src/repositories"
	"github.com/Jafre0912/ReactNativeFORM/src/routes"
	"github.com/Jafre0912/ReactNativeFORM/src/seeder"
	"github.com/Jafre0912/ReactNativeFORM/src/services/forms"
	"github.com/Jafre0912/ReactNativeFORM/src/services/responses"
	"github.com/Jafre0912/ReactNativeFORM/src/services/uploads"
	"github.com/Jafre0912/ReactNativeFORM/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

// @title        Form Builder API
// @version      1.0
// @description  Create forms, collect responses and upload images.
// @BasePath     /
func main() {
	cfg := config.Load()
	logOutput := logger.Init(cfg.Log)

	// เชื่อมต่อกับ MongoDB ถ้าไม่ได้ให้หยุดทันที
	mongoClient, db, err := database.ConnectMongoDB(cfg.MongoURI, cfg.MongoDBName, cfg.MongoTimeout)
	if err != nil {
		slog.Error("MongoDB connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	var formRepo repositories.FormRepository = repositories.NewMongoFormRepository(db)
	responseRepo := repositories.NewMongoResponseRepository(db)
	if err := responseRepo.EnsureIndexes(context.Background()); err != nil {
		slog.Warn("ensuring response indexes failed", slog.String("error", err.Error()))
	}

	var responseOpts []responses.Option
	var worker *asynq.Server
	var asynqClient *asynq.Client

	// Redis เป็น optional ถ้าไม่มีจะไม่มี cache และ job queue
	if cfg.RedisURI != "" {
		rdb, err := database.NewRedisClient(cfg.RedisURI)
		if err != nil {
			slog.Warn("Redis not available, running without cache and jobs", slog.String("error", err.Error()))
		} else {
			defer rdb.Close()
			formRepo = repositories.NewCachedFormRepository(formRepo, rdb, cfg.FormCacheTTL)
			activity := repositories.NewFormActivityStore(rdb)

			asynqClient = database.NewAsynqClient(cfg.RedisURI)
			defer asynqClient.Close()
			responseOpts = append(responseOpts,
				responses.WithNotifier(jobs.NewEnqueuer(asynqClient)),
				responses.WithActivity(activity))

			worker = jobs.NewServer(cfg.RedisURI)
			mux := asynq.NewServeMux()
			jobs.NewHandlers(activity).Register(mux)
			if err := worker.Start(mux); err != nil {
				slog.Error("starting job worker failed", slog.String("error", err.Error()))
				worker = nil
			}
			slog.Info("Redis cache and job worker enabled")
		}
	}

	formService := forms.NewService(formRepo)
	if cfg.SeedSampleData {
		if _, err := seeder.SeedSampleForms(context.Background(), formService); err != nil {
			slog.Error("seeding sample forms failed", slog.String("error", err.Error()))
		}
	}

	imageStore := uploads.NewImageStore(cfg.UploadDir)
	ctrls := routes.Controllers{
		Forms:     controllers.NewFormController(formService),
		Responses: controllers.NewResponseController(responses.NewService(formRepo, responseRepo, responseOpts...)),
		Uploads:   controllers.NewUploadController(imageStore),
	}

	app := fiber.New(fiber.Config{
		AppName:      "form-builder",
		BodyLimit:    cfg.MaxUploadBytes,
		ErrorHandler: utils.ErrorHandler,
	})
	middleware.Setup(app, cfg.AllowedOrigins, logOutput)
	routes.InitRoutes(app, ctrls, imageStore.Dir())

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			slog.Error("server shutdown failed", slog.String("error", err.Error()))
		}
	}()

	slog.Info("Server is running", slog.String("port", cfg.Port))
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
	}

	if worker != nil {
		worker.Shutdown()
	}
}
