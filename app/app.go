package app

import (
	"context"
	"fmt"

	"shopper-backend/config"
	"shopper-backend/controllers"
	_ "shopper-backend/docs"
	"shopper-backend/libs"
	"shopper-backend/middleware"
	"shopper-backend/repositories"
	"shopper-backend/routes"
	"shopper-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// App holds the router and the resources that must be released on shutdown.
type App struct {
	Router  *gin.Engine
	closers []func()
}

// New composes stores, services and the router from cfg.
func New(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*App, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	a := &App{}

	var (
		users    services.UserStore
		products services.ProductStore
		db       controllers.Pinger
	)

	switch cfg.DBDriver {
	case "memory":
		log.Warn("Using in-memory store, data is lost on restart")
		users = repositories.NewMemoryUserRepository()
		products = repositories.NewMemoryProductRepository()
	default:
		if err := config.RunMigrations(cfg, log); err != nil {
			return nil, err
		}
		pool, err := config.ConnectDB(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() {
			pool.Close()
			log.Info("Database connection closed")
		})
		users = repositories.NewUserRepository(pool)
		products = repositories.NewProductRepository(pool)
		db = pool
	}

	redisClient := config.ConnectRedis(ctx, cfg, log)
	if redisClient != nil {
		a.closers = append(a.closers, func() { redisClient.Close() })
	}

	images, err := newImageStore(cfg, log)
	if err != nil {
		a.Close()
		return nil, err
	}

	var mailer services.WelcomeMailer
	if cfg.SMTPEnabled() {
		m, err := libs.NewMailer(cfg)
		if err != nil {
			a.Close()
			return nil, err
		}
		mailer = m
	}

	authService := services.NewAuthService(users, cfg, mailer, log)

	deps := routes.Dependencies{
		Auth:      authService,
		Cart:      services.NewCartService(users),
		Products:  services.NewProductService(products, libs.NewProductCache(redisClient, log)),
		Uploads:   services.NewUploadService(images),
		DB:        db,
		Metrics:   middleware.NewMetrics(),
		UploadDir: cfg.UploadDir,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(deps.Metrics.Middleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	routes.SetupRoutes(router, deps)

	a.Router = router
	return a, nil
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func newImageStore(cfg *config.Config, log *logrus.Logger) (services.ImageStore, error) {
	local, err := libs.NewLocalImageStore(cfg.UploadDir, cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	if !cfg.CloudinaryEnabled() {
		return local, nil
	}

	cld, err := libs.NewCloudinaryImageStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("image store: %w", err)
	}
	log.Info("Uploading images to Cloudinary")
	return cld, nil
}
