package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyshare_backend/internal/config"
	"studyshare_backend/internal/controller"
	"studyshare_backend/internal/repository"
	"studyshare_backend/internal/service"
	"studyshare_backend/internal/util"
	"studyshare_backend/pkg/database"
	"studyshare_backend/pkg/logger"
	"studyshare_backend/pkg/monitoring"
	"studyshare_backend/pkg/security"
	"studyshare_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	tracer interface{ Shutdown(context.Context) error }
}

type repositories struct {
	user         *repository.UserRepository
	category     *repository.CategoryRepository
	resource     *repository.ResourceRepository
	request      *repository.ResourceRequestRepository
	tutor        *repository.TutorRepository
	tutorRequest *repository.TutorRequestRepository
	post         *repository.PostRepository
}

type services struct {
	auth     *service.AuthService
	user     *service.UserService
	category *service.CategoryService
	resource *service.ResourceService
	request  *service.RequestService
	tutor    *service.TutorService
	post     *service.PostService
	storage  *service.StorageService
}

type controllers struct {
	auth     *controller.AuthController
	user     *controller.UserController
	category *controller.CategoryController
	resource *controller.ResourceController
	request  *controller.RequestController
	tutor    *controller.TutorController
	post     *controller.PostController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		category:     repository.NewCategoryRepository(db),
		resource:     repository.NewResourceRepository(db),
		request:      repository.NewResourceRequestRepository(db),
		tutor:        repository.NewTutorRepository(db),
		tutorRequest: repository.NewTutorRequestRepository(db),
		post:         repository.NewPostRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		logger.Log.Fatal("storage unavailable", zap.Error(err))
	}
	s.storage = storage

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.category = service.NewCategoryService(repos.category)
	s.resource = service.NewResourceService(repos.resource, repos.category, rdb)
	s.request = service.NewRequestService(repos.request, repos.category)
	s.tutor = service.NewTutorService(repos.tutor, repos.tutorRequest, repos.user, rdb)
	s.post = service.NewPostService(repos.post, repos.category)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		user:     controller.NewUserController(s.user),
		category: controller.NewCategoryController(s.category),
		resource: controller.NewResourceController(s.resource, s.storage),
		request:  controller.NewRequestController(s.request),
		tutor:    controller.NewTutorController(s.tutor),
		post:     controller.NewPostController(s.post),
		health:   controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("logger initialized")

	gin.SetMode(cfg.Server.Mode)
	util.RegisterValidators()

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis only backs view dedup and the subjects cache; the app can
		// serve without it.
		logger.Log.Warn("redis unavailable, caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("studyshare", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown:", err)
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("failed to shutdown tracer provider", zap.Error(err))
		}
	}

	logger.Log.Info("server exiting")
	logger.Log.Sync()
}
