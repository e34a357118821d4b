package app

import (
	"context"
	"learnsphere_backend/internal/config"
	"learnsphere_backend/internal/controller"
	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/repository"
	"learnsphere_backend/internal/service"
	"learnsphere_backend/internal/util"
	"learnsphere_backend/pkg/database"
	"learnsphere_backend/pkg/logger"
	"learnsphere_backend/pkg/monitoring"
	"learnsphere_backend/pkg/security"
	"learnsphere_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	catalog  *repository.CatalogRepository
	activity *repository.ActivityRepository
}

type services struct {
	storage    *service.StorageService
	auth       *service.AuthService
	user       *service.UserService
	referral   *service.ReferralService
	membership *service.MembershipService
	catalog    *service.CatalogService
	project    *service.ProjectService
	media      *service.MediaService
}

type controllers struct {
	auth    *controller.AuthController
	user    *controller.UserController
	catalog *controller.CatalogController
	media   *controller.MediaController
	health  *controller.HealthController

	// 通用 CRUD 控制器，资源差异通过钩子注入
	students        *controller.CRUDController[model.Student]
	instructors     *controller.CRUDController[model.Instructor]
	clients         *controller.CRUDController[model.Client]
	techSkills      *controller.CRUDController[model.TechSkill]
	tagsCtl         *controller.CRUDController[model.Tag]
	programs        *controller.CRUDController[model.Program]
	courses         *controller.CRUDController[model.Course]
	courseMetadata  *controller.CRUDController[model.CourseMetadata]
	courseContent   *controller.CRUDController[model.CourseContent]
	courseDetails   *controller.CRUDController[model.CourseDetails]
	modules         *controller.CRUDController[model.Module]
	lessons         *controller.CRUDController[model.Lesson]
	videos          *controller.CRUDController[model.Video]
	lessonFiles     *controller.CRUDController[model.LessonFile]
	quizzes         *controller.CRUDController[model.Quiz]
	questions       *controller.CRUDController[model.Question]
	answers         *controller.CRUDController[model.Answer]
	enrollments     *controller.CRUDController[model.Enrollment]
	projects        *controller.CRUDController[model.Project]
	tasks           *controller.CRUDController[model.Task]
	attachments     *controller.CRUDController[model.ProjectAttachment]
	activities      *controller.CRUDController[model.Activity]
	referralRecords *controller.CRUDController[model.Referral]
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		catalog:  repository.NewCatalogRepository(db),
		activity: repository.NewActivityRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, s.storage)
	s.referral = service.NewReferralService(db)
	s.membership = service.NewMembershipService(db, s.referral)
	s.catalog = service.NewCatalogService(db, repos.catalog, rdb)
	s.project = service.NewProjectService(db)
	s.media = service.NewMediaService(db, s.storage)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB, cfg *config.Config) *controllers {
	c := &controllers{
		auth:    controller.NewAuthController(s.auth),
		user:    controller.NewUserController(s.user, s.media, s.referral, repos.activity, cfg),
		catalog: controller.NewCatalogController(s.catalog, s.media),
		media:   controller.NewMediaController(s.media),
		health:  controller.NewHealthController(db),
	}

	c.students = controller.NewCRUDController(
		repository.NewCRUDRepository[model.Student](db, "TechSkills"), cfg).
		WithFilters("user_id", "learning_style").
		WithHooks(controller.CRUDHooks[model.Student]{
			BeforeCreate: s.membership.BeforeCreateStudent,
			AfterCreate:  s.membership.AfterCreateStudent,
			AfterDelete:  s.membership.AfterDeleteStudent,
		})

	c.instructors = controller.NewCRUDController(
		repository.NewCRUDRepository[model.Instructor](db), cfg).
		WithFilters("user_id").
		WithHooks(controller.CRUDHooks[model.Instructor]{
			BeforeCreate: s.membership.BeforeCreateInstructor,
			AfterCreate:  s.membership.AfterCreateInstructor,
			AfterDelete:  s.membership.AfterDeleteInstructor,
		})

	c.clients = controller.NewCRUDController(
		repository.NewCRUDRepository[model.Client](db), cfg).
		WithFilters("user_id", "industry").
		WithHooks(controller.CRUDHooks[model.Client]{
			BeforeCreate: s.membership.BeforeCreateClient,
			AfterCreate:  s.membership.AfterCreateClient,
			AfterDelete:  s.membership.AfterDeleteClient,
		})

	c.techSkills = controller.NewCRUDController(
		repository.NewCRUDRepository[model.TechSkill](db), cfg)

	c.tagsCtl = controller.NewCRUDController(
		repository.NewCRUDRepository[model.Tag](db), cfg)

	c.programs = controller.NewCRUDController(
		repository.NewCRUDRepository[model.Program](db), cfg).
		WithFilters("is_active").
		WithHooks(controller.CRUDHooks[model.Program]{
			AfterCreate: s.catalog.InvalidateProgramCache,
			AfterUpdate: s.catalog.InvalidateProgramCache,
			AfterDelete: s.catalog.InvalidateProgramCache,
		})

	c.courses = controller.NewCRUDController(
		repository.NewCRUDRepository[model.Course](db, "Metadata", "Content", "Details"), cfg).
		WithFilters("is_published", "active", "slug").
		WithHooks(controller.CRUDHooks[model.Course]{
			BeforeCreate: s.catalog.BeforeCreateCourse,
			AfterDelete:  s.catalog.AfterDeleteCourse,
		})

	c.courseMetadata = controller.NewCRUDController(
		repository.NewCRUDRepository[model.CourseMetadata](db), cfg)

	c.courseContent = controller.NewCRUDController(
		repository.NewCRUDRepository[model.CourseContent](db), cfg)

	c.courseDetails = controller.NewCRUDController(
		repository.NewCRUDRepository[model.CourseDetails](db, "Skills"), cfg).
		WithFilters("program_id", "instructor_id")

	c.modules = controller.NewCRUDController(
		repository.NewCRUDRepository[model.Module](db), cfg).
		WithFilters("course_id", "is_published").
		WithHooks(controller.CRUDHooks[model.Module]{
			BeforeCreate: s.catalog.BeforeCreateModule,
			AfterDelete:  s.catalog.AfterDeleteModule,
		})

	c.lessons = controller.NewCRUDController(
		repository.NewCRUDRepository[model.Lesson](db), cfg).
		WithFilters("module_id", "is_published").
		WithHooks(controller.CRUDHooks[model.Lesson]{
			AfterDelete: s.catalog.AfterDeleteLesson,
		})

	c.videos = controller.NewCRUDController(
		repository.NewCRUDRepository[model.Video](db), cfg).
		WithFilters("lesson_id")

	c.lessonFiles = controller.NewCRUDController(
		repository.NewCRUDRepository[model.LessonFile](db), cfg).
		WithFilters("lesson_id")

	c.quizzes = controller.NewCRUDController(
		repository.NewCRUDRepository[model.Quiz](db), cfg).
		WithHooks(controller.CRUDHooks[model.Quiz]{
			AfterDelete: s.catalog.AfterDeleteQuiz,
		})

	c.questions = controller.NewCRUDController(
		repository.NewCRUDRepository[model.Question](db), cfg).
		WithFilters("quiz_id")

	c.answers = controller.NewCRUDController(
		repository.NewCRUDRepository[model.Answer](db), cfg).
		WithFilters("question_id")

	c.enrollments = controller.NewCRUDController(
		repository.NewCRUDRepository[model.Enrollment](db), cfg).
		WithFilters("student_id", "course_id", "program_id", "is_completed")

	c.projects = controller.NewCRUDController(
		repository.NewCRUDRepository[model.Project](db, "Tags", "Attachments"), cfg).
		WithFilters("owner_id", "status", "paid").
		WithHooks(controller.CRUDHooks[model.Project]{
			BeforeCreate: s.project.BeforeCreateProject,
			AfterCreate:  s.project.AfterCreateProject,
			BeforeUpdate: s.project.BeforeUpdateProject,
			AfterUpdate:  s.project.AfterUpdateProject,
			AfterDelete:  s.project.AfterDeleteProject,
		})

	c.tasks = controller.NewCRUDController(
		repository.NewCRUDRepository[model.Task](db, "Tags"), cfg).
		WithFilters("project_id", "status").
		WithHooks(controller.CRUDHooks[model.Task]{
			AfterCreate: s.project.AfterCreateTask,
			AfterUpdate: s.project.AfterUpdateTask,
			AfterDelete: s.project.AfterDeleteTask,
		})

	c.attachments = controller.NewCRUDController(
		repository.NewCRUDRepository[model.ProjectAttachment](db, "Tags"), cfg)

	c.activities = controller.NewCRUDController(
		repository.NewCRUDRepository[model.Activity](db), cfg).
		WithFilters("user_id", "project_id", "task_id", "activity_type")

	c.referralRecords = controller.NewCRUDController(
		repository.NewCRUDRepository[model.Referral](db), cfg).
		WithFilters("referrer_id")

	return c
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	// 配置注入，供 AuthMiddleware 取用
	router.Use(func(c *gin.Context) {
		c.Set("config", a.Config)
		c.Next()
	})

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

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// release 模式下默认不自动迁移，需通过 -migrate 显式开启
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Log.Info("Database migration completed")
	}

	// Redis 可选，目录缓存在无 Redis 时自动退化为直查
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Warn("Redis unavailable, catalog cache disabled", zap.Error(err))
			rdb = nil
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, repos, db, cfg)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("learnsphere", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
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
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
