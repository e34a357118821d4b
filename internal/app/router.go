package app

import (
	"learnsphere_backend/docs"
	"learnsphere_backend/internal/config"
	"learnsphere_backend/internal/controller"
	"learnsphere_backend/internal/middleware"
	"learnsphere_backend/internal/model"

	"learnsphere_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerCRUD 挂载一个资源的全套增删改查路由
func registerCRUD[T any](rg *gin.RouterGroup, path string, ctl *controller.CRUDController[T]) {
	rg.GET("/"+path, ctl.List)
	rg.GET("/"+path+"/:id", ctl.Get)
	rg.POST("/"+path, ctl.Create)
	rg.PUT("/"+path+"/:id", ctl.Update)
	rg.PATCH("/"+path+"/:id", ctl.Patch)
	rg.DELETE("/"+path+"/:id", ctl.Delete)
}

// registerCRUDPublicRead 读接口匿名可访问，写接口要求登录
func registerCRUDPublicRead[T any](public, auth *gin.RouterGroup, path string, ctl *controller.CRUDController[T]) {
	public.GET("/"+path, ctl.List)
	public.GET("/"+path+"/:id", ctl.Get)
	auth.POST("/"+path, ctl.Create)
	auth.PUT("/"+path+"/:id", ctl.Update)
	auth.PATCH("/"+path+"/:id", ctl.Patch)
	auth.DELETE("/"+path+"/:id", ctl.Delete)
}

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	public.Use(middleware.TryAuthMiddleware())
	{
		public.GET("/health", c.health.Health)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.POST("/token/refresh", c.auth.Refresh)

		// 目录读取对游客开放
		public.GET("/programs/active", c.catalog.ListActivePrograms)
		public.GET("/courses/published", c.catalog.ListPublishedCourses)
		public.GET("/courses/slug/:slug", c.catalog.GetCourseBySlug)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		// 用户管理
		authGroup.GET("/users", c.user.GetUsers)
		authGroup.GET("/users/:id", c.user.GetUser)
		authGroup.PUT("/users/:id", c.user.UpdateUser)
		authGroup.DELETE("/users/:id", middleware.RoleMiddleware(model.RoleAdmin), c.user.DeleteUser)
		authGroup.POST("/users/:id/avatar", c.user.UploadAvatar)
		authGroup.GET("/users/:id/activities", c.user.GetUserActivities)
		authGroup.GET("/users/:id/referrals", c.user.GetUserReferrals)

		// 身份资料
		registerCRUD(authGroup, "students", c.students)
		registerCRUD(authGroup, "instructors", c.instructors)
		registerCRUD(authGroup, "clients", c.clients)
		registerCRUD(authGroup, "tech-skills", c.techSkills)

		// 目录：programs/courses 读公开，写要登录
		registerCRUDPublicRead(public, authGroup, "programs", c.programs)
		registerCRUDPublicRead(public, authGroup, "courses", c.courses)
		registerCRUD(authGroup, "course-metadata", c.courseMetadata)
		registerCRUD(authGroup, "course-content", c.courseContent)
		registerCRUD(authGroup, "course-details", c.courseDetails)
		registerCRUD(authGroup, "modules", c.modules)
		registerCRUD(authGroup, "lessons", c.lessons)
		registerCRUD(authGroup, "videos", c.videos)
		registerCRUD(authGroup, "files", c.lessonFiles)
		registerCRUD(authGroup, "quizzes", c.quizzes)
		registerCRUD(authGroup, "questions", c.questions)
		registerCRUD(authGroup, "answers", c.answers)
		registerCRUD(authGroup, "enrollments", c.enrollments)

		// 项目管理
		registerCRUD(authGroup, "projects", c.projects)
		registerCRUD(authGroup, "tasks", c.tasks)
		registerCRUD(authGroup, "tags", c.tagsCtl)
		registerCRUD(authGroup, "attachments", c.attachments)
		registerCRUD(authGroup, "referrals", c.referralRecords)

		// 活动流只读，记录由钩子自动产生
		authGroup.GET("/activities", c.activities.List)
		authGroup.GET("/activities/:id", c.activities.Get)

		// 媒体上传
		authGroup.POST("/videos/upload", c.media.UploadVideo)
		authGroup.POST("/files/upload", c.media.UploadLessonFile)
		authGroup.POST("/projects/:id/attachments", c.media.UploadProjectAttachment)
		authGroup.POST("/programs/:id/image", c.catalog.UploadProgramImage)
		authGroup.POST("/courses/:id/image", c.catalog.UploadCourseImage)
	}
}
