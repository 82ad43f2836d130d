package app

import (
	"studyshare_backend/docs"
	"studyshare_backend/internal/config"
	"studyshare_backend/internal/middleware"
	"studyshare_backend/internal/model"
	"studyshare_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")

	api.GET("/health", c.health.HealthCheck)

	auth := api.Group("/auth")
	{
		auth.POST("/register", c.auth.Register)
		auth.POST("/login", c.auth.Login)

		authorized := auth.Group("/")
		authorized.Use(middleware.AuthMiddleware(cfg))
		{
			authorized.GET("/me", c.auth.Me)
			authorized.GET("/verify", c.auth.Verify)
			authorized.POST("/change-password", c.auth.ChangePassword)
			authorized.POST("/logout", c.auth.Logout)
		}
	}

	categories := api.Group("/categories")
	{
		categories.GET("", c.category.List)
		categories.GET("/with-counts", c.category.ListWithCounts)
		categories.GET("/:id", c.category.Get)

		admin := categories.Group("/")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
		{
			admin.POST("", c.category.Create)
			admin.DELETE("/:id", c.category.Delete)
		}
	}

	resources := api.Group("/resources")
	{
		// Reads allow guests; a logged-in viewer dedups view counts by user.
		resources.GET("", c.resource.List)
		resources.GET("/search", c.resource.Search)
		resources.GET("/category/:id", c.resource.ListByCategory)
		resources.GET("/:id", middleware.TryAuthMiddleware(cfg), c.resource.Get)
		resources.POST("/:id/download", c.resource.TrackDownload)

		authorized := resources.Group("/")
		authorized.Use(middleware.AuthMiddleware(cfg))
		{
			authorized.POST("", c.resource.Create)
			authorized.POST("/upload", c.resource.Upload)
			authorized.PATCH("/:id", c.resource.Update)
			authorized.DELETE("/:id", c.resource.Delete)
		}
	}

	requests := api.Group("/requests")
	{
		requests.GET("", c.request.List)
		requests.GET("/:id", c.request.Get)

		authorized := requests.Group("/")
		authorized.Use(middleware.AuthMiddleware(cfg))
		{
			authorized.GET("/user/:id", c.request.ByUser)
			authorized.POST("", c.request.Create)
			authorized.PATCH("/:id", c.request.Update)
			authorized.PATCH("/:id/status", c.request.UpdateStatus)
			authorized.DELETE("/:id", c.request.Delete)
		}
	}

	tutors := api.Group("/tutors")
	{
		tutors.GET("", c.tutor.List)
		tutors.GET("/subjects/list", c.tutor.Subjects)
		tutors.GET("/subject/:subject", c.tutor.BySubject)
		tutors.GET("/:id", c.tutor.Get)

		authorized := tutors.Group("/")
		authorized.Use(middleware.AuthMiddleware(cfg))
		{
			authorized.POST("", c.tutor.Create)
			authorized.PATCH("/:id", c.tutor.Update)
			authorized.PATCH("/:id/availability", c.tutor.SetAvailability)
			authorized.DELETE("/:id", c.tutor.Delete)
			authorized.GET("/requests/all", c.tutor.ListRequests)
			authorized.POST("/requests", c.tutor.CreateRequest)
		}
	}

	posts := api.Group("/posts")
	{
		posts.GET("", c.post.List)
		posts.GET("/:id", c.post.Get)

		authorized := posts.Group("/")
		authorized.Use(middleware.AuthMiddleware(cfg))
		{
			authorized.GET("/author/:id", c.post.ByAuthor)
			authorized.POST("", c.post.Create)
			authorized.PATCH("/:id", c.post.Update)
			authorized.DELETE("/:id", c.post.Delete)
		}
	}

	users := api.Group("/users")
	users.Use(middleware.AuthMiddleware(cfg))
	{
		users.GET("", middleware.RoleMiddleware(model.RoleAdmin), c.user.List)
		users.POST("", middleware.RoleMiddleware(model.RoleAdmin), c.user.Create)
		users.GET("/email/:email", c.user.GetByEmail)
		users.GET("/:id", c.user.Get)
		users.PATCH("/:id", c.user.Update)
	}
}
