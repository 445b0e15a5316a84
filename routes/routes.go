package routes

import (
	"github.com/rehanpathan0801/PGFinder/handlers"
	"github.com/rehanpathan0801/PGFinder/middleware"
	"github.com/rehanpathan0801/PGFinder/models"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	authController := handlers.NewAuthController()
	pgController := handlers.NewPGController()
	favoriteController := handlers.NewFavoriteController()
	userController := handlers.NewUserController()
	adminController := handlers.NewAdminController()
	messageController := handlers.NewMessageController()

	api := e.Group("/api")

	api.GET("/health", handlers.HealthCheck)

	auth := api.Group("/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)
	auth.GET("/profile", authController.GetProfile, middleware.JWTMiddleware())
	auth.GET("/me", authController.GetProfile, middleware.JWTMiddleware())
	auth.PUT("/profile", authController.UpdateProfile, middleware.JWTMiddleware())

	pg := api.Group("/pg")
	pg.GET("", pgController.ListPGs)
	pg.GET("/cities", pgController.GetCities)
	pg.GET("/:id", pgController.GetPG)
	pg.POST("", pgController.CreatePG,
		middleware.JWTMiddleware(), middleware.RequireRoles(models.RoleOwner))
	pg.PUT("/:id", pgController.UpdatePG,
		middleware.JWTMiddleware(), middleware.RequireRoles(models.RoleOwner, models.RoleAdmin))
	pg.DELETE("/:id", pgController.DeletePG,
		middleware.JWTMiddleware(), middleware.RequireRoles(models.RoleOwner, models.RoleAdmin))
	pg.GET("/owner/my-listings", pgController.MyListings,
		middleware.JWTMiddleware(), middleware.RequireRoles(models.RoleOwner))
	pg.POST("/:id/inquiry", pgController.SubmitInquiry,
		middleware.JWTMiddleware(), middleware.RequireRoles(models.RoleClient))

	user := api.Group("/user", middleware.JWTMiddleware())
	user.POST("/favorites/:pgId", favoriteController.AddFavorite, middleware.RequireRoles(models.RoleClient))
	user.DELETE("/favorites/:pgId", favoriteController.RemoveFavorite, middleware.RequireRoles(models.RoleClient))
	user.GET("/favorites", favoriteController.GetFavorites, middleware.RequireRoles(models.RoleClient))
	user.PUT("/profile-image", userController.UpdateProfileImage)
	user.GET("/dashboard", userController.Dashboard)
	user.DELETE("/account", userController.DeleteAccount)

	api.POST("/messages", messageController.SubmitMessage)

	admin := api.Group("/admin", middleware.JWTMiddleware(), middleware.RequireRoles(models.RoleAdmin))
	admin.GET("/dashboard", adminController.Dashboard)
	admin.GET("/pgs", adminController.GetAllPGs)
	admin.DELETE("/pgs/:id", adminController.DeletePG)
	admin.GET("/users", adminController.GetAllUsers)
	admin.PUT("/users/:id/block", adminController.ToggleBlockUser)
	admin.GET("/messages", adminController.GetAllMessages)
	admin.DELETE("/messages/:id", adminController.DeleteMessage)
}
