package router

import (
	"time"

	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/config"
	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/handlers"
	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/middleware"
	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/services"
	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, conn *gorm.DB) *gin.Engine {
	users := store.NewUserStore(conn)
	venues := store.NewVenueStore(conn)
	restaurants := store.NewRestaurantStore(conn)

	userHandler := handlers.NewUserHandler(users, services.NewMailer(""))
	venueHandler := handlers.NewVenueHandler(venues)
	restaurantHandler := handlers.NewRestaurantHandler(restaurants)
	authHandler := handlers.NewAuthHandler(users)

	authRequired := middleware.AuthMiddleware(users)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authRequired, authHandler.Me)
		}

		usersGroup := api.Group("/users")
		{
			usersGroup.GET("", userHandler.List)
			usersGroup.GET("/:id", userHandler.Get)
			usersGroup.POST("", userHandler.Create)
			usersGroup.PATCH("/:id", authRequired, userHandler.Update)
			usersGroup.DELETE("/:id", authRequired, userHandler.Delete)
		}

		venuesGroup := api.Group("/venues")
		{
			venuesGroup.GET("", venueHandler.List)
			venuesGroup.GET("/:id", venueHandler.Get)
			venuesGroup.POST("", authRequired, venueHandler.Create)
			venuesGroup.PUT("/:id", authRequired, venueHandler.Update)
			venuesGroup.DELETE("/:id", authRequired, venueHandler.Delete)
		}

		restaurantsGroup := api.Group("/restaurants")
		{
			restaurantsGroup.GET("", restaurantHandler.List)
			restaurantsGroup.GET("/id/:id", restaurantHandler.Get)
			restaurantsGroup.GET("/path/:path", restaurantHandler.GetByPath)
			restaurantsGroup.PUT("/rating", authRequired, restaurantHandler.UpdateRating)
			restaurantsGroup.POST("", authRequired, restaurantHandler.Create)
			restaurantsGroup.PUT("/id/:id", authRequired, restaurantHandler.Update)
			restaurantsGroup.DELETE("/id/:id", authRequired, restaurantHandler.Delete)
		}
	}

	return r
}
