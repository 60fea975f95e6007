package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mechbook/internal/config"
	"mechbook/internal/database"
	"mechbook/internal/middleware"
	"mechbook/internal/modules/admin"
	"mechbook/internal/modules/auth"
	"mechbook/internal/modules/booking"
	"mechbook/internal/modules/directory"
	"mechbook/internal/modules/mechanic"
	jwtsvc "mechbook/internal/pkg/jwt"
	"mechbook/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	shopRepo := repository.NewShopRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, shopRepo, j)
	authHandler := auth.NewHandler(authService)

	directoryService := directory.NewService(shopRepo, serviceRepo, categoryRepo, cfg.DemoMode)
	directoryHandler := directory.NewHandler(directoryService, db)

	bookingService := booking.NewService(bookingRepo, serviceRepo, shopRepo)
	bookingHandler := booking.NewHandler(bookingService)

	mechanicService := mechanic.NewService(shopRepo, serviceRepo)
	mechanicHandler := mechanic.NewHandler(mechanicService)

	adminService := admin.NewService(shopRepo, categoryRepo, userRepo, bookingRepo)
	adminHandler := admin.NewHandler(adminService)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.RequestID())
	r.Use(cors.New(corsConfig(cfg)))

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		directoryHandler.RegisterPublicRoutes(v1)

		// any authenticated role
		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)

			mechanicGroup := protected.Group("/mechanic")
			mechanicGroup.Use(middleware.MechanicOnly())
			{
				mechanicHandler.RegisterRoutes(mechanicGroup)
				bookingHandler.RegisterMechanicRoutes(mechanicGroup)
			}

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminGroup)
			}
		}
	}

	if cfg.DemoMode {
		log.Println("DEMO_MODE enabled: shop directory served from fixtures")
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) > 0 {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	} else {
		c.AllowAllOrigins = true
	}
	c.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	return c
}
