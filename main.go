package main

import (
	"log"
	"time"

	"waitlist/auth"
	"waitlist/config"
	"waitlist/database"
	"waitlist/handlers"
	"waitlist/middleware"
	"waitlist/ratelimit"
	"waitlist/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to set up database: %v", err)
	}

	if err := database.SeedAdmin(db, cfg.AdminEmail, cfg.AdminName, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	tokens := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.JWTExpireHrs)*time.Hour)

	members := services.NewMemberService(database.NewMemberStore(db))
	trackables := services.NewTrackableService(database.NewTrackableStore(db))

	authHandler := handlers.NewAuthHandler(database.NewAdminStore(db), tokens)
	waitlistHandler := handlers.NewWaitlistHandler(members)
	trackableHandler := handlers.NewTrackableHandler(trackables)
	pages := handlers.NewPageHandler()

	limiter := ratelimit.NewInMemory(cfg.SignupRateLimit, time.Duration(cfg.SignupRateWindowMs)*time.Millisecond)

	router := gin.Default()
	router.LoadHTMLGlob("templates/*.html")
	router.Use(middleware.LocaleAuth(tokens.LookupSession))

	router.GET("/trk/:slug", trackableHandler.Track)

	router.GET("/:locale", pages.Signup)
	router.GET("/:locale/backoffice", pages.BackofficeLogin)
	router.GET("/:locale/backoffice/dashboard", pages.Dashboard)
	router.GET("/:locale/backoffice/waitlist", pages.Waitlist)
	router.GET("/:locale/backoffice/members", pages.Members)
	router.GET("/:locale/backoffice/denied", pages.Denied)
	router.GET("/:locale/backoffice/trackable-urls", pages.TrackableURLs)
	router.NoRoute(pages.NotFound)

	api := router.Group("/api")
	api.POST("/waitlist", middleware.RateLimit(limiter), waitlistHandler.Join)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	admin := api.Group("")
	admin.Use(tokens.RequireAdmin())
	{
		admin.GET("/waitlist", waitlistHandler.List)
		admin.GET("/waitlist/stats", waitlistHandler.Stats)
		admin.PATCH("/waitlist/:id", waitlistHandler.UpdateStatus)

		admin.POST("/trackable-urls", trackableHandler.Create)
		admin.GET("/trackable-urls", trackableHandler.List)
		admin.DELETE("/trackable-urls/:id", trackableHandler.Delete)
	}

	log.Printf("Waitlist server starting on %s", cfg.HTTPAddr)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
