package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"

	"github.com/vracar/tripfolio/internal/config"
	"github.com/vracar/tripfolio/internal/database"
	"github.com/vracar/tripfolio/internal/handlers"
	authmw "github.com/vracar/tripfolio/internal/middleware"
	"github.com/vracar/tripfolio/internal/services"
	"github.com/vracar/tripfolio/internal/sse"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	userService := services.NewUserService(db)
	tokenService := services.NewTokenService(db)
	tripService := services.NewTripService(db)
	inviteService := services.NewInviteService(db)
	regionService := services.NewRegionService(db)
	wishlistService := services.NewWishlistService(db)
	activityService := services.NewActivityService(db)
	bookingService := services.NewBookingService(db)
	emailService := services.NewEmailService(cfg.SMTP)

	hub := sse.NewHub()
	go hub.Run()

	authHandler := handlers.NewAuthHandler(cfg, userService, tokenService, jwtService)
	userHandler := handlers.NewUserHandler(userService)
	tripHandler := handlers.NewTripHandler(tripService)
	inviteHandler := handlers.NewInviteHandler(cfg, inviteService, tripService, userService, emailService, hub)
	regionHandler := handlers.NewRegionHandler(regionService, wishlistService, tripService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService, regionService, tripService, hub)
	activityHandler := handlers.NewActivityHandler(activityService, tripService, hub)
	bookingHandler := handlers.NewBookingHandler(bookingService, tripService)
	sseHandler := handlers.NewSSEHandler(hub, tripService)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Get("/:provider/consent", authHandler.GetConsentURL)
	auth.Get("/:provider/callback", authHandler.Callback)
	auth.Post("/exchange", authHandler.ExchangeCode)
	auth.Post("/refresh", authHandler.RefreshToken)
	auth.Post("/logout", authHandler.Logout)

	protected := api.Group("")
	protected.Use(authmw.Auth(jwtService))

	protected.Post("/auth/logout-all", authHandler.LogoutAll)

	protected.Get("/users/me", userHandler.GetMe)
	protected.Patch("/users/me", userHandler.UpdateMe)

	protected.Get("/trips", tripHandler.List)
	protected.Post("/trips", tripHandler.Create)
	protected.Get("/trips/:tripId", tripHandler.Get)
	protected.Patch("/trips/:tripId", tripHandler.Update)
	protected.Delete("/trips/:tripId", tripHandler.Delete)
	protected.Get("/trips/:tripId/members", tripHandler.GetMembers)
	protected.Post("/trips/:tripId/members", inviteHandler.InviteByEmail)
	protected.Delete("/trips/:tripId/members/:userId", tripHandler.RemoveMember)
	protected.Post("/trips/:tripId/leave", tripHandler.Leave)

	protected.Post("/trips/:tripId/invites", inviteHandler.CreateInvite)
	protected.Get("/trips/:tripId/invites", inviteHandler.ListInvites)
	protected.Post("/invites/claim", inviteHandler.Claim)

	protected.Get("/trips/:tripId/regions", regionHandler.List)
	protected.Post("/trips/:tripId/regions", regionHandler.Create)
	protected.Patch("/trips/:tripId/regions/:regionId", regionHandler.Update)
	protected.Delete("/trips/:tripId/regions/:regionId", regionHandler.Delete)

	protected.Get("/trips/:tripId/wishlist", wishlistHandler.List)
	protected.Get("/trips/:tripId/wishlist/grouped", wishlistHandler.Grouped)
	protected.Post("/trips/:tripId/wishlist", wishlistHandler.Create)
	protected.Patch("/trips/:tripId/wishlist/:itemId", wishlistHandler.Update)
	protected.Delete("/trips/:tripId/wishlist/:itemId", wishlistHandler.Delete)
	protected.Post("/trips/:tripId/wishlist/:itemId/vote", wishlistHandler.Vote)

	protected.Get("/trips/:tripId/activities", activityHandler.List)
	protected.Post("/trips/:tripId/activities", activityHandler.Create)
	protected.Patch("/trips/:tripId/activities/:activityId", activityHandler.Update)
	protected.Delete("/trips/:tripId/activities/:activityId", activityHandler.Delete)

	protected.Get("/trips/:tripId/bookings", bookingHandler.List)
	protected.Post("/trips/:tripId/bookings", bookingHandler.Create)
	protected.Patch("/trips/:tripId/bookings/:bookingId", bookingHandler.Update)
	protected.Delete("/trips/:tripId/bookings/:bookingId", bookingHandler.Delete)

	protected.Get("/trips/:tripId/events", sseHandler.Connect)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			_ = tokenService.CleanupExpired(context.Background())
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}
