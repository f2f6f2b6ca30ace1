package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"Penwall/internal/api/middleware"
	"Penwall/internal/api/routes"
	"Penwall/internal/config"
	"Penwall/internal/core/engagement"
	"Penwall/internal/core/feeds"
	"Penwall/internal/core/identity"
	"Penwall/internal/core/notifications"
	"Penwall/internal/core/profiles"
	postgresRepo "Penwall/internal/db/postgres"
	"Penwall/internal/realtime"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to database")

	// Run migrations
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}

	if err := goose.Up(db, cfg.MigrationsDir); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	// Sessions
	sessions, err := identity.NewSessionManager(cfg.SessionSecret, cfg.SecureCookies)
	if err != nil {
		log.Fatal("Failed to initialize sessions:", err)
	}

	// Repositories
	profileRepo := postgresRepo.NewProfileRepository(db)
	postRepo := postgresRepo.NewPostRepository(db)
	engagementRepo := postgresRepo.NewEngagementRepository(db)
	notificationRepo := postgresRepo.NewNotificationRepository(db)
	feedRepo := postgresRepo.NewFeedRepository(db)

	// Services
	profileService := profiles.NewProfileService(profileRepo)
	identityService := identity.NewIdentityService(profileService, nil)
	notificationService := notifications.NewNotificationService(notificationRepo)
	ledgerService := engagement.NewLedgerService(engagementRepo, postRepo, profileRepo, notificationService)
	feedService := feeds.NewFeedService(feedRepo, engagementRepo, engagementRepo, profileRepo)

	// Realtime: posts change stream -> hub -> websocket clients
	hub := realtime.NewHub()
	listener := realtime.NewPostsListener(cfg.DatabaseURL, hub)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := listener.Start(ctx); err != nil && err != context.Canceled {
			log.Printf("Posts listener stopped: %v", err)
		}
	}()

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	// Rate limiting: 100 requests per minute per actor/IP
	rateLimiter := middleware.NewRateLimiter(100, 1*time.Minute)
	r.Use(rateLimiter.Middleware)

	authMiddleware := middleware.NewSessionAuthMiddleware(sessions)

	routes.RegisterAuthRoutes(r, identityService, profileService, sessions, authMiddleware)
	routes.RegisterEngagementRoutes(r, ledgerService, authMiddleware)
	routes.RegisterFeedRoutes(r, feedService, authMiddleware)
	routes.RegisterNotificationRoutes(r, notificationService, authMiddleware)
	routes.RegisterProfileRoutes(r, profileService, authMiddleware)
	routes.RegisterRealtimeRoutes(r, hub)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	fmt.Printf("Penwall starting on port %d\n", cfg.Port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), r))
}
