package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mcasfest/fest-api/internal/config"
	"github.com/mcasfest/fest-api/internal/handler"
	"github.com/mcasfest/fest-api/internal/middleware"
	"github.com/mcasfest/fest-api/internal/repository/postgres"
	redisrepo "github.com/mcasfest/fest-api/internal/repository/redis"
	"github.com/mcasfest/fest-api/internal/service"
	"github.com/mcasfest/fest-api/internal/websocket"
	"github.com/mcasfest/fest-api/pkg/auth"
	"github.com/mcasfest/fest-api/pkg/database"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	production := os.Getenv("GIN_MODE") == "release"
	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	// PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.MigrateDB(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	// Redis
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Repositories
	teamRepo := postgres.NewTeamRepo(db)
	eventRepo := postgres.NewEventRepo(db)
	resultRepo := postgres.NewResultRepo(db)
	scoreRepo := postgres.NewScoreRepo(db)
	judgeRepo := postgres.NewJudgeRepo(db)
	galleryRepo := postgres.NewGalleryRepo(db)
	userRepo := postgres.NewUserRepo(db)

	cacheRepo, err := redisrepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Fatalf("Failed to create cache repository: %v", err)
	}

	// JWT
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs, production)
	if err != nil {
		log.Fatalf("Failed to create JWT service: %v", err)
	}

	// Email
	var emailService service.EmailService
	if cfg.Email.Enabled {
		emailService, err = service.NewResendEmailService(cfg.Email.ResendAPIKey, cfg.Email.From)
		if err != nil {
			log.Fatalf("Failed to create email service: %v", err)
		}
		log.Println("Email delivery enabled (Resend)")
	} else {
		emailService = &service.NoopEmailService{}
		log.Println("Email delivery disabled, using noop sender")
	}

	// Websocket hub with Redis fan-out across replicas
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubsub, err := websocket.NewRedisPubSub(redisClient)
	if err != nil {
		log.Fatalf("Failed to create websocket pubsub: %v", err)
	}
	hub := websocket.NewHub(pubsub)
	go hub.Run(ctx)
	wsManager := websocket.NewManager(hub)

	// Services
	leaderboardService := service.NewLeaderboardService(teamRepo, cacheRepo, wsManager)
	teamService := service.NewTeamService(teamRepo, leaderboardService)
	resultService := service.NewResultService(resultRepo, teamRepo, eventRepo, db, leaderboardService)
	eventService := service.NewEventService(eventRepo, resultRepo, scoreRepo, teamRepo, db, leaderboardService)
	scoreService := service.NewScoreService(scoreRepo, judgeRepo, eventRepo, teamRepo)
	judgeService := service.NewJudgeService(judgeRepo, userRepo, emailService)
	galleryService := service.NewGalleryService(galleryRepo, eventRepo)
	authService, err := service.NewAuthService(userRepo, jwtService)
	if err != nil {
		log.Fatalf("Failed to create auth service: %v", err)
	}

	// Handlers
	authHandler := handler.NewAuthHandler(authService, jwtService)
	eventHandler := handler.NewEventHandler(eventService)
	teamHandler := handler.NewTeamHandler(teamService)
	resultHandler := handler.NewResultHandler(resultService)
	judgeHandler := handler.NewJudgeHandler(judgeService, scoreService)
	scoreHandler := handler.NewScoreHandler(scoreService)
	galleryHandler := handler.NewGalleryHandler(galleryService)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
	wsHandler := handler.NewWSHandler(hub, cfg.CORS.AllowedOrigins)

	rateLimiter := middleware.NewRateLimiter(redisClient)

	// Router
	router := gin.Default()
	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatalf("Failed to set trusted proxies: %v", err)
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		// Public site
		api.GET("/events", eventHandler.List)
		api.GET("/events/:id", middleware.ExtractUintParam("id", "event_id"), eventHandler.Get)
		api.GET("/events/:id/results", middleware.ExtractUintParam("id", "event_id"), resultHandler.ListByEvent)
		api.GET("/events/:id/criteria", middleware.ExtractUintParam("id", "event_id"), eventHandler.ListCriteria)
		api.GET("/teams", teamHandler.List)
		api.GET("/teams/:id", middleware.ExtractUintParam("id", "team_id"), teamHandler.Get)
		api.GET("/leaderboard", leaderboardHandler.Get)
		api.GET("/gallery", galleryHandler.List)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", rateLimiter.Limit(middleware.LoginRateLimitConfig()), authHandler.Login)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.GET("/me", middleware.RequireAuth(jwtService), authHandler.Me)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(jwtService), middleware.RequireRole("admin"))
		{
			admin.POST("/events", eventHandler.Create)
			admin.PUT("/events/:id", middleware.ExtractUintParam("id", "event_id"), eventHandler.Update)
			admin.POST("/events/:id/start", middleware.ExtractUintParam("id", "event_id"), eventHandler.MarkOngoing)
			admin.DELETE("/events/:id", middleware.ExtractUintParam("id", "event_id"), eventHandler.Delete)
			admin.POST("/events/:id/criteria", middleware.ExtractUintParam("id", "event_id"), eventHandler.AddCriteria)
			admin.GET("/events/:id/scores", middleware.ExtractUintParam("id", "event_id"), scoreHandler.ListByEvent)

			admin.POST("/teams", teamHandler.Create)
			admin.PUT("/teams/:id", middleware.ExtractUintParam("id", "team_id"), teamHandler.Rename)
			admin.DELETE("/teams/:id", middleware.ExtractUintParam("id", "team_id"), teamHandler.Delete)

			admin.POST("/results", resultHandler.Record)
			admin.DELETE("/results/:id", middleware.ExtractUintParam("id", "result_id"), resultHandler.Delete)

			admin.POST("/judges", judgeHandler.Create)
			admin.GET("/judges", judgeHandler.List)
			admin.PUT("/judges/:id/events", middleware.ExtractUintParam("id", "judge_id"), judgeHandler.Assign)
			admin.DELETE("/judges/:id", middleware.ExtractUintParam("id", "judge_id"), judgeHandler.Delete)

			admin.GET("/scores/pending", scoreHandler.ListPending)
			admin.POST("/scores/:id/approve", middleware.ExtractUintParam("id", "score_id"), scoreHandler.Approve)
			admin.POST("/scores/:id/reject", middleware.ExtractUintParam("id", "score_id"), scoreHandler.Reject)

			admin.POST("/gallery", galleryHandler.Add)
			admin.DELETE("/gallery/:id", middleware.ExtractUintParam("id", "image_id"), galleryHandler.Delete)

			admin.GET("/leaderboard/export", leaderboardHandler.Export)
		}

		judge := api.Group("/judge")
		judge.Use(middleware.RequireAuth(jwtService), middleware.RequireRole("judge"))
		{
			judge.GET("/events", judgeHandler.MyEvents)
			judge.POST("/scores", judgeHandler.SubmitScore)
		}
	}

	router.GET("/ws", wsHandler.Handle)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Server listening on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	cancel() // stop the hub and pubsub consumers

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}

	log.Println("Server stopped")
}
