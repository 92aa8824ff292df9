// Package server contains the cobra command that wires and runs the HTTP server.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	chatuc "tradepost/internal/application/chat/usecases"
	notifuc "tradepost/internal/application/notification/usecases"
	orderuc "tradepost/internal/application/order/usecases"
	"tradepost/internal/domain/order"
	"tradepost/internal/infrastructure/auth"
	"tradepost/internal/infrastructure/config"
	"tradepost/internal/infrastructure/database"
	"tradepost/internal/infrastructure/persistence/models"
	"tradepost/internal/infrastructure/ratelimit"
	"tradepost/internal/infrastructure/repository"
	"tradepost/internal/infrastructure/services"
	"tradepost/internal/interfaces/http/handlers"
	"tradepost/internal/interfaces/http/handlers/ws"
	"tradepost/internal/interfaces/http/middleware"
	"tradepost/internal/interfaces/http/routes"
	"tradepost/internal/shared/logger"
	"tradepost/internal/shared/services/sanitizer"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the tradepost HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()
	db := database.Get()

	if autoMigrate {
		if err := db.AutoMigrate(
			&models.ListingModel{},
			&models.OrderModel{},
			&models.ReviewModel{},
			&models.ConversationModel{},
			&models.MessageModel{},
			&models.NotificationModel{},
		); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Infow("database migrations applied")
	}

	// Rate limiting falls back to a no-op when redis is unreachable; chat
	// still works, just without send throttling.
	limiter := ratelimit.NewNoopRateLimiter()
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warnw("redis unavailable, message rate limiting disabled", "error", err)
	} else {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	}
	cancel()

	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	listingReader := repository.NewListingReader(db)
	notifRepo := repository.NewNotificationRepository(db)
	convRepo := repository.NewConversationRepository(db)
	msgRepo := repository.NewMessageRepository(db)

	// Realtime hub and notification pipeline
	hub := services.NewPresenceHub(log.Named("hub"))
	pushCounts := notifuc.NewPushUnreadCountsUseCase(notifRepo, msgRepo, hub, log)
	dispatch := notifuc.NewDispatchUseCase(notifRepo, hub, pushCounts, log)

	// Chat use cases
	cleaner := sanitizer.NewService()
	sendMessage := chatuc.NewSendMessageUseCase(convRepo, msgRepo, hub, dispatch, cleaner, log)
	markMessagesRead := chatuc.NewMarkMessagesReadUseCase(convRepo, msgRepo, pushCounts, log)
	getConversations := chatuc.NewGetConversationsUseCase(convRepo, hub, log)
	getMessages := chatuc.NewGetMessagesUseCase(convRepo, msgRepo, log)

	// Order use cases
	numbers := order.NewDefaultNumberGenerator(cfg.Order.NumberPrefix)
	createOrder := orderuc.NewCreateOrderUseCase(orderRepo, listingReader, numbers, dispatch, log)
	confirmOrder := orderuc.NewConfirmOrderUseCase(orderRepo, dispatch, log)
	cancelOrder := orderuc.NewCancelOrderUseCase(orderRepo, dispatch, log)
	rejectOrder := orderuc.NewRejectOrderUseCase(orderRepo, dispatch, log)
	completeOrder := orderuc.NewCompleteOrderUseCase(orderRepo, dispatch, log)
	refundOrder := orderuc.NewRefundOrderUseCase(orderRepo, dispatch, log)
	deleteOrder := orderuc.NewDeleteOrderUseCase(orderRepo, log)
	addReview := orderuc.NewAddReviewUseCase(orderRepo, reviewRepo, dispatch, log)
	getOrder := orderuc.NewGetOrderUseCase(orderRepo, log)
	listOrders := orderuc.NewListOrdersUseCase(orderRepo, log)

	// Notification use cases
	listNotifications := notifuc.NewListNotificationsUseCase(notifRepo, log)
	getUnreadCount := notifuc.NewGetUnreadCountUseCase(notifRepo, msgRepo, log)
	markAsRead := notifuc.NewMarkNotificationAsReadUseCase(notifRepo, pushCounts, log)
	markAllAsRead := notifuc.NewMarkAllAsReadUseCase(notifRepo, pushCounts, log)

	// HTTP surface
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	authHandler := handlers.NewAuthHandler(jwtService, log)
	orderHandler := handlers.NewOrderHandler(
		createOrder, confirmOrder, cancelOrder, rejectOrder, completeOrder,
		refundOrder, deleteOrder, addReview, getOrder, listOrders, log,
	)
	notificationHandler := handlers.NewNotificationHandler(
		listNotifications, getUnreadCount, markAsRead, markAllAsRead, log,
	)
	wsHandler := ws.NewHandler(
		hub,
		sendMessage, markMessagesRead, getConversations, getMessages,
		limiter,
		ratelimit.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			RequestsPerHour:   cfg.RateLimit.RequestsPerHour,
			RequestsPerDay:    cfg.RateLimit.RequestsPerDay,
		},
		cfg.Realtime.SendBufferSize,
		log,
	)

	engine := gin.New()
	engine.Use(gin.Recovery())

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{AuthHandler: authHandler})
	routes.SetupOrderRoutes(engine, &routes.OrderRouteConfig{
		OrderHandler:   orderHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupNotificationRoutes(engine, &routes.NotificationRouteConfig{
		NotificationHandler: notificationHandler,
		AuthMiddleware:      authMiddleware,
	})
	routes.SetupRealtimeRoutes(engine, &routes.RealtimeRouteConfig{
		WSHandler:      wsHandler,
		AuthMiddleware: authMiddleware,
	})

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Infow("server stopped")
	return nil
}

func mapEnvToGinMode(env string) string {
	switch env {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
