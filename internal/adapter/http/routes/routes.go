package routes

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	_ "lotes_backoffice/docs" // generated by swag init
	"lotes_backoffice/internal/adapter/http/handlers"
	"lotes_backoffice/internal/adapter/persistence/repository"
	"lotes_backoffice/internal/infrastructure/backend"
	"lotes_backoffice/internal/infrastructure/cache"
	"lotes_backoffice/internal/infrastructure/database"
	"lotes_backoffice/internal/infrastructure/logger"
	"lotes_backoffice/internal/infrastructure/payments"
	"lotes_backoffice/internal/usecase"
	"lotes_backoffice/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultPort = "8080"

// Run will start the server
func Run() {
	logger.Setup()
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(context.Background(), router); err != nil {
		log.Fatal().Err(err).Msg("failed to wire the application")
	}

	port := getenvDefault("PORT", defaultPort)
	log.Info().Str("port", port).Msg("listening")
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

// handlerSet is every HTTP handler, built from the environment.
type handlerSet struct {
	auth        *handlers.AuthHandler
	authUseCase usecase.IAuthUseCase
	catalog     *handlers.CatalogHandler
	wizard      *handlers.SaleWizardHandler
	participant *handlers.ParticipantHandler
	payment     *handlers.SalePaymentHandler
}

func getRoutes(ctx context.Context, router *gin.Engine) error {
	h, err := buildHandlers(ctx)
	if err != nil {
		return err
	}
	registerRoutes(router, h)
	return nil
}

func registerRoutes(router *gin.Engine, h handlerSet) {
	// public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, h.auth, h.authUseCase)

	// everything else needs a session
	private := v1.Group("", handlers.RequireSession(h.authUseCase))
	addCatalogRoutes(private, h.catalog)
	addSaleWizardRoutes(private, h.wizard)
	addSaleRoutes(private, h.participant, h.payment)
}

func buildHandlers(ctx context.Context) (handlerSet, error) {
	api, err := backend.NewClientFromEnv()
	if err != nil {
		return handlerSet{}, err
	}

	var redisClient *redis.Client
	needsRedis := strings.EqualFold(os.Getenv("CACHE_DRIVER"), "redis") || strings.EqualFold(os.Getenv("SESSION_STORE"), "redis")
	if needsRedis {
		redisClient, err = cache.Connect(ctx, getenvDefault("REDIS_URL", "redis://localhost:6379/0"))
		if err != nil {
			return handlerSet{}, err
		}
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return handlerSet{}, fmt.Errorf("ping redis: %w", err)
		}
	}

	var store cache.Store = cache.NewMemoryStore(cache.DefaultGCTime)
	if strings.EqualFold(os.Getenv("CACHE_DRIVER"), "redis") {
		store = cache.NewRedisStore(redisClient, cache.DefaultGCTime)
	}
	queries := usecase.NewQueries(api, cache.NewQueryCache(store))

	var sessions interfaces.ITokenStore = repository.NewSessionMemoryStore()
	if strings.EqualFold(os.Getenv("SESSION_STORE"), "redis") {
		sessions = repository.NewSessionRedisStore(redisClient)
	}

	wizardRepo, err := newSaleWizardRepository(ctx)
	if err != nil {
		return handlerSet{}, err
	}
	ttl, err := parseDurationEnv("WIZARD_TTL", usecase.DefaultWizardTTL)
	if err != nil {
		return handlerSet{}, err
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Warn().Err(err).Msg("mercado pago gateway not configured; online payments disabled")
	} else {
		gateway = mpGateway
	}

	authUseCase := usecase.NewAuthUseCase(api, sessions)
	log.Info().
		Str("cache_driver", getenvDefault("CACHE_DRIVER", "memory")).
		Str("session_store", getenvDefault("SESSION_STORE", "memory")).
		Str("wizard_store", getenvDefault("WIZARD_STORE", "dynamodb")).
		Dur("wizard_ttl", ttl).
		Msg("application wired")

	return handlerSet{
		auth:        handlers.NewAuthHandler(authUseCase),
		authUseCase: authUseCase,
		catalog:     handlers.NewCatalogHandler(usecase.NewCatalogUseCase(queries)),
		wizard:      handlers.NewSaleWizardHandler(usecase.NewSaleWizardUseCase(wizardRepo, api, queries, ttl)),
		participant: handlers.NewParticipantHandler(usecase.NewParticipantAssignmentUseCase(api, queries)),
		payment:     handlers.NewSalePaymentHandler(usecase.NewSalePaymentUseCase(api, queries, gateway)),
	}, nil
}

func newSaleWizardRepository(ctx context.Context) (interfaces.ISaleWizardRepository, error) {
	if strings.EqualFold(os.Getenv("WIZARD_STORE"), "memory") {
		return repository.NewSaleWizardMemoryRepository(), nil
	}
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	return repository.NewSaleWizardDynamoRepository(ddb), nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		event := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.Str("component", "http").
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
