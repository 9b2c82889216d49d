package router

import (
	"log"

	gqlhandler "github.com/graphql-go/handler"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/primaaawdn/LinkedOn-GC01/internal/auth"
	"github.com/primaaawdn/LinkedOn-GC01/internal/cache"
	"github.com/primaaawdn/LinkedOn-GC01/internal/graph"
	"github.com/primaaawdn/LinkedOn-GC01/internal/handlers"
	"github.com/primaaawdn/LinkedOn-GC01/internal/repositories"
	"github.com/primaaawdn/LinkedOn-GC01/internal/service"
	"github.com/primaaawdn/LinkedOn-GC01/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes wires the stores, cache, auth gate and GraphQL schema
// onto the Echo instance
func SetupRoutes(e *echo.Echo, cfg *config.Config, db *mongo.Database, redisClient *redis.Client) error {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewMongoUserRepository(db)
	postRepo := repositories.NewMongoPostRepository(db)
	followRepo := repositories.NewMongoFollowRepository(db)

	// --- Cache and services ---
	store := cache.NewRedisStore(redisClient)
	content := service.NewContentService(postRepo, store)
	tokens := auth.NewTokenManager(cfg.JWTSecret)

	// --- GraphQL ---
	resolver := graph.NewResolver(userRepo, followRepo, content, tokens)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return err
	}

	h := gqlhandler.New(&gqlhandler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: cfg.Env == "development",
	})

	e.Any("/query", func(c echo.Context) error {
		req := c.Request()
		ctx := graph.WithAuthHeader(req.Context(), req.Header.Get("Authorization"))
		h.ServeHTTP(c.Response(), req.WithContext(ctx))
		return nil
	})
	log.Println("GraphQL endpoint configured at /query.")

	return nil
}
