package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anylist/anylist-api/internal/api/graph"
	"github.com/anylist/anylist-api/internal/api/handler"
	"github.com/anylist/anylist-api/internal/api/middleware"
	"github.com/anylist/anylist-api/internal/core/ports"
)

// RouterDeps gathers what the router needs to assemble the API surface.
type RouterDeps struct {
	Authenticator ports.Authenticator
	AuthService   ports.AuthService
	UserService   ports.UserService
	ItemService   ports.ItemService
	SeedService   ports.SeedService
	Mongo         *mongo.Database
	Redis         *redis.Client
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("anylist"))

	// --- GraphQL surface ---
	identity := graph.NewIdentity(deps.Authenticator)
	resolver := graph.NewResolver(identity, deps.AuthService, deps.UserService, deps.ItemService, deps.SeedService, deps.Logger)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return nil, err
	}
	graphqlHandler := handler.NewGraphQLHandler(schema)
	e.POST("/graphql", graphqlHandler.Execute, middleware.BearerToken())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
