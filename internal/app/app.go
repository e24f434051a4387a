package app

import (
	"context"
	"fmt"

	"github.com/diillson/warehouse-api/internal/adapter/database"
	handlers "github.com/diillson/warehouse-api/internal/adapter/http"
	"github.com/diillson/warehouse-api/internal/app/auth"
	"github.com/diillson/warehouse-api/internal/app/catalog"
	"github.com/diillson/warehouse-api/internal/infra/metrics"
	"github.com/diillson/warehouse-api/internal/infra/middleware"
	"github.com/diillson/warehouse-api/pkg/config"
	"github.com/diillson/warehouse-api/pkg/security"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App reúne todas as dependências da aplicação
type App struct {
	Logger          *zap.Logger
	Config          *config.Config
	DB              *database.Database
	AuthService     *auth.Service
	CatalogService  *catalog.Service
	Middleware      *middleware.Middleware
	APIMetrics      *metrics.APIMetrics
	authHandler     *handlers.AuthHandler
	productHandler  *handlers.ProductHandler
	clientHandler   *handlers.ClientHandler
	purchaseHandler *handlers.PurchaseHandler
	healthChecker   *handlers.HealthChecker
}

// NewApp cria uma nova instância da aplicação com todas as dependências injetadas
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	dbConfig := database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        database.ParseLogLevel(cfg.Database.LogLevel),
		SlowThreshold:   cfg.Database.SlowThreshold,
	}

	// Inicializar banco de dados (conexão + migração do esquema)
	db, err := database.NewDatabase(ctx, dbConfig, logger)
	if err != nil {
		return nil, err
	}

	// Inicializar repositórios
	userRepo := database.NewUserRepository(db.DB(), logger)
	productRepo := database.NewProductRepository(db.DB(), logger)
	clientRepo := database.NewClientRepository(db.DB(), logger)
	purchaseRepo := database.NewPurchaseRepository(db.DB(), logger)

	// Semear o administrador inicial, se configurado
	if err := database.SeedInitialAdmin(ctx, userRepo, cfg.Auth.InitialAdmin, logger); err != nil {
		return nil, fmt.Errorf("falha na semeadura do administrador: %w", err)
	}

	// Inicializar gerenciador de chaves JWT
	keyManager, err := security.NewKeyManager(cfg.Auth.JWTSecret, logger)
	if err != nil {
		return nil, err
	}

	// Inicializar serviços
	authService := auth.NewService(keyManager, userRepo, cfg.Auth.TokenExpiration, logger)
	catalogService := catalog.NewService(productRepo, clientRepo, purchaseRepo, logger)

	// Inicializar métricas e middlewares
	apiMetrics := metrics.NewAPIMetrics()
	middlewares := middleware.NewMiddleware(logger, authService, apiMetrics, cfg.Tracing.ServiceName)

	return &App{
		Logger:          logger,
		Config:          cfg,
		DB:              db,
		AuthService:     authService,
		CatalogService:  catalogService,
		Middleware:      middlewares,
		APIMetrics:      apiMetrics,
		authHandler:     handlers.NewAuthHandler(authService, logger),
		productHandler:  handlers.NewProductHandler(catalogService, logger),
		clientHandler:   handlers.NewClientHandler(catalogService, logger),
		purchaseHandler: handlers.NewPurchaseHandler(catalogService, logger),
		healthChecker:   handlers.NewHealthChecker(db, logger),
	}, nil
}

// RegisterRoutes registra todas as rotas no router
func (a *App) RegisterRoutes(router *gin.Engine) {
	// Middleware global
	router.Use(middleware.RequestID())
	router.Use(a.Middleware.Recovery())
	router.Use(a.Middleware.Logger())
	router.Use(a.Middleware.Metrics())
	if a.Config.Tracing.Enabled {
		router.Use(a.Middleware.Tracing())
	}

	// Health checks
	router.GET("/health", a.healthChecker.HealthCheck)
	router.GET("/health/liveness", a.healthChecker.HealthCheck)
	router.GET("/health/readiness", a.healthChecker.ReadinessCheck)

	// Endpoint de métricas para Prometheus
	if a.Config.Metrics.Enabled {
		router.GET(a.Config.Metrics.PrometheusPath, gin.WrapH(promhttp.Handler()))
		a.Logger.Info("Endpoint de métricas Prometheus registrado",
			zap.String("path", a.Config.Metrics.PrometheusPath))
	}

	api := router.Group("/api")
	{
		// Rotas públicas de autenticação e consulta
		api.POST("/authorize", a.authHandler.Authorize)
		api.POST("/register", a.authHandler.Register)
		api.GET("/user", a.authHandler.GetUser)

		api.GET("/products", a.productHandler.ListProducts)
		api.GET("/products/:id", a.productHandler.GetProduct)
		api.POST("/products", a.productHandler.CreateProduct)

		api.GET("/clients", a.clientHandler.ListClients)
		api.GET("/clients/:id", a.clientHandler.GetClient)

		api.GET("/purchases/:client_id", a.purchaseHandler.ListPurchases)

		// As escritas de clientes e compras exigem um token de administrador
		admin := api.Group("")
		admin.Use(a.Middleware.AuthenticateAdmin)
		{
			admin.POST("/clients", a.clientHandler.CreateClient)
			admin.POST("/purchases", a.purchaseHandler.CreatePurchase)
		}
	}
}

// Close libera os recursos da aplicação
func (a *App) Close() error {
	return a.DB.Close()
}
