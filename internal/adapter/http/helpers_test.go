package http_test

import (
	"testing"
	"time"

	"github.com/diillson/warehouse-api/internal/adapter/database"
	handlers "github.com/diillson/warehouse-api/internal/adapter/http"
	"github.com/diillson/warehouse-api/internal/app/auth"
	"github.com/diillson/warehouse-api/internal/app/catalog"
	"github.com/diillson/warehouse-api/internal/infra/middleware"
	"github.com/diillson/warehouse-api/internal/testutils"
	"github.com/diillson/warehouse-api/pkg/security"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-with-32-characters!!"

// testAPI sobe a pilha completa sobre um sqlite em memória, com as mesmas
// rotas do processo real
type testAPI struct {
	router  *gin.Engine
	auth    *auth.Service
	catalog *catalog.Service
}

func setupTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := testutils.TestLogger(t)
	db := testutils.OpenTestDatabase(t)

	userRepo := database.NewUserRepository(db.DB(), logger)
	productRepo := database.NewProductRepository(db.DB(), logger)
	clientRepo := database.NewClientRepository(db.DB(), logger)
	purchaseRepo := database.NewPurchaseRepository(db.DB(), logger)

	km, err := security.NewKeyManager(testSecret, logger)
	require.NoError(t, err)

	authService := auth.NewService(km, userRepo, time.Hour, logger)
	catalogService := catalog.NewService(productRepo, clientRepo, purchaseRepo, logger)

	authHandler := handlers.NewAuthHandler(authService, logger)
	productHandler := handlers.NewProductHandler(catalogService, logger)
	clientHandler := handlers.NewClientHandler(catalogService, logger)
	purchaseHandler := handlers.NewPurchaseHandler(catalogService, logger)
	authMiddleware := middleware.NewAuthMiddleware(authService, logger)

	router := testutils.SetupTestRouter(t)
	api := router.Group("/api")
	{
		api.POST("/authorize", authHandler.Authorize)
		api.POST("/register", authHandler.Register)
		api.GET("/user", authHandler.GetUser)

		api.GET("/products", productHandler.ListProducts)
		api.GET("/products/:id", productHandler.GetProduct)
		api.POST("/products", productHandler.CreateProduct)

		api.GET("/clients", clientHandler.ListClients)
		api.GET("/clients/:id", clientHandler.GetClient)

		api.GET("/purchases/:client_id", purchaseHandler.ListPurchases)

		admin := api.Group("")
		admin.Use(authMiddleware.AuthenticateAdmin)
		{
			admin.POST("/clients", clientHandler.CreateClient)
			admin.POST("/purchases", purchaseHandler.CreatePurchase)
		}
	}

	return &testAPI{
		router:  router,
		auth:    authService,
		catalog: catalogService,
	}
}

// registerUser cadastra um usuário diretamente pelo serviço
func (api *testAPI) registerUser(t *testing.T, username, password, role string) {
	t.Helper()
	ctx, cancel := testutils.ContextWithTimeout(t)
	defer cancel()

	_, err := api.auth.Register(ctx, username, password, role)
	require.NoError(t, err)
}

// loginToken autentica e devolve o token de sessão
func (api *testAPI) loginToken(t *testing.T, username, password string) string {
	t.Helper()
	ctx, cancel := testutils.ContextWithTimeout(t)
	defer cancel()

	_, token, err := api.auth.Authorize(ctx, username, password)
	require.NoError(t, err)
	return token
}
