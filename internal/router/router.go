package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	rd "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"parts_office/internal/auth"
	"parts_office/internal/config"
	"parts_office/internal/middleware"
	"parts_office/internal/service"
	"parts_office/internal/storage"
	rediskey "parts_office/pkg/redis"
)

// Deps carries everything the handlers close over. RDB and Cache may
// be nil (tests, degraded mode): the stock endpoints then fall back to
// the database and contract creation is not rate limited.
type Deps struct {
	DB       *gorm.DB
	RDB      *rd.Client
	Cache    *rediskey.StockCache
	Tokens   *auth.Tokens
	Uploader storage.Uploader
	Cfg      config.AppConfig

	Admins    *service.AdminService
	Clients   *service.ClientService
	Products  *service.ProductService
	Contracts *service.ContractService
}

// Setup registers every HTTP route.
func Setup(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "pong"})
	})

	if d.Cfg.UploadDir != "" {
		r.Static("/uploads", d.Cfg.UploadDir)
	}

	authed := middleware.RequireAuth(d.Tokens)

	// Auth
	r.POST("/api/auth/login", login(d))

	// Admins
	r.POST("/api/admins", authed, middleware.RequireSuper(), createAdmin(d))
	r.GET("/api/admins", authed, listAdmins(d))
	r.GET("/api/admins/:id", authed, getAdmin(d))
	r.PATCH("/api/admins/:id", authed, updateAdmin(d))
	r.DELETE("/api/admins/:id", authed, middleware.RequireSuper(), deleteAdmin(d))

	// Clients
	r.POST("/api/clients", authed, createClient(d))
	r.GET("/api/clients", authed, listClients(d))
	r.GET("/api/clients/:id", authed, getClient(d))
	r.PATCH("/api/clients/:id", authed, updateClient(d))
	r.DELETE("/api/clients/:id", authed, deleteClient(d))

	// Catalog
	r.POST("/api/products", authed, createProduct(d))
	r.GET("/api/products", listProducts(d))
	r.GET("/api/products/search", searchProducts(d))
	r.GET("/api/products/:id", getProduct(d))
	r.PATCH("/api/products/:id", authed, updateProduct(d))
	r.DELETE("/api/products/:id", authed, deleteProduct(d))

	r.POST("/api/categories", authed, createCategory(d))
	r.GET("/api/categories", listCategories(d))
	r.GET("/api/categories/:id", getCategory(d))
	r.PATCH("/api/categories/:id", authed, updateCategory(d))
	r.DELETE("/api/categories/:id", authed, deleteCategory(d))

	r.POST("/api/locations", authed, createLocation(d))
	r.GET("/api/locations", listLocations(d))
	r.GET("/api/locations/:id", getLocation(d))
	r.PATCH("/api/locations/:id", authed, updateLocation(d))
	r.DELETE("/api/locations/:id", authed, deleteLocation(d))

	// Stock cache
	r.GET("/api/stock/:product_id", getStock(d))
	r.POST("/api/stock/preload/:product_id", authed, middleware.RequireSuper(), preloadStock(d))

	// Contracts
	createHandlers := []gin.HandlerFunc{authed}
	if d.RDB != nil {
		createHandlers = append(createHandlers,
			middleware.RedisRateLimit(d.RDB, d.Cfg.ContractRateLimit, d.Cfg.ContractRateWindow))
	}
	createHandlers = append(createHandlers, createContract(d))
	r.POST("/api/contracts", createHandlers...)
	r.GET("/api/contracts", authed, listContracts(d))
	r.GET("/api/contracts/:id", authed, getContract(d))
	r.PATCH("/api/contracts/:id", authed, updateContract(d))
	r.DELETE("/api/contracts/:id", authed, deleteContract(d))
}
