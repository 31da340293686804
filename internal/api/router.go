package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/invenco/inventory-system/internal/api/handler"
	"github.com/invenco/inventory-system/internal/api/middleware"
	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/ports"
	"github.com/invenco/inventory-system/internal/core/service"
	"github.com/invenco/inventory-system/internal/infrastructure/config"
	mongodb "github.com/invenco/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/invenco/inventory-system/internal/infrastructure/db/redis"
	"github.com/invenco/inventory-system/internal/pkg/token"
)

// routerDeps holds the stores the route table is built on. NewRouter wires
// the Mongo and Redis implementations; tests may inject stubs.
type routerDeps struct {
	users     ports.UserRepository
	roles     ports.RoleRepository
	products  ports.ProductRepository
	throttle  ports.LoginThrottle
	readiness *handler.ReadinessHandler
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	return newRouter(routerDeps{
		users:     mongodb.NewUserRepository(db),
		roles:     mongodb.NewRoleRepository(db),
		products:  mongodb.NewProductRepository(db),
		throttle:  redisdb.NewLoginThrottle(rdb),
		readiness: handler.NewReadinessHandler(db, rdb),
	}, cfg, log)
}

// newRouter registers the full route table on the given stores.
//
// Required privileges are declared per route, next to the route itself, and
// consulted by the authorization gate middleware. Product routes additionally
// pass the category scope gate; the privilege gate always runs first.
func newRouter(deps routerDeps, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	accessCodec := token.NewCodec(cfg.JWTAccessSecret, cfg.AccessTokenTTL)
	refreshCodec := token.NewCodec(cfg.JWTRefreshSecret, cfg.RefreshTokenTTL)

	authService := service.NewAuthService(deps.users, accessCodec, refreshCodec, deps.throttle, log)
	userService := service.NewUserService(deps.users, deps.roles, cfg.BcryptCost, log)
	roleService := service.NewRoleService(deps.roles, log)
	productService := service.NewProductService(deps.products, log)

	secure := cfg.Env == "production"
	authHandler := handler.NewAuthHandler(authService, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, secure)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	productHandler := handler.NewProductHandler(productService)

	authenticate := middleware.Authenticate(accessCodec)
	categoryScope := middleware.RequireCategoryScope(deps.roles, deps.products)
	requires := func(privileges ...domain.Privilege) echo.MiddlewareFunc {
		return middleware.RequirePrivileges(deps.roles, privileges...)
	}

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/profile", authHandler.Profile, authenticate, requires())

	// --- User routes ---
	user := e.Group("/user", authenticate)
	user.POST("/post", userHandler.Create, requires(domain.PrivilegePost))
	user.GET("/all", userHandler.FindAll, requires(domain.PrivilegeRead))
	user.GET("/byemail", userHandler.FindByEmail, requires(domain.PrivilegeRead))
	user.PATCH("/update", userHandler.Update, requires(domain.PrivilegePatch))
	user.DELETE("/delete", userHandler.Delete, requires(domain.PrivilegeDelete))

	// --- Role routes ---
	role := e.Group("/role", authenticate)
	role.POST("/create", roleHandler.Create, requires(domain.PrivilegePost))
	role.GET("/byid", roleHandler.FindByID, requires(domain.PrivilegeRead))
	role.GET("/byname", roleHandler.FindByName, requires(domain.PrivilegeRead))
	role.GET("/all", roleHandler.FindAll, requires(domain.PrivilegeRead))
	role.PATCH("/update", roleHandler.Update, requires(domain.PrivilegePatch))
	role.DELETE("/delete", roleHandler.Delete, requires(domain.PrivilegeDelete))

	// --- Product routes (privilege gate, then category scope gate) ---
	product := e.Group("/product", authenticate)
	product.POST("/post", productHandler.Create, requires(domain.PrivilegePost), categoryScope)
	product.GET("/all", productHandler.FindAll, requires(domain.PrivilegeRead), categoryScope)
	product.GET("/byname", productHandler.FindByName, requires(domain.PrivilegeRead), categoryScope)
	product.GET("/bycategory", productHandler.FindByCategory, requires(domain.PrivilegeRead), categoryScope)
	product.GET("/byid", productHandler.FindByID, requires(domain.PrivilegeRead), categoryScope)
	product.PATCH("/update", productHandler.Update, requires(domain.PrivilegePatch), categoryScope)
	product.DELETE("/delete", productHandler.Delete, requires(domain.PrivilegeDelete), categoryScope)

	// --- Observability & health (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", deps.readiness.Readiness)

	return e
}
