package httpserver

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"panelstore/internal/domain"
	"panelstore/internal/service/checkout"
)

// CartStore is the per-session cart the handlers mutate. Its operations are
// total; storage failures degrade inside the service.
type CartStore interface {
	Get(ctx context.Context, sessionID string) []domain.CartLine
	AddOffering(ctx context.Context, sessionID string, offering domain.Offering) []domain.CartLine
	ChangeQuantity(ctx context.Context, sessionID string, offeringID, delta int) []domain.CartLine
	RemoveOffering(ctx context.Context, sessionID string, offeringID int) []domain.CartLine
	Clear(ctx context.Context, sessionID string)
}

// CheckoutService validates a submission and produces the order hand-off.
type CheckoutService interface {
	Submit(ctx context.Context, sessionID string, in checkout.Input) (*domain.OrderRecord, error)
}

// OrderResolver recovers the order behind the confirmation view.
type OrderResolver interface {
	Remember(rec *domain.OrderRecord)
	Resolve(ctx context.Context, sessionID, orderID string) (*domain.OrderRecord, []domain.CartLine, error)
}

// Deps carries the wired services into the router.
type Deps struct {
	CartSvc       CartStore
	CheckoutSvc   CheckoutService
	Resolver      OrderResolver
	AdminWhatsApp string
	MaxProofBytes int64
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, rdb *redis.Client, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowCredentials = false
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db, rdb))

	api := router.Group("/api")
	api.Use(sessionMiddleware())
	{
		api.GET("/paket", listOfferings)
		api.GET("/cart", getCart(deps.CartSvc))
		api.POST("/cart/items", addCartItem(deps.CartSvc))
		api.PATCH("/cart/items/:id", changeCartItem(deps.CartSvc))
		api.DELETE("/cart/items/:id", removeCartItem(deps.CartSvc))
		api.DELETE("/cart", clearCart(deps.CartSvc))
		api.POST("/checkout", submitCheckout(deps))
		api.GET("/berhasil", showConfirmation(deps))
	}

	return router
}
