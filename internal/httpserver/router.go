package httpserver

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"prizedraw/internal/domain"
	cartsvc "prizedraw/internal/service/cart"
	reconcilesvc "prizedraw/internal/service/reconcile"
)

// Deps holds the services the router dispatches to. The interfaces are
// declared here, at the consumer, so handlers can be tested against stubs.
type Deps struct {
	CatalogSvc   catalogService
	CartSvc      cartService
	CheckoutSvc  checkoutService
	ReconcileSvc reconcileService
}

type catalogService interface {
	List(ctx context.Context, category string) ([]domain.Competition, error)
	Get(ctx context.Context, id int64) (*domain.Competition, error)
}

type cartService interface {
	List(ctx context.Context, sessionID string) ([]cartsvc.ItemDetail, error)
	Add(ctx context.Context, sessionID string, competitionID int64, quantity int) (*cartsvc.ItemDetail, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) (*cartsvc.ItemDetail, error)
	Remove(ctx context.Context, id int64) error
}

type checkoutService interface {
	CreateSession(ctx context.Context, sessionID, origin string) (string, error)
}

type reconcileService interface {
	HandleEvent(ctx context.Context, payload []byte, signature string) error
	Resolve(ctx context.Context, paymentSessionID string) (*reconcilesvc.Result, error)
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	api.GET("/competitions", listCompetitionsHandler(deps.CatalogSvc))
	api.GET("/competitions/:id", getCompetitionHandler(deps.CatalogSvc))

	// Completion entry points carry no cart session: push authenticates by
	// signature, pull is keyed by the payment session id alone.
	api.POST("/webhook", webhookHandler(deps.ReconcileSvc))
	api.GET("/order/:paymentSessionId", getOrderHandler(deps.ReconcileSvc))

	session := api.Group("", sessionMiddleware())
	session.GET("/cart", listCartHandler(deps.CartSvc))
	session.POST("/cart", addCartItemHandler(deps.CartSvc))
	session.PATCH("/cart/:id", updateCartItemHandler(deps.CartSvc))
	session.DELETE("/cart/:id", removeCartItemHandler(deps.CartSvc))
	session.POST("/create-checkout-session", createCheckoutSessionHandler(deps.CheckoutSvc))

	return router
}
