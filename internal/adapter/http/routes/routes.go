package routes

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/kaosom/zipquote/docs"
	"github.com/kaosom/zipquote/internal/adapter/http/handlers"
	"github.com/kaosom/zipquote/internal/adapter/http/middleware"
	"github.com/kaosom/zipquote/internal/adapter/persistence/repository"
	"github.com/kaosom/zipquote/internal/infrastructure/database"
	"github.com/kaosom/zipquote/internal/infrastructure/logging"
	"github.com/kaosom/zipquote/internal/infrastructure/payments"
	"github.com/kaosom/zipquote/internal/usecase"
	"github.com/kaosom/zipquote/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultPort = "8080"

// Handlers bundles what the router serves.
type Handlers struct {
	Estimates *handlers.EstimateHandler
	Accounts  *handlers.AccountHandler
	Auth      *middleware.JWTAuth
}

// Run wires DynamoDB, Mercado Pago and JWT from the environment and serves
// the API until the listener fails.
func Run() error {
	log := logging.Component("api")
	ctx := context.Background()

	auth, err := middleware.NewJWTAuthFromEnv()
	if err != nil {
		return fmt.Errorf("refusing to start: %w", err)
	}

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return err
	}
	if isTruthy(os.Getenv("DYNAMODB_CREATE_TABLES")) {
		if err := database.EnsureTables(ctx, ddb, 30*time.Second); err != nil {
			return err
		}
	}

	estimateRows := repository.NewEstimateDynamoRepository(ddb)
	accountRepo := repository.NewAccountDynamoRepository(ddb)
	paymentRepo := repository.NewUpgradePaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.WithError(err).Warn("mercado pago gateway not configured, upgrades disabled")
	} else {
		paymentGateway = mpGateway
	}

	estimateUseCase := usecase.NewEstimateUseCase(usecase.NewRemoteEstimateStore(estimateRows), accountRepo)
	accountUseCase := usecase.NewAccountUseCase(accountRepo, paymentRepo, paymentGateway)

	router := NewRouter(Handlers{
		Estimates: handlers.NewEstimateHandler(estimateUseCase),
		Accounts:  handlers.NewAccountHandler(accountUseCase),
		Auth:      auth,
	})

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = defaultPort
	}
	log.WithField("port", port).Info("starting api")
	if err := router.Run(":" + port); err != nil {
		return fmt.Errorf("failed to start the application: %w", err)
	}
	return nil
}

// NewRouter builds the gin engine: middlewares, swagger, public and
// authenticated /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addPingRoutes(&router.RouterGroup)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("", h.Auth.Middleware())
	addEstimateRoutes(authed, h.Estimates)
	addAccountRoutes(authed, h.Accounts)
	return router
}

func setMiddlewares(router *gin.Engine) {
	log := logging.Component("api")
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithField("path", c.Request.URL.Path).Errorf("recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig()))
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	allowed := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if allowed == "" {
		cfg.AllowAllOrigins = true
	} else {
		for _, o := range strings.Split(allowed, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowOrigins = append(cfg.AllowOrigins, o)
			}
		}
	}
	cfg.AddAllowHeaders("Authorization")
	cfg.AddExposeHeaders("Content-Length")
	return cfg
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
