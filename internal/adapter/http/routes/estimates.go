package routes

import (
	"github.com/kaosom/zipquote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathQuota     = "/quota"
	PathUsers     = "/users"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.POST("", estimateHandler.UpsertEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
	}
	rg.GET(PathQuota, estimateHandler.GetQuota)
}

func addAccountRoutes(rg *gin.RouterGroup, accountHandler *handlers.AccountHandler) {
	users := rg.Group(PathUsers)
	{
		users.POST("", accountHandler.CreateAccount)
		users.GET("/me", accountHandler.GetMe)
		users.POST("/me/upgrade", accountHandler.Upgrade)
	}
}
