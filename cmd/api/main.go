package main

import (
	_ "github.com/kaosom/zipquote/docs"
	"github.com/kaosom/zipquote/internal/adapter/http/routes"
	"github.com/kaosom/zipquote/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           zipquote API
// @version         1.0
// @description     Account-scoped contractor estimates backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := routes.Run(); err != nil {
		logging.GetLogger().WithError(err).Fatal("api stopped")
	}
}
