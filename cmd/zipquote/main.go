package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kaosom/zipquote/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

func main() {
	logging.SetOutput(os.Stderr)
	if strings.TrimSpace(os.Getenv("LOG_LEVEL")) == "" {
		logging.GetLogger().SetLevel(logrus.WarnLevel)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
