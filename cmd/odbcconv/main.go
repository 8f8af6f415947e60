package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ajitpratap0/nebula-odbc/internal/cli"
	"github.com/ajitpratap0/nebula-odbc/pkg/logger"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := cli.NewRootCommand(version).Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
