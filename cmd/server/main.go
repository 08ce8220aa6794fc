package main

import (
	"log"

	"github.com/joho/godotenv"

	"jewelcms/internal/app"
)

// @title Jewel CMS Admin API
// @version 1.0
// @description Back-office API for the jewelry storefront: lead pipeline, catalog and store settings.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	app.Run()
}
