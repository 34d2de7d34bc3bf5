package main

import (
	"log"
	"os"

	"github.com/japb1998/outreach-crm/internal/api"
)

func main() {
	r := api.InitRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %s", err)
	}
}
