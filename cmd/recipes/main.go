// cmd/recipes/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"foodtracker/internal/clients"
	"foodtracker/internal/recipes"
	"foodtracker/internal/telemetry"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	ctx := context.Background()

	shutdown, err := telemetry.Init(ctx, "recipes")
	if err != nil {
		log.Printf("telemetry disabled: %v", err)
	} else {
		defer shutdown(ctx)
	}

	inventoryURL := getEnv("INVENTORY_SERVICE_URL", "http://localhost:8081")
	inventoryClient := clients.NewInventoryClient(inventoryURL)

	svc := recipes.NewService(recipes.NewCatalog(), inventoryClient)
	handler := recipes.NewHandler(svc)

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Mount("/", handler.Routes())

	port := getEnv("PORT", "8082")
	log.Printf("Starting Recipes Service on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
