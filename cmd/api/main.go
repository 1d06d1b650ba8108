// cmd/api/main.go
package main

import (
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
)

func main() {
	inventoryServiceURL, _ := url.Parse(getEnv("INVENTORY_SERVICE_URL", "http://localhost:8081"))
	recipesServiceURL, _ := url.Parse(getEnv("RECIPES_SERVICE_URL", "http://localhost:8082"))

	inventoryProxy := httputil.NewSingleHostReverseProxy(inventoryServiceURL)
	recipesProxy := httputil.NewSingleHostReverseProxy(recipesServiceURL)

	http.Handle("/api/v1/foods", http.StripPrefix("/api/v1", inventoryProxy))
	http.Handle("/api/v1/foods/", http.StripPrefix("/api/v1", inventoryProxy))
	http.Handle("/api/v1/recipes", http.StripPrefix("/api/v1", recipesProxy))
	http.Handle("/api/v1/recipes/", http.StripPrefix("/api/v1", recipesProxy))

	port := getEnv("PORT", "8080")
	log.Printf("API Gateway listening on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
