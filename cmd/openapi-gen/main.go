package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/saleorbridge/saleorbridge/internal/openapi"
	"github.com/saleorbridge/saleorbridge/internal/search"
)

func main() {
	reflector := openapi.NewReflector()

	// Register all API schemas
	search.RegisterStatusSchema(reflector)
	search.RegisterImportSchema(reflector)
	// webhooks intentionally excluded from OpenAPI documentation

	data, err := json.MarshalIndent(reflector.Spec, "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile("openapi.json", data, 0644); err != nil {
		log.Fatal(err)
	}

	log.Println("Generated openapi.json")
}
